package suggest

import (
	"github.com/ppatil/predtext/set"
)

// Index is the slice of the weighted-string index a Predictor consumes.
type Index interface {
	// Correct returns stored words within maxDistance edits of word,
	// non-decreasing in distance.
	Correct(word string, maxDistance int) []string
	// Complete returns up to k stored words extending prefix, best weight
	// first.
	Complete(prefix string, k int) []string
}

// Predictor chains correction with completion: each correction of the input
// is expanded to its top completions, and the combined list is deduplicated
// while preserving correction order.
type Predictor struct {
	index Index
}

// NewPredictor returns a Predictor over index.
func NewPredictor(index Index) *Predictor {
	return &Predictor{index: index}
}

// Predict returns predictions for a possibly misspelled, possibly partial
// input: corrections within maxDistance edits, each followed by its top-k
// completions. Duplicates are dropped on first occurrence. Empty input, a
// negative maxDistance or a non-positive k yield no results.
func (p *Predictor) Predict(input string, maxDistance, k int) []string {
	if input == "" || maxDistance < 0 || k <= 0 {
		return nil
	}
	seen := set.NewUnorderedSet[string]()
	var out []string
	add := func(w string) {
		if seen.Contains(w) {
			return
		}
		seen.Insert(w)
		out = append(out, w)
	}
	for _, corr := range p.index.Correct(input, maxDistance) {
		add(corr)
		for _, comp := range p.index.Complete(corr, k) {
			add(comp)
		}
	}
	return out
}
