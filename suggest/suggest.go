/*
Package suggest ranks and composes correction candidates.

A Suggestion pairs a stored word with its weight and its edit distance from
the query. Rank orders a bag of suggestions the way a predictive-text user
expects: fewest edits first, then best weight, then keys closest to the ones
actually typed. Predictor chains a correction pass with per-candidate
completions for end-to-end prediction.
*/
package suggest

import (
	"github.com/ppatil/predtext/priorityqueue"
)

// Suggestion is one correction candidate.
type Suggestion struct {
	Word     string
	Weight   float64
	Distance int
}

// ranked decorates a Suggestion with its keyboard proximity to the query,
// computed once before the ordered drain.
type ranked struct {
	s    Suggestion
	prox int
}

// Rank orders suggestions by edit distance ascending, weight descending,
// QWERTY proximity to query ascending, and finally word ascending, so equal
// candidates always come back in the same order. The input slice is not
// modified.
//
// Time Complexity: O(n log n + n*L), where L = query length
func Rank(sugs []Suggestion, query string) []Suggestion {
	if len(sugs) == 0 {
		return nil
	}
	h := priorityqueue.NewBinaryHeapWithComparator(func(a, b ranked) bool {
		if a.s.Distance != b.s.Distance {
			return a.s.Distance < b.s.Distance
		}
		if a.s.Weight != b.s.Weight {
			return a.s.Weight > b.s.Weight
		}
		if a.prox != b.prox {
			return a.prox < b.prox
		}
		return a.s.Word < b.s.Word
	})
	for _, s := range sugs {
		h.Add(ranked{s: s, prox: Proximity(query, s.Word)})
	}
	out := make([]Suggestion, 0, len(sugs))
	for _, r := range h.Sort() {
		out = append(out, r.s)
	}
	return out
}

// Words projects suggestions onto their words, preserving order.
func Words(sugs []Suggestion) []string {
	if len(sugs) == 0 {
		return nil
	}
	out := make([]string, len(sugs))
	for i, s := range sugs {
		out[i] = s.Word
	}
	return out
}
