/*
Package ngram counts n-gram frequencies over tokenized text.

A Model of order n tracks how often each n-gram and each (n-1)-gram
(context) occurs, bracketing every sentence with start and end markers. The
conditional probability of a word completing a context is the ratio of the
two counts. Unigram frequencies double as trie weights: SeedWeights feeds a
corpus's term frequencies into a weighted-string index.

Tokenization here never mutates its input; splitting is done on a
caller-supplied delimiter set.
*/
package ngram

import (
	"strings"
	"sync"

	"github.com/ppatil/predtext/deque"
	"github.com/ppatil/predtext/treemap"
)

const (
	// SentenceStart and SentenceEnd bracket every sentence so n-grams at
	// the boundaries are counted like interior ones.
	SentenceStart = "<s>"
	SentenceEnd   = "</s>"

	// DefaultDelimiters separates tokens when the caller supplies no set.
	DefaultDelimiters = " \t\n"

	// keySeparator joins gram words into count keys. A unit separator
	// cannot occur in tokenized words.
	keySeparator = "\x1f"
)

// Tokenize splits text on any rune of delims, dropping empty tokens. The
// input string is left untouched.
func Tokenize(text, delims string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}

// SplitSentences cuts text into sentences at '.', '!' and '?', trimming
// surrounding whitespace and dropping empty pieces.
func SplitSentences(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			out = append(out, s)
		}
		b.Reset()
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return out
}

// Model counts n-grams and their (n-1)-gram contexts. Counts live in
// ordered maps so dumps are deterministic. All operations are guarded by a
// read-write mutex.
type Model struct {
	n        int
	total    int
	counts   *treemap.TreeMap[string, int]
	contexts *treemap.TreeMap[string, int]
	mutex    sync.RWMutex
}

// NewModel returns an empty model of the given order. Orders below 2 are
// raised to 2, the smallest order with a non-empty context.
func NewModel(n int) *Model {
	if n < 2 {
		n = 2
	}
	return &Model{
		n:        n,
		counts:   treemap.NewTreeMap[string, int](),
		contexts: treemap.NewTreeMap[string, int](),
	}
}

// Order returns the model's n.
func (m *Model) Order() int { return m.n }

// Train tokenizes each sentence, brackets it with the start and end
// markers, and observes every n-gram of the sequence through a rolling
// window. Empty sentences, and sentences with fewer than n-2 tokens (too
// short to fill one window even with both markers), contribute nothing.
func (m *Model) Train(sentences []string) {
	for _, sentence := range sentences {
		m.trainSentence(sentence)
	}
}

func (m *Model) trainSentence(sentence string) {
	tokens := Tokenize(sentence, DefaultDelimiters)
	if len(tokens) == 0 {
		return
	}
	seq := make([]string, 0, len(tokens)+2)
	seq = append(seq, SentenceStart)
	seq = append(seq, tokens...)
	seq = append(seq, SentenceEnd)

	window := deque.NewDeque[string]()
	for _, tok := range seq {
		window.OfferLast(tok)
		if window.Size() > m.n {
			_, _ = window.PollFirst()
		}
		if window.Size() == m.n {
			m.Observe(window.Items())
		}
	}
}

// Observe records one occurrence of gram, which must have exactly the
// model's order; other lengths are ignored.
func (m *Model) Observe(gram []string) {
	if len(gram) != m.n {
		return
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	key := strings.Join(gram, keySeparator)
	c, _ := m.counts.Get(key)
	m.counts.Put(key, c+1)

	ctx := strings.Join(gram[:m.n-1], keySeparator)
	c, _ = m.contexts.Get(ctx)
	m.contexts.Put(ctx, c+1)
	m.total++
}

// Count returns how often gram has been observed.
func (m *Model) Count(gram []string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	c, _ := m.counts.Get(strings.Join(gram, keySeparator))
	return c
}

// Total returns the number of observations.
func (m *Model) Total() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.total
}

// Probability returns the conditional probability that word completes
// context, i.e. count(context+word) / count(context). A context of the
// wrong length or one never observed yields zero.
func (m *Model) Probability(context []string, word string) float64 {
	if len(context) != m.n-1 {
		return 0
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	denom, ok := m.contexts.Get(strings.Join(context, keySeparator))
	if !ok || denom == 0 {
		return 0
	}
	gram := make([]string, 0, m.n)
	gram = append(gram, context...)
	gram = append(gram, word)
	num, _ := m.counts.Get(strings.Join(gram, keySeparator))
	return float64(num) / float64(denom)
}

// Grams returns every observed n-gram as a space-joined string, in sorted
// order.
func (m *Model) Grams() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	keys := m.counts.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = strings.ReplaceAll(k, keySeparator, " ")
	}
	return out
}

// WeightSink stores word-weight pairs; *trie.Trie satisfies it.
type WeightSink interface {
	InsertWeighted(word string, weight float64) bool
}

// SeedWeights tokenizes text with the default delimiters and inserts every
// distinct token into sink with its absolute frequency as the weight. It
// returns the number of distinct tokens.
func SeedWeights(sink WeightSink, text string) int {
	freq := make(map[string]int)
	for _, tok := range Tokenize(text, DefaultDelimiters) {
		freq[tok]++
	}
	for word, count := range freq {
		sink.InsertWeighted(word, float64(count))
	}
	return len(freq)
}
