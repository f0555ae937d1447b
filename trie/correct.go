package trie

import (
	"github.com/ppatil/predtext/stack"
	"github.com/ppatil/predtext/suggest"
)

// levFrame carries the traversal state for one trie edge: the child node the
// edge leads to, its symbol, the word spelled so far, and the parent's
// dynamic-programming row.
type levFrame struct {
	node *Node
	ch   rune
	word string
	prev []int
}

// Suggest returns every stored word within maxDistance Levenshtein edits of
// word, scored and ranked by the suggest package: edit distance ascending,
// weight descending. A negative maxDistance yields no results.
//
// The traversal extends the classic rolling-row Levenshtein computation
// along trie edges. Each frame turns its parent's row prev into the row for
// the spelled word plus the edge symbol:
//
//	curr[0] = prev[0] + 1
//	curr[i] = min(curr[i-1]+1, prev[i]+1, prev[i-1] + subst)
//
// where subst is 0 when the i-th query symbol matches the edge symbol.
// curr[len(query)] is then the exact distance between the query and the
// spelled word. The row minimum never shrinks as the word grows, so a whole
// subtree is pruned as soon as min(curr) exceeds the bound.
//
// The traversal uses an explicit stack rather than recursion; depth equals
// the longest stored word, which can be arbitrarily large for pathological
// dictionaries.
//
// Time Complexity: O(v * L), where L = query length and v = nodes whose
// row minimum stays within maxDistance
func (t *Trie) Suggest(word string, maxDistance int) []suggest.Suggestion {
	if maxDistance < 0 {
		return nil
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	query := []rune(word)
	row0 := make([]int, len(query)+1)
	for i := range row0 {
		row0[i] = i
	}

	var found []suggest.Suggestion
	frames := stack.NewStack[levFrame]()
	for _, ch := range t.root.sortedEdges() {
		frames.Push(levFrame{node: t.root.children[ch], ch: ch, word: string(ch), prev: row0})
	}

	for !frames.IsEmpty() {
		f, _ := frames.Pop()
		curr := make([]int, len(query)+1)
		curr[0] = f.prev[0] + 1
		minRow := curr[0]
		for i := 1; i <= len(query); i++ {
			subst := 1
			if query[i-1] == f.ch {
				subst = 0
			}
			v := f.prev[i-1] + subst
			if del := f.prev[i] + 1; del < v {
				v = del
			}
			if ins := curr[i-1] + 1; ins < v {
				v = ins
			}
			curr[i] = v
			if v < minRow {
				minRow = v
			}
		}

		if f.node.end && curr[len(query)] <= maxDistance {
			found = append(found, suggest.Suggestion{
				Word:     f.word,
				Weight:   f.node.weight,
				Distance: curr[len(query)],
			})
		}
		if minRow <= maxDistance {
			for _, ch := range f.node.sortedEdges() {
				frames.Push(levFrame{node: f.node.children[ch], ch: ch, word: f.word + string(ch), prev: curr})
			}
		}
	}
	return suggest.Rank(found, word)
}

// Correct returns the words of Suggest, keeping the ranked order:
// non-decreasing in edit distance, best weight first within a distance.
func (t *Trie) Correct(word string, maxDistance int) []string {
	sugs := t.Suggest(word, maxDistance)
	if len(sugs) == 0 {
		return nil
	}
	out := make([]string, len(sugs))
	for i, s := range sugs {
		out[i] = s.Word
	}
	return out
}
