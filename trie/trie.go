/*
Package trie provides a weighted prefix tree (Trie) for predictive text.

Every stored word carries a weight, normally a non-negative corpus-derived
preference score such as term frequency; negative weights are stored and
returned unchanged. On top of exact membership the trie supports
two search operations:

  - Complete: the top-k words extending a prefix, best weight first, driven
    by a per-node cached subtree max-weight and a priority queue.
  - Correct: all stored words within a Levenshtein distance bound of a
    query, computed with rolling dynamic-programming rows along the trie
    edges, ranked by edit distance and then weight.

Example usage:

	t := trie.NewTrie()
	t.InsertWeighted("their", 5)
	t.InsertWeighted("there", 8)
	fmt.Println(t.Complete("the", 2)) // [there their]
	fmt.Println(t.Correct("thier", 2)) // [there their]

Concurrency:
  - All operations are protected by a read-write mutex: mutations take the
    write lock, queries the read lock. Queries running concurrently with no
    active mutator share the trie freely.

Implementation Details:
  - Children are rune-keyed maps, so the alphabet is whatever the input
    strings contain.
  - Each node caches the maximum terminal weight of its subtree. Insert,
    Remove and UpdateWeight restore the cache along the touched
    root-to-leaf path before returning.
  - A node left with no stored word and no children is deleted during
    Remove; the trie never holds dangling chains.
*/
package trie

import (
	"sync"

	"github.com/ppatil/predtext/stack"
)

// Trie is a thread-safe weighted prefix tree.
//
// The root node exists for the lifetime of the trie and is never terminal,
// so the empty string cannot be stored.
type Trie struct {
	root  *Node
	size  int
	mutex sync.RWMutex
}

// NewTrie creates and returns an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Size returns the number of stored words.
//
// Time Complexity: O(1)
func (t *Trie) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.size
}

// IsEmpty reports whether the trie stores no words.
//
// Time Complexity: O(1)
func (t *Trie) IsEmpty() bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.size == 0
}

// Insert adds word with weight zero. See InsertWeighted.
func (t *Trie) Insert(word string) bool {
	return t.InsertWeighted(word, 0)
}

// InsertWeighted stores the word-weight pair, creating nodes along the path
// as needed. It returns true iff the trie changed: the word was absent, or
// present with a different weight. Inserting the empty string is a no-op.
//
// Algorithm Steps:
//   - Walk the word's path from the root, creating missing nodes.
//   - Mark the final node terminal and set its weight.
//   - If anything changed, recompute the subtree max-weight of every node
//     on the path, deepest first. The upward recomputation also covers a
//     re-insert with a lower weight, where summaries must drop.
//
// Time Complexity: O(n), where n = length of the word
func (t *Trie) InsertWeighted(word string, weight float64) bool {
	if len(word) == 0 {
		return false
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()

	path := make([]*Node, 0, len(word)+1)
	path = append(path, t.root)
	current := t.root
	for _, ch := range word {
		next := current.children[ch]
		if next == nil {
			next = newNode()
			current.children[ch] = next
		}
		current = next
		path = append(path, next)
	}

	changed := !current.end || current.weight != weight
	if !current.end {
		t.size++
	}
	current.end = true
	current.weight = weight
	if changed {
		for i := len(path) - 1; i >= 0; i-- {
			path[i].recomputeMax()
		}
	}
	return changed
}

// Contains reports whether word is stored in the trie. Prefixes of stored
// words do not count.
//
// Time Complexity: O(n), where n = length of the word
func (t *Trie) Contains(word string) bool {
	_, ok := t.WeightOf(word)
	return ok
}

// WeightOf returns the weight stored for word. The second return is false
// when the word is not stored.
//
// Time Complexity: O(n), where n = length of the word
func (t *Trie) WeightOf(word string) (float64, bool) {
	if len(word) == 0 {
		return 0, false
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	n := t.lookup(word)
	if n == nil || !n.end {
		return 0, false
	}
	return n.weight, true
}

// UpdateWeight replaces word's weight with f applied to the old weight,
// returning whether the word was present. The subtree max-weight cache is
// restored along the whole root-to-terminal path.
//
// Time Complexity: O(n), where n = length of the word
func (t *Trie) UpdateWeight(word string, f func(float64) float64) bool {
	if len(word) == 0 || f == nil {
		return false
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()

	path := make([]*Node, 0, len(word)+1)
	path = append(path, t.root)
	current := t.root
	for _, ch := range word {
		current = current.children[ch]
		if current == nil {
			return false
		}
		path = append(path, current)
	}
	if !current.end {
		return false
	}
	current.weight = f(current.weight)
	for i := len(path) - 1; i >= 0; i-- {
		path[i].recomputeMax()
	}
	return true
}

// Remove deletes word from the trie, returning whether it was present.
// Nodes left with no stored word and no children are deleted, and the subtree
// max-weight cache is recomputed in every frame on the removal path, since
// the deleted terminal may have been the summary's source.
//
// Algorithm Steps:
//   - Walk the word, pushing (parent, symbol) pairs for backtracking.
//   - Unmark the terminal node and drop its weight.
//   - Backtrack: delete childless non-terminal nodes, then recompute the
//     parent's max-weight summary.
//
// Time Complexity: O(n), where n = length of the word
func (t *Trie) Remove(word string) bool {
	if len(word) == 0 {
		return false
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()

	type edge struct {
		parent *Node
		ch     rune
	}
	s := stack.NewStack[edge]()
	current := t.root
	for _, ch := range word {
		next := current.children[ch]
		if next == nil {
			return false
		}
		s.Push(edge{current, ch})
		current = next
	}
	if !current.end {
		return false
	}
	current.end = false
	current.weight = -1
	current.recomputeMax()

	for !s.IsEmpty() {
		e, _ := s.Pop()
		child := e.parent.children[e.ch]
		if !child.end && len(child.children) == 0 {
			delete(e.parent.children, e.ch)
		}
		e.parent.recomputeMax()
	}
	t.size--
	return true
}

// lookup descends from the root along word and returns the node reached,
// or nil if an edge is missing. Callers hold the lock.
func (t *Trie) lookup(word string) *Node {
	current := t.root
	for _, ch := range word {
		current = current.children[ch]
		if current == nil {
			return nil
		}
	}
	return current
}
