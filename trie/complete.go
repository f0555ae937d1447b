package trie

import (
	"github.com/ppatil/predtext/priorityqueue"
)

// completion is a priority-queue entry for the best-first enumeration.
// While node is non-nil the entry stands for an unexpanded subtree,
// prioritized by the subtree's max-weight summary. With node nil it is a
// resolved word waiting to surface at its own weight. seq breaks priority
// ties by queue insertion order, keeping the output deterministic.
type completion struct {
	node     *Node
	word     string
	priority float64
	seq      int
}

// Complete returns up to k words extending prefix, ordered by weight
// descending. A non-positive k or a prefix absent from the trie yields no
// results.
//
// Algorithm Steps:
//   - Descend to the prefix node; missing edge means no completions.
//   - Seed a max-priority queue with that node, keyed by its subtree
//     max-weight.
//   - Pop the best entry. A terminal whose own weight equals its subtree
//     summary is the best word remaining anywhere in its subtree, so emit
//     it; a terminal outweighed by a descendant is re-queued at its own
//     weight and surfaces once the heavier descendants have. Then queue
//     every child at its summary weight.
//
// Every queued entry's priority is bounded by its parent's, so popped
// priorities never increase and the emitted sequence is non-increasing in
// weight.
//
// Time Complexity: O(p + m log m), where p = prefix length and m = nodes
// visited before the k-th emission
func (t *Trie) Complete(prefix string, k int) []string {
	if k <= 0 {
		return nil
	}
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	start := t.lookup(prefix)
	if start == nil {
		return nil
	}

	pq := priorityqueue.NewBinaryHeapWithComparator(func(a, b completion) bool {
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		return a.seq < b.seq
	})
	seq := 0
	push := func(c completion) {
		c.seq = seq
		seq++
		pq.Add(c)
	}
	push(completion{node: start, word: prefix, priority: start.maxWeight})

	results := make([]string, 0, k)
	for !pq.IsEmpty() && len(results) < k {
		e, _ := pq.Poll()
		if e.node == nil {
			results = append(results, e.word)
			continue
		}
		n := e.node
		if n.end {
			if n.maxWeight == n.weight {
				results = append(results, e.word)
			} else {
				push(completion{word: e.word, priority: n.weight})
			}
		}
		for _, ch := range n.sortedEdges() {
			child := n.children[ch]
			push(completion{node: child, word: e.word + string(ch), priority: child.maxWeight})
		}
	}
	return results
}
