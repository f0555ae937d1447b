package trie

import (
	"math"

	"golang.org/x/exp/slices"
)

// Node is a single node of the weighted trie.
//
// Each node carries:
//   - end: whether a stored word terminates here
//   - weight: the stored word's weight; holds the -1 convention while the
//     node is not terminal and is never exposed in that state
//   - children: edge map from symbol to child node
//   - maxWeight: the largest terminal weight in the subtree rooted at this
//     node (itself included), or -Inf when the subtree stores no word
//
// maxWeight is the summary that lets completion run best-first: a subtree
// whose summary is lower than everything already emitted can be expanded
// later or not at all.
type Node struct {
	end       bool
	weight    float64
	children  map[rune]*Node
	maxWeight float64
}

func newNode() *Node {
	return &Node{
		weight:    -1,
		children:  make(map[rune]*Node),
		maxWeight: math.Inf(-1),
	}
}

// recomputeMax restores maxWeight from the node's own terminal weight and
// its children's summaries. Called bottom-up after any mutation that may
// have lowered a weight beneath the node.
func (n *Node) recomputeMax() {
	best := math.Inf(-1)
	if n.end {
		best = n.weight
	}
	for _, c := range n.children {
		if c.maxWeight > best {
			best = c.maxWeight
		}
	}
	n.maxWeight = best
}

// sortedEdges returns the child edge symbols in ascending order so
// traversals visit children deterministically.
func (n *Node) sortedEdges() []rune {
	edges := make([]rune, 0, len(n.children))
	for r := range n.children {
		edges = append(edges, r)
	}
	slices.Sort(edges)
	return edges
}
