/*
Package treemap provides a generic ordered map backed by a left-leaning
red-black tree.

Keys are kept in sorted order, so iteration with Keys is deterministic.
Put, Get and Remove run in O(log n).

Example:

	tm := treemap.NewTreeMap[string, int]()
	tm.Put("their", 3)
	tm.Put("there", 1)
	fmt.Println(tm.Keys()) // [their there]
*/
package treemap

import (
	"sync"

	"golang.org/x/exp/constraints"
)

type color bool

const (
	red   color = true
	black color = false
)

type node[K constraints.Ordered, V any] struct {
	key         K
	val         V
	left, right *node[K, V]
	c           color
}

// TreeMap is a generic sorted map. All operations are guarded by a
// read-write mutex and safe for concurrent use.
type TreeMap[K constraints.Ordered, V any] struct {
	root  *node[K, V]
	size  int
	mutex sync.RWMutex
}

// NewTreeMap creates and returns a new empty map.
//
// Complexity: O(1)
func NewTreeMap[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{}
}

func isRed[K constraints.Ordered, V any](n *node[K, V]) bool {
	return n != nil && n.c == red
}

func rotateLeft[K constraints.Ordered, V any](h *node[K, V]) *node[K, V] {
	x := h.right
	h.right = x.left
	x.left = h
	x.c = h.c
	h.c = red
	return x
}

func rotateRight[K constraints.Ordered, V any](h *node[K, V]) *node[K, V] {
	x := h.left
	h.left = x.right
	x.right = h
	x.c = h.c
	h.c = red
	return x
}

func flipColors[K constraints.Ordered, V any](h *node[K, V]) {
	h.c = !h.c
	h.left.c = !h.left.c
	h.right.c = !h.right.c
}

func fixUp[K constraints.Ordered, V any](h *node[K, V]) *node[K, V] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	return h
}

// Put associates key with value, replacing any previous value.
//
// Complexity: O(log n)
func (t *TreeMap[K, V]) Put(key K, value V) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.root = t.put(t.root, key, value)
	t.root.c = black
}

func (t *TreeMap[K, V]) put(h *node[K, V], key K, value V) *node[K, V] {
	if h == nil {
		t.size++
		return &node[K, V]{key: key, val: value, c: red}
	}
	switch {
	case key < h.key:
		h.left = t.put(h.left, key, value)
	case key > h.key:
		h.right = t.put(h.right, key, value)
	default:
		h.val = value
	}
	return fixUp(h)
}

// Get returns the value stored under key and whether the key exists.
//
// Complexity: O(log n)
func (t *TreeMap[K, V]) Get(key K) (V, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.val, true
		}
	}
	var zero V
	return zero, false
}

// ContainsKey reports whether key exists in the map.
//
// Complexity: O(log n)
func (t *TreeMap[K, V]) ContainsKey(key K) bool {
	_, ok := t.Get(key)
	return ok
}

func moveRedLeft[K constraints.Ordered, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

func moveRedRight[K constraints.Ordered, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}

func minNode[K constraints.Ordered, V any](h *node[K, V]) *node[K, V] {
	for h.left != nil {
		h = h.left
	}
	return h
}

func deleteMin[K constraints.Ordered, V any](h *node[K, V]) *node[K, V] {
	if h.left == nil {
		return nil
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	h.left = deleteMin(h.left)
	return fixUp(h)
}

// Remove deletes key from the map, returning the removed value and whether
// the key was present.
//
// Complexity: O(log n)
func (t *TreeMap[K, V]) Remove(key K) (V, bool) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	val, ok := t.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.c = red
	}
	t.root = t.delete(t.root, key)
	if t.root != nil {
		t.root.c = black
	}
	t.size--
	return val, true
}

// lookup is Get without locking, for use inside mutators.
func (t *TreeMap[K, V]) lookup(key K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.val, true
		}
	}
	var zero V
	return zero, false
}

// delete assumes key is present beneath h.
func (t *TreeMap[K, V]) delete(h *node[K, V], key K) *node[K, V] {
	if key < h.key {
		if !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left = t.delete(h.left, key)
	} else {
		if isRed(h.left) {
			h = rotateRight(h)
		}
		if key == h.key && h.right == nil {
			return nil
		}
		if !isRed(h.right) && !isRed(h.right.left) {
			h = moveRedRight(h)
		}
		if key == h.key {
			m := minNode(h.right)
			h.key, h.val = m.key, m.val
			h.right = deleteMin(h.right)
		} else {
			h.right = t.delete(h.right, key)
		}
	}
	return fixUp(h)
}

// Keys returns all keys in ascending order.
//
// Complexity: O(n)
func (t *TreeMap[K, V]) Keys() []K {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	keys := make([]K, 0, t.size)
	var inorder func(n *node[K, V])
	inorder = func(n *node[K, V]) {
		if n == nil {
			return
		}
		inorder(n.left)
		keys = append(keys, n.key)
		inorder(n.right)
	}
	inorder(t.root)
	return keys
}

// Min returns the smallest key and its value. The second return is false if
// the map is empty.
//
// Complexity: O(log n)
func (t *TreeMap[K, V]) Min() (K, V, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	if t.root == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := minNode(t.root)
	return n.key, n.val, true
}

// Max returns the largest key and its value. The second return is false if
// the map is empty.
//
// Complexity: O(log n)
func (t *TreeMap[K, V]) Max() (K, V, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	if t.root == nil {
		var zk K
		var zv V
		return zk, zv, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.val, true
}

// Size returns the number of keys in the map.
//
// Complexity: O(1)
func (t *TreeMap[K, V]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.size
}
