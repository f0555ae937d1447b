/*
Package deque provides a generic, thread-safe double-ended queue backed by a
doubly linked list.

Insertion, removal and peeks at either end are O(1). A deque is the natural
shape for rolling windows: offer at one end, poll at the other.

Example:

	d := deque.NewDeque[string]()
	d.OfferLast("the")
	d.OfferLast("quick")
	d.PollFirst() // "the"
*/
package deque

import "github.com/ppatil/predtext/linkedlist"

// Deque is a generic double-ended queue over a doubly linked list. The
// underlying list carries its own locking, so the deque adds no mutex of its
// own.
type Deque[T comparable] struct {
	data *linkedlist.DoublyLinkedList[T]
}

// NewDeque returns a new, empty deque ready for use.
//
// Complexity: O(1)
func NewDeque[T comparable]() *Deque[T] {
	return &Deque[T]{data: linkedlist.NewLinkedList[T]()}
}

// OfferFirst inserts elem at the front of the deque.
//
// Complexity: O(1)
func (d *Deque[T]) OfferFirst(elem T) {
	d.data.AddFirst(elem)
}

// OfferLast inserts elem at the back of the deque.
//
// Complexity: O(1)
func (d *Deque[T]) OfferLast(elem T) {
	d.data.AddLast(elem)
}

// PollFirst removes and returns the front element. It returns
// linkedlist.ErrEmpty if the deque has no elements.
//
// Complexity: O(1)
func (d *Deque[T]) PollFirst() (T, error) {
	return d.data.RemoveFirst()
}

// PollLast removes and returns the back element. It returns
// linkedlist.ErrEmpty if the deque has no elements.
//
// Complexity: O(1)
func (d *Deque[T]) PollLast() (T, error) {
	return d.data.RemoveLast()
}

// PeekFirst returns the front element without removing it.
//
// Complexity: O(1)
func (d *Deque[T]) PeekFirst() (T, error) {
	return d.data.PeekFirst()
}

// PeekLast returns the back element without removing it.
//
// Complexity: O(1)
func (d *Deque[T]) PeekLast() (T, error) {
	return d.data.PeekLast()
}

// Items returns the elements in front-to-back order.
//
// Complexity: O(n)
func (d *Deque[T]) Items() []T {
	return d.data.Items()
}

// Size returns the number of elements in the deque.
//
// Complexity: O(1)
func (d *Deque[T]) Size() int {
	return d.data.Size()
}

// IsEmpty reports whether the deque has no elements.
//
// Complexity: O(1)
func (d *Deque[T]) IsEmpty() bool {
	return d.data.IsEmpty()
}

// Clear removes all elements from the deque.
//
// Complexity: O(1)
func (d *Deque[T]) Clear() {
	d.data.Clear()
}
