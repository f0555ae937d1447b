package deque

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ppatil/predtext/linkedlist"
)

func TestDequeBothEnds(t *testing.T) {
	d := NewDeque[int]()
	d.OfferLast(2)
	d.OfferLast(3)
	d.OfferFirst(1)

	got, err := d.PollFirst()
	if err != nil || got != 1 {
		t.Errorf("PollFirst() = %d, %v; want 1, nil", got, err)
	}
	got, err = d.PollLast()
	if err != nil || got != 3 {
		t.Errorf("PollLast() = %d, %v; want 3, nil", got, err)
	}
	if d.Size() != 1 {
		t.Errorf("Size() = %d; want 1", d.Size())
	}
}

func TestDequePeek(t *testing.T) {
	d := NewDeque[string]()
	d.OfferLast("a")
	d.OfferLast("b")

	if v, _ := d.PeekFirst(); v != "a" {
		t.Errorf("PeekFirst() = %q; want %q", v, "a")
	}
	if v, _ := d.PeekLast(); v != "b" {
		t.Errorf("PeekLast() = %q; want %q", v, "b")
	}
	if d.Size() != 2 {
		t.Errorf("Size() = %d after peeks; want 2", d.Size())
	}
}

func TestDequeRollingWindow(t *testing.T) {
	d := NewDeque[string]()
	words := []string{"the", "quick", "brown", "fox"}
	const n = 2

	var windows [][]string
	for _, w := range words {
		d.OfferLast(w)
		if d.Size() > n {
			if _, err := d.PollFirst(); err != nil {
				t.Fatalf("PollFirst() error = %v; want nil", err)
			}
		}
		if d.Size() == n {
			windows = append(windows, d.Items())
		}
	}

	want := [][]string{
		{"the", "quick"},
		{"quick", "brown"},
		{"brown", "fox"},
	}
	if !reflect.DeepEqual(windows, want) {
		t.Errorf("rolling windows = %v; want %v", windows, want)
	}
}

func TestDequeEmptyErrors(t *testing.T) {
	d := NewDeque[int]()
	if _, err := d.PollFirst(); !errors.Is(err, linkedlist.ErrEmpty) {
		t.Errorf("PollFirst() on empty deque error = %v; want ErrEmpty", err)
	}
	if _, err := d.PollLast(); !errors.Is(err, linkedlist.ErrEmpty) {
		t.Errorf("PollLast() on empty deque error = %v; want ErrEmpty", err)
	}
	if !d.IsEmpty() {
		t.Errorf("IsEmpty() = false; want true")
	}
}

func TestDequeClear(t *testing.T) {
	d := NewDeque[int]()
	d.OfferLast(1)
	d.Clear()
	if d.Size() != 0 {
		t.Errorf("Size() = %d after Clear; want 0", d.Size())
	}
}
