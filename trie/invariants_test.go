package trie

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/ppatil/predtext/queue"
)

// checkInvariants sweeps the whole trie breadth-first and verifies the two
// structural invariants: every node's cached max-weight equals the largest
// terminal weight of its subtree, and no non-terminal childless node
// survives outside the root.
func checkInvariants(t *testing.T, tr *Trie) {
	t.Helper()
	q := queue.NewQueue[*Node]()
	q.Enqueue(tr.root)
	for !q.IsEmpty() {
		n, err := q.Dequeue()
		if err != nil {
			t.Fatalf("Dequeue() error = %v", err)
		}
		want := math.Inf(-1)
		if n.end {
			want = n.weight
		}
		for _, c := range n.children {
			if c.maxWeight > want {
				want = c.maxWeight
			}
			q.Enqueue(c)
		}
		if n.maxWeight != want {
			t.Fatalf("node maxWeight = %g; want %g", n.maxWeight, want)
		}
		if n != tr.root && !n.end && len(n.children) == 0 {
			t.Fatalf("non-terminal childless node left in trie")
		}
	}
}

// levenshtein is the straightforward full-table reference implementation.
func levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			subst := 1
			if ar[i-1] == br[j-1] {
				subst = 0
			}
			v := prev[j-1] + subst
			if del := prev[j] + 1; del < v {
				v = del
			}
			if ins := curr[j-1] + 1; ins < v {
				v = ins
			}
			curr[j] = v
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

func randomWord(rng *rand.Rand) string {
	const alphabet = "abc"
	n := rng.Intn(6) + 1
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return b.String()
}

func TestInvariantsUnderRandomMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tr := NewTrie()
	mirror := make(map[string]float64)

	for step := 0; step < 3000; step++ {
		word := randomWord(rng)
		if rng.Intn(3) == 0 {
			gotOK := tr.Remove(word)
			_, wantOK := mirror[word]
			if gotOK != wantOK {
				t.Fatalf("step %d: Remove(%q) = %v; want %v", step, word, gotOK, wantOK)
			}
			delete(mirror, word)
		} else {
			weight := float64(rng.Intn(100))
			_, present := mirror[word]
			changed := tr.InsertWeighted(word, weight)
			wantChanged := !present || mirror[word] != weight
			if changed != wantChanged {
				t.Fatalf("step %d: InsertWeighted(%q, %g) = %v; want %v", step, word, weight, changed, wantChanged)
			}
			mirror[word] = weight
		}

		if step%250 == 0 {
			checkInvariants(t, tr)
		}
	}
	checkInvariants(t, tr)

	if tr.Size() != len(mirror) {
		t.Fatalf("Size() = %d; want %d", tr.Size(), len(mirror))
	}
	for word, weight := range mirror {
		got, ok := tr.WeightOf(word)
		if !ok || got != weight {
			t.Fatalf("WeightOf(%q) = %g, %v; want %g, true", word, got, ok, weight)
		}
	}
}

func TestCompleteMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tr := NewTrie()
	mirror := make(map[string]float64)
	for i := 0; i < 400; i++ {
		word := randomWord(rng)
		weight := float64(rng.Intn(50))
		tr.InsertWeighted(word, weight)
		mirror[word] = weight
	}

	for _, prefix := range []string{"", "a", "b", "ab", "ca", "abc", "cc"} {
		for _, k := range []int{1, 3, 10, 1000} {
			got := tr.Complete(prefix, k)

			var matching []string
			for w := range mirror {
				if strings.HasPrefix(w, prefix) {
					matching = append(matching, w)
				}
			}
			wantLen := len(matching)
			if k < wantLen {
				wantLen = k
			}
			if len(got) != wantLen {
				t.Fatalf("Complete(%q, %d) returned %d words; want %d", prefix, k, len(got), wantLen)
			}

			seen := make(map[string]bool)
			for i, w := range got {
				if seen[w] {
					t.Fatalf("Complete(%q, %d) returned duplicate %q", prefix, k, w)
				}
				seen[w] = true
				if !strings.HasPrefix(w, prefix) {
					t.Fatalf("Complete(%q, %d) returned %q without the prefix", prefix, k, w)
				}
				if _, ok := mirror[w]; !ok {
					t.Fatalf("Complete(%q, %d) returned unstored word %q", prefix, k, w)
				}
				if i > 0 && mirror[got[i-1]] < mirror[w] {
					t.Fatalf("Complete(%q, %d) weights increase at %d: %v", prefix, k, i, got)
				}
			}

			// The emitted weights must be the top weights among matches.
			sort.Slice(matching, func(i, j int) bool { return mirror[matching[i]] > mirror[matching[j]] })
			for i, w := range got {
				if mirror[w] != mirror[matching[i]] {
					t.Fatalf("Complete(%q, %d)[%d] has weight %g; want %g", prefix, k, i, mirror[w], mirror[matching[i]])
				}
			}
		}
	}
}

func TestCorrectMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tr := NewTrie()
	mirror := make(map[string]float64)
	for i := 0; i < 300; i++ {
		word := randomWord(rng)
		weight := float64(rng.Intn(50))
		tr.InsertWeighted(word, weight)
		mirror[word] = weight
	}

	for _, query := range []string{"a", "ab", "abc", "cab", "bbbb", "aacca", ""} {
		for _, bound := range []int{0, 1, 2, 3} {
			sugs := tr.Suggest(query, bound)

			want := make(map[string]int)
			for w := range mirror {
				if d := levenshtein(query, w); d <= bound {
					want[w] = d
				}
			}

			if len(sugs) != len(want) {
				t.Fatalf("Suggest(%q, %d) returned %d words; want %d", query, bound, len(sugs), len(want))
			}
			for i, s := range sugs {
				d, ok := want[s.Word]
				if !ok {
					t.Fatalf("Suggest(%q, %d) returned %q, not within bound", query, bound, s.Word)
				}
				if s.Distance != d {
					t.Fatalf("Suggest(%q, %d): %q distance = %d; want %d", query, bound, s.Word, s.Distance, d)
				}
				if s.Weight != mirror[s.Word] {
					t.Fatalf("Suggest(%q, %d): %q weight = %g; want %g", query, bound, s.Word, s.Weight, mirror[s.Word])
				}
				if i > 0 && sugs[i-1].Distance > s.Distance {
					t.Fatalf("Suggest(%q, %d) distances decrease at %d", query, bound, i)
				}
			}
		}
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	tr := NewTrie()
	words := []string{"a", "ab", "abc", "abd", "b"}
	for i, w := range words {
		tr.InsertWeighted(w, float64(i))
	}
	for _, w := range words {
		if !tr.Remove(w) {
			t.Fatalf("Remove(%q) = false; want true", w)
		}
		if tr.Contains(w) {
			t.Fatalf("Contains(%q) = true after removal", w)
		}
		checkInvariants(t, tr)
	}
	if !tr.IsEmpty() {
		t.Errorf("IsEmpty() = false after removing everything")
	}
}
