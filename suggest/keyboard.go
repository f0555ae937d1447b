package suggest

import "strings"

// Physical key rows of the standard US QWERTY layout. Row and column indexes
// give each key a coordinate for the Manhattan-distance penalty.
var qwertyRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// unknownKeyPenalty is charged when either symbol of a mismatch has no key
// on the layout. It exceeds most on-keyboard distances but not all: keys at
// far corners of the layout, such as 'p' and 'z', sit 11 apart.
const unknownKeyPenalty = 10

var keyPositions = buildKeyPositions()

func buildKeyPositions() map[rune][2]int {
	pos := make(map[rune][2]int)
	for row, keys := range qwertyRows {
		for col, r := range keys {
			pos[r] = [2]int{row, col}
		}
	}
	return pos
}

// Proximity scores how far candidate's characters sit from query's on a
// QWERTY keyboard: the sum, over positionally aligned mismatches up to the
// shorter length, of the row-plus-column distance between the two keys.
// Lower means the candidate is the likelier slip of the fingers. Comparison
// is case-insensitive.
func Proximity(query, candidate string) int {
	q := []rune(strings.ToLower(query))
	c := []rune(strings.ToLower(candidate))
	n := len(q)
	if len(c) < n {
		n = len(c)
	}
	score := 0
	for i := 0; i < n; i++ {
		if q[i] == c[i] {
			continue
		}
		score += keyDistance(q[i], c[i])
	}
	return score
}

func keyDistance(a, b rune) int {
	pa, aok := keyPositions[a]
	pb, bok := keyPositions[b]
	if !aok || !bok {
		return unknownKeyPenalty
	}
	return abs(pa[0]-pb[0]) + abs(pa[1]-pb[1])
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
