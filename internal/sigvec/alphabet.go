// internal/sigvec/alphabet.go
package sigvec

// Alphabet is the reference ordering; a symbol's rank is its 1-based position.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY"

// ranks maps a byte to its rank, 0 for anything outside Alphabet.
var ranks = func() (t [256]uint8) {
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = uint8(i + 1)
	}
	return t
}()

// Rank returns the 1..20 rank of b, or 0 if b is not a recognized symbol.
// Matching is case-sensitive.
func Rank(b byte) int { return int(ranks[b]) }

// Recognized counts the bytes of seq that belong to Alphabet.
func Recognized(seq string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		if ranks[seq[i]] != 0 {
			n++
		}
	}
	return n
}
