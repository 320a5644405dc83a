// Package bitarray implements bit operations over small inline word arrays.
//
// The array length is a type parameter so that callers keep the storage
// inline (no slices, no allocation) while still choosing how many 64-bit
// words they need.
package bitarray

import "math/bits"

// WordBits is the number of bits in one storage word.
const WordBits = 64

// Words is the set of supported inline storage arrays.
type Words interface {
	~[1]uint64 | ~[2]uint64 | ~[4]uint64 | ~[8]uint64 | ~[16]uint64
}

// Len returns the number of bits w can hold.
func Len[W Words](w *W) int {
	return len(*w) * WordBits
}

// Test reports whether bit i is set.
func Test[W Words](w *W, i int) bool {
	return (*w)[i/WordBits]&(1<<(uint(i)%WordBits)) != 0
}

// Set sets bit i.
func Set[W Words](w *W, i int) {
	(*w)[i/WordBits] |= 1 << (uint(i) % WordBits)
}

// Clear clears bit i.
func Clear[W Words](w *W, i int) {
	(*w)[i/WordBits] &^= 1 << (uint(i) % WordBits)
}

// Reset clears every bit.
func Reset[W Words](w *W) {
	var zero W
	*w = zero
}

// Or stores dst | src into dst.
func Or[W Words](dst, src *W) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] |= (*src)[i]
	}
}

// And stores dst & src into dst.
func And[W Words](dst, src *W) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] &= (*src)[i]
	}
}

// AndNot stores dst &^ src into dst.
func AndNot[W Words](dst, src *W) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] &^= (*src)[i]
	}
}

// Xor stores dst ^ src into dst.
func Xor[W Words](dst, src *W) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] ^= (*src)[i]
	}
}

// Count returns the number of set bits.
func Count[W Words](w *W) int {
	n := 0
	for i := 0; i < len(*w); i++ {
		n += bits.OnesCount64((*w)[i])
	}
	return n
}

// Subset reports whether every bit set in a is also set in b.
func Subset[W Words](a, b *W) bool {
	for i := 0; i < len(*a); i++ {
		if (*a)[i]&^(*b)[i] != 0 {
			return false
		}
	}
	return true
}

// Next returns the index of the first set bit in [from, limit), or limit
// when there is none. limit must not exceed Len(w).
func Next[W Words](w *W, from, limit int) int {
	if from < 0 {
		from = 0
	}
	if from >= limit {
		return limit
	}

	wi := from / WordBits
	word := (*w)[wi] >> (uint(from) % WordBits)
	if word != 0 {
		if i := from + bits.TrailingZeros64(word); i < limit {
			return i
		}
		return limit
	}

	for wi++; wi*WordBits < limit; wi++ {
		if word = (*w)[wi]; word != 0 {
			if i := wi*WordBits + bits.TrailingZeros64(word); i < limit {
				return i
			}
			return limit
		}
	}
	return limit
}

// Low returns the lowest storage word.
func Low[W Words](w *W) uint64 {
	return (*w)[0]
}
