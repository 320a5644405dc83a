package set

import "github.com/gogpu/tinykit/internal/bitarray"

// Iterator walks the members of a Set in ascending order.
//
// It borrows the set and must not outlive it. Mutating the set during
// iteration gives unspecified, but safe, results.
type Iterator[T Element, D Domain[T], W Words] struct {
	set *Set[T, D, W]
	pos int
}

// Begin returns an iterator at the smallest member, or End if the set is empty.
func (s *Set[T, D, W]) Begin() Iterator[T, D, W] {
	return Iterator[T, D, W]{set: s, pos: bitarray.Next(&s.bits, 0, s.limit())}
}

// End returns the past-the-end iterator, positioned one past hi.
func (s *Set[T, D, W]) End() Iterator[T, D, W] {
	return Iterator[T, D, W]{set: s, pos: s.limit()}
}

// Value returns the member at the iterator. It is undefined at End.
func (it Iterator[T, D, W]) Value() T {
	return it.set.value(it.pos)
}

// Next returns an iterator at the following member.
func (it Iterator[T, D, W]) Next() Iterator[T, D, W] {
	limit := it.set.limit()
	if it.pos >= limit {
		return it
	}
	it.pos = bitarray.Next(&it.set.bits, it.pos+1, limit)
	return it
}

// Done reports whether the iterator is at End.
func (it Iterator[T, D, W]) Done() bool {
	return it.pos >= it.set.limit()
}

// Equal reports whether both iterators are at the same position.
func (it Iterator[T, D, W]) Equal(o Iterator[T, D, W]) bool {
	return it.pos == o.pos
}
