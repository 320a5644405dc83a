package ring

// Iterator walks the live elements of a Buffer from head to tail.
//
// When head == tail the position alone cannot tell an empty buffer from a
// full one, so the iterator also records whether it is still at the
// beginning. Begin always sets that flag; End sets it only for an empty
// buffer. Two iterators are equal when both position and flag match.
type Iterator[T any, S Slots[T]] struct {
	buf     *Buffer[T, S]
	pos     int
	atBegin bool
}

// Begin returns an iterator at the front element.
func (b *Buffer[T, S]) Begin() Iterator[T, S] {
	return Iterator[T, S]{buf: b, pos: b.head, atBegin: true}
}

// End returns the past-the-end iterator.
func (b *Buffer[T, S]) End() Iterator[T, S] {
	return Iterator[T, S]{buf: b, pos: b.tail, atBegin: b.Empty()}
}

// Value returns a pointer to the element at the iterator. Writing through
// it updates the element in place.
func (it Iterator[T, S]) Value() *T {
	return &it.buf.slots[it.pos]
}

// Next returns an iterator at the following slot.
func (it Iterator[T, S]) Next() Iterator[T, S] {
	it.pos = it.buf.inc(it.pos)
	it.atBegin = false
	return it
}

// Equal reports whether both iterators point at the same slot and phase.
func (it Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return it.pos == o.pos && it.atBegin == o.atBegin
}
