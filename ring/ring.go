package ring

import (
	"errors"
	"iter"
	"log/slog"

	"github.com/gogpu/tinykit/internal/logx"
)

// Errors returned by Buffer operations.
var (
	ErrFull  = errors.New("ring: buffer full")
	ErrEmpty = errors.New("ring: buffer empty")
)

// Slots is the set of inline arrays a Buffer can store its elements in.
// The array length is the buffer capacity.
type Slots[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[32]T | ~[64]T | ~[128]T | ~[256]T | ~[512]T | ~[1024]T
}

// Buffer is a circular FIFO queue over the fixed array S.
//
// The live elements run from head up to (but excluding) tail. When full is
// set all slots are live and head == tail.
//
// The zero value is an empty buffer ready to use. Storage is part of the
// value, so assigning a Buffer copies its elements and the copies evolve
// independently.
type Buffer[T any, S Slots[T]] struct {
	slots S
	head  int
	tail  int
	full  bool
}

func (b *Buffer[T, S]) inc(i int) int {
	if i++; i == len(b.slots) {
		return 0
	}
	return i
}

func (b *Buffer[T, S]) advance() {
	if b.full {
		b.head = b.inc(b.head)
	}
	b.tail = b.inc(b.tail)
	b.full = b.tail == b.head
}

func (b *Buffer[T, S]) retreat() {
	b.full = false
	b.head = b.inc(b.head)
}

// Full reports whether every slot holds a live element.
func (b *Buffer[T, S]) Full() bool { return b.full }

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T, S]) Empty() bool { return !b.full && b.tail == b.head }

// Len returns the number of live elements.
func (b *Buffer[T, S]) Len() int {
	switch {
	case b.full:
		return len(b.slots)
	case b.tail >= b.head:
		return b.tail - b.head
	default:
		return len(b.slots) + b.tail - b.head
	}
}

// Cap returns the number of slots.
func (b *Buffer[T, S]) Cap() int { return len(b.slots) }

// Clear drops every element. Slot contents are left in place.
func (b *Buffer[T, S]) Clear() {
	b.head, b.tail, b.full = 0, 0, false
}

// Push appends v, or returns ErrFull when there is no free slot.
func (b *Buffer[T, S]) Push(v T) error {
	if b.full {
		return ErrFull
	}
	b.slots[b.tail] = v
	b.advance()
	return nil
}

// PushForce appends v, overwriting the oldest element when the buffer
// is full.
func (b *Buffer[T, S]) PushForce(v T) {
	if b.full && logx.Enabled(slog.LevelDebug) {
		logx.Logger().Debug("ring: overwrote oldest element", "cap", len(b.slots))
	}
	b.slots[b.tail] = v
	b.advance()
}

// Pop removes and returns the front element, or returns ErrEmpty.
func (b *Buffer[T, S]) Pop() (T, error) {
	var zero T
	if b.Empty() {
		return zero, ErrEmpty
	}
	v := b.slots[b.head]
	b.slots[b.head] = zero
	b.retreat()
	return v, nil
}

// Drop removes the front element, or returns ErrEmpty.
func (b *Buffer[T, S]) Drop() error {
	if b.Empty() {
		return ErrEmpty
	}
	var zero T
	b.slots[b.head] = zero
	b.retreat()
	return nil
}

// DirectPop removes the front element and returns a pointer to its slot.
// The buffer must not be empty. The pointed-to value stays valid only
// until the next Push or PushForce.
func (b *Buffer[T, S]) DirectPop() *T {
	p := &b.slots[b.head]
	b.retreat()
	return p
}

// Peek returns a pointer to the front element without removing it,
// or returns ErrEmpty.
func (b *Buffer[T, S]) Peek() (*T, error) {
	if b.Empty() {
		return nil, ErrEmpty
	}
	return &b.slots[b.head], nil
}

// Front returns a pointer to the front slot. The result is meaningless
// when the buffer is empty.
func (b *Buffer[T, S]) Front() *T {
	return &b.slots[b.head]
}

// At returns a pointer to the i-th live element counted from the front.
func (b *Buffer[T, S]) At(i int) (*T, bool) {
	if i < 0 || i >= b.Len() {
		return nil, false
	}
	i += b.head
	if i >= len(b.slots) {
		i -= len(b.slots)
	}
	return &b.slots[i], true
}

// All returns an iterator over pointers to the live elements, oldest first.
func (b *Buffer[T, S]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it, end := b.Begin(), b.End(); !it.Equal(end); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
