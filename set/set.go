package set

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"strings"

	"github.com/gogpu/tinykit/internal/bitarray"
	"github.com/gogpu/tinykit/internal/logx"
)

// ErrDomain reports a domain that is empty or does not fit the storage.
var ErrDomain = errors.New("set: domain does not fit storage")

// Element is the set of types a Set can hold.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Domain supplies the inclusive bounds of a Set's element range.
// Implementations are usually empty structs.
type Domain[T Element] interface {
	Bounds() (lo, hi T)
}

// Words is the set of inline storage arrays a Set can use.
type Words = bitarray.Words

// Storage arrays for common domain sizes.
type (
	Bits64   [1]uint64
	Bits128  [2]uint64
	Bits256  [4]uint64
	Bits512  [8]uint64
	Bits1024 [16]uint64
)

// Set is a set of T restricted to the range given by D.
//
// The zero value is an empty set ready to use. Sets are comparable with ==.
type Set[T Element, D Domain[T], W Words] struct {
	bits W
}

// New returns a set holding vs. It panics if the domain is empty or W
// cannot hold it; use Validate to check without panicking.
func New[T Element, D Domain[T], W Words](vs ...T) Set[T, D, W] {
	var s Set[T, D, W]
	if err := s.Validate(); err != nil {
		panic(err)
	}
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

func bounds[T Element, D Domain[T]]() (lo, hi T) {
	var d D
	return d.Bounds()
}

// Validate reports whether the domain is non-empty and fits the storage.
func (s *Set[T, D, W]) Validate() error {
	lo, hi := bounds[T, D]()
	if hi < lo {
		return fmt.Errorf("%w: bounds [%v, %v] are reversed", ErrDomain, lo, hi)
	}
	if span := uint64(hi) - uint64(lo); span >= uint64(bitarray.Len(&s.bits)) {
		return fmt.Errorf("%w: [%v, %v] does not fit %d bits of storage",
			ErrDomain, lo, hi, bitarray.Len(&s.bits))
	}
	return nil
}

// index maps v to its bit position. Signed domains wrap correctly because
// the subtraction is done modulo 2^64.
func (s *Set[T, D, W]) index(v T) (int, bool) {
	lo, hi := bounds[T, D]()
	if v < lo || hi < v {
		return 0, false
	}
	i := uint64(v) - uint64(lo)
	if i >= uint64(s.limit()) {
		return 0, false
	}
	return int(i), true
}

// value is the inverse of index.
func (s *Set[T, D, W]) value(i int) T {
	lo, _ := bounds[T, D]()
	return T(uint64(lo) + uint64(i))
}

// limit is the number of usable bit positions.
func (s *Set[T, D, W]) limit() int {
	return min(s.Cap(), bitarray.Len(&s.bits))
}

func ignored[T Element](op string, v T) {
	if logx.Enabled(slog.LevelDebug) {
		logx.Logger().Debug("set: value outside domain ignored", "op", op, "value", v)
	}
}

// Insert adds v to the set.
func (s *Set[T, D, W]) Insert(v T) *Set[T, D, W] {
	i, ok := s.index(v)
	if !ok {
		ignored("insert", v)
		return s
	}
	bitarray.Set(&s.bits, i)
	return s
}

// InsertAll adds every value in vs.
func (s *Set[T, D, W]) InsertAll(vs ...T) *Set[T, D, W] {
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// Erase removes v from the set.
func (s *Set[T, D, W]) Erase(v T) *Set[T, D, W] {
	i, ok := s.index(v)
	if !ok {
		ignored("erase", v)
		return s
	}
	bitarray.Clear(&s.bits, i)
	return s
}

// Assign inserts v when present is true and erases it otherwise.
func (s *Set[T, D, W]) Assign(v T, present bool) *Set[T, D, W] {
	if present {
		return s.Insert(v)
	}
	return s.Erase(v)
}

// Contains reports whether v is a member.
func (s *Set[T, D, W]) Contains(v T) bool {
	i, ok := s.index(v)
	return ok && bitarray.Test(&s.bits, i)
}

// Union adds every member of o.
func (s *Set[T, D, W]) Union(o Set[T, D, W]) *Set[T, D, W] {
	bitarray.Or(&s.bits, &o.bits)
	return s
}

// Difference removes every member of o.
func (s *Set[T, D, W]) Difference(o Set[T, D, W]) *Set[T, D, W] {
	bitarray.AndNot(&s.bits, &o.bits)
	return s
}

// Intersection keeps only the members also in o.
func (s *Set[T, D, W]) Intersection(o Set[T, D, W]) *Set[T, D, W] {
	bitarray.And(&s.bits, &o.bits)
	return s
}

// SymmetricDifference keeps the members in exactly one of s and o.
func (s *Set[T, D, W]) SymmetricDifference(o Set[T, D, W]) *Set[T, D, W] {
	bitarray.Xor(&s.bits, &o.bits)
	return s
}

// Subset reports whether every member of s is in o.
func (s *Set[T, D, W]) Subset(o Set[T, D, W]) bool {
	return bitarray.Subset(&s.bits, &o.bits)
}

// Equal reports whether s and o have the same members.
func (s *Set[T, D, W]) Equal(o Set[T, D, W]) bool {
	return s.bits == o.bits
}

// Len returns the number of members.
func (s *Set[T, D, W]) Len() int {
	return bitarray.Count(&s.bits)
}

// IsEmpty reports whether the set has no members.
func (s *Set[T, D, W]) IsEmpty() bool {
	return bitarray.Next(&s.bits, 0, s.limit()) == s.limit()
}

// Cap returns the number of values in the domain, saturating at
// math.MaxInt for domains wider than int.
func (s *Set[T, D, W]) Cap() int {
	lo, hi := bounds[T, D]()
	if hi < lo {
		return 0
	}
	span := uint64(hi) - uint64(lo)
	if span >= math.MaxInt {
		return math.MaxInt
	}
	return int(span + 1)
}

// Clear removes every member.
func (s *Set[T, D, W]) Clear() {
	bitarray.Reset(&s.bits)
}

// Raw returns the lowest storage word. It is meant for debugging and its
// layout may change.
func (s *Set[T, D, W]) Raw() uint64 {
	return bitarray.Low(&s.bits)
}

// All returns an iterator over the members in ascending order.
func (s *Set[T, D, W]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := s.Begin(); !it.Done(); it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// String formats the members as {a b c}.
func (s *Set[T, D, W]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for it := s.Begin(); !it.Done(); it = it.Next() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, it.Value())
	}
	b.WriteByte('}')
	return b.String()
}
