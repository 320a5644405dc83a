// Package set provides a fixed-range, bit-indexed set.
//
// A Set holds values of an integer-like element type T drawn from an
// inclusive range [lo, hi] that is fixed at compile time by a Domain type.
// Membership is one bit per possible element, kept in an inline word array
// chosen by the W type parameter, so a Set never allocates and copying it
// copies its contents.
//
//	type Option uint8
//
//	const (
//		OptionA Option = iota
//		OptionB
//		OptionC
//	)
//
//	type options struct{}
//
//	func (options) Bounds() (Option, Option) { return OptionA, OptionC }
//
//	type OptionSet = set.Set[Option, options, set.Bits64]
//
//	var s OptionSet
//	s.Insert(OptionA).Insert(OptionC)
//	for o := range s.All() {
//		// OptionA, OptionC
//	}
//
// Values outside the domain are silently ignored by every operation:
// mutators do nothing and predicates report false.
//
// A Set is not safe for concurrent use.
package set
