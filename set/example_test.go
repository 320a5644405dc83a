package set_test

import (
	"fmt"

	"github.com/gogpu/tinykit/set"
)

type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

type week struct{}

func (week) Bounds() (Weekday, Weekday) { return Monday, Sunday }

type Days = set.Set[Weekday, week, set.Bits64]

func Example() {
	var weekend, open Days
	weekend.Insert(Saturday).Insert(Sunday)
	open.InsertAll(Monday, Wednesday, Friday, Saturday)

	both := open
	both.Intersection(weekend)

	fmt.Println(open.Len(), both.Contains(Saturday), both.Contains(Sunday))
	for d := range both.All() {
		fmt.Println(d)
	}
	// Output:
	// 4 true false
	// 6
}

func ExampleSet_Difference() {
	all := set.New[Weekday, week, set.Bits64](Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday)
	weekend := set.New[Weekday, week, set.Bits64](Saturday, Sunday)

	all.Difference(weekend)
	fmt.Println(all.String(), all.Cap())
	// Output: {1 2 3 4 5} 7
}
