package rngmap_test

import (
	"fmt"

	"github.com/npillmayer/rngmap"
)

func ExampleRangeMap_Index() {
	m := rngmap.New[int]('A')
	m.Insert(rngmap.Below(10), 'B')
	fmt.Printf("%c %c\n", m.Index(0), m.Index(10))
	// Output: B A
}

func ExampleRangeMap_Iter() {
	m := rngmap.New[int]("outer")
	m.Insert(rngmap.Between(-1, 1), "inner")
	for r, v := range m.Iter() {
		fmt.Printf("%s holds %q\n", r, v)
	}
	// Output:
	// (-∞, -1) holds "outer"
	// [-1, 1) holds "inner"
	// [1, +∞) holds "outer"
}
