package datastruct_test

import (
	"errors"
	"fmt"

	"go.llib.dev/datastruct"
	"go.llib.dev/datastruct/dslist"
	"go.llib.dev/datastruct/dstree"
)

func ExampleSequence() {
	var vs dslist.Slice[string]
	vs.Append("foo", "bar")
	vs.Insert(1, "baz")

	v, _ := vs.At(1)
	fmt.Println(v)
	// Output: baz
}

func Example_cursor() {
	vs := dslist.NewSlice[int](dslist.InitialCapacity(2))
	vs.Append(1, 2)

	c := vs.Cursor()
	c.Next()

	vs.Append(3) // exceeds the capacity, the buffer relocates

	_, err := c.Value()
	fmt.Println(errors.Is(err, datastruct.ErrInvalidCursor))
	// Output: true
}

func ExampleKVS() {
	var m dstree.Map[string, int]
	m.Set("b", 2)
	m.Set("a", 1)

	for k, v := range m.Iter() {
		fmt.Println(k, v)
	}
	// Output:
	// a 1
	// b 2
}
