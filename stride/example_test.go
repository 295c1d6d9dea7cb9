package stride_test

import (
	"fmt"

	"github.com/rossmacarthur/vectrix/stride"
)

// ExampleNew demonstrates viewing every second element of a slice and
// writing back through the view.
func ExampleNew() {
	data := []int{1, 2, 7, 4, 5, 6}

	// Elements 1, 7 and 5.
	s := stride.New(data, 2)
	fmt.Println(s.Len())
	fmt.Println(s.At(1))

	s.Set(1, 3)
	fmt.Println(data)
	// Output:
	// 3
	// 7
	// [1 2 3 4 5 6]
}

// ExampleStride_Slice demonstrates sub-range slicing keeping the step.
func ExampleStride_Slice() {
	s := stride.New([]int{1, 2, 3, 4, 5, 6}, 2)
	fmt.Println(s.Slice(1, 3).CollectSlice())
	// Output:
	// [3 5]
}
