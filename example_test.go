package segmentmap_test

import (
	"fmt"

	"github.com/ajwerner/segmentmap"
	"github.com/ajwerner/segmentmap/segment"
)

func ExampleSegmentMap() {
	m := segmentmap.New[int, string]()
	m.Insert(segment.New(0, 10), "low")
	m.Insert(segment.New(10, 20), "high")

	v, ok := m.Get(3)
	fmt.Println(v, ok)

	m.Remove(segment.New(5, 15))
	fmt.Println(m)

	// Output:
	// low true
	// {[0, 5):low, [15, 20):high}
}

func ExampleSegmentMap_Update() {
	m := segmentmap.Of(
		segmentmap.Entry[int, int]{Segment: segment.New(0, 6), Value: 1},
		segmentmap.Entry[int, int]{Segment: segment.New(6, 12), Value: 2},
	)
	m.Update(segment.New(3, 9), func(old int, ok bool) (int, bool) {
		return old * 10, ok
	})
	fmt.Println(m)

	// Output:
	// {[0, 3):1, [3, 6):10, [6, 9):20, [9, 12):2}
}
