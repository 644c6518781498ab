package segmentmap

import (
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/ajwerner/segmentmap/segment"
)

// An Iterator is a single-pass in-order cursor over a map's entries,
// ascending by segment position. It walks the tree with an explicit stack,
// so arbitrarily deep trees iterate without growing the call stack. The
// map must not be mutated while an Iterator is in use, except through
// SetValue.
type Iterator[K constraints.Ordered, V any] struct {
	// next is the unvisited subtree descended on the next call to Next.
	next  *node[K, V]
	cur   *node[K, V]
	stack iterStack[K, V]
}

// Iter returns a cursor positioned before the first entry:
//
//	for it := m.Iter(); it.Next(); {
//		fmt.Println(it.Segment(), it.Value())
//	}
func (m *SegmentMap[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{next: m.root}
}

// Next advances to the next entry, reporting whether one exists. Once it
// returns false the iterator is exhausted.
func (it *Iterator[K, V]) Next() bool {
	for n := it.next; n != nil; n = n.left {
		it.stack.push(n)
	}
	it.next = nil
	if it.stack.len() == 0 {
		it.cur = nil
		return false
	}
	it.cur = it.stack.pop()
	it.next = it.cur.right
	return true
}

// Segment returns the current entry's segment. It must only be called
// after a call to Next has returned true.
func (it *Iterator[K, V]) Segment() segment.Segment[K] { return it.cur.seg }

// Value returns the current entry's value.
func (it *Iterator[K, V]) Value() V { return it.cur.value }

// SetValue replaces the current entry's value in place.
func (it *Iterator[K, V]) SetValue(v V) { it.cur.value = v }

// All returns an in-order iterator over (segment, value) pairs.
func (m *SegmentMap[K, V]) All() iter.Seq2[segment.Segment[K], V] {
	return func(yield func(segment.Segment[K], V) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Segment(), it.Value()) {
				return
			}
		}
	}
}

// Segments returns an in-order iterator over the stored segments.
func (m *SegmentMap[K, V]) Segments() iter.Seq[segment.Segment[K]] {
	return func(yield func(segment.Segment[K]) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Segment()) {
				return
			}
		}
	}
}

// Values returns an in-order iterator over the stored values.
func (m *SegmentMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := m.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
