// Package segmentmap provides an ordered associative container whose keys
// are disjoint half-open segments over an ordered scalar domain rather than
// single points. Point lookups return the entry whose segment contains the
// query key; Remove and Update accept arbitrary target segments and split,
// erase, or replace the overlapping parts of stored entries while keeping
// all stored segments pairwise disjoint.
//
// The container is a single-threaded in-memory value type backed by an
// unbalanced binary search tree; callers needing concurrent access must
// wrap it behind their own lock. Adjacent entries with equal values are
// never coalesced.
package segmentmap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/ajwerner/segmentmap/segment"
)

// A SegmentMap maps disjoint half-open segments to values. The zero value
// is an empty map ready to use.
type SegmentMap[K constraints.Ordered, V any] struct {
	root *node[K, V]
}

// New returns an empty map.
func New[K constraints.Ordered, V any]() *SegmentMap[K, V] {
	return &SegmentMap[K, V]{}
}

// An Entry pairs a stored segment with its value.
type Entry[K constraints.Ordered, V any] struct {
	Segment segment.Segment[K]
	Value   V
}

// Of returns a map holding the given entries, which must be pairwise
// disjoint.
func Of[K constraints.Ordered, V any](entries ...Entry[K, V]) *SegmentMap[K, V] {
	m := New[K, V]()
	m.Extend(entries...)
	return m
}

// Extend inserts each entry in order. Like Insert, it panics with an
// *OverlapError if an entry is not disjoint from the map's content.
func (m *SegmentMap[K, V]) Extend(entries ...Entry[K, V]) {
	for _, e := range entries {
		m.Insert(e.Segment, e.Value)
	}
}

// Insert adds seg mapped to value. seg must be disjoint from every stored
// segment: Insert never splits or merges, and panics with an *OverlapError
// on any overlapping or duplicate segment (use Update to overwrite
// coverage). The panic may leave nothing to clean up since no mutation has
// happened at that point, but validating disjointness is the caller's
// responsibility.
func (m *SegmentMap[K, V]) Insert(seg segment.Segment[K], value V) {
	if m.root == nil {
		m.root = newNode(seg, value)
		return
	}
	m.root.insert(seg, value)
}

// Get returns the value of the entry whose segment contains key.
func (m *SegmentMap[K, V]) Get(key K) (V, bool) {
	_, v, ok := m.GetEntry(key)
	return v, ok
}

// GetEntry returns the segment and value of the entry containing key.
func (m *SegmentMap[K, V]) GetEntry(key K) (segment.Segment[K], V, bool) {
	if m.root == nil {
		var (
			zs segment.Segment[K]
			zv V
		)
		return zs, zv, false
	}
	return m.root.getEntry(key)
}

// ContainsKey reports whether some stored segment contains key.
func (m *SegmentMap[K, V]) ContainsKey(key K) bool {
	_, _, ok := m.GetEntry(key)
	return ok
}

// Remove erases all coverage of seg, splitting entries that straddle its
// bounds. Removing an uncovered range is a no-op and Remove is idempotent.
// A zero-width seg strictly inside an entry splits that entry in two
// around the point.
func (m *SegmentMap[K, V]) Remove(seg segment.Segment[K]) {
	if m.root != nil {
		m.root = m.root.remove(seg)
	}
}

// An UpdateFunc decides the replacement value for one fragment touched by
// Update. ok reports whether an existing entry covers the fragment;
// returning ok=false erases the fragment's coverage.
type UpdateFunc[V any] func(old V, ok bool) (V, bool)

// An UpdateEntryFunc additionally receives the exact sub-segment being
// decided. A single UpdateEntry call may invoke it several times, once per
// fragment of the target segment.
type UpdateEntryFunc[K constraints.Ordered, V any] func(seg segment.Segment[K], old V, ok bool) (V, bool)

// Update replaces the coverage of seg according to f. f is invoked once
// per covered fragment with the existing value and once per gap with
// ok=false; a gap for which f returns ok=false stays a gap. Updating an
// empty map invokes f exactly once with ok=false and inserts the result if
// present.
func (m *SegmentMap[K, V]) Update(seg segment.Segment[K], f UpdateFunc[V]) {
	m.UpdateEntry(seg, func(_ segment.Segment[K], old V, ok bool) (V, bool) {
		return f(old, ok)
	})
}

// UpdateEntry is Update with the exact sub-segment of each fragment passed
// to f.
func (m *SegmentMap[K, V]) UpdateEntry(seg segment.Segment[K], f UpdateEntryFunc[K, V]) {
	if m.root == nil {
		var zero V
		if v, ok := f(seg, zero, false); ok {
			m.root = newNode(seg, v)
		}
		return
	}
	m.root = m.root.updateEntry(seg, f)
}

// Span returns the segment from the smallest stored lower bound to the
// largest stored upper bound, or false for an empty map.
func (m *SegmentMap[K, V]) Span() (segment.Segment[K], bool) {
	if m.root == nil {
		var zs segment.Segment[K]
		return zs, false
	}
	return segment.New(m.root.minNode().seg.Lower(), m.root.maxNode().seg.Upper()), true
}

// IsEmpty reports whether the map holds no entries.
func (m *SegmentMap[K, V]) IsEmpty() bool { return m.root == nil }

// Clear drops all entries.
func (m *SegmentMap[K, V]) Clear() { m.root = nil }

// Clone returns a structural copy of the map. Values are copied by
// assignment, so values sharing internal state keep sharing it.
func (m *SegmentMap[K, V]) Clone() *SegmentMap[K, V] {
	return &SegmentMap[K, V]{root: m.root.clone()}
}

// String renders the entries in ascending order.
func (m *SegmentMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString("{")
	for it := m.Iter(); it.Next(); {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v:%v", it.Segment(), it.Value())
	}
	b.WriteString("}")
	return b.String()
}
