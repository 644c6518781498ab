// Package segment provides the half-open range primitive used to key a
// segment map: [lower, upper) over any ordered key type.
package segment

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A Segment is a half-open range [lower, upper) over an ordered key type.
// Segments are immutable values and comparable with ==. A segment is empty
// iff lower == upper; it is otherwise assumed to satisfy lower < upper,
// which constructors uphold but New does not enforce.
type Segment[K constraints.Ordered] struct {
	lower K
	upper K
}

// New returns the half-open segment [lower, upper).
func New[K constraints.Ordered](lower, upper K) Segment[K] {
	return Segment[K]{lower: lower, upper: upper}
}

// ClosedOpen is New under its canonical name.
func ClosedOpen[K constraints.Ordered](lower, upper K) Segment[K] {
	return New(lower, upper)
}

// Empty returns the zero-width segment at the zero value of K.
func Empty[K constraints.Ordered]() Segment[K] {
	var zero K
	return Segment[K]{lower: zero, upper: zero}
}

// Closed returns [lower, upper], i.e. [lower, Next(upper)).
func Closed[K constraints.Integer](lower, upper K) Segment[K] {
	return Segment[K]{lower: lower, upper: Next(upper)}
}

// Open returns (lower, upper), i.e. [Next(lower), upper).
func Open[K constraints.Integer](lower, upper K) Segment[K] {
	return Segment[K]{lower: Next(lower), upper: upper}
}

// OpenClosed returns (lower, upper], i.e. [Next(lower), Next(upper)).
func OpenClosed[K constraints.Integer](lower, upper K) Segment[K] {
	return Segment[K]{lower: Next(lower), upper: Next(upper)}
}

// Singleton returns the segment containing exactly value.
func Singleton[K constraints.Integer](value K) Segment[K] {
	return Segment[K]{lower: value, upper: Next(value)}
}

// AtLeast returns [value, Max).
func AtLeast[K constraints.Integer](value K) Segment[K] {
	return Segment[K]{lower: value, upper: Max[K]()}
}

// AtMost returns [Min, value].
func AtMost[K constraints.Integer](value K) Segment[K] {
	return Segment[K]{lower: Min[K](), upper: Next(value)}
}

// LessThan returns [Min, value).
func LessThan[K constraints.Integer](value K) Segment[K] {
	return Segment[K]{lower: Min[K](), upper: value}
}

// GreaterThan returns (value, Max).
func GreaterThan[K constraints.Integer](value K) Segment[K] {
	return Segment[K]{lower: Next(value), upper: Max[K]()}
}

// All returns [Min, Max).
func All[K constraints.Integer]() Segment[K] {
	return Segment[K]{lower: Min[K](), upper: Max[K]()}
}

// Lower returns the inclusive lower bound.
func (s Segment[K]) Lower() K { return s.lower }

// Upper returns the exclusive upper bound.
func (s Segment[K]) Upper() K { return s.upper }

// IsEmpty reports whether the segment has zero width.
func (s Segment[K]) IsEmpty() bool { return s.lower == s.upper }

// Contains reports whether lower <= value < upper. An empty segment
// contains nothing.
func (s Segment[K]) Contains(value K) bool {
	return s.lower <= value && value < s.upper
}

// Encloses reports whether other lies entirely within s, bounds included.
func (s Segment[K]) Encloses(other Segment[K]) bool {
	return s.lower <= other.lower && other.upper <= s.upper
}

// IsConnected reports whether s and other touch or overlap. The
// intersection of connected segments exists but may be zero-width.
func (s Segment[K]) IsConnected(other Segment[K]) bool {
	return s.lower <= other.upper && other.lower <= s.upper
}

// Intersection returns the overlapping sub-range of two connected segments.
// The second result is false when the segments are not connected.
func (s Segment[K]) Intersection(other Segment[K]) (Segment[K], bool) {
	if !s.IsConnected(other) {
		var zero Segment[K]
		return zero, false
	}
	out := s
	if s.lower < other.lower {
		out.lower = other.lower
	}
	if other.upper < s.upper {
		out.upper = other.upper
	}
	return out, true
}

// Span returns the smallest segment enclosing both s and other.
func (s Segment[K]) Span(other Segment[K]) Segment[K] {
	out := s
	if other.lower < s.lower {
		out.lower = other.lower
	}
	if s.upper < other.upper {
		out.upper = other.upper
	}
	return out
}

func (s Segment[K]) String() string {
	return fmt.Sprintf("[%v, %v)", s.lower, s.upper)
}
