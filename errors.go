package segmentmap

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/ajwerner/segmentmap/segment"
)

// ErrOverlap is the sentinel wrapped by every *OverlapError. Use
// errors.Is(err, ErrOverlap) to detect overlap panics generically.
var ErrOverlap = errors.New("segmentmap: segments must not overlap")

// An OverlapError is the panic value raised by Insert when the inserted
// segment is not disjoint from an existing entry. Insert never splits, so
// any overlapping or duplicate segment is a precondition violation rather
// than a recoverable condition.
type OverlapError[K constraints.Ordered] struct {
	Inserted segment.Segment[K]
	Existing segment.Segment[K]
}

func (e *OverlapError[K]) Error() string {
	return fmt.Sprintf("segmentmap: segment %v overlaps existing segment %v", e.Inserted, e.Existing)
}

func (e *OverlapError[K]) Unwrap() error { return ErrOverlap }
