package segmentmap

import (
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/segmentmap/segment"
)

// node is a binary search tree node owning one stored segment, its value,
// and two optional subtrees. Every segment in left lies strictly below
// seg.Lower() and every segment in right lies at or above seg.Upper(), so
// all stored segments are pairwise disjoint and in-order traversal yields
// them in ascending position.
//
// Methods that restructure the tree (remove, updateEntry, detach,
// removeMin) consume the receiver and return the new subtree root; callers
// must not reuse the old links. Each node stays reachable through exactly
// one link at all times, mirroring single ownership of subtrees.
type node[K constraints.Ordered, V any] struct {
	seg   segment.Segment[K]
	value V
	left  *node[K, V]
	right *node[K, V]
}

func newNode[K constraints.Ordered, V any](seg segment.Segment[K], value V) *node[K, V] {
	return &node[K, V]{seg: seg, value: value}
}

func (n *node[K, V]) minNode() *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) maxNode() *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// removeMin detaches the in-order minimum of the subtree rooted at n and
// returns the remaining subtree together with the detached node, whose
// links are cleared. The minimum's right subtree, if any, takes its place.
func (n *node[K, V]) removeMin() (root, min *node[K, V]) {
	if n.left == nil {
		root = n.right
		n.right = nil
		return root, n
	}
	n.left, min = n.left.removeMin()
	return n, min
}

// detach excises n from its subtree and returns the subtree that replaces
// it. With two children the in-order successor (minimum of the right
// subtree) is promoted into n's place, adopting n's left subtree and the
// remainder of the right subtree.
func (n *node[K, V]) detach() *node[K, V] {
	left, right := n.left, n.right
	n.left, n.right = nil, nil
	switch {
	case left != nil && right != nil:
		rest, succ := right.removeMin()
		succ.left, succ.right = left, rest
		return succ
	case left != nil:
		return left
	default:
		return right
	}
}

// insert adds a segment that must be disjoint from every entry in the
// subtree. insert never splits: it panics with an *OverlapError when seg
// duplicates or overlaps a stored segment along the descent path. It is
// safe for fresh segments known to be disjoint and for remainder fragments
// produced by remove/updateEntry.
func (n *node[K, V]) insert(seg segment.Segment[K], value V) {
	switch {
	// Exact duplicates are rejected up front; the bound comparisons below
	// would otherwise send duplicate empty segments down both sides.
	case seg == n.seg:
		panic(&OverlapError[K]{Inserted: seg, Existing: n.seg})
	case seg.Upper() <= n.seg.Lower():
		if n.left != nil {
			n.left.insert(seg, value)
		} else {
			n.left = newNode(seg, value)
		}
	case seg.Lower() >= n.seg.Upper():
		if n.right != nil {
			n.right.insert(seg, value)
		} else {
			n.right = newNode(seg, value)
		}
	default:
		panic(&OverlapError[K]{Inserted: seg, Existing: n.seg})
	}
}

// insertInto is insert tolerating a nil root, returning the new root.
func insertInto[K constraints.Ordered, V any](root *node[K, V], seg segment.Segment[K], value V) *node[K, V] {
	if root == nil {
		return newNode(seg, value)
	}
	root.insert(seg, value)
	return root
}

func (n *node[K, V]) getEntry(key K) (segment.Segment[K], V, bool) {
	switch {
	case n.seg.Contains(key):
		return n.seg, n.value, true
	case key < n.seg.Lower():
		if n.left != nil {
			return n.left.getEntry(key)
		}
	default:
		if n.right != nil {
			return n.right.getEntry(key)
		}
	}
	var (
		zs segment.Segment[K]
		zv V
	)
	return zs, zv, false
}

// remove erases all coverage of seg from the subtree rooted at n,
// consuming n and returning the new subtree root. Entries straddling seg's
// bounds are split and their surviving fragments reinserted. A zero-width
// seg strictly inside an entry splits the entry in two; a zero-width seg at
// an entry's bound descends without structural change.
func (n *node[K, V]) remove(seg segment.Segment[K]) *node[K, V] {
	if seg.IsEmpty() {
		switch {
		case n.seg.Encloses(seg):
			switch {
			case seg == n.seg:
				// n's segment is the same empty segment: excise it.
				return n.detach()
			case seg.Lower() == n.seg.Lower():
				if n.left != nil {
					n.left = n.left.remove(seg)
				}
				return n
			case seg.Upper() == n.seg.Upper():
				if n.right != nil {
					n.right = n.right.remove(seg)
				}
				return n
			default:
				// Strictly inside: split n around the zero-width point.
				result := n.detach()
				result = insertInto(result, segment.New(n.seg.Lower(), seg.Lower()), n.value)
				result = insertInto(result, segment.New(seg.Upper(), n.seg.Upper()), n.value)
				return result
			}
		case seg.Upper() < n.seg.Lower():
			if n.left != nil {
				n.left = n.left.remove(seg)
			}
			return n
		default:
			if n.right != nil {
				n.right = n.right.remove(seg)
			}
			return n
		}
	}
	isect, connected := seg.Intersection(n.seg)
	if !connected {
		if seg.Lower() > n.seg.Upper() {
			if n.right != nil {
				n.right = n.right.remove(seg)
			}
		} else {
			if n.left != nil {
				n.left = n.left.remove(seg)
			}
		}
		return n
	}
	if isect.IsEmpty() {
		// Zero-width touch: pure descent, n itself is untouched.
		if seg.Lower() == n.seg.Upper() {
			if n.right != nil {
				n.right = n.right.remove(seg)
			}
		} else {
			if n.left != nil {
				n.left = n.left.remove(seg)
			}
		}
		return n
	}
	// Positive-width overlap: excise n, then resolve each side. A remainder
	// of seg beyond the intersection still needs removing further down; a
	// remainder of n's segment outside seg survives and is reinserted.
	result := n.detach()
	if seg.Lower() < isect.Lower() {
		if result != nil {
			result = result.remove(segment.New(seg.Lower(), isect.Lower()))
		}
	} else if n.seg.Lower() < isect.Lower() {
		result = insertInto(result, segment.New(n.seg.Lower(), isect.Lower()), n.value)
	}
	if seg.Upper() > isect.Upper() {
		if result != nil {
			result = result.remove(segment.New(isect.Upper(), seg.Upper()))
		}
	} else if n.seg.Upper() > isect.Upper() {
		result = insertInto(result, segment.New(isect.Upper(), n.seg.Upper()), n.value)
	}
	return result
}

// updateEntry replaces the coverage of seg according to f, consuming n and
// returning the new subtree root. It mirrors remove's split logic, with f
// deciding the fate of every covered fragment (invoked with the exact
// sub-segment and the existing value) and of every gap (invoked with no
// existing value); returning ok=false drops the fragment.
func (n *node[K, V]) updateEntry(seg segment.Segment[K], f UpdateEntryFunc[K, V]) *node[K, V] {
	var zero V
	if seg.IsEmpty() {
		switch {
		case n.seg.Encloses(seg):
			switch {
			case seg == n.seg:
				result := n.detach()
				if v, ok := f(seg, n.value, true); ok {
					result = insertInto(result, seg, v)
				}
				return result
			case seg.Lower() == n.seg.Lower():
				if n.left != nil {
					n.left = n.left.updateEntry(seg, f)
				} else if v, ok := f(seg, zero, false); ok {
					n.left = newNode(seg, v)
				}
				return n
			case seg.Upper() == n.seg.Upper():
				if n.right != nil {
					n.right = n.right.updateEntry(seg, f)
				} else if v, ok := f(seg, zero, false); ok {
					n.right = newNode(seg, v)
				}
				return n
			default:
				// Strictly inside: split n, and let f decide whether a
				// zero-width entry materializes at seg itself.
				result := n.detach()
				if v, ok := f(seg, n.value, true); ok {
					result = insertInto(result, seg, v)
				}
				result = insertInto(result, segment.New(n.seg.Lower(), seg.Lower()), n.value)
				result = insertInto(result, segment.New(seg.Upper(), n.seg.Upper()), n.value)
				return result
			}
		case seg.Upper() < n.seg.Lower():
			if n.left != nil {
				n.left = n.left.updateEntry(seg, f)
			} else if v, ok := f(seg, zero, false); ok {
				n.left = newNode(seg, v)
			}
			return n
		default:
			if n.right != nil {
				n.right = n.right.updateEntry(seg, f)
			} else if v, ok := f(seg, zero, false); ok {
				n.right = newNode(seg, v)
			}
			return n
		}
	}
	isect, connected := seg.Intersection(n.seg)
	if !connected {
		if seg.Lower() > n.seg.Upper() {
			if n.right != nil {
				n.right = n.right.updateEntry(seg, f)
			} else if v, ok := f(seg, zero, false); ok {
				n.right = newNode(seg, v)
			}
		} else {
			if n.left != nil {
				n.left = n.left.updateEntry(seg, f)
			} else if v, ok := f(seg, zero, false); ok {
				n.left = newNode(seg, v)
			}
		}
		return n
	}
	if isect.IsEmpty() {
		// Zero-width touch: pure descent, n itself is untouched.
		if seg.Lower() == n.seg.Upper() {
			if n.right != nil {
				n.right = n.right.updateEntry(seg, f)
			} else if v, ok := f(seg, zero, false); ok {
				n.right = newNode(seg, v)
			}
		} else {
			if n.left != nil {
				n.left = n.left.updateEntry(seg, f)
			} else if v, ok := f(seg, zero, false); ok {
				n.left = newNode(seg, v)
			}
		}
		return n
	}
	// Positive-width overlap: excise n, replace the intersection through f,
	// then resolve each side as in remove, recursing for remainders of seg
	// and reinserting surviving fragments of n's segment.
	result := n.detach()
	if v, ok := f(isect, n.value, true); ok {
		result = insertInto(result, isect, v)
	}
	if seg.Lower() < isect.Lower() {
		rest := segment.New(seg.Lower(), isect.Lower())
		if result != nil {
			result = result.updateEntry(rest, f)
		} else if v, ok := f(rest, zero, false); ok {
			result = newNode(rest, v)
		}
	} else if n.seg.Lower() < isect.Lower() {
		result = insertInto(result, segment.New(n.seg.Lower(), isect.Lower()), n.value)
	}
	if seg.Upper() > isect.Upper() {
		rest := segment.New(isect.Upper(), seg.Upper())
		if result != nil {
			result = result.updateEntry(rest, f)
		} else if v, ok := f(rest, zero, false); ok {
			result = newNode(rest, v)
		}
	} else if n.seg.Upper() > isect.Upper() {
		result = insertInto(result, segment.New(isect.Upper(), n.seg.Upper()), n.value)
	}
	return result
}

func (n *node[K, V]) clone() *node[K, V] {
	if n == nil {
		return nil
	}
	return &node[K, V]{
		seg:   n.seg,
		value: n.value,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}
