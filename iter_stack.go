package segmentmap

import "golang.org/x/exp/constraints"

// iterStack represents a stack of nodes, which captures in-order traversal
// state as an Iterator descends a SegmentMap's tree. A small fixed array
// avoids allocation for shallow trees; deeper traversals spill to a slice.
type iterStack[K constraints.Ordered, V any] struct {
	a    iterStackArr[K, V]
	aLen int16 // -1 when using s
	s    []*node[K, V]
}

const iterStackDepth = 8

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[K constraints.Ordered, V any] [iterStackDepth]*node[K, V]

func (is *iterStack[K, V]) push(n *node[K, V]) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*node[K, V], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

func (is *iterStack[K, V]) pop() *node[K, V] {
	if is.aLen == -1 {
		n := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return n
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[K, V]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}
