package segment

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is the panic value raised by Next, and by the constructors
// built on it, when the successor of the key type's maximum value is
// requested. Overflow fails loudly rather than wrapping.
var ErrOverflow = errors.New("segment: integer overflow")

// Next returns the successor of k. It panics with ErrOverflow when k is the
// maximum value of its type.
func Next[K constraints.Integer](k K) K {
	n := k + 1
	if n < k {
		panic(ErrOverflow)
	}
	return n
}

// Min returns the minimum value of the integer type K.
func Min[K constraints.Integer]() K {
	var zero K
	if zero-1 > zero {
		// Unsigned.
		return zero
	}
	return -Max[K]() - 1
}

// Max returns the maximum value of the integer type K.
func Max[K constraints.Integer]() K {
	var zero K
	if zero-1 > zero {
		// Unsigned.
		return zero - 1
	}
	// Signed: grow a run of low-order one bits until the sign bit flips.
	k := K(1)
	for n := k<<1 | 1; n > k; n = k<<1 | 1 {
		k = n
	}
	return k
}
