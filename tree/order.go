package tree

import (
	"golang.org/x/exp/constraints"
)

// Order is the result of comparing two keys.
type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

// Compare compares two ordered values.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
