// Package utils implements small generic helpers shared by the packages of
// this module.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum value of the two inputs.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a > b {
		return b
	}
	return a
}
