// Package scalar provides primitive arithmetic on float64 values:
// the binary operations, folds over sequences, and curried forms for
// partial application.
//
// All functions are total. Division follows IEEE-754: a nonzero value
// divided by zero yields ±Inf, and 0/0 yields NaN. These special
// values are propagated to the caller, never trapped.
package scalar
