// Package functional provides the generic combinators the vector
// algebra is built from: elementwise zipping of sequences and an
// optional-value container.
package functional
