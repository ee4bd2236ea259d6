// Package discrete: sentinel error set.
// Domain, range and registry violations are reported through the shared
// core sentinels; this file adds only the conditions local to this
// package. Tests match all of them via errors.Is.
package discrete

import "errors"

var (
	// ErrNilFunction indicates a nil *Function receiver or argument.
	ErrNilFunction = errors.New("discrete: nil function")

	// ErrUnsortedInput indicates a parallel variable/value list that was
	// required to be sorted by VarID but was not.
	ErrUnsortedInput = errors.New("discrete: variable list not sorted")

	// ErrLengthMismatch indicates parallel lists of differing lengths.
	ErrLengthMismatch = errors.New("discrete: parallel lists differ in length")
)
