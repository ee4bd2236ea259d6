// Package discrete: scalar arithmetic and scalar relations.
// All mutators apply elementwise to the flat value array (through
// gonum's floats kernels, except DivScalar, which uses a plain loop)
// and return the receiver for chaining.
package discrete

import (
	"github.com/optalgo/factorgraph/core"
	"gonum.org/v1/gonum/floats"
)

// AddScalar adds val to every cell.
//
// Complexity: O(∏ sizes).
func (f *Function) AddScalar(val core.ValType) *Function {
	floats.AddConst(val, f.values)
	return f
}

// SubScalar subtracts val from every cell.
//
// Complexity: O(∏ sizes).
func (f *Function) SubScalar(val core.ValType) *Function {
	floats.AddConst(-val, f.values)
	return f
}

// MulScalar multiplies every cell by val.
//
// Complexity: O(∏ sizes).
func (f *Function) MulScalar(val core.ValType) *Function {
	floats.Scale(val, f.values)
	return f
}

// DivScalar divides every cell by val. Division by zero follows IEEE
// float semantics (±Inf / NaN), as the elementwise kernels do.
//
// Complexity: O(∏ sizes).
func (f *Function) DivScalar(val core.ValType) *Function {
	for i := range f.values {
		f.values[i] /= val
	}

	return f
}

// Negate returns a negated copy, leaving the receiver unchanged.
//
// Complexity: O(∏ sizes).
func (f *Function) Negate() *Function {
	return f.Clone().MulScalar(-1)
}

// AllLess reports whether f(k) < val at every cell.
func (f *Function) AllLess(val core.ValType) bool {
	for _, x := range f.values {
		if x >= val {
			return false
		}
	}

	return true
}

// AllLessEq reports whether f(k) <= val at every cell.
func (f *Function) AllLessEq(val core.ValType) bool {
	for _, x := range f.values {
		if x > val {
			return false
		}
	}

	return true
}

// AllGreater reports whether f(k) > val at every cell.
func (f *Function) AllGreater(val core.ValType) bool {
	for _, x := range f.values {
		if x <= val {
			return false
		}
	}

	return true
}

// AllGreaterEq reports whether f(k) >= val at every cell.
func (f *Function) AllGreaterEq(val core.ValType) bool {
	for _, x := range f.values {
		if x < val {
			return false
		}
	}

	return true
}
