// Package discrete: elementwise transforms.
// The whole transcendental surface reduces to two higher-order
// kernels — Apply for unary scalar ops and Combine for binary ops over
// the union domain — plus thin named wrappers.
package discrete

import (
	"fmt"
	"math"

	"github.com/optalgo/factorgraph/core"
)

// UnaryOp maps one scalar to another.
type UnaryOp func(core.ValType) core.ValType

// BinaryOp maps two scalars to one.
type BinaryOp func(a, b core.ValType) core.ValType

// Apply returns a new function over f's domain with op applied to each
// cell.
//
// Complexity: O(∏ sizes).
func Apply(f *Function, op UnaryOp) (*Function, error) {
	if f == nil {
		return nil, fmt.Errorf("discrete: Apply: %w", ErrNilFunction)
	}

	result := f.Clone()
	for i, x := range result.values {
		result.values[i] = op(x)
	}

	return result, nil
}

// Combine returns a new function over the union of both domains with
// op applied to the broadcast cell pairs.
//
// Complexity: O(∏ union sizes · |union vars|).
func Combine(a, b *Function, op BinaryOp) (*Function, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("discrete: Combine: %w", ErrNilFunction)
	}

	vars, sizes := unionDomain(a, b)
	result := newRaw(vars, sizes)
	for it := NewDomainIterator(result); it.HasNext(); it.Advance() {
		ai, err := a.IndexOf(vars, it.SubInd())
		if err != nil {
			return nil, fmt.Errorf("discrete: Combine: %w", err)
		}
		bi, err := b.IndexOf(vars, it.SubInd())
		if err != nil {
			return nil, fmt.Errorf("discrete: Combine: %w", err)
		}
		result.values[it.Ind()] = op(a.values[ai], b.values[bi])
	}

	return result, nil
}

// Log returns the elementwise natural logarithm.
func Log(f *Function) (*Function, error) { return Apply(f, math.Log) }

// Exp returns the elementwise exponential.
func Exp(f *Function) (*Function, error) { return Apply(f, math.Exp) }

// Sqrt returns the elementwise square root.
func Sqrt(f *Function) (*Function, error) { return Apply(f, math.Sqrt) }

// Sin returns the elementwise sine.
func Sin(f *Function) (*Function, error) { return Apply(f, math.Sin) }

// Cos returns the elementwise cosine.
func Cos(f *Function) (*Function, error) { return Apply(f, math.Cos) }

// Tan returns the elementwise tangent.
func Tan(f *Function) (*Function, error) { return Apply(f, math.Tan) }

// Abs returns the elementwise absolute value.
func Abs(f *Function) (*Function, error) { return Apply(f, math.Abs) }

// Ceil returns the elementwise ceiling.
func Ceil(f *Function) (*Function, error) { return Apply(f, math.Ceil) }

// Floor returns the elementwise floor.
func Floor(f *Function) (*Function, error) { return Apply(f, math.Floor) }

// Pow raises base to exp cell-by-cell over the union of their domains.
func Pow(base, exp *Function) (*Function, error) { return Combine(base, exp, math.Pow) }

// MaxWithScalar returns a copy of f with every cell clamped from below
// by s: out(k) = max(f(k), s).
func MaxWithScalar(f *Function, s core.ValType) (*Function, error) {
	return Apply(f, func(x core.ValType) core.ValType {
		if x > s {
			return x
		}
		return s
	})
}
