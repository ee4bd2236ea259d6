// Package discrete: marginalization.
// Marginal reduces a function onto the (subset) domain of an output
// function by folding a binary aggregator over every coordinate of
// dom(in) \ dom(out). The fold is seeded from the first conditioned
// cell so order-sensitive aggregators like max and min need no neutral
// element.
package discrete

import (
	"fmt"

	"github.com/optalgo/factorgraph/core"
)

// Aggregator folds the previous accumulate with the next value.
type Aggregator func(acc, next core.ValType) core.ValType

// Marginal reduces in onto out's domain with agg and overwrites out's
// values. dom(out) must be a subset of dom(in), else core.ErrBadDomain.
// When the domains are equal, out becomes a copy of in.
//
// Complexity: O(∏ in sizes) cell visits overall.
func Marginal(in *Function, agg Aggregator, out *Function) error {
	if in == nil || out == nil {
		return fmt.Errorf("discrete: Marginal: %w", ErrNilFunction)
	}
	if !isSubsetOf(out.vars, in.vars) {
		return fmt.Errorf("discrete: Marginal: out domain is not a subset of in domain: %w",
			core.ErrBadDomain)
	}

	for outIt := NewDomainIterator(out); outIt.HasNext(); outIt.Advance() {
		// Pin the shared coordinates to the current output tuple and
		// fold over the free remainder of the input domain.
		inIt := NewDomainIterator(in)
		if err := inIt.ConditionOnIterator(outIt); err != nil {
			return fmt.Errorf("discrete: Marginal: %w", err)
		}

		acc := in.values[inIt.Ind()]
		inIt.Advance()
		for ; inIt.HasNext(); inIt.Advance() {
			acc = agg(acc, in.values[inIt.Ind()])
		}

		out.values[outIt.Ind()] = acc
	}

	return nil
}

// MaxMarginal reduces in onto out's domain by maximization:
// out(y) = max over {x : x agrees with y on dom(out)} of in(x).
func MaxMarginal(in, out *Function) error {
	return Marginal(in, func(acc, next core.ValType) core.ValType {
		if next > acc {
			return next
		}
		return acc
	}, out)
}

// MinMarginal reduces in onto out's domain by minimization.
func MinMarginal(in, out *Function) error {
	return Marginal(in, func(acc, next core.ValType) core.ValType {
		if next < acc {
			return next
		}
		return acc
	}, out)
}

// MeanMarginal reduces in onto out's domain by averaging: the sum over
// the folded-out coordinates divided by |dom(in)| / |dom(out)|.
func MeanMarginal(in, out *Function) error {
	if err := Marginal(in, func(acc, next core.ValType) core.ValType {
		return acc + next
	}, out); err != nil {
		return err
	}

	ratio := core.ValType(in.DomainSize()) / core.ValType(out.DomainSize())
	out.DivScalar(ratio)

	return nil
}
