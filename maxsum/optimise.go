package maxsum

import (
	"fmt"

	"github.com/optalgo/factorgraph/core"
	"github.com/optalgo/factorgraph/discrete"
)

// Optimise runs synchronous max-sum rounds until the largest maxnorm
// change of any message is at or below the tolerance, or the iteration
// cap is reached. Returns the number of rounds performed.
//
// Per round, strictly from the previous generation:
//
//	m[v→f](v) = Σ_{f' ∋ v, f' ≠ f} m[f'→v](v)
//	m[f→v](v) = max over dom(f)\{v} of ( f + Σ_{v' ∈ dom(f), v' ≠ v} m[v'→f] )
//
// On an acyclic graph the loop converges within the graph diameter; on
// loopy graphs it is a heuristic bounded by MaxIterations.
//
// Complexity per round: O(Σ_f |dom(f)| · domainSize(f) · |dom(f)|).
func (c *Controller) Optimise() (int, error) {
	edges := c.sortedEdges()
	rounds := 0

	for rounds < c.opts.MaxIterations {
		rounds++

		// Age the generations: last round's output becomes prev, and
		// cur is overwritten below. No in-place interference.
		for _, e := range edges {
			m := c.var2fac[e]
			m.cur, m.prev = m.prev, m.cur
			m = c.fac2var[e]
			m.cur, m.prev = m.prev, m.cur
		}

		for _, e := range edges {
			if err := c.updateVarToFactor(e); err != nil {
				return rounds, fmt.Errorf("maxsum: Optimise: %w", err)
			}
		}
		for _, e := range edges {
			if err := c.updateFactorToVar(e); err != nil {
				return rounds, fmt.Errorf("maxsum: Optimise: %w", err)
			}
		}

		delta, err := c.maxDelta(edges)
		if err != nil {
			return rounds, fmt.Errorf("maxsum: Optimise: %w", err)
		}
		if delta <= c.opts.Tolerance {
			break
		}
	}

	return rounds, nil
}

// updateVarToFactor recomputes m[v→f] from the previous generation of
// incoming factor messages.
func (c *Controller) updateVarToFactor(e edge) error {
	out := c.var2fac[e].cur.Fill(0)

	for _, f := range c.sortedFactorsOf(e.v) {
		if f == e.f {
			continue
		}
		if err := out.AddFn(c.fac2var[edge{f: f, v: e.v}].prev); err != nil {
			return err
		}
	}
	if c.opts.Normalize {
		out.SubScalar(out.Max())
	}

	return nil
}

// updateFactorToVar recomputes m[f→v]: the factor plus all other
// neighbors' previous messages, max-marginalized onto {v}.
func (c *Controller) updateFactorToVar(e edge) error {
	total := c.factors[e.f].Clone()

	for _, v := range total.Vars() {
		if v == e.v {
			continue
		}
		if err := total.AddFn(c.var2fac[edge{f: e.f, v: v}].prev); err != nil {
			return err
		}
	}

	out := c.fac2var[e].cur
	if err := discrete.MaxMarginal(total, out); err != nil {
		return err
	}
	if c.opts.Normalize {
		out.SubScalar(out.Max())
	}

	return nil
}

// maxDelta returns the largest maxnorm change across all messages of
// the round, both directions.
func (c *Controller) maxDelta(edges []edge) (core.ValType, error) {
	delta := core.ValType(0)
	for _, e := range edges {
		for _, m := range []*messages{c.var2fac[e], c.fac2var[e]} {
			diff := m.cur.Clone()
			if err := diff.SubFn(m.prev); err != nil {
				return 0, err
			}
			if norm := diff.Maxnorm(); norm > delta {
				delta = norm
			}
		}
	}

	return delta, nil
}

// Values extracts the assignment from the converged messages: each
// variable's belief is the sum of its incoming factor messages, and
// the assignment is the belief's argmax (ties to the lowest index).
// Call after Optimise.
//
// Complexity: O(Σ_v deg(v) · size(v)).
func (c *Controller) Values() (map[core.VarID]core.ValIndex, error) {
	assignment := make(map[core.VarID]core.ValIndex, c.vars.Cardinality())

	for _, v := range c.VarIDs() {
		belief, err := discrete.NewOver(v, 0)
		if err != nil {
			return nil, fmt.Errorf("maxsum: Values: %w", err)
		}
		for _, f := range c.sortedFactorsOf(v) {
			if err = belief.AddFn(c.fac2var[edge{f: f, v: v}].cur); err != nil {
				return nil, fmt.Errorf("maxsum: Values: %w", err)
			}
		}
		assignment[v] = belief.Argmax()
	}

	return assignment, nil
}
