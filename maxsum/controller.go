package maxsum

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/optalgo/factorgraph/core"
	"github.com/optalgo/factorgraph/discrete"
)

// edge identifies one factor–variable adjacency of the bipartite graph.
type edge struct {
	f core.FactorID
	v core.VarID
}

// messages holds the two generations of one directed message stream:
// cur is the last round's output, prev the round before. Each message
// is a discrete.Function over the edge's single variable.
type messages struct {
	cur  *discrete.Function
	prev *discrete.Function
}

// Controller maintains the factor graph and drives max-sum message
// passing to convergence.
//
// It owns deep copies of all factors and messages; single-goroutine by
// contract.
type Controller struct {
	opts Options

	factors      map[core.FactorID]*discrete.Function
	vars         mapset.Set[core.VarID]
	factorsByVar map[core.VarID]mapset.Set[core.FactorID]

	fac2var map[edge]*messages
	var2fac map[edge]*messages
}

// New constructs a Controller, validating the options.
func New(opts Options) (*Controller, error) {
	if opts.MaxIterations < 1 || opts.Tolerance < 0 {
		return nil, fmt.Errorf("maxsum: New(maxIterations=%d, tolerance=%g): %w",
			opts.MaxIterations, opts.Tolerance, ErrBadOptions)
	}

	return &Controller{
		opts:         opts,
		factors:      make(map[core.FactorID]*discrete.Function),
		vars:         mapset.NewSet[core.VarID](),
		factorsByVar: make(map[core.VarID]mapset.Set[core.FactorID]),
		fac2var:      make(map[edge]*messages),
		var2fac:      make(map[edge]*messages),
	}, nil
}

// SetFactor inserts or replaces a factor; the controller stores a deep
// copy. On replace, edges to variables shared between the old and new
// domains keep their message storage; edges to dropped variables are
// torn down and edges to added variables start with zero messages. A
// variable leaves the graph when its last incident factor lets go of
// it.
//
// Complexity: O(domain size of fn + |dom| log |dom|).
func (c *Controller) SetFactor(id core.FactorID, fn *discrete.Function) error {
	if fn == nil {
		return fmt.Errorf("maxsum: SetFactor(%d): %w", id, ErrNilFactor)
	}

	newVars := fn.Vars()
	if old, replacing := c.factors[id]; replacing {
		for _, v := range old.Vars() {
			if !slices.Contains(newVars, v) {
				c.removeEdge(edge{f: id, v: v})
			}
		}
	}
	c.factors[id] = fn.Clone()

	for _, v := range newVars {
		e := edge{f: id, v: v}
		if _, ok := c.fac2var[e]; ok {
			continue // shared edge survives a replace intact
		}
		if err := c.addEdge(e); err != nil {
			return fmt.Errorf("maxsum: SetFactor(%d): %w", id, err)
		}
	}

	return nil
}

// RemoveFactor drops a factor with all its edges and messages; unknown
// ids are a no-op.
func (c *Controller) RemoveFactor(id core.FactorID) {
	fn, ok := c.factors[id]
	if !ok {
		return
	}
	for _, v := range fn.Vars() {
		c.removeEdge(edge{f: id, v: v})
	}
	delete(c.factors, id)
}

// ClearAll drops every factor, edge and message. Registered variables
// stay registered: the registry is process-wide state outside the
// controller.
func (c *Controller) ClearAll() {
	c.factors = make(map[core.FactorID]*discrete.Function)
	c.vars = mapset.NewSet[core.VarID]()
	c.factorsByVar = make(map[core.VarID]mapset.Set[core.FactorID])
	c.fac2var = make(map[edge]*messages)
	c.var2fac = make(map[edge]*messages)
}

// NumFactors returns the number of factor nodes.
func (c *Controller) NumFactors() int {
	return len(c.factors)
}

// NumVars returns the number of variable nodes currently in the graph.
func (c *Controller) NumVars() int {
	return c.vars.Cardinality()
}

// HasFactor reports whether a factor id is present.
func (c *Controller) HasFactor(id core.FactorID) bool {
	_, ok := c.factors[id]
	return ok
}

// Factor returns a copy of a stored factor.
func (c *Controller) Factor(id core.FactorID) (*discrete.Function, bool) {
	fn, ok := c.factors[id]
	if !ok {
		return nil, false
	}

	return fn.Clone(), true
}

// VarIDs returns the graph's variable nodes in ascending order.
func (c *Controller) VarIDs() []core.VarID {
	ids := c.vars.ToSlice()
	slices.Sort(ids)

	return ids
}

// addEdge wires a factor–variable adjacency with zeroed message pairs
// in both directions.
func (c *Controller) addEdge(e edge) error {
	mk := func() (*messages, error) {
		cur, err := discrete.NewOver(e.v, 0)
		if err != nil {
			return nil, err
		}
		prev, err := discrete.NewOver(e.v, 0)
		if err != nil {
			return nil, err
		}
		return &messages{cur: cur, prev: prev}, nil
	}

	f2v, err := mk()
	if err != nil {
		return err
	}
	v2f, err := mk()
	if err != nil {
		return err
	}
	c.fac2var[e] = f2v
	c.var2fac[e] = v2f

	c.vars.Add(e.v)
	set, ok := c.factorsByVar[e.v]
	if !ok {
		set = mapset.NewSet[core.FactorID]()
		c.factorsByVar[e.v] = set
	}
	set.Add(e.f)

	return nil
}

// removeEdge tears down an adjacency and, when it was the variable's
// last, the variable node itself.
func (c *Controller) removeEdge(e edge) {
	delete(c.fac2var, e)
	delete(c.var2fac, e)

	set, ok := c.factorsByVar[e.v]
	if !ok {
		return
	}
	set.Remove(e.f)
	if set.Cardinality() == 0 {
		delete(c.factorsByVar, e.v)
		c.vars.Remove(e.v)
	}
}

// sortedEdges returns every edge ordered by (factor, variable) —
// mapset and map iteration are randomized, so every walk that must be
// deterministic drains and sorts first.
func (c *Controller) sortedEdges() []edge {
	edges := make([]edge, 0, len(c.fac2var))
	for e := range c.fac2var {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b edge) int {
		if a.f != b.f {
			return int(a.f) - int(b.f)
		}
		return int(a.v) - int(b.v)
	})

	return edges
}

// sortedFactorsOf returns the factors incident to v in ascending order.
func (c *Controller) sortedFactorsOf(v core.VarID) []core.FactorID {
	set, ok := c.factorsByVar[v]
	if !ok {
		return nil
	}
	ids := set.ToSlice()
	slices.Sort(ids)

	return ids
}
