// Package indexing implements the first-dimension-fastest index math every tabular
// function in this module composes: Sub2Ind, Ind2Sub and Strides.
//
// Layout convention (shared with package discrete): storage is
// column-major over the variable order, meaning the FIRST dimension
// varies fastest:
//
//	ind = Σ_k sub[k] · ∏_{j<k} sizes[j]
//
// Both conversions are O(n) in the number of dimensions and validate
// their inputs, returning core.ErrOutOfRange on violation rather than
// panicking — the same contract the C index helpers expose as -1.
package indexing
