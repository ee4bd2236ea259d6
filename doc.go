// Package factorgraph is an in-memory toolkit for decentralized
// optimization over factor graphs with the max-sum algorithm.
//
// 🚀 What is factorgraph?
//
//	A pure-Go library that brings together:
//		• core/     — scalar types and the process-wide variable registry
//		• indexing/ — column-major (first index fastest) sub2ind / ind2sub index math
//		• discrete/ — dense tabular functions over discrete variables:
//		  arithmetic with union-domain broadcast, expand, condition,
//		  marginals, reductions and elementwise transforms
//		• maxsum/   — the message-passing controller: build a bipartite
//		  factor graph, iterate factor↔variable messages to convergence,
//		  read off the maximizing assignment
//
// ✨ Why choose factorgraph?
//
//   - Minimal API, clear naming — factors are plain tabular functions,
//     messages are functions over one variable, the controller just
//     schedules them
//   - Deterministic — every iteration order is defined, ties break low
//   - Exact on trees, a well-behaved heuristic on loopy graphs
//
// Quick ASCII example:
//
//	    A(x)───x───B(x,y)───y
//
//	one unary factor, one pairwise factor: max-sum finds the assignment
//	to x and y maximizing A(x)+B(x,y).
//
// Dive into the per-package docs for usage and complexity notes.
//
//	go get github.com/optalgo/factorgraph
package factorgraph
