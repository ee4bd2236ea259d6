// Package maxsum runs the max-sum algorithm over a bipartite factor
// graph: factors (tabular functions from package discrete) on one
// side, the variables of their domains on the other, messages flowing
// along the edges until they stabilize.
//
// 🚀 How it works:
//
//	• variable→factor: the sum of the other incident factors' previous
//	  messages about that variable
//	• factor→variable: the factor plus all other neighbors' previous
//	  messages, max-marginalized onto the one variable
//	• rounds are synchronous — every message of a round is computed
//	  from the previous round, then the generations swap
//	• the loop stops when the largest maxnorm change of any message
//	  falls to the tolerance, or at the iteration cap
//	• the assignment read-off maximizes each variable's belief (the sum
//	  of its incoming factor messages), ties breaking to the lowest
//	  index
//
// Max-sum is exact on acyclic factor graphs — it converges within a
// number of rounds bounded by the graph diameter — and is a heuristic
// on loopy ones.
//
// ⚙️ Usage:
//
//	ctl, _ := maxsum.New(maxsum.DefaultOptions())
//	_ = ctl.SetFactor(1, a) // a over {x}
//	_ = ctl.SetFactor(2, b) // b over {x, y}
//	iters, _ := ctl.Optimise()
//	values, _ := ctl.Values() // map[VarID]ValIndex
//
// The controller owns deep copies of every factor and message it
// stores; it is single-goroutine by contract. Every internal walk over
// the node and edge sets is sorted by id, so runs are deterministic.
package maxsum
