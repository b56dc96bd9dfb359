package autodiff

// TopologicalSort returns every node reachable from v via Parents, ordered
// so that each node appears before all of its ancestors: the sequence starts
// at v and ends at the graph's leaves. Read front to back, a node's incoming
// derivative is fully accumulated before the node itself is visited.
//
// A visited set keyed by UniqueID guarantees each node appears exactly once
// no matter how many descendants share it (diamond dependencies). The
// traversal does not filter constants; the operation layer keeps constants
// out of Parents.
//
// The walk is an iterative depth-first search over an explicit frame stack,
// so ordering very deep graphs cannot exhaust the call stack.
func TopologicalSort(v Variable) []Variable {
	type frame struct {
		v       Variable
		parents []Variable
		next    int
	}

	stack := []frame{{v: v, parents: v.Parents()}}
	visited := map[int64]bool{v.UniqueID(): true}

	var order []Variable // completion order: deepest ancestors first
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.parents) {
			p := top.parents[top.next]
			top.next++
			if !visited[p.UniqueID()] {
				visited[p.UniqueID()] = true
				stack = append(stack, frame{v: p, parents: p.Parents()})
			}
			continue
		}

		order = append(order, top.v)
		stack = stack[:len(stack)-1]
	}

	// Reverse completion order so the requested output comes first.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// Backpropagate runs reverse-mode differentiation from v, which receives the
// seed derivative deriv (the derivative of the final objective with respect
// to v; typically 1). There is no return value: leaves receive their results
// through AccumulateDerivative, which adds on top of whatever was already
// accumulated there.
//
// Each non-leaf node's pending derivative is the sum of the contributions
// from all of its consumers; the topological order guarantees that the sum
// is complete before the node's own ChainRule runs. Contributions routed to
// a leaf are accumulated immediately; contributions routed to a constant are
// dropped.
//
// The graph must be acyclic and every input a ChainRule reports must be
// reachable from v. Violations produce incorrect accumulation, not an error:
// correctness is a contract on the operation layer, not a runtime check.
func Backpropagate(v Variable, deriv float64) {
	order := TopologicalSort(v)

	// Pending derivative per node id, accumulated from later in the graph.
	pending := map[int64]float64{v.UniqueID(): deriv}

	for _, node := range order {
		if node.IsLeaf() {
			// Leaves only receive contributions below; they are never
			// chain-ruled.
			continue
		}
		d := pending[node.UniqueID()]
		for _, p := range node.ChainRule(d) {
			switch {
			case p.Input.IsConstant():
				// No derivative flows into constants.
			case p.Input.IsLeaf():
				p.Input.AccumulateDerivative(p.Deriv)
			default:
				pending[p.Input.UniqueID()] += p.Deriv
			}
		}
	}
}
