package tensor

import "fmt"

// result builds the output of an op. The output is tracked iff any parent is
// tracked; untracked outputs drop parents and the backward closure so that
// decision-view computations never hold on to the value graph.
func result(shape []int, data []float64, backward func(out *Tensor), parents ...*Tensor) *Tensor {
	out := &Tensor{shape: shape, data: data}
	for _, p := range parents {
		if p.track {
			out.track = true
			break
		}
	}
	if !out.track {
		return out
	}
	out.parents = parents
	out.backward = func() { backward(out) }

	return out
}

// gradOf returns p.grad, allocating it on first use. It returns nil for
// untracked parents so backward closures can skip them.
func gradOf(p *Tensor) []float64 {
	if !p.track {
		return nil
	}
	if p.grad == nil {
		p.grad = make([]float64, len(p.data))
	}

	return p.grad
}

// Backward seeds d(t)/d(t) = 1 and propagates gradients to every tracked
// node reachable from t. Gradients accumulate across calls; use ZeroGrad on
// leaves between independent passes.
//
// Stage 1 (Validate): t must hold one element and be tracked.
// Stage 2 (Order): iterative DFS post-order gives a topological order.
// Stage 3 (Propagate): run backward closures from t towards the leaves.
//
// Complexity: O(V + total op cost) where V is the number of recorded nodes.
func (t *Tensor) Backward() error {
	if len(t.data) != 1 {
		return fmt.Errorf("%w: Backward on shape %v", ErrNotScalar, t.shape)
	}
	if !t.track {
		return ErrNotTracked
	}

	type frame struct {
		node *Tensor
		next int // next parent to visit
	}
	var (
		order   []*Tensor
		visited = map[*Tensor]bool{t: true}
		stack   = []frame{{node: t}}
	)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.parents) {
			p := top.node.parents[top.next]
			top.next++
			if p.track && !visited[p] {
				visited[p] = true
				stack = append(stack, frame{node: p})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	gradOf(t)[0] += 1
	for i := len(order) - 1; i >= 0; i-- {
		if n := order[i]; n.backward != nil && n.grad != nil {
			n.backward()
		}
	}

	return nil
}
