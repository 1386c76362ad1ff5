package pattern

// Unfold expands a seed into a pattern. expand returns the value for the
// current node and the seeds of its elements. The build is iterative with an
// explicit work stack, so arbitrarily deep results cannot exhaust the call
// stack.
func Unfold[S, V any](seed S, expand func(S) (V, []S)) Pattern[V] {
	type work struct {
		// expand phase when !collect, assemble phase otherwise
		collect bool
		seed    S
		value   V
		n       int
	}
	workStack := []work{{seed: seed}}
	var resultStack []Pattern[V]

	for len(workStack) > 0 {
		item := workStack[len(workStack)-1]
		workStack = workStack[:len(workStack)-1]
		if !item.collect {
			value, children := expand(item.seed)
			// the collect marker runs after all children are assembled
			workStack = append(workStack, work{collect: true, value: value, n: len(children)})
			// push children in reverse so the leftmost is processed first
			for i := len(children) - 1; i >= 0; i-- {
				workStack = append(workStack, work{seed: children[i]})
			}
			continue
		}
		start := len(resultStack) - item.n
		var elements []Pattern[V]
		if item.n > 0 {
			elements = make([]Pattern[V], item.n)
			copy(elements, resultStack[start:])
		}
		resultStack = resultStack[:start]
		resultStack = append(resultStack, Pattern[V]{Value: item.value, Elements: elements})
	}
	return resultStack[0]
}
