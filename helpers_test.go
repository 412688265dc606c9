package behave

import "sync/atomic"

// scriptedLeaf returns an Action that yields the scripted statuses in
// order, repeating the last one, and counts actual executions. The script
// position survives Reset, so a cycling leaf keeps cycling across
// repeater iterations.
func scriptedLeaf(name string, calls *atomic.Int32, script []Status, opts ...Option) *Action {
	i := 0
	return NewAction(name, func() Status {
		if calls != nil {
			calls.Add(1)
		}
		s := script[i]
		if i < len(script)-1 {
			i++
		}
		return s
	}, opts...)
}
