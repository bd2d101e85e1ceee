package tutorial

// Gate decides whether the learner may enter a step.
type Gate func() bool

// Navigator is the linear step flow. It moves by exactly one step per call
// and never leaves [1, TotalSteps].
type Navigator struct {
	current Step
	gates   map[Step]Gate
}

func NewNavigator(gates map[Step]Gate) *Navigator {
	return &Navigator{current: StepWelcome, gates: gates}
}

func (n *Navigator) Current() Step { return n.current }

// CanAdvance reports whether Advance would move forward.
func (n *Navigator) CanAdvance() bool {
	if n.current >= StepResults {
		return false
	}
	gate, ok := n.gates[n.current+1]
	return !ok || gate == nil || gate()
}

func (n *Navigator) Advance() bool {
	if !n.CanAdvance() {
		return false
	}
	n.current++
	return true
}

func (n *Navigator) Retreat() bool {
	if n.current <= StepWelcome {
		return false
	}
	n.current--
	return true
}

func (n *Navigator) Reset() { n.current = StepWelcome }
