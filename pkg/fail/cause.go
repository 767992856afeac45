package fail

// cause is the closed disjunction at the bottom of a Chain node:
// either a deeper chain or a raw external fault. No other case exists.
type cause interface {
	isCause()
}

type chainCause struct {
	chain *Chain
}

type faultCause struct {
	fault error
}

func (chainCause) isCause() {}

func (faultCause) isCause() {}
