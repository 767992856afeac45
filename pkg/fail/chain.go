package fail

import "strings"

// Separator joins chain messages in UserMessage, outer context first.
const Separator = " <- "

// Chain is one node of a failure explanation: a message describing what
// failed at this layer plus an optional cause. A chain is immutable;
// adding context always allocates a new node wrapping the old one.
type Chain struct {
	message string
	cause   cause
}

// Leaf constructs a chain with no cause.
func Leaf(message string) *Chain {
	return &Chain{message: message}
}

// WrapFault captures a raw external fault at the original failure site,
// making it the innermost cause of the returned chain.
func WrapFault(message string, fault error) *Chain {
	return &Chain{message: message, cause: faultCause{fault: fault}}
}

// Wrap returns a new chain with message as the outer context and c as
// the cause. c is not modified.
func (c *Chain) Wrap(message string) *Chain {
	return &Chain{message: message, cause: chainCause{chain: c}}
}

// Message returns the context text of this node only.
func (c *Chain) Message() string {
	return c.message
}

// Messages lists the context messages from the outermost wrap down to
// the innermost, ending with the raw fault's description when one
// terminates the chain. The chain is finite and immutable, so repeated
// calls yield the same slice content.
func (c *Chain) Messages() []string {
	msgs := make([]string, 0, 4)
	node := c
	for {
		msgs = append(msgs, node.message)
		switch cs := node.cause.(type) {
		case chainCause:
			node = cs.chain
		case faultCause:
			return append(msgs, cs.fault.Error())
		default:
			return msgs
		}
	}
}

// UserMessage renders the chain as a single narrative, most recent
// context first, root cause last.
func (c *Chain) UserMessage() string {
	return strings.Join(c.Messages(), Separator)
}

// RootFault walks the cause chain to its end and returns the raw fault
// found there, or nil when the chain terminates without one.
func (c *Chain) RootFault() error {
	node := c
	for {
		switch cs := node.cause.(type) {
		case chainCause:
			node = cs.chain
		case faultCause:
			return cs.fault
		default:
			return nil
		}
	}
}

// Error makes Chain usable wherever a plain error is expected.
func (c *Chain) Error() string {
	return c.UserMessage()
}

// Unwrap exposes the cause so errors.Is and errors.As traverse the
// chain down to the raw fault.
func (c *Chain) Unwrap() error {
	switch cs := c.cause.(type) {
	case chainCause:
		return cs.chain
	case faultCause:
		return cs.fault
	default:
		return nil
	}
}
