package autodiff

// Context is the per-operation scratch record created during the forward
// pass. The forward rule stores whatever its backward rule will need via
// SaveForBackward; the backward rule reads it back via SavedValues. The two
// rules of one operation share this object, never global state.
//
// A Context lives exactly as long as the node it backs: it is needed until
// that node's ChainRule runs during backpropagation, then it is eligible for
// collection along with the node.
type Context struct {
	// NoGrad makes SaveForBackward a no-op, for inference-only forward
	// passes that skip retaining intermediate values.
	NoGrad bool

	savedValues []float64
}

// SaveForBackward stores the given values for the backward rule. Repeated
// calls overwrite the previous values. When NoGrad is set the call is a
// silent no-op.
func (c *Context) SaveForBackward(values ...float64) {
	if c.NoGrad {
		return
	}
	c.savedValues = values
}

// SavedValues returns the most recently saved values, or nil if none were
// ever saved.
func (c *Context) SavedValues() []float64 {
	return c.savedValues
}
