package internal

// Context is the activation record of one procedure invocation. It carries
// the procedure's return-value slot and a stop flag. `if`, `repeat` and
// template bodies reuse the enclosing context rather than creating their
// own, so that `stop`/`output` used inside them unwinds the surrounding
// procedure instead of just the inner construct.
type Context struct {
	Output    interface{}
	HasOutput bool
	Stop      bool
}

// NewContext creates a fresh, un-stopped activation record.
func NewContext() *Context {
	return &Context{}
}
