package internal

import "fmt"

// Callable is anything invokable from the procedure scope: a builtin or a
// user-defined `to ... end` procedure. Both look identical at the call
// site - a name lookup followed by arity-worth of argument collection -
// so user code can't tell a builtin from a procedure it defined itself.
type Callable interface {
	// Arity is the declared fixed arity (or, for a variadic builtin, the
	// minimum arity) used by handleFixed to know when to stop collecting
	// arguments.
	Arity() int
	// Variadic reports whether the callable collects arguments beyond
	// Arity(). handleVariadic does not consult it: the "( ... )" form
	// passes every argument it collects to any callable.
	Variadic() bool
	Call(ev *Evaluator, args []interface{}) interface{}
}

// nativeFn adapts a plain Go function into a Callable.
type nativeFn struct {
	name     string
	arity    int
	variadic bool
	fn       func(ev *Evaluator, args []interface{}) interface{}
}

func (n *nativeFn) Arity() int      { return n.arity }
func (n *nativeFn) Variadic() bool  { return n.variadic }
func (n *nativeFn) Call(ev *Evaluator, args []interface{}) interface{} {
	return n.fn(ev, args)
}
func (n *nativeFn) String() string { return fmt.Sprintf("<builtin %s>", n.name) }

// hostFn adapts an embedder-supplied callback - registered through
// Scope.BindValues the way an embedder wires in turtle primitives - into a
// Callable. Unlike nativeFn its Go function returns (value, error): a
// non-nil error aborts evaluation as a host error, propagated unchanged
// back to the embedder, and a nil value becomes undefined.
type hostFn struct {
	name  string
	arity int
	fn    func(args []interface{}) (interface{}, error)
}

func (h *hostFn) Arity() int     { return h.arity }
func (h *hostFn) Variadic() bool { return false }
func (h *hostFn) Call(ev *Evaluator, args []interface{}) interface{} {
	result, err := h.fn(args)
	if err != nil {
		panic(&LogoError{Kind: KindHost, Err: err})
	}
	if result == nil {
		return undefinedValue
	}
	return result
}
func (h *hostFn) String() string { return fmt.Sprintf("<builtin %s>", h.name) }

// procedure is a user-defined `to name :arg1 :arg2 ... end` procedure.
type procedure struct {
	name   string
	params []string
	body   *List
}

func (p *procedure) Arity() int     { return len(p.params) }
func (p *procedure) Variadic() bool { return false }

// Call creates a new variable scope parented to the current one, binds
// each parameter (excess actuals are ignored, missing ones bind
// undefined), creates a fresh context, pushes both, evaluates the body,
// and pops both on every exit path - including a panic unwinding through
// a raised error - before returning the context's output.
func (p *procedure) Call(ev *Evaluator, args []interface{}) interface{} {
	scope := NewScope(ev.currentVarScope())
	for i, name := range p.params {
		var v interface{} = undefinedValue
		if i < len(args) {
			v = args[i]
		}
		scope.BindValue(name, v)
	}

	ctx := NewContext()
	ev.pushScope(scope)
	ev.pushContext(ctx)
	defer func() {
		ev.popScope()
		ev.popContext()
	}()

	ev.Evaluate(p.body)

	if ctx.HasOutput {
		return ctx.Output
	}
	return undefinedValue
}

func (p *procedure) String() string {
	return fmt.Sprintf("<procedure %s>", p.name)
}
