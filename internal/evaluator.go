package internal

import "strings"

// Evaluator walks a body list with a mutable cursor, recursive-descent
// style: handleArg/handleLiteral/handleFixed/handleVariadic/handleOperator/
// handleTo are mutually recursive. It holds the two independent scope
// chains (procedure names -> callables, variable names -> values) plus the
// parallel scope/context stacks a procedure call pushes onto.
type Evaluator struct {
	procedureScope *Scope
	globalScope    *Scope
	sourceMap      *sourceMap
	interp         *Interpreter

	varScopes []*Scope
	contexts  []*Context
}

func newEvaluator(interp *Interpreter) *Evaluator {
	ev := &Evaluator{
		procedureScope: interp.procedureScope,
		globalScope:    interp.globalScope,
		sourceMap:      interp.sourceMap,
		interp:         interp,
	}
	ev.varScopes = []*Scope{interp.globalScope}
	ev.contexts = []*Context{NewContext()}
	return ev
}

func (ev *Evaluator) currentVarScope() *Scope {
	return ev.varScopes[len(ev.varScopes)-1]
}

func (ev *Evaluator) currentContext() *Context {
	return ev.contexts[len(ev.contexts)-1]
}

func (ev *Evaluator) atGlobalContext() bool {
	return len(ev.contexts) == 1
}

func (ev *Evaluator) pushScope(s *Scope)   { ev.varScopes = append(ev.varScopes, s) }
func (ev *Evaluator) popScope()            { ev.varScopes = ev.varScopes[:len(ev.varScopes)-1] }
func (ev *Evaluator) pushContext(c *Context) { ev.contexts = append(ev.contexts, c) }
func (ev *Evaluator) popContext()          { ev.contexts = ev.contexts[:len(ev.contexts)-1] }

// Evaluate runs the sequence evaluator over body and returns its result,
// which is undefinedValue unless the body (or something it called) set an
// output on the current context: it returns undefined once the cursor is
// exhausted, and a last statement that leaves an unconsumed value raises
// extra-instructions-after-value instead (see evaluate).
func (ev *Evaluator) Evaluate(body *List) interface{} {
	c := newCursor(body)
	return ev.evaluate(c, false)
}

// evaluateLast runs the same loop but, when the cursor is exhausted
// without a stop/output, returns the last expression's value instead of
// undefined. Templates are evaluated this way, since a template body
// ordinarily has no explicit output call of its own and is expected to
// yield its last computed value.
func (ev *Evaluator) evaluateLast(body *List) interface{} {
	c := newCursor(body)
	return ev.evaluate(c, true)
}

// evaluate is the top-level sequence loop: on each pass it first checks
// whether the previous pass produced a value that was never consumed by an
// operator or an outer call (a dangling value left sitting in statement
// position is a syntax error), then whether the context has been stopped,
// then whether the cursor is exhausted, then dispatches `to` or a plain
// argument. A dangling value is an error whether or not more tokens follow
// it - the cursor reaching the end of the body doesn't make an unconsumed
// value legal, it just means the error is reported at end-of-body instead
// of before the next statement. returnLast suppresses that end-of-body
// check for its own last value, since a template body is allowed to end on
// a bare computed value with no command consuming it.
func (ev *Evaluator) evaluate(c *cursor, returnLast bool) interface{} {
	havePrev := false
	var prevValue interface{} = undefinedValue

	for {
		if havePrev && !isUndefined(prevValue) && !(returnLast && c.atEnd()) {
			raise(KindSyntax, errExtraInstructions, String(prevValue))
		}

		ctx := ev.currentContext()
		if ctx.Stop {
			if ctx.HasOutput {
				return ctx.Output
			}
			return undefinedValue
		}

		if c.atEnd() {
			if returnLast && havePrev {
				return prevValue
			}
			return undefinedValue
		}

		if w, ok := c.peek().(string); ok && w == "to" {
			ev.handleTo(c)
			havePrev = false
			prevValue = undefinedValue
			continue
		}

		prevValue = ev.handleArg(c, 0)
		havePrev = true
	}
}

// handleArg parses one expression at the given operator-precedence floor:
// a parenthesized variadic call, a literal, or a fixed-arity call,
// followed by however much of an infix operator chain binds at this floor.
func (ev *Evaluator) handleArg(c *cursor, prio int) interface{} {
	var result interface{}

	switch {
	case c.peek() == "(":
		result = ev.handleVariadic(c)
	case isLiteralToken(c.peek()):
		result = ev.handleLiteral(c)
	default:
		result = ev.handleFixed(c)
	}

	if _, ok := isOperatorToken(c.peek()); ok {
		result = ev.handleOperator(c, result, prio)
	}

	return result
}

// handleLiteral consumes the current cursor position and resolves it to a
// value: lists/numbers pass through, quoted words are unquoted, variables
// are looked up. Anything else reaching here is a parser bug or a bare
// word wrongly placed - the latter is caught earlier by isLiteralToken, so
// this default case is purely defensive.
func (ev *Evaluator) handleLiteral(c *cursor) interface{} {
	v := c.advance()
	switch t := v.(type) {
	case *List:
		return t
	case float64:
		return t
	case bool:
		return t
	case string:
		if strings.HasPrefix(t, "\"") {
			return t[1:]
		}
		if strings.HasPrefix(t, ":") {
			return ev.currentVarScope().Get(t[1:])
		}
	}
	raise(KindSyntax, errInvalidLiteral, String(v))
	return nil
}

// handleFixed treats the head as a procedure name and collects exactly its
// declared arity worth of arguments, each parsed recursively via
// handleArg. A bare '-' reaching here (rather than being folded into a
// number literal by the parser, or consumed as part of an operator chain
// by handleOperator) is unary minus: handleFixed substitutes a
// one-argument negation callable instead of looking up "-" as the binary
// subtraction builtin.
func (ev *Evaluator) handleFixed(c *cursor) interface{} {
	callNode := c.here()
	nameTok, ok := c.advance().(string)
	if !ok {
		raise(KindSyntax, errInvalidLiteral, String(nameTok))
	}

	var fn Callable
	if nameTok == "-" {
		fn = unaryMinusFn
	} else {
		fn = ev.procedureScope.GetBinding(nameTok).valueAsCallable(ev, nameTok)
	}

	args := make([]interface{}, fn.Arity())
	for i := 0; i < fn.Arity(); i++ {
		if c.atEnd() {
			raise(KindSyntax, errNotEnoughArguments, nameTok)
		}
		arg := ev.handleArg(c, 0)
		if isUndefined(arg) {
			raise(KindSyntax, errCommandUsedAsValue, nameTok)
		}
		args[i] = arg
	}

	return ev.performCall(nameTok, fn, args, callNode)
}

// valueAsCallable resolves a procedure-scope binding to a Callable, or
// raises unbound-function. It lives on *Binding (rather than being a
// free function) purely so the nil-binding case reads naturally at the
// call site above.
func (b *Binding) valueAsCallable(ev *Evaluator, name string) Callable {
	if b == nil {
		raise(KindUnbound, errUnboundFunction, name)
	}
	fn, ok := b.Value.(Callable)
	if !ok {
		raise(KindUnbound, errUnboundFunction, name)
	}
	return fn
}

// handleVariadic consumes a "( ... )" form. If the next token is a bare
// procedure-name reference it is a variadic call: arguments are collected
// until the matching ')', and there must be at least as many as the
// callable's declared (minimum) arity. Otherwise the parens wrap a single
// ordinary expression and no extra arguments are permitted.
func (ev *Evaluator) handleVariadic(c *cursor) interface{} {
	c.advance() // consume "("

	if isBareWord(c.peek()) {
		callNode := c.here()
		name := c.advance().(string)
		fn := ev.procedureScope.GetBinding(name).valueAsCallable(ev, name)

		var args []interface{}
		for c.peek() != ")" {
			if c.atEnd() {
				raise(KindSyntax, errUnclosedVariadic, name)
			}
			arg := ev.handleArg(c, 0)
			if isUndefined(arg) {
				raise(KindSyntax, errCommandUsedAsValue, name)
			}
			args = append(args, arg)
		}
		c.advance() // consume ")"

		if len(args) < fn.Arity() {
			raise(KindSyntax, errNotEnoughArguments, name)
		}
		return ev.performCall(name, fn, args, callNode)
	}

	val := ev.handleArg(c, 0)
	if c.peek() != ")" {
		raise(KindSyntax, errUnclosedVariadic, "")
	}
	c.advance()
	return val
}

// handleOperator implements operator-precedence climbing. While the
// upcoming operator's priority is at least oldPrio it is consumed and its
// right operand parsed via handleArg at that operator's own priority -
// which, through its own tail call back into handleOperator, absorbs any
// further operators of at least that priority before returning, giving the
// usual precedence-climbing shape with no separate lookahead step needed
// here beyond the loop itself.
func (ev *Evaluator) handleOperator(c *cursor, left interface{}, oldPrio int) interface{} {
	for {
		op, ok := isOperatorToken(c.peek())
		if !ok {
			return left
		}
		p := operatorPriority[op]
		if p < oldPrio {
			return left
		}
		opNode := c.here()
		c.advance()
		right := ev.handleArg(c, p)
		left = ev.applyOperator(op, left, right, opNode)
	}
}

func (ev *Evaluator) applyOperator(op operator, left, right interface{}, node *List) interface{} {
	name := string(op)
	fn := ev.procedureScope.GetBinding(name).valueAsCallable(ev, name)
	return ev.performCall(name, fn, []interface{}{left, right}, node)
}

// handleTo reads `to name :arg1 :arg2 ... <body> end` and installs a
// procedure callable in the procedure scope. Body tokens are copied into a
// fresh list (rather than just bounding the existing cursor) so the
// procedure can be re-evaluated later as a self-contained body that
// terminates at "end" instead of running on into whatever follows it in
// the enclosing program; each copied cell's source span is re-recorded
// under its new identity so tracing observers resolve correctly against
// the copy, not the original definition site.
func (ev *Evaluator) handleTo(c *cursor) {
	c.advance() // consume "to"

	nameTok, ok := c.advance().(string)
	if !ok {
		raise(KindSyntax, errExpectedProcedureName, "")
	}

	var params []string
	for {
		s, ok := c.peek().(string)
		if !ok || !strings.HasPrefix(s, ":") || s == ":" {
			break
		}
		params = append(params, s[1:])
		c.advance()
	}

	bodyBuilder := NewListBuilder()
	for {
		if c.atEnd() {
			raise(KindSyntax, errUnterminatedToEnd, nameTok)
		}
		if s, ok := c.peek().(string); ok && s == "end" {
			c.advance()
			break
		}
		origNode := c.here()
		val := c.advance()
		newNode := bodyBuilder.Push(val)
		if span, ok := ev.sourceMap.lookup(origNode); ok {
			ev.sourceMap.record(newNode, span)
		}
	}

	proc := &procedure{name: nameTok, params: params, body: bodyBuilder.List()}
	ev.procedureScope.BindValue(nameTok, proc)
}

// performCall is the single suspension point: every call site -
// fixed-arity, variadic, or operator application - routes through here,
// which checks for a pending break/pause before invoking the callable and
// fires the oncall/onvalue observers around it.
func (ev *Evaluator) performCall(name string, fn Callable, args []interface{}, node *List) interface{} {
	ev.interp.checkBreak()
	ev.interp.fireOnCall(fn, args, node)
	result := fn.Call(ev, args)
	ev.interp.fireOnValue(result, node)
	return result
}

var unaryMinusFn = &nativeFn{
	name:  "unary-",
	arity: 1,
	fn: func(ev *Evaluator, args []interface{}) interface{} {
		n, ok := args[0].(float64)
		if !ok {
			raise(KindType, errExpectedNumber, String(args[0]))
		}
		return -n
	},
}
