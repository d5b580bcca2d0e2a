package internal

// registerVars installs thing/make/local/global/push. make/local act on
// the variable scope; procedure definitions live in the separate
// procedure scope and are untouched by any of these.
func registerVars(scope *Scope) {
	scope.BindValue("thing", &nativeFn{name: "thing", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return ev.currentVarScope().Get(asWord(args[0]))
	}})

	scope.BindValue("make", &nativeFn{name: "make", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		ev.currentVarScope().Set(asWord(args[0]), args[1])
		return undefinedValue
	}})

	scope.BindValue("local", &nativeFn{name: "local", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		ev.currentVarScope().BindValue(asWord(args[0]), undefinedValue)
		return undefinedValue
	}})

	// global ensures a binding exists in the root scope and aliases the
	// same Binding cell into the current scope, so writes from either
	// scope are visible through both.
	scope.BindValue("global", &nativeFn{name: "global", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		name := asWord(args[0])
		root := ev.currentVarScope().Root()
		b := root.GetBinding(name)
		if b == nil {
			b = NewBinding(undefinedValue)
			root.Bind(name, b)
		}
		ev.currentVarScope().Bind(name, b)
		return undefinedValue
	}})

	// push prepends a value onto a list held by a variable.
	scope.BindValue("push", &nativeFn{name: "push", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		name := asWord(args[0])
		cur := asList(ev.currentVarScope().Get(name))
		ev.currentVarScope().Set(name, Cons(args[1], cur))
		return undefinedValue
	}})
}
