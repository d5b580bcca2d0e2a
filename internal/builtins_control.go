package internal

// registerControl installs stop/output/run/runresult/repeat/forever/if/
// ifelse. repeat/forever/if/ifelse all evaluate a list-literal body
// against the *current* context (never pushing a fresh one), so stop/
// output inside them unwinds the surrounding procedure rather than just
// the construct.
func registerControl(scope *Scope) {
	scope.BindValue("stop", &nativeFn{name: "stop", arity: 0, fn: func(ev *Evaluator, args []interface{}) interface{} {
		requireProcedureContext(ev)
		ctx := ev.currentContext()
		ctx.Stop = true
		return undefinedValue
	}})

	output := &nativeFn{name: "output", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		requireProcedureContext(ev)
		ctx := ev.currentContext()
		ctx.Output = args[0]
		ctx.HasOutput = true
		ctx.Stop = true
		return undefinedValue
	}}
	scope.BindValue("output", output)
	scope.BindValue("op", output)

	scope.BindValue("run", &nativeFn{name: "run", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return ev.Evaluate(asList(args[0]))
	}})

	scope.BindValue("runresult", &nativeFn{name: "runresult", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		v := ev.Evaluate(asList(args[0]))
		if isUndefined(v) {
			return Empty()
		}
		return Cons(v, Empty())
	}})

	scope.BindValue("repeat", &nativeFn{name: "repeat", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		n := int(asNumber(args[0]))
		body := asList(args[1])
		for i := 0; i < n; i++ {
			ev.Evaluate(body)
			if ev.currentContext().Stop {
				break
			}
		}
		return undefinedValue
	}})

	scope.BindValue("forever", &nativeFn{name: "forever", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		body := asList(args[0])
		for {
			ev.Evaluate(body)
			if ev.currentContext().Stop {
				break
			}
			ev.interp.checkBreak()
		}
		return undefinedValue
	}})

	scope.BindValue("if", &nativeFn{name: "if", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		if truthy(args[0]) {
			return ev.Evaluate(asList(args[1]))
		}
		return undefinedValue
	}})

	// ifelse(cond, then, else): evaluate exactly the chosen branch.
	scope.BindValue("ifelse", &nativeFn{name: "ifelse", arity: 3, fn: func(ev *Evaluator, args []interface{}) interface{} {
		if truthy(args[0]) {
			return ev.Evaluate(asList(args[1]))
		}
		return ev.Evaluate(asList(args[2]))
	}})
}

func requireProcedureContext(ev *Evaluator) {
	if ev.atGlobalContext() {
		raise(KindSyntax, errBareStopOrOutput, "")
	}
}
