package internal

// registerLogic installs true/false/and/or/not.
func registerLogic(scope *Scope) {
	scope.BindValue("true", &nativeFn{name: "true", arity: 0, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return true
	}})
	scope.BindValue("false", &nativeFn{name: "false", arity: 0, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return false
	}})

	scope.BindValue("not", &nativeFn{name: "not", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return !truthy(args[0])
	}})

	// Arguments are already evaluated by handleFixed/handleVariadic before
	// performCall ever reaches this function, so "short-circuit" here means
	// short-circuiting the boolean computation across an arbitrary number
	// of already-evaluated arguments, not skipping evaluation of later ones.
	scope.BindValue("and", &nativeFn{name: "and", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		for _, a := range args {
			if !truthy(a) {
				return false
			}
		}
		return true
	}})
	scope.BindValue("or", &nativeFn{name: "or", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		for _, a := range args {
			if truthy(a) {
				return true
			}
		}
		return false
	}})
}

func truthy(v interface{}) bool {
	b, ok := v.(bool)
	if !ok {
		raise(KindType, errExpectedBool, String(v))
	}
	return b
}
