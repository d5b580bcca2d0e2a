package internal

// registerPredicates installs emptyp/equalp/listp/memberp/numberp/wordp.
func registerPredicates(scope *Scope) {
	scope.BindValue("emptyp", &nativeFn{name: "emptyp", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		switch v := args[0].(type) {
		case *List:
			return v.IsEmpty()
		case string:
			return v == ""
		default:
			return false
		}
	}})

	scope.BindValue("equalp", &nativeFn{name: "equalp", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return equalValues(args[0], args[1])
	}})

	scope.BindValue("listp", &nativeFn{name: "listp", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		_, ok := args[0].(*List)
		return ok
	}})

	// memberp checks membership by value, not by position.
	scope.BindValue("memberp", &nativeFn{name: "memberp", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		l, ok := args[1].(*List)
		if !ok {
			raise(KindType, errExpectedList, String(args[1]))
		}
		found := false
		l.Each(func(v interface{}) {
			if equalValues(v, args[0]) {
				found = true
			}
		})
		return found
	}})

	scope.BindValue("numberp", &nativeFn{name: "numberp", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		_, ok := args[0].(float64)
		return ok
	}})

	scope.BindValue("wordp", &nativeFn{name: "wordp", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		_, ok := args[0].(string)
		return ok
	}})
}
