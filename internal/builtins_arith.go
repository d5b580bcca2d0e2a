package internal

// registerArith installs the infix operators and their named synonyms,
// plus the comparators. Operators are registered under their
// one-character names so applyOperator's lookup-by-token-name finds the
// same callable a named call would.
func registerArith(scope *Scope) {
	add := binaryNumFn("+", func(a, b float64) float64 { return a + b })
	sub := binaryNumFn("-", func(a, b float64) float64 { return a - b })
	mul := binaryNumFn("*", func(a, b float64) float64 { return a * b })
	div := binaryNumFn("/", func(a, b float64) float64 {
		if b == 0 {
			raise(KindType, errExpectedNumber, "division by zero")
		}
		return a / b
	})

	scope.BindValue("+", add)
	scope.BindValue("-", sub)
	scope.BindValue("*", mul)
	scope.BindValue("/", div)

	scope.BindValue("sum", &nativeFn{name: "sum", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		total := 0.0
		for _, a := range args {
			total += asNumber(a)
		}
		return total
	}})
	scope.BindValue("difference", &nativeFn{name: "difference", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return asNumber(args[0]) - asNumber(args[1])
	}})
	scope.BindValue("product", &nativeFn{name: "product", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		total := 1.0
		for _, a := range args {
			total *= asNumber(a)
		}
		return total
	}})
	scope.BindValue("quotient", &nativeFn{name: "quotient", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		b := asNumber(args[1])
		if b == 0 {
			raise(KindType, errExpectedNumber, "division by zero")
		}
		return asNumber(args[0]) / b
	}})
	scope.BindValue("remainder", &nativeFn{name: "remainder", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		a, b := int(asNumber(args[0])), int(asNumber(args[1]))
		if b == 0 {
			raise(KindType, errExpectedNumber, "division by zero")
		}
		return float64(a % b)
	}})

	scope.BindValue("<", &nativeFn{name: "<", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return asNumber(args[0]) < asNumber(args[1])
	}})
	scope.BindValue(">", &nativeFn{name: ">", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return asNumber(args[0]) > asNumber(args[1])
	}})
	scope.BindValue("=", &nativeFn{name: "=", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return equalValues(args[0], args[1])
	}})
}

func binaryNumFn(name string, op func(a, b float64) float64) *nativeFn {
	return &nativeFn{name: name, arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return op(asNumber(args[0]), asNumber(args[1]))
	}}
}

func asNumber(v interface{}) float64 {
	n, ok := v.(float64)
	if !ok {
		raise(KindType, errExpectedNumber, String(v))
	}
	return n
}
