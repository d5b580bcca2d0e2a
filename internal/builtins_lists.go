package internal

import "strings"

// registerLists installs the word/list construction and access primitives.
func registerLists(scope *Scope) {
	scope.BindValue("word", &nativeFn{name: "word", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		var sb strings.Builder
		for _, a := range args {
			sb.WriteString(asWord(a))
		}
		return sb.String()
	}})

	scope.BindValue("se", &nativeFn{name: "se", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		b := NewListBuilder()
		for _, a := range args {
			if l, ok := a.(*List); ok {
				l.Each(func(v interface{}) { b.Push(v) })
			} else {
				b.Push(a)
			}
		}
		return b.List()
	}})

	scope.BindValue("list", &nativeFn{name: "list", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return FromValues(args)
	}})

	scope.BindValue("fput", &nativeFn{name: "fput", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		l := asList(args[1])
		return Cons(args[0], l)
	}})

	scope.BindValue("lput", &nativeFn{name: "lput", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		l := asList(args[1])
		b := NewListBuilder()
		l.Each(func(v interface{}) { b.Push(v) })
		b.Push(args[0])
		return b.List()
	}})

	scope.BindValue("combine", &nativeFn{name: "combine", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		if _, ok := args[1].(string); ok {
			return asWord(args[0]) + asWord(args[1])
		}
		return Cons(args[0], asList(args[1]))
	}})

	scope.BindValue("reverse", &nativeFn{name: "reverse", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return asList(args[0]).Reverse()
	}})

	scope.BindValue("count", &nativeFn{name: "count", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		switch v := args[0].(type) {
		case *List:
			return float64(v.Count())
		case string:
			return float64(len([]rune(v)))
		default:
			raise(KindType, errExpectedList, String(args[0]))
			return nil
		}
	}})

	scope.BindValue("first", &nativeFn{name: "first", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		switch v := args[0].(type) {
		case *List:
			if v.IsEmpty() {
				raise(KindType, errEmptyList, "")
			}
			return v.Head
		case string:
			r := []rune(v)
			if len(r) == 0 {
				raise(KindType, errEmptyList, "")
			}
			return string(r[0])
		default:
			raise(KindType, errExpectedList, String(args[0]))
			return nil
		}
	}})

	scope.BindValue("last", &nativeFn{name: "last", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		switch v := args[0].(type) {
		case *List:
			if v.IsEmpty() {
				raise(KindType, errEmptyList, "")
			}
			return v.End().Head
		case string:
			r := []rune(v)
			if len(r) == 0 {
				raise(KindType, errEmptyList, "")
			}
			return string(r[len(r)-1])
		default:
			raise(KindType, errExpectedList, String(args[0]))
			return nil
		}
	}})

	butfirst := &nativeFn{name: "butfirst", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		switch v := args[0].(type) {
		case *List:
			if v.IsEmpty() {
				raise(KindType, errEmptyList, "")
			}
			return v.Tail
		case string:
			r := []rune(v)
			if len(r) == 0 {
				raise(KindType, errEmptyList, "")
			}
			return string(r[1:])
		default:
			raise(KindType, errExpectedList, String(args[0]))
			return nil
		}
	}}
	scope.BindValue("butfirst", butfirst)
	scope.BindValue("bf", butfirst)

	// butlast on a string drops the last character.
	butlast := &nativeFn{name: "butlast", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		switch v := args[0].(type) {
		case *List:
			if v.IsEmpty() {
				raise(KindType, errEmptyList, "")
			}
			vals := v.Values()
			return FromValues(vals[:len(vals)-1])
		case string:
			r := []rune(v)
			if len(r) == 0 {
				raise(KindType, errEmptyList, "")
			}
			return string(r[:len(r)-1])
		default:
			raise(KindType, errExpectedList, String(args[0]))
			return nil
		}
	}}
	scope.BindValue("butlast", butlast)
	scope.BindValue("bl", butlast)

	scope.BindValue("item", &nativeFn{name: "item", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		idx, ok := args[0].(float64)
		if !ok {
			raise(KindType, errExpectedNumber, String(args[0]))
		}
		i := int(idx)
		switch v := args[1].(type) {
		case *List:
			vals := v.Values()
			if i < 1 || i > len(vals) {
				raise(KindType, errIndexOutOfRange, String(args[0]))
			}
			return vals[i-1]
		case string:
			r := []rune(v)
			if i < 1 || i > len(r) {
				raise(KindType, errIndexOutOfRange, String(args[0]))
			}
			return string(r[i-1])
		default:
			raise(KindType, errExpectedList, String(args[1]))
			return nil
		}
	}})

	scope.BindValue("remove", &nativeFn{name: "remove", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		l := asList(args[1])
		return l.Filter(func(v interface{}) bool { return !equalValues(v, args[0]) })
	}})
}

func asList(v interface{}) *List {
	l, ok := v.(*List)
	if !ok {
		raise(KindType, errExpectedList, String(v))
	}
	return l
}

func asWord(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64, bool:
		return String(t)
	default:
		raise(KindType, errExpectedWord, String(v))
		return ""
	}
}
