package internal

// Template is either a bare procedure name (called directly with the
// supplied arguments) or a list whose head is an argument-name list and
// whose tail is a body. Unlike procedure.Call it pushes only a scope - the
// template shares the enclosing context, so `stop`/`output` inside a
// template body unwinds the caller's procedure rather than just the
// template.
func callTemplate(ev *Evaluator, tmpl interface{}, args []interface{}) interface{} {
	switch t := tmpl.(type) {
	case string:
		name := t
		fn := ev.procedureScope.GetBinding(name).valueAsCallable(ev, name)
		return ev.performCall(name, fn, args, nil)
	case *List:
		return callTemplateList(ev, t, args)
	default:
		raise(KindType, errExpectedWord, String(tmpl))
		return nil
	}
}

func callTemplateList(ev *Evaluator, tmpl *List, args []interface{}) interface{} {
	if tmpl.IsEmpty() {
		raise(KindSyntax, errTemplateWithoutArgs, "")
	}

	paramList, ok := tmpl.Head.(*List)
	if !ok {
		raise(KindSyntax, errTemplateWithoutArgs, "")
	}

	body := tmpl.Tail

	scope := NewScope(ev.currentVarScope())
	i := 0
	paramList.Each(func(v interface{}) {
		name, ok := v.(string)
		if !ok {
			raise(KindType, errExpectedWord, String(v))
		}
		var val interface{} = undefinedValue
		if i < len(args) {
			val = args[i]
		}
		scope.BindValue(name, val)
		i++
	})

	ev.pushScope(scope)
	defer ev.popScope()

	return ev.evaluateLast(body)
}
