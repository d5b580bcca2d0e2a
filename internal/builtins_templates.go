package internal

// registerTemplates installs apply/invoke/foreach/map. The lock-step
// iteration helper advances the primary source and any additional sources
// together, terminating as soon as any source is exhausted.
func registerTemplates(scope *Scope) {
	scope.BindValue("apply", &nativeFn{name: "apply", arity: 2, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return callTemplate(ev, args[0], asList(args[1]).Values())
	}})

	scope.BindValue("invoke", &nativeFn{name: "invoke", arity: 1, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		return callTemplate(ev, args[0], args[1:])
	}})

	// foreach takes its template last: (foreach list1 list2 ... template),
	// the inverse order from apply/invoke/map, matching UCBLogo's own
	// historical asymmetry between these primitives.
	scope.BindValue("foreach", &nativeFn{name: "foreach", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		tmpl := args[len(args)-1]
		sources := args[:len(args)-1]
		forEachLockStep(ev, sources, func(row []interface{}) {
			callTemplate(ev, tmpl, row)
		})
		return undefinedValue
	}})

	// map takes its template first, matching apply/invoke: (map template
	// list1 list2 ...).
	scope.BindValue("map", &nativeFn{name: "map", arity: 2, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		tmpl := args[0]
		sources := args[1:]
		b := NewListBuilder()
		forEachLockStep(ev, sources, func(row []interface{}) {
			b.Push(callTemplate(ev, tmpl, row))
		})
		return b.List()
	}})
}

// forEachLockStep advances every source's list cursor together, invoking
// fn once per step with the current head of each source, stopping as soon
// as any source runs out.
func forEachLockStep(ev *Evaluator, sources []interface{}, fn func(row []interface{})) {
	cursors := make([]*List, len(sources))
	for i, s := range sources {
		cursors[i] = asList(s)
	}

	for {
		row := make([]interface{}, len(cursors))
		for i, c := range cursors {
			if c.IsEmpty() {
				return
			}
			row[i] = c.Head
		}
		fn(row)
		if ev.currentContext().Stop {
			return
		}
		for i := range cursors {
			cursors[i] = cursors[i].Tail
		}
	}
}
