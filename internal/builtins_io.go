package internal

import (
	"strings"
	"time"
)

// registerIO installs print/show/wait. print/show differ only in the
// outer-list bracket policy: print strips bare brackets from a top-level
// list argument, show keeps them; nested lists keep brackets in both.
func registerIO(scope *Scope) {
	scope.BindValue("print", &nativeFn{name: "print", arity: 1, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		ev.interp.print(joinPrintable(args, false))
		return undefinedValue
	}})

	scope.BindValue("show", &nativeFn{name: "show", arity: 1, variadic: true, fn: func(ev *Evaluator, args []interface{}) interface{} {
		ev.interp.print(joinPrintable(args, true))
		return undefinedValue
	}})

	scope.BindValue("wait", &nativeFn{name: "wait", arity: 1, fn: func(ev *Evaluator, args []interface{}) interface{} {
		frames, ok := args[0].(float64)
		if !ok {
			raise(KindType, errExpectedNumber, String(args[0]))
		}
		waitFrames(ev, frames)
		return undefinedValue
	}})
}

func joinPrintable(args []interface{}, bracketsAtTopLevel bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		if l, ok := a.(*List); ok && !bracketsAtTopLevel {
			var elems []string
			l.Each(func(v interface{}) { elems = append(elems, String(v)) })
			parts[i] = strings.Join(elems, " ")
			continue
		}
		parts[i] = String(a)
	}
	return strings.Join(parts, " ")
}

// waitFrames delays frames/60 seconds, cancellable via the interpreter's
// onbreak hook - break() fires the hook synchronously so the timer aborts
// immediately instead of waiting out its remaining duration.
func waitFrames(ev *Evaluator, frames float64) {
	d := time.Duration(frames/60.0*1000) * time.Millisecond
	timer := time.NewTimer(d)
	defer timer.Stop()

	abort := make(chan struct{}, 1)
	ev.interp.setOnBreak(func(reason string) {
		select {
		case abort <- struct{}{}:
		default:
		}
	})
	defer ev.interp.clearOnBreak()

	select {
	case <-timer.C:
	case <-abort:
		raise(KindInterruption, errBreakRequested, "")
	}
}
