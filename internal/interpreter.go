package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Interpreter is the host-facing facade: construct one, register embedder
// builtins into its ProcedureScope, install observers, and drive it with
// Execute/Pause/Continue/Break. Its procedureScope and globalScope persist
// across Execute calls so definitions accumulate from one run to the next.
type Interpreter struct {
	procedureScope *Scope
	globalScope    *Scope
	sourceMap      *sourceMap
	ctrl           *control
	log            *logrus.Entry

	OnCall     func(fn Callable, args []interface{}, node *List)
	OnValue    func(value interface{}, node *List)
	OnPrint    func(s string)
	OnContinue func()
}

// NewInterpreter builds an interpreter with the builtin registry installed
// in a fresh procedure scope and a logrus logger at Info level by default.
func NewInterpreter() *Interpreter {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	interp := &Interpreter{
		globalScope: NewScope(nil),
		sourceMap:   newSourceMap(),
		ctrl:        newControl(),
		log:         log.WithField("component", "interpreter"),
	}
	interp.procedureScope = NewScope(nil)
	registerBuiltins(interp.procedureScope)
	return interp
}

// SetLogLevel exposes the underlying logrus level the way an embedder
// might want to crank up Debug instrumentation for execute/pause/continue/
// break transitions.
func (interp *Interpreter) SetLogLevel(level logrus.Level) {
	interp.log.Logger.SetLevel(level)
}

// ProcedureScope is the registration surface for embedder-supplied
// builtins: interp.ProcedureScope().BindValues({...}).
func (interp *Interpreter) ProcedureScope() *Scope {
	return interp.procedureScope
}

// Parse parses source without evaluating it, recording spans into this
// interpreter's long-lived source map so sourceForNode keeps working
// across repeated Execute calls.
func (interp *Interpreter) Parse(source string) (*List, error) {
	program, sm, err := Parse(source)
	if err != nil {
		return nil, err
	}
	for node, span := range sm.spans {
		interp.sourceMap.record(node, span)
	}
	return program, nil
}

// Execute parses and evaluates source to completion or failure. It fails
// with "already running" if called while another program is active on
// this interpreter, and it always clears running/breakFlag and drops any
// pending onbreak/oncontinue hook before returning, on every exit path.
func (interp *Interpreter) Execute(source string) (result interface{}, err error) {
	if !interp.ctrl.tryStart() {
		return nil, &LogoError{Kind: KindInterruption, Err: errAlreadyRunning}
	}
	defer interp.ctrl.reset()

	interp.log.Debug("execute: start")
	defer interp.log.Debug("execute: done")

	program, parseErr := interp.Parse(source)
	if parseErr != nil {
		interp.log.WithError(parseErr).Debug("execute: parse failed")
		return nil, parseErr
	}

	type outcome struct {
		value interface{}
		err   error
	}
	done := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if le, ok := r.(*LogoError); ok {
					done <- outcome{err: le}
					return
				}
				done <- outcome{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		ev := newEvaluator(interp)
		v := ev.Evaluate(program)
		done <- outcome{value: v}
	}()

	out := <-done
	if out.err != nil {
		interp.log.WithError(out.err).Debug("execute: evaluation failed")
		return nil, out.err
	}
	return out.value, nil
}

// Pause requests that the running program park at its next suspension
// point.
func (interp *Interpreter) Pause() {
	interp.log.Debug("pause requested")
	interp.ctrl.pause()
}

// Continue resumes a paused program.
func (interp *Interpreter) Continue() {
	interp.log.Debug("continue requested")
	interp.ctrl.continueRun()
	if interp.OnContinue != nil {
		interp.OnContinue()
	}
}

// Break cancels the running program. If a cancellable builtin (wait, most
// notably) has registered an onbreak hook, it fires synchronously so the
// in-flight operation aborts immediately; a paused program is resumed so
// its pending checkBreak can observe the break and raise.
func (interp *Interpreter) Break(reason string) {
	interp.log.WithField("reason", reason).Debug("break requested")
	interp.ctrl.breakNow(reason)
}

// sourceForNode resolves an opaque node handle (as handed to OnCall/
// OnValue) back to the source span that produced it.
func (interp *Interpreter) sourceForNode(node *List) (SourceSpan, bool) {
	return interp.sourceMap.lookup(node)
}

func (interp *Interpreter) checkBreak() {
	interp.ctrl.checkBreak()
}

func (interp *Interpreter) fireOnCall(fn Callable, args []interface{}, node *List) {
	if interp.OnCall != nil {
		interp.OnCall(fn, args, node)
	}
}

func (interp *Interpreter) fireOnValue(value interface{}, node *List) {
	if interp.OnValue != nil {
		interp.OnValue(value, node)
	}
}

func (interp *Interpreter) print(s string) {
	if interp.OnPrint != nil {
		interp.OnPrint(s)
	}
}

func (interp *Interpreter) setOnBreak(fn func(reason string)) {
	interp.ctrl.setOnBreak(fn)
}

func (interp *Interpreter) clearOnBreak() {
	interp.ctrl.clearOnBreak()
}
