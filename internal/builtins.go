package internal

// registerBuiltins wires every category's registration function into scope
// at interpreter construction.
func registerBuiltins(scope *Scope) {
	registerLogic(scope)
	registerLists(scope)
	registerIO(scope)
	registerVars(scope)
	registerArith(scope)
	registerPredicates(scope)
	registerControl(scope)
	registerTemplates(scope)
}
