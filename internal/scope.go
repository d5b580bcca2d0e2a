package internal

// Scope is a chain of name -> Binding mappings with a parent pointer.
// Two independent chains exist at runtime: the procedure scope (names to
// callables) and the variable scope (names to values). Conflating them is
// a mistake the evaluator must not make.
type Scope struct {
	parent   *Scope
	bindings map[string]*Binding
}

// NewScope creates a scope parented to parent (nil for a root scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, bindings: make(map[string]*Binding)}
}

// Root walks to the outermost scope in the chain.
func (s *Scope) Root() *Scope {
	cur := s
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// GetBinding returns the binding for name found by walking the chain, or
// nil if name is unbound anywhere in the chain.
func (s *Scope) GetBinding(name string) *Binding {
	for cur := s; cur != nil; cur = cur.parent {
		if b, ok := cur.bindings[name]; ok {
			return b
		}
	}
	return nil
}

// Get returns the value bound to name, or raises an unbound-variable error.
func (s *Scope) Get(name string) interface{} {
	if b := s.GetBinding(name); b != nil {
		return b.Value
	}
	raise(KindUnbound, errUnboundVariable, name)
	return nil
}

// Set updates the binding for name wherever it is found in the chain; if
// it is nowhere found, a fresh binding is created in the root scope
// (implicit globals) rather than in the current scope.
func (s *Scope) Set(name string, value interface{}) {
	if b := s.GetBinding(name); b != nil {
		b.Value = value
		return
	}
	s.Root().bindings[name] = NewBinding(value)
}

// Bind installs binding under name in the current scope, shadowing any
// binding of the same name in an enclosing scope.
func (s *Scope) Bind(name string, binding *Binding) {
	s.bindings[name] = binding
}

// BindValue is shorthand for Bind(name, NewBinding(value)).
func (s *Scope) BindValue(name string, value interface{}) {
	s.Bind(name, NewBinding(value))
}

// BindValues bulk-registers a map of name to value, used to install
// builtins and embedder-supplied APIs in one call.
func (s *Scope) BindValues(values map[string]interface{}) {
	for name, v := range values {
		s.BindValue(name, v)
	}
}
