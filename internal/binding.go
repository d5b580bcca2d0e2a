package internal

// Binding is a one-slot mutable cell. Variables are bound through bindings,
// rather than stored directly in a scope's map, so that `global` can share
// a single cell across several scopes in the chain.
type Binding struct {
	Value interface{}
}

// NewBinding creates a binding holding value.
func NewBinding(value interface{}) *Binding {
	return &Binding{Value: value}
}
