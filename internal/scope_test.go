package internal

import "testing"

func TestScopeSetUpdatesExistingBindingNotShadow(t *testing.T) {
	root := NewScope(nil)
	root.BindValue("x", 1.0)
	child := NewScope(root)

	child.Set("x", 2.0)

	if got := child.Get("x"); got != 2.0 {
		t.Fatalf("child should see updated value, got %v", got)
	}
	if got := root.Get("x"); got != 2.0 {
		t.Fatalf("set on an already-bound name must update in place, not shadow; root has %v", got)
	}
}

func TestScopeSetCreatesInRootWhenUnbound(t *testing.T) {
	root := NewScope(nil)
	mid := NewScope(root)
	leaf := NewScope(mid)

	leaf.Set("y", 5.0)

	if _, ok := leaf.bindings["y"]; ok {
		t.Fatal("an implicit global must not be created in the scope that wrote it")
	}
	if got := root.Get("y"); got != 5.0 {
		t.Fatalf("implicit global should land in the root scope, got %v", got)
	}
}

func TestScopeGetUnboundRaises(t *testing.T) {
	s := NewScope(nil)
	defer func() {
		r := recover()
		le, ok := r.(*LogoError)
		if !ok || le.Kind != KindUnbound {
			t.Fatalf("expected KindUnbound panic, got %v", r)
		}
	}()
	s.Get("nope")
}

func TestGlobalAliasesSingleBindingAcrossScopes(t *testing.T) {
	root := NewScope(nil)
	child := NewScope(root)

	b := NewBinding(undefinedValue)
	root.Bind("g", b)
	child.Bind("g", b)

	child.Set("g", 9.0)
	if root.Get("g") != 9.0 {
		t.Fatal("global must alias a single binding cell across scopes")
	}
}
