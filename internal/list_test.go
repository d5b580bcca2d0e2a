package internal

import "testing"

func TestEmptyListIdentity(t *testing.T) {
	if Empty() != Empty() {
		t.Fatal("Empty() must return the same sentinel instance every time")
	}
	if Empty().Tail != Empty() {
		t.Fatal("the empty list's tail must be itself")
	}
}

func TestListFromValuesPreservesOrder(t *testing.T) {
	l := FromValues([]interface{}{1.0, 2.0, 3.0})
	got := l.Values()
	want := []interface{}{1.0, 2.0, 3.0}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReverseTwiceIsIdentity(t *testing.T) {
	l := FromValues([]interface{}{1.0, 2.0, 3.0})
	if !Equal(l.Reverse().Reverse(), l) {
		t.Fatal("reverse(reverse(L)) must equal L")
	}
}

func TestListBuilderPushReturnsCreatedNode(t *testing.T) {
	b := NewListBuilder()
	n1 := b.Push("a")
	n2 := b.Push("b")
	if n1 == n2 {
		t.Fatal("Push must create a distinct node each call")
	}
	if n1.Head != "a" || n2.Head != "b" {
		t.Fatalf("unexpected heads: %v %v", n1.Head, n2.Head)
	}
}

func TestListBuilderAttach(t *testing.T) {
	b := NewListBuilder()
	b.Push("a")
	spliced := FromValues([]interface{}{"b", "c"})
	b.Attach(spliced)
	b.Push("d")
	got := b.List().Values()
	want := []interface{}{"a", "b", "c", "d"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStringifyHandlesCycles(t *testing.T) {
	// A list containing itself as an element - the kind of reference
	// cycle the visited-map detection in Stringify guards against.
	node := &List{Tail: Empty()}
	node.Head = node
	if got := Stringify(node, "[", "]"); got != "[<recursive>]" {
		t.Fatalf("expected cycle marker, got %q", got)
	}
}

func TestEqualStructural(t *testing.T) {
	a := FromValues([]interface{}{1.0, FromValues([]interface{}{2.0, 3.0})})
	b := FromValues([]interface{}{1.0, FromValues([]interface{}{2.0, 3.0})})
	if !Equal(a, b) {
		t.Fatal("structurally identical lists must compare equal")
	}
}
