package internal

import "strings"

// List is a singly-linked, functionally immutable-at-the-tail cons cell.
// There is exactly one empty instance, reachable through Empty(); its own
// tail points back at itself so iteration can test identity rather than
// walk forever.
type List struct {
	Head interface{}
	Tail *List
}

var emptyList = &List{}

func init() {
	emptyList.Tail = emptyList
}

// Empty returns the unique empty list sentinel.
func Empty() *List {
	return emptyList
}

// Cons builds a new list cell. A nil tail is treated as Empty.
func Cons(head interface{}, tail *List) *List {
	if tail == nil {
		tail = emptyList
	}
	return &List{Head: head, Tail: tail}
}

// FromValues builds a list from a Go slice, preserving order.
func FromValues(values []interface{}) *List {
	b := NewListBuilder()
	for _, v := range values {
		b.Push(v)
	}
	return b.List()
}

// IsEmpty reports whether l is the empty list.
func (l *List) IsEmpty() bool {
	return l == emptyList
}

// Each calls fn with every head in order. It stops at the first repeat of
// the sentinel (i.e. once IsEmpty is reached).
func (l *List) Each(fn func(v interface{})) {
	for cur := l; !cur.IsEmpty(); cur = cur.Tail {
		fn(cur.Head)
	}
}

// Values collects the list's heads into a Go slice.
func (l *List) Values() []interface{} {
	out := make([]interface{}, 0, l.Count())
	l.Each(func(v interface{}) { out = append(out, v) })
	return out
}

// Count returns the number of elements in the list.
func (l *List) Count() int {
	n := 0
	for cur := l; !cur.IsEmpty(); cur = cur.Tail {
		n++
	}
	return n
}

// End returns the last non-empty cursor, or Empty() if l is empty.
func (l *List) End() *List {
	cur := l
	for !cur.Tail.IsEmpty() {
		cur = cur.Tail
	}
	if cur.IsEmpty() {
		return emptyList
	}
	return cur
}

// Reverse returns a new list with elements in reverse order. l is untouched.
func (l *List) Reverse() *List {
	b := NewListBuilder()
	vals := l.Values()
	for i := len(vals) - 1; i >= 0; i-- {
		b.Push(vals[i])
	}
	return b.List()
}

// Filter returns a new list keeping only elements for which keep returns true.
func (l *List) Filter(keep func(v interface{}) bool) *List {
	b := NewListBuilder()
	l.Each(func(v interface{}) {
		if keep(v) {
			b.Push(v)
		}
	})
	return b.List()
}

// Map returns a new list with fn applied to every element.
func (l *List) Map(fn func(v interface{}) interface{}) *List {
	b := NewListBuilder()
	l.Each(func(v interface{}) { b.Push(fn(v)) })
	return b.List()
}

// Equal reports whether a and b are equal: non-list values by Go equality,
// lists by having the same elements, recursively, head-wise. Both lists are
// allowed to contain the empty-list sentinel.
func Equal(a, b interface{}) bool {
	al, aIsList := a.(*List)
	bl, bIsList := b.(*List)
	if aIsList != bIsList {
		return false
	}
	if !aIsList {
		return a == b
	}
	for {
		if al.IsEmpty() && bl.IsEmpty() {
			return true
		}
		if al.IsEmpty() != bl.IsEmpty() {
			return false
		}
		if !Equal(al.Head, bl.Head) {
			return false
		}
		al, bl = al.Tail, bl.Tail
	}
}

// Stringify renders v the way Logo's print/show primitives do: atoms via
// String(v), lists wrapped in open/close with a single space between
// elements, and cycles printed as "<recursive>" rather than looping forever.
func Stringify(v interface{}, open, close string) string {
	visited := map[*List]bool{}
	return stringify(v, open, close, visited)
}

func stringify(v interface{}, open, close string, visited map[*List]bool) string {
	l, isList := v.(*List)
	if !isList {
		return String(v)
	}
	if l.IsEmpty() {
		return open + close
	}
	if visited[l] {
		return "<recursive>"
	}
	visited[l] = true
	defer delete(visited, l)

	var parts []string
	l.Each(func(el interface{}) {
		parts = append(parts, stringify(el, open, close, visited))
	})
	return open + strings.Join(parts, " ") + close
}
