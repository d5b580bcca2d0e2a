package internal

// ListBuilder appends to a list in amortized O(1) by keeping a pointer to
// the last cell written so far. It only mutates cells it created itself
// or took over through Attach.
type ListBuilder struct {
	head *List
	end  *List
}

// NewListBuilder returns a builder for an initially empty list.
func NewListBuilder() *ListBuilder {
	return &ListBuilder{head: Empty(), end: Empty()}
}

// Push appends a single element and returns the cell that was created for
// it, so callers (the parser, most notably) can key a source map off it.
func (b *ListBuilder) Push(v interface{}) *List {
	node := Cons(v, Empty())
	if b.head.IsEmpty() {
		b.head = node
	} else {
		b.end.Tail = node
	}
	b.end = node
	return node
}

// Concat pushes every element of values in order.
func (b *ListBuilder) Concat(values []interface{}) {
	for _, v := range values {
		b.Push(v)
	}
}

// Attach splices an existing list onto the tail, transferring ownership of
// its cells to this builder and advancing the end pointer to its last cell.
func (b *ListBuilder) Attach(l *List) {
	if l.IsEmpty() {
		return
	}
	if b.head.IsEmpty() {
		b.head = l
	} else {
		b.end.Tail = l
	}
	b.end = l.End()
}

// List returns the list built so far.
func (b *ListBuilder) List() *List {
	return b.head
}
