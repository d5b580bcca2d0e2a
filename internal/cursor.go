package internal

// cursor is the mutable walking position the evaluator advances as it
// consumes a body list. It is deliberately just a thin wrapper around the
// *List cell itself, so that the cell doubles as the "node" handed to
// oncall/onvalue observers and to sourceForNode.
type cursor struct {
	node *List
}

func newCursor(body *List) *cursor {
	if body == nil {
		body = Empty()
	}
	return &cursor{node: body}
}

func (c *cursor) atEnd() bool {
	return c.node.IsEmpty()
}

func (c *cursor) peek() interface{} {
	if c.atEnd() {
		return nil
	}
	return c.node.Head
}

// here returns the current cell, the thing observers and the source map
// key off.
func (c *cursor) here() *List {
	return c.node
}

func (c *cursor) advance() interface{} {
	v := c.node.Head
	c.node = c.node.Tail
	return v
}
