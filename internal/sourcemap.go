package internal

// SourceSpan is the source-text range a parsed node was read from.
type SourceSpan struct {
	Source string
	Start  int
	End    int
}

// sourceMap maps list-node identity to the span that produced it. It is
// keyed by *List pointer identity, which Go keeps stable for the life of
// the node. It is a plain map, not a weak one: it holds strong references
// to its nodes and spans until the map itself is dropped. The Interpreter's
// map receives the spans of every Parse/Execute call and lives as long as
// the Interpreter.
type sourceMap struct {
	spans map[*List]SourceSpan
}

func newSourceMap() *sourceMap {
	return &sourceMap{spans: make(map[*List]SourceSpan)}
}

func (m *sourceMap) record(node *List, span SourceSpan) {
	if node == nil || node.IsEmpty() {
		return
	}
	m.spans[node] = span
}

func (m *sourceMap) lookup(node *List) (SourceSpan, bool) {
	if node == nil {
		return SourceSpan{}, false
	}
	span, ok := m.spans[node]
	return span, ok
}
