package loader

import (
	"github.com/goccy/go-yaml/ast"
)

// Kind classifies a parse event.
type Kind int

const (
	MappingStart Kind = iota
	MappingEnd
	SequenceStart
	SequenceEnd
	Scalar
	Alias
	StreamEnd
)

var kindNames = [...]string{"MappingStart", "MappingEnd", "SequenceStart", "SequenceEnd", "Scalar", "Alias", "StreamEnd"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Event is one step of the flattened document, in document order.
type Event struct {
	Kind  Kind
	Value string // scalar text, unquoted; empty for null and non-scalars
}

// Events flattens a parsed YAML file into a stream of events terminated by StreamEnd.
func Events(file *ast.File) []Event {
	var w walker
	if file != nil {
		for _, doc := range file.Docs {
			if doc != nil && doc.Body != nil {
				w.node(doc.Body)
			}
		}
	}
	w.emit(StreamEnd, "")
	return w.events
}

type walker struct {
	events []Event
}

func (w *walker) emit(kind Kind, value string) {
	w.events = append(w.events, Event{Kind: kind, Value: value})
}

func (w *walker) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.MappingNode:
		w.emit(MappingStart, "")
		for _, pair := range n.Values {
			w.pair(pair)
		}
		w.emit(MappingEnd, "")
	case *ast.MappingValueNode:
		w.emit(MappingStart, "")
		w.pair(n)
		w.emit(MappingEnd, "")
	case *ast.SequenceNode:
		w.emit(SequenceStart, "")
		for _, v := range n.Values {
			w.value(v)
		}
		w.emit(SequenceEnd, "")
	case *ast.MappingKeyNode:
		w.value(n.Value)
	case *ast.TagNode:
		w.value(n.Value)
	case *ast.AnchorNode:
		w.value(n.Value)
	case *ast.AliasNode:
		w.emit(Alias, "")
	case *ast.CommentGroupNode:
	case *ast.NullNode:
		w.emit(Scalar, "")
	case *ast.StringNode:
		w.emit(Scalar, n.Value)
	case *ast.LiteralNode:
		if n.Value == nil {
			w.emit(Scalar, "")
		} else {
			w.emit(Scalar, n.Value.Value)
		}
	case ast.ScalarNode:
		if tk := n.GetToken(); tk != nil {
			w.emit(Scalar, tk.Value)
		} else {
			w.emit(Scalar, "")
		}
	}
}

func (w *walker) pair(p *ast.MappingValueNode) {
	if p == nil {
		return
	}
	w.value(p.Key)
	w.value(p.Value)
}

// value walks a node that occupies a key or value slot; a missing node is an implicit null.
func (w *walker) value(n ast.Node) {
	if n == nil || isNilNode(n) {
		w.emit(Scalar, "")
		return
	}
	w.node(n)
}

func isNilNode(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.MappingNode:
		return n == nil
	case *ast.MappingValueNode:
		return n == nil
	case *ast.SequenceNode:
		return n == nil
	case *ast.StringNode:
		return n == nil
	case *ast.NullNode:
		return n == nil
	}
	return false
}
