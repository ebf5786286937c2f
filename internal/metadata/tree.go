package metadata

import (
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// Member is a single key/value pair of an Object node.
type Member struct {
	Key   string
	Value *Node
}

// Node is one element of a decoded metadata document.
type Node struct {
	Kind    Kind
	Scalar  string
	Members []Member
	Items   []*Node
}

// IsScalar reports whether the node is a string, number or boolean.
func (n *Node) IsScalar() bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case Bool, Number, String:
		return true
	default:
		return false
	}
}

// Get returns the value of the first member named key.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != Object {
		return nil, false
	}
	for _, m := range n.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Parse decodes a JSON document into a Node tree.
func Parse(data []byte) (*Node, error) {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return decode(value, dataType)
}

func decode(value []byte, dataType jsonparser.ValueType) (*Node, error) {
	switch dataType {
	case jsonparser.Null:
		return &Node{Kind: Null}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return nil, fmt.Errorf("parse metadata boolean: %w", err)
		}
		if b {
			return &Node{Kind: Bool, Scalar: "true"}, nil
		}
		return &Node{Kind: Bool, Scalar: "false"}, nil
	case jsonparser.Number:
		return &Node{Kind: Number, Scalar: string(value)}, nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return nil, fmt.Errorf("parse metadata string: %w", err)
		}
		return &Node{Kind: String, Scalar: s}, nil
	case jsonparser.Array:
		return decodeArray(value)
	case jsonparser.Object:
		return decodeObject(value)
	default:
		return nil, fmt.Errorf("parse metadata: unexpected value %q", truncate(value))
	}
}

func decodeObject(value []byte) (*Node, error) {
	node := &Node{Kind: Object}
	err := jsonparser.ObjectEach(value, func(key []byte, raw []byte, dataType jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return fmt.Errorf("parse metadata key: %w", err)
		}
		child, err := decode(raw, dataType)
		if err != nil {
			return err
		}
		node.Members = append(node.Members, Member{Key: name, Value: child})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return node, nil
}

func decodeArray(value []byte) (*Node, error) {
	node := &Node{Kind: Array, Items: []*Node{}}
	var decodeErr error
	_, err := jsonparser.ArrayEach(value, func(raw []byte, dataType jsonparser.ValueType, _ int, err error) {
		if decodeErr != nil {
			return
		}
		if err != nil {
			decodeErr = err
			return
		}
		child, err := decode(raw, dataType)
		if err != nil {
			decodeErr = err
			return
		}
		node.Items = append(node.Items, child)
	})
	if decodeErr != nil {
		return nil, decodeErr
	}
	if err != nil {
		return nil, fmt.Errorf("parse metadata array: %w", err)
	}
	return node, nil
}

func truncate(value []byte) string {
	const limit = 32
	s := strings.TrimSpace(string(value))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
