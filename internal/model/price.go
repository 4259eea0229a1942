package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// PriceConfiguration maps a pricing dimension (e.g. "size") to either a leaf
// price or a nested configuration of arbitrary depth.
type PriceConfiguration map[string]PriceNode

// PriceNode is a single node of a price configuration tree. A node is either
// a leaf carrying a price or an inner node carrying children, never both.
type PriceNode struct {
	Price    float64
	Children PriceConfiguration
}

// IsLeaf reports whether the node carries a price rather than children.
func (n PriceNode) IsLeaf() bool {
	return n.Children == nil
}

// Flatten converts the tree into plain nested maps so it can cross a JSON
// wire boundary without the PriceNode wrapper type.
func (pc PriceConfiguration) Flatten() map[string]any {
	out := make(map[string]any, len(pc))
	for key, node := range pc {
		if node.IsLeaf() {
			out[key] = node.Price
		} else {
			out[key] = node.Children.Flatten()
		}
	}
	return out
}

// MarshalJSON encodes a leaf as a bare number and an inner node as an object.
func (n PriceNode) MarshalJSON() ([]byte, error) {
	if n.IsLeaf() {
		return json.Marshal(n.Price)
	}
	return json.Marshal(n.Children)
}

// UnmarshalJSON accepts either a number (leaf price) or an object (subtree).
func (n *PriceNode) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty price node")
	}

	if trimmed[0] == '{' {
		var children PriceConfiguration
		if err := json.Unmarshal(trimmed, &children); err != nil {
			return err
		}
		n.Children = children
		n.Price = 0
		return nil
	}

	var price float64
	if err := json.Unmarshal(trimmed, &price); err != nil {
		return fmt.Errorf("price node must be a number or an object: %w", err)
	}
	n.Price = price
	n.Children = nil
	return nil
}

// MarshalBSONValue stores a leaf as a double and an inner node as an
// embedded document, so the persisted form is a plain nested mapping.
func (n PriceNode) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if n.IsLeaf() {
		return bson.MarshalValue(n.Price)
	}
	return bson.MarshalValue(n.Children)
}

// UnmarshalBSONValue rebuilds the node from a numeric or document value.
func (n *PriceNode) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		n.Price = raw.Double()
		n.Children = nil
	case bsontype.Int32:
		n.Price = float64(raw.Int32())
		n.Children = nil
	case bsontype.Int64:
		n.Price = float64(raw.Int64())
		n.Children = nil
	case bsontype.EmbeddedDocument:
		var children PriceConfiguration
		if err := bson.Unmarshal(data, &children); err != nil {
			return err
		}
		n.Price = 0
		n.Children = children
	default:
		return fmt.Errorf("unexpected BSON type %s for price node", t)
	}
	return nil
}
