package knit

import (
	"bytes"
	"encoding/json"
)

// Classes is the full decoded input mapping, keyed by class identifier.
type Classes map[string]*ClassRecord

// ClassRecord holds the declared facts for one class exactly as they appear
// in the source document. It carries no cross-class interpretation; that is
// the graph builder's job.
type ClassRecord struct {
	Parents    []string                 `json:"parent,omitempty"`
	Providers  []ProviderDecl           `json:"providers,omitempty"`
	Composite  map[string]string        `json:"composite,omitempty"`
	Injections map[string]InjectionNode `json:"injections,omitempty"`
}

// Parent returns the class's effective single parent: the first declared
// entry. The framework does not model multiple inheritance beyond that.
func (c *ClassRecord) Parent() (string, bool) {
	if len(c.Parents) == 0 {
		return "", false
	}
	return c.Parents[0], true
}

// ProviderDecl is one provider declaration: a signature plus the ordered
// parameter type names the provider takes.
type ProviderDecl struct {
	Provider   string   `json:"provider"`
	Parameters []string `json:"parameters,omitempty"`
}

// InjectionNode is one vertex of a class's nested injection tree. The
// source encodes the tree as arbitrarily nested JSON arrays and objects;
// decoding turns that into an explicit tagged variant where at most one of
// Point or Items is set. Scalar leaves carry no injection data and decode
// to an empty node.
type InjectionNode struct {
	Point *InjectionPoint
	Items []InjectionNode
}

// InjectionPoint is a single injection site: the consuming method's
// signature and, when present, a nested tree of parameter injections.
type InjectionPoint struct {
	MethodID   string         `json:"methodId,omitempty"`
	Parameters *InjectionNode `json:"parameters,omitempty"`
}

// UnmarshalJSON decodes arrays into Items and objects into Point. Anything
// else is ignored rather than rejected, matching the loose source format.
func (n *InjectionNode) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '[':
		return json.Unmarshal(data, &n.Items)
	case '{':
		n.Point = new(InjectionPoint)
		return json.Unmarshal(data, n.Point)
	default:
		return nil
	}
}

// MarshalJSON restores the source encoding of the tree.
func (n InjectionNode) MarshalJSON() ([]byte, error) {
	if n.Point != nil {
		return json.Marshal(n.Point)
	}
	if n.Items != nil {
		return json.Marshal(n.Items)
	}
	return []byte("null"), nil
}

// Walk visits every injection point in the tree, nested parameter trees
// included. Points decoded from mappings without a methodId are visited
// with an empty MethodID; visitors decide whether those matter.
func (n *InjectionNode) Walk(visit func(*InjectionPoint)) {
	if n == nil {
		return
	}
	if n.Point != nil {
		visit(n.Point)
		n.Point.Parameters.Walk(visit)
	}
	for i := range n.Items {
		n.Items[i].Walk(visit)
	}
}

// DecodeClasses decodes a whole knit metadata document. A document that is
// not valid JSON, or whose fields have the wrong shape, yields a
// MalformedInputError. Individually undecodable signatures inside an
// otherwise valid document are not errors here; the builder skips them.
func DecodeClasses(data []byte) (Classes, error) {
	var classes Classes
	if err := json.Unmarshal(data, &classes); err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	return classes, nil
}
