package netlist

import (
	"fmt"

	"github.com/edp1096/spicedeck/pkg/device"
)

type RefKind int

const (
	RefElement RefKind = iota
	RefModel
	RefNode
)

func (k RefKind) String() string {
	switch k {
	case RefElement:
		return "element"
	case RefModel:
		return "model"
	case RefNode:
		return "node"
	}
	return fmt.Sprintf("RefKind(%d)", int(k))
}

// Ref is the result of Lookup; exactly one of Element, Model, Node is set.
type Ref struct {
	Kind    RefKind
	Element *device.Element
	Model   *device.Model
	Node    *Node
}

type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("netlist: %s is not an element, model or node", e.Name)
}

// Lookup resolves id against elements, then models, then nodes.
func (n *Netlist) Lookup(id string) (Ref, error) {
	if e, ok := n.byName[id]; ok {
		return Ref{Kind: RefElement, Element: e}, nil
	}
	if m, ok := n.modelMap[id]; ok {
		return Ref{Kind: RefModel, Model: m}, nil
	}
	if node, ok := n.Node(id); ok {
		return Ref{Kind: RefNode, Node: node}, nil
	}
	return Ref{}, &NotFoundError{Name: id}
}
