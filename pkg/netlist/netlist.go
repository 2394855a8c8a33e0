// Package netlist holds the mutable element/model collection of one netlist
// scope and the node index derived from it.
package netlist

import (
	"strings"

	"github.com/edp1096/spicedeck/internal/consts"
	"github.com/edp1096/spicedeck/pkg/device"
)

// Netlist is not safe for concurrent use.
type Netlist struct {
	elements []*device.Element
	byName   map[string]*device.Element
	models   []*device.Model
	modelMap map[string]*device.Model

	nodes   []*Node
	nodeMap map[string]*Node
	dirty   bool

	ground string
}

func New() *Netlist {
	return &Netlist{
		byName:   make(map[string]*device.Element),
		modelMap: make(map[string]*device.Model),
		nodeMap:  make(map[string]*Node),
		ground:   consts.GROUND,
	}
}

// AddElement inserts e at the end of the element list.
func (n *Netlist) AddElement(e *device.Element) error {
	name := e.GetName()
	if _, exists := n.byName[name]; exists {
		return &device.DuplicateNameError{Kind: "element", Name: name}
	}
	n.elements = append(n.elements, e)
	n.byName[name] = e
	n.dirty = true
	return nil
}

// AddModel registers a .model statement. A repeated name is an error, as for elements.
func (n *Netlist) AddModel(name, modelType string, params map[string]any) (*device.Model, error) {
	if _, exists := n.modelMap[name]; exists {
		return nil, &device.DuplicateNameError{Kind: "model", Name: name}
	}
	m, err := device.NewModel(name, modelType, params)
	if err != nil {
		return nil, err
	}
	n.models = append(n.models, m)
	n.modelMap[name] = m
	return m, nil
}

func (n *Netlist) Elements() []*device.Element {
	out := make([]*device.Element, len(n.elements))
	copy(out, n.elements)
	return out
}

func (n *Netlist) Element(name string) (*device.Element, bool) {
	e, ok := n.byName[name]
	return e, ok
}

func (n *Netlist) Models() []*device.Model {
	out := make([]*device.Model, len(n.models))
	copy(out, n.models)
	return out
}

func (n *Netlist) Model(name string) (*device.Model, bool) {
	m, ok := n.modelMap[name]
	return m, ok
}

func (n *Netlist) Ground() string { return n.ground }

func (n *Netlist) SetGround(name string) { n.ground = name }

// Lines renders the body: element lines, then model lines.
func (n *Netlist) Lines() []string {
	lines := make([]string, 0, len(n.elements)+len(n.models))
	for _, e := range n.elements {
		lines = append(lines, e.String())
	}
	for _, m := range n.models {
		lines = append(lines, m.String())
	}
	return lines
}

// String is the body with every line newline-terminated, or "" when empty.
func (n *Netlist) String() string {
	var sb strings.Builder
	for _, line := range n.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
