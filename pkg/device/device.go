// Package device defines circuit elements: their pins, their kinds and the
// device models they reference.
package device

import (
	"fmt"
	"strconv"

	"github.com/edp1096/spicedeck/pkg/param"
	"github.com/edp1096/spicedeck/pkg/util"
)

type Shape int

const (
	TwoPin Shape = iota
	TwoPort
	MultiPin
)

// Pin roles of the fixed shapes.
const (
	RolePlus        = "plus"
	RoleMinus       = "minus"
	RoleOutputPlus  = "output_plus"
	RoleOutputMinus = "output_minus"
	RoleInputPlus   = "input_plus"
	RoleInputMinus  = "input_minus"
)

// Kind is the static declaration of one element type.
type Kind struct {
	Name     string
	Prefix   string
	Shape    Shape
	Roles    []string // MultiPin roles, in node order
	Optional int      // trailing MultiPin roles that may be omitted
	Variadic bool     // MultiPin with any number of pins
	Params   *param.Table
}

func (k *Kind) pinRange() (min, max int) {
	switch k.Shape {
	case TwoPin:
		return 2, 2
	case TwoPort:
		return 4, 4
	}
	if k.Variadic {
		return 0, -1
	}
	return len(k.Roles) - k.Optional, len(k.Roles)
}

type PinDef struct {
	Role string
	Node string
}

type Element struct {
	kind   *Kind
	name   string
	pins   []*Pin
	params *param.Values
}

// NewTwoPin builds an element with pins plus and minus.
func NewTwoPin(kind *Kind, name, plus, minus string, args ...any) (*Element, error) {
	if kind.Shape != TwoPin {
		return nil, &ShapeError{Element: kind.Prefix + name, Kind: kind.Name, Got: 2}
	}
	return newElement(kind, name, []PinDef{
		{RolePlus, plus},
		{RoleMinus, minus},
	}, args)
}

// NewTwoPort builds a four-terminal element. Input nodes come first in the
// argument list but the output pins come first on the element line.
func NewTwoPort(kind *Kind, name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*Element, error) {
	if kind.Shape != TwoPort {
		return nil, &ShapeError{Element: kind.Prefix + name, Kind: kind.Name, Got: 4}
	}
	return newElement(kind, name, []PinDef{
		{RoleOutputPlus, outputPlus},
		{RoleOutputMinus, outputMinus},
		{RoleInputPlus, inputPlus},
		{RoleInputMinus, inputMinus},
	}, args)
}

// NewMultiPin builds an element from an already ordered pin list.
func NewMultiPin(kind *Kind, name string, pins []PinDef, args ...any) (*Element, error) {
	if kind.Shape != MultiPin {
		return nil, &ShapeError{Element: kind.Prefix + name, Kind: kind.Name, Got: len(pins)}
	}
	min, max := kind.pinRange()
	if len(pins) < min || (max >= 0 && len(pins) > max) {
		return nil, &ShapeError{Element: kind.Prefix + name, Kind: kind.Name, Got: len(pins)}
	}
	return newElement(kind, name, pins, args)
}

// Build dispatches on the kind's shape. Two-port nodes are given input first.
func Build(kind *Kind, name string, nodes []string, args ...any) (*Element, error) {
	min, max := kind.pinRange()
	if len(nodes) < min || (max >= 0 && len(nodes) > max) {
		return nil, &ShapeError{Element: kind.Prefix + name, Kind: kind.Name, Got: len(nodes)}
	}

	switch kind.Shape {
	case TwoPin:
		return NewTwoPin(kind, name, nodes[0], nodes[1], args...)
	case TwoPort:
		return NewTwoPort(kind, name, nodes[0], nodes[1], nodes[2], nodes[3], args...)
	}

	pins := make([]PinDef, len(nodes))
	for i, node := range nodes {
		role := strconv.Itoa(i + 1)
		if i < len(kind.Roles) {
			role = kind.Roles[i]
		}
		pins[i] = PinDef{Role: role, Node: node}
	}
	return NewMultiPin(kind, name, pins, args...)
}

func newElement(kind *Kind, name string, pins []PinDef, args []any) (*Element, error) {
	if err := CheckName("element", name); err != nil {
		return nil, fmt.Errorf("device: %s: %w", kind.Name, err)
	}

	e := &Element{
		kind:   kind,
		name:   name,
		pins:   make([]*Pin, 0, len(pins)),
		params: kind.Params.NewValues(),
	}
	for _, p := range pins {
		if err := CheckName("node", p.Node); err != nil {
			return nil, fmt.Errorf("device %s: pin %s: %w", e.GetName(), p.Role, err)
		}
		e.pins = append(e.pins, &Pin{owner: e, role: p.Role, node: p.Node})
	}

	positional, keywords := splitArgs(args)
	if err := e.params.Bind(positional); err != nil {
		return nil, fmt.Errorf("device %s: %w", e.GetName(), err)
	}
	if err := e.params.Apply(keywords); err != nil {
		return nil, fmt.Errorf("device %s: %w", e.GetName(), err)
	}
	if err := e.params.Require(); err != nil {
		return nil, fmt.Errorf("device %s: %w", e.GetName(), err)
	}
	return e, nil
}

// splitArgs separates positional values from param.Keywords maps.
func splitArgs(args []any) ([]any, param.Keywords) {
	positional := make([]any, 0, len(args))
	keywords := param.Keywords{}
	for _, arg := range args {
		kw, ok := arg.(param.Keywords)
		if !ok {
			positional = append(positional, arg)
			continue
		}
		for k, v := range kw {
			keywords[k] = v
		}
	}
	return positional, keywords
}

// GetName is the composite prefix + name identity.
func (e *Element) GetName() string { return e.kind.Prefix + e.name }

func (e *Element) GetBaseName() string { return e.name }

func (e *Element) GetType() string { return e.kind.Prefix }

func (e *Element) Kind() *Kind { return e.kind }

func (e *Element) Pins() []*Pin {
	pins := make([]*Pin, len(e.pins))
	copy(pins, e.pins)
	return pins
}

func (e *Element) Pin(role string) (*Pin, bool) {
	for _, p := range e.pins {
		if p.role == role {
			return p, true
		}
	}
	return nil, false
}

func (e *Element) GetNodeNames() []string {
	nodes := make([]string, len(e.pins))
	for i, p := range e.pins {
		nodes[i] = p.node
	}
	return nodes
}

// Set assigns a parameter after construction.
func (e *Element) Set(name string, raw any) error {
	if err := e.params.Set(name, raw); err != nil {
		return fmt.Errorf("device %s: %w", e.GetName(), err)
	}
	return nil
}

func (e *Element) Param(name string) (param.Value, bool) {
	return e.params.Get(name)
}

func (e *Element) IsSet(name string) bool {
	return e.params.IsSet(name)
}

func (e *Element) FormatNodeNames() string {
	return util.JoinList(e.GetName(), util.JoinList(e.GetNodeNames()...))
}

func (e *Element) FormatParameters() string {
	return e.params.Format()
}

// String is the element line.
func (e *Element) String() string {
	return util.JoinList(e.FormatNodeNames(), e.FormatParameters())
}
