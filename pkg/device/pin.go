package device

import "fmt"

// Pin binds one terminal of an element to a node name.
type Pin struct {
	owner *Element
	role  string
	node  string
}

func (p *Pin) Owner() *Element { return p.owner }

func (p *Pin) Role() string { return p.role }

func (p *Pin) Node() string { return p.node }

func (p *Pin) String() string {
	return fmt.Sprintf("Pin %s of %s on node %s", p.role, p.owner.GetName(), p.node)
}

// ElementAdder is the netlist scope a probe is inserted into.
type ElementAdder interface {
	AddElement(e *Element) error
}

// AddCurrentProbe splices a zero-valued voltage source between the pin and its
// node, so the branch current can be read as I(V_<element>_<role>). The pin is
// moved to the synthetic node <element>_<role>.
//
// This is not idempotent: probing the same pin twice reuses the probe name and
// fails with a DuplicateNameError, leaving pin and scope untouched.
func (p *Pin) AddCurrentProbe(target ElementAdder) (*Element, error) {
	node := p.node
	probeNode := p.owner.GetName() + "_" + p.role

	probe, err := NewVoltageSource("_"+probeNode, node, probeNode, 0)
	if err != nil {
		return nil, err
	}
	if err := target.AddElement(probe); err != nil {
		return nil, err
	}
	p.node = probeNode
	return probe, nil
}
