package netlist

import (
	"fmt"

	"github.com/edp1096/spicedeck/pkg/device"
)

func (n *Netlist) add(e *device.Element, err error) (*device.Element, error) {
	if err != nil {
		return nil, err
	}
	if err := n.AddElement(e); err != nil {
		return nil, err
	}
	return e, nil
}

// Build constructs an element of kind and inserts it. See device.Build.
func (n *Netlist) Build(kind *device.Kind, name string, nodes []string, args ...any) (*device.Element, error) {
	return n.add(device.Build(kind, name, nodes, args...))
}

func (n *Netlist) R(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewResistor(name, plus, minus, args...))
}

func (n *Netlist) C(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewCapacitor(name, plus, minus, args...))
}

func (n *Netlist) L(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewInductor(name, plus, minus, args...))
}

func (n *Netlist) K(name string, inductor1, inductor2, coupling any) (*device.Element, error) {
	return n.add(device.NewCoupledInductor(name, inductor1, inductor2, coupling))
}

func (n *Netlist) V(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewVoltageSource(name, plus, minus, args...))
}

func (n *Netlist) I(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewCurrentSource(name, plus, minus, args...))
}

func (n *Netlist) E(name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*device.Element, error) {
	return n.add(device.NewVCVS(name, inputPlus, inputMinus, outputPlus, outputMinus, args...))
}

func (n *Netlist) G(name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*device.Element, error) {
	return n.add(device.NewVCCS(name, inputPlus, inputMinus, outputPlus, outputMinus, args...))
}

func (n *Netlist) F(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewCCCS(name, plus, minus, args...))
}

func (n *Netlist) H(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewCCVS(name, plus, minus, args...))
}

func (n *Netlist) B(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewBehavioralSource(name, plus, minus, args...))
}

func (n *Netlist) S(name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*device.Element, error) {
	return n.add(device.NewVoltageControlledSwitch(name, inputPlus, inputMinus, outputPlus, outputMinus, args...))
}

func (n *Netlist) W(name, plus, minus string, args ...any) (*device.Element, error) {
	return n.add(device.NewCurrentControlledSwitch(name, plus, minus, args...))
}

func (n *Netlist) D(name, anode, cathode string, args ...any) (*device.Element, error) {
	return n.add(device.NewDiode(name, anode, cathode, args...))
}

func (n *Netlist) Q(name, collector, base, emitter string, args ...any) (*device.Element, error) {
	return n.add(device.NewBJT(name, collector, base, emitter, args...))
}

func (n *Netlist) J(name, drain, gate, source string, args ...any) (*device.Element, error) {
	return n.add(device.NewJFET(name, drain, gate, source, args...))
}

func (n *Netlist) M(name, drain, gate, source, bulk string, args ...any) (*device.Element, error) {
	return n.add(device.NewMOSFET(name, drain, gate, source, bulk, args...))
}

func (n *Netlist) T(name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*device.Element, error) {
	return n.add(device.NewTransmissionLine(name, inputPlus, inputMinus, outputPlus, outputMinus, args...))
}

// X instantiates a sub-circuit by name. No arity check happens at this level.
func (n *Netlist) X(name string, subcircuit any, nodes ...string) (*device.Element, error) {
	return n.add(device.NewSubCircuitElement(name, subcircuit, nodes...))
}

// Probe adds a current probe on one pin of a contained element.
func (n *Netlist) Probe(element, role string) (*device.Element, error) {
	e, ok := n.byName[element]
	if !ok {
		return nil, &NotFoundError{Name: element}
	}
	pin, ok := e.Pin(role)
	if !ok {
		return nil, fmt.Errorf("netlist: %s has no pin %s", element, role)
	}
	return pin.AddCurrentProbe(n)
}
