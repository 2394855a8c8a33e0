package device

import (
	"strconv"

	"github.com/edp1096/spicedeck/pkg/param"
)

// SubCircuitElement instantiates a sub-circuit. Pins are numbered from 1.
var SubCircuitElement = register(&Kind{
	Name:     "SubCircuitElement",
	Prefix:   "X",
	Shape:    MultiPin,
	Variadic: true,
	Params: param.MustTable(
		param.ElementName("subcircuit_name", 0),
	),
})

// NewSubCircuitElement takes the sub-circuit by name or as any value with a Name method.
func NewSubCircuitElement(name string, subcircuit any, nodes ...string) (*Element, error) {
	pins := make([]PinDef, len(nodes))
	for i, node := range nodes {
		pins[i] = PinDef{Role: strconv.Itoa(i + 1), Node: node}
	}
	return NewMultiPin(SubCircuitElement, name, pins, subcircuit)
}
