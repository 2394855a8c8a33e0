package device

import "github.com/edp1096/spicedeck/pkg/param"

// CoupledInductor has no pins of its own: it names two inductors.
var CoupledInductor = register(&Kind{
	Name:   "CoupledInductor",
	Prefix: "K",
	Shape:  MultiPin,
	Roles:  []string{},
	Params: param.MustTable(
		param.ElementName("inductor1", 0),
		param.ElementName("inductor2", 1),
		param.Float("coupling_factor", 2),
	),
})

// NewCoupledInductor couples two inductors, given as *Element or by name.
func NewCoupledInductor(name string, inductor1, inductor2, coupling any) (*Element, error) {
	return NewMultiPin(CoupledInductor, name, nil, inductor1, inductor2, coupling)
}
