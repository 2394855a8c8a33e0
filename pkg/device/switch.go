package device

import "github.com/edp1096/spicedeck/pkg/param"

var VoltageControlledSwitch = register(&Kind{
	Name:   "VoltageControlledSwitch",
	Prefix: "S",
	Shape:  TwoPort,
	Params: param.MustTable(
		param.Model("model", 0),
		param.InitialState("initial_state", 1).AsKey(),
	),
})

var CurrentControlledSwitch = register(&Kind{
	Name:   "CurrentControlledSwitch",
	Prefix: "W",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.ElementName("source", 0),
		param.Model("model", 1),
		param.InitialState("initial_state", 2).AsKey(),
	),
})

func NewVoltageControlledSwitch(name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*Element, error) {
	return NewTwoPort(VoltageControlledSwitch, name, inputPlus, inputMinus, outputPlus, outputMinus, args...)
}

func NewCurrentControlledSwitch(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(CurrentControlledSwitch, name, plus, minus, args...)
}
