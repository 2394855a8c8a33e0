package device

import "github.com/edp1096/spicedeck/pkg/param"

var VoltageControlledVoltageSource = register(&Kind{
	Name:   "VoltageControlledVoltageSource",
	Prefix: "E",
	Shape:  TwoPort,
	Params: param.MustTable(
		param.Float("voltage_gain", 0),
	),
})

var VoltageControlledCurrentSource = register(&Kind{
	Name:   "VoltageControlledCurrentSource",
	Prefix: "G",
	Shape:  TwoPort,
	Params: param.MustTable(
		param.Float("transconductance", 0),
		param.Int("multiplier", "m"),
	),
})

var CurrentControlledCurrentSource = register(&Kind{
	Name:   "CurrentControlledCurrentSource",
	Prefix: "F",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.ElementName("source", 0),
		param.Float("current_gain", 1),
		param.Int("multiplier", "m"),
	),
})

var CurrentControlledVoltageSource = register(&Kind{
	Name:   "CurrentControlledVoltageSource",
	Prefix: "H",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.ElementName("source", 0),
		param.Float("transresistance", 1),
	),
})

// BehavioralSource is a B element; set exactly one of the two expressions.
var BehavioralSource = register(&Kind{
	Name:   "BehavioralSource",
	Prefix: "B",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.ExpressionKey("voltage_expression", "v"),
		param.ExpressionKey("current_expression", "i"),
	),
})

func NewVCVS(name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*Element, error) {
	return NewTwoPort(VoltageControlledVoltageSource, name, inputPlus, inputMinus, outputPlus, outputMinus, args...)
}

func NewVCCS(name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*Element, error) {
	return NewTwoPort(VoltageControlledCurrentSource, name, inputPlus, inputMinus, outputPlus, outputMinus, args...)
}

func NewCCCS(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(CurrentControlledCurrentSource, name, plus, minus, args...)
}

func NewCCVS(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(CurrentControlledVoltageSource, name, plus, minus, args...)
}

func NewBehavioralSource(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(BehavioralSource, name, plus, minus, args...)
}
