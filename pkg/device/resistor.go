package device

import "github.com/edp1096/spicedeck/pkg/param"

var Resistor = register(&Kind{
	Name:   "Resistor",
	Prefix: "R",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.Float("resistance", 0),
		param.Model("model", 1).AsKey(),
		param.FloatKey("ac", "ac"),
		param.Int("multiplier", "m"),
		param.FloatKey("scale", "scale"),
		param.FloatKey("temperature", "temp"),
		param.FloatKey("device_temperature", "dtemp"),
		param.FloatKey("tc1", "tc1"),
		param.FloatKey("tc2", "tc2"),
		param.Bool("noisy", "noisy"),
	),
})

func NewResistor(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(Resistor, name, plus, minus, args...)
}
