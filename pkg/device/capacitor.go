package device

import "github.com/edp1096/spicedeck/pkg/param"

var Capacitor = register(&Kind{
	Name:   "Capacitor",
	Prefix: "C",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.Float("capacitance", 0),
		param.Model("model", 1).AsKey(),
		param.Int("multiplier", "m"),
		param.FloatKey("scale", "scale"),
		param.FloatKey("temperature", "temp"),
		param.FloatKey("device_temperature", "dtemp"),
		param.FloatKey("initial_condition", "ic"),
	),
})

func NewCapacitor(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(Capacitor, name, plus, minus, args...)
}
