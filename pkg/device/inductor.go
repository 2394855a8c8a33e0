package device

import "github.com/edp1096/spicedeck/pkg/param"

var Inductor = register(&Kind{
	Name:   "Inductor",
	Prefix: "L",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.Float("inductance", 0),
		param.Model("model", 1).AsKey(),
		param.FloatKey("nt", "nt"),
		param.Int("multiplier", "m"),
		param.FloatKey("scale", "scale"),
		param.FloatKey("temperature", "temp"),
		param.FloatKey("device_temperature", "dtemp"),
		param.FloatKey("initial_condition", "ic"),
	),
})

func NewInductor(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(Inductor, name, plus, minus, args...)
}
