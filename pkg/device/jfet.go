package device

import "github.com/edp1096/spicedeck/pkg/param"

var JFET = register(&Kind{
	Name:   "JunctionFieldEffectTransistor",
	Prefix: "J",
	Shape:  MultiPin,
	Roles:  []string{"drain", "gate", "source"},
	Params: param.MustTable(
		param.Model("model", 0),
		param.FloatKey("area", "area"),
		param.Int("multiplier", "m"),
		param.Flag("off", "off"),
		param.FloatPair("initial_condition", "ic"),
		param.FloatKey("temperature", "temp"),
	),
})

func NewJFET(name, drain, gate, source string, args ...any) (*Element, error) {
	return NewMultiPin(JFET, name, []PinDef{
		{"drain", drain},
		{"gate", gate},
		{"source", source},
	}, args...)
}
