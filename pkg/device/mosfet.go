package device

import "github.com/edp1096/spicedeck/pkg/param"

var MOSFET = register(&Kind{
	Name:   "Mosfet",
	Prefix: "M",
	Shape:  MultiPin,
	Roles:  []string{"drain", "gate", "source", "bulk"},
	Params: param.MustTable(
		param.Model("model", 0),
		param.Int("multiplier", "m"),
		param.FloatKey("length", "l"),
		param.FloatKey("width", "w"),
		param.FloatKey("drain_area", "ad"),
		param.FloatKey("source_area", "as"),
		param.FloatKey("drain_perimeter", "pd"),
		param.FloatKey("source_perimeter", "ps"),
		param.FloatKey("drain_number_square", "nrd"),
		param.FloatKey("source_number_square", "nrs"),
		param.Flag("off", "off"),
		param.FloatKey("temperature", "temp"),
	),
})

func NewMOSFET(name, drain, gate, source, bulk string, args ...any) (*Element, error) {
	return NewMultiPin(MOSFET, name, []PinDef{
		{"drain", drain},
		{"gate", gate},
		{"source", source},
		{"bulk", bulk},
	}, args...)
}
