package device

import "github.com/edp1096/spicedeck/pkg/param"

var BJT = register(&Kind{
	Name:     "BipolarJunctionTransistor",
	Prefix:   "Q",
	Shape:    MultiPin,
	Roles:    []string{"collector", "base", "emitter", "substrate"},
	Optional: 1,
	Params: param.MustTable(
		param.Model("model", 0),
		param.FloatKey("area", "area"),
		param.FloatKey("areac", "areac"),
		param.FloatKey("areab", "areab"),
		param.Int("multiplier", "m"),
		param.Flag("off", "off"),
		param.FloatPair("initial_condition", "ic"),
		param.FloatKey("temperature", "temp"),
		param.FloatKey("device_temperature", "dtemp"),
	),
})

func NewBJT(name, collector, base, emitter string, args ...any) (*Element, error) {
	return NewMultiPin(BJT, name, []PinDef{
		{"collector", collector},
		{"base", base},
		{"emitter", emitter},
	}, args...)
}
