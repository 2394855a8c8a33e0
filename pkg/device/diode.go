package device

import "github.com/edp1096/spicedeck/pkg/param"

// Diode pins: plus is the anode, minus the cathode.
var Diode = register(&Kind{
	Name:   "Diode",
	Prefix: "D",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.Model("model", 0),
		param.FloatKey("area", "area"),
		param.Int("multiplier", "m"),
		param.FloatKey("pj", "pj"),
		param.Flag("off", "off"),
		param.FloatKey("initial_condition", "ic"),
		param.FloatKey("temperature", "temp"),
		param.FloatKey("device_temperature", "dtemp"),
	),
})

func NewDiode(name, anode, cathode string, args ...any) (*Element, error) {
	return NewTwoPin(Diode, name, anode, cathode, args...)
}
