package device

import "github.com/edp1096/spicedeck/pkg/param"

var CurrentSource = register(&Kind{
	Name:   "CurrentSource",
	Prefix: "I",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.Expression("dc_value", 0),
	),
})

func NewCurrentSource(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(CurrentSource, name, plus, minus, args...)
}
