package device

import "github.com/edp1096/spicedeck/pkg/param"

// TransmissionLine is the lossless T element; port 1 is the input pair.
var TransmissionLine = register(&Kind{
	Name:   "TransmissionLine",
	Prefix: "T",
	Shape:  TwoPort,
	Params: param.MustTable(
		param.FloatKey("impedance", "Z0"),
		param.FloatKey("time_delay", "TD"),
		param.FloatKey("frequency", "F"),
		param.FloatKey("normalized_length", "NL"),
	),
})

func NewTransmissionLine(name, inputPlus, inputMinus, outputPlus, outputMinus string, args ...any) (*Element, error) {
	return NewTwoPort(TransmissionLine, name, inputPlus, inputMinus, outputPlus, outputMinus, args...)
}
