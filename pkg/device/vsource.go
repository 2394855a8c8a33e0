package device

import (
	"fmt"
	"strings"

	"github.com/edp1096/spicedeck/pkg/param"
	"github.com/edp1096/spicedeck/pkg/unit"
	"github.com/edp1096/spicedeck/pkg/util"
)

var VoltageSource = register(&Kind{
	Name:   "VoltageSource",
	Prefix: "V",
	Shape:  TwoPin,
	Params: param.MustTable(
		param.Expression("dc_value", 0),
	),
})

// NewVoltageSource takes the source value as its single argument:
// a number, or an expression built with DC, AC, Sin, Pulse, PWL or Exp.
func NewVoltageSource(name, plus, minus string, args ...any) (*Element, error) {
	return NewTwoPin(VoltageSource, name, plus, minus, args...)
}

func DC(value any) string {
	return "DC " + number(value)
}

func AC(magnitude any, phase ...any) string {
	parts := []string{"AC", number(magnitude)}
	for _, p := range phase {
		parts = append(parts, number(p))
	}
	return strings.Join(parts, " ")
}

func Sin(offset, amplitude, freq float64, extra ...float64) string {
	return waveform("SIN", append([]float64{offset, amplitude, freq}, extra...)...)
}

func Pulse(v1, v2, delay, rise, fall, pWidth, period float64) string {
	return waveform("PULSE", v1, v2, delay, rise, fall, pWidth, period)
}

func Exp(v1, v2, delay1, tau1, delay2, tau2 float64) string {
	return waveform("EXP", v1, v2, delay1, tau1, delay2, tau2)
}

func PWL(times, values []float64) (string, error) {
	if len(times) != len(values) {
		return "", fmt.Errorf("device: pwl has %d times and %d values", len(times), len(values))
	}
	points := make([]float64, 0, 2*len(times))
	for i := range times {
		points = append(points, times[i], values[i])
	}
	return waveform("PWL", points...), nil
}

// Source joins source parts: Source(DC(5), AC(1)) -> "DC 5 AC 1".
func Source(parts ...string) string {
	return util.JoinList(parts...)
}

func waveform(name string, values ...float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = util.FormatValueFactor(v, "")
	}
	return name + "(" + strings.Join(parts, " ") + ")"
}

func number(value any) string {
	if u, err := unit.New(value); err == nil {
		return u.String()
	}
	return fmt.Sprint(value)
}
