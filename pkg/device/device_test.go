package device

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/spicedeck/pkg/param"
)

func TestResistorLine(t *testing.T) {
	r, err := NewResistor("1", "1", "0", 1000)
	require.NoError(t, err)
	require.Equal(t, "R1", r.GetName())
	require.Equal(t, "1", r.GetBaseName())
	require.Equal(t, "R", r.GetType())
	require.Equal(t, []string{"1", "0"}, r.GetNodeNames())
	require.Equal(t, "R1 1 0 1000", r.String())
}

func TestResistorKeywords(t *testing.T) {
	r, err := NewResistor("load", "out", "0", "1k", param.Keywords{"tc1": 0.001, "model": "rmod"})
	require.NoError(t, err)
	require.Equal(t, "Rload out 0 1k rmod tc1=0.001", r.String())

	require.NoError(t, r.Set("multiplier", 2))
	require.Equal(t, "Rload out 0 1k rmod m=2 tc1=0.001", r.String())
}

func TestArity(t *testing.T) {
	_, err := NewResistor("1", "1", "0", 1000, 2000)
	var arity *param.ArityError
	require.True(t, errors.As(err, &arity))
	require.Contains(t, err.Error(), "R1")

	_, err = NewResistor("1", "1", "0")
	require.True(t, errors.As(err, &arity))
	require.Equal(t, []string{"resistance"}, arity.Missing)

	r, err := NewResistor("1", "1", "0", param.Keywords{"resistance": "10k"})
	require.NoError(t, err)
	require.Equal(t, "R1 1 0 10k", r.String())
}

func TestUnknownKeyword(t *testing.T) {
	_, err := NewCapacitor("1", "1", "0", "1u", param.Keywords{"bogus": 1})
	var unknown *param.UnknownParameterError
	require.True(t, errors.As(err, &unknown))
}

func TestValidationError(t *testing.T) {
	_, err := NewResistor("1", "1", "0", "one")
	var verr *param.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "resistance", verr.Field)
	require.Equal(t, "one", verr.Value)
}

func TestTwoPortPinOrder(t *testing.T) {
	e, err := NewVCVS("1", "in", "0", "out", "0", 10)
	require.NoError(t, err)
	require.Equal(t, "E1 out 0 in 0 10", e.String())

	pin, ok := e.Pin(RoleInputPlus)
	require.True(t, ok)
	require.Equal(t, "in", pin.Node())
	require.Equal(t, 2, indexOf(e.Pins(), pin))
}

func indexOf(pins []*Pin, p *Pin) int {
	for i, q := range pins {
		if q == p {
			return i
		}
	}
	return -1
}

func TestMultiPin(t *testing.T) {
	q, err := NewBJT("1", "c", "b", "e", "2n2222", param.Keywords{"initial_condition": []float64{0.6, 5}})
	require.NoError(t, err)
	require.Equal(t, "Q1 c b e 2n2222 ic=0.6,5", q.String())

	q4, err := Build(BJT, "2", []string{"c", "b", "e", "sub"}, "2n2222")
	require.NoError(t, err)
	sub, ok := q4.Pin("substrate")
	require.True(t, ok)
	require.Equal(t, "sub", sub.Node())

	_, err = Build(BJT, "3", []string{"c", "b"}, "2n2222")
	var shape *ShapeError
	require.True(t, errors.As(err, &shape))
	require.Equal(t, 2, shape.Got)

	m, err := NewMOSFET("1", "d", "g", "s", "0", "nch", param.Keywords{"length": 1e-6, "width": 10e-6})
	require.NoError(t, err)
	require.Equal(t, "M1 d g s 0 nch l=1e-06 w=1e-05", m.String())
}

func TestShapeMismatch(t *testing.T) {
	_, err := NewTwoPin(BJT, "1", "a", "b")
	var shape *ShapeError
	require.True(t, errors.As(err, &shape))

	_, err = NewTwoPort(Resistor, "1", "a", "b", "c", "d")
	require.True(t, errors.As(err, &shape))
}

func TestEmptyNode(t *testing.T) {
	_, err := NewResistor("1", "", "0", 1)
	require.Error(t, err)
	_, err = NewResistor("", "1", "0", 1)
	require.Error(t, err)
}

func TestNamesWithWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		node  string
		kind  string
		token string
	}{
		{"2", "a b", "node", "a b"},
		{"4\nR5", "1", "element", "4\nR5"},
		{"6", "1\t", "node", "1\t"},
		{"", "1", "element", ""},
	}

	for _, tt := range tests {
		_, err := NewResistor(tt.name, tt.node, "0", 1)
		var nerr *NameError
		require.True(t, errors.As(err, &nerr), "name %q node %q", tt.name, tt.node)
		require.Equal(t, tt.kind, nerr.Kind)
		require.Equal(t, tt.token, nerr.Name)
	}

	_, err := NewSubCircuitElement("1", "amp stage", "in", "out")
	var verr *param.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestDiodeFlag(t *testing.T) {
	d, err := NewDiode("1", "a", "k", "d1n4148", param.Keywords{"off": true})
	require.NoError(t, err)
	require.Equal(t, "D1 a k d1n4148 off", d.String())

	require.NoError(t, d.Set("off", false))
	require.Equal(t, "D1 a k d1n4148", d.String())
}

func TestResistorNoisyInverted(t *testing.T) {
	r, err := NewResistor("1", "1", "0", 50, param.Keywords{"noisy": true})
	require.NoError(t, err)
	require.Equal(t, "R1 1 0 50 noisy=0", r.String())
}

func TestSwitches(t *testing.T) {
	s, err := NewVoltageControlledSwitch("1", "ctl", "0", "a", "b", "sw", param.Keywords{"initial_state": "on"})
	require.NoError(t, err)
	require.Equal(t, "S1 a b ctl 0 sw on", s.String())

	vsense, err := NewVoltageSource("sense", "x", "y", 0)
	require.NoError(t, err)
	w, err := NewCurrentControlledSwitch("1", "a", "b", vsense, "csw", param.Keywords{"initial_state": false})
	require.NoError(t, err)
	require.Equal(t, "W1 a b Vsense csw off", w.String())
}

func TestCoupledInductor(t *testing.T) {
	l1, err := NewInductor("1", "a", "0", "1m")
	require.NoError(t, err)
	l2, err := NewInductor("2", "b", "0", "1m")
	require.NoError(t, err)

	k, err := NewCoupledInductor("1", l1, l2, 0.99)
	require.NoError(t, err)
	require.Empty(t, k.Pins())
	require.Equal(t, "K1 L1 L2 0.99", k.String())
}

func TestControlledSources(t *testing.T) {
	f, err := NewCCCS("1", "a", "0", "Vsense", 2)
	require.NoError(t, err)
	require.Equal(t, "F1 a 0 Vsense 2", f.String())

	b, err := NewBehavioralSource("1", "out", "0", param.Keywords{"voltage_expression": "V(in)*2"})
	require.NoError(t, err)
	require.Equal(t, "B1 out 0 v=V(in)*2", b.String())
}

func TestSubCircuitElement(t *testing.T) {
	x, err := NewSubCircuitElement("1", "amp", "in", "out")
	require.NoError(t, err)
	require.Equal(t, "X1 in out amp", x.String())

	p, ok := x.Pin("2")
	require.True(t, ok)
	require.Equal(t, "out", p.Node())
}

func TestWaveforms(t *testing.T) {
	require.Equal(t, "PULSE(0 5 1n 1n 1n 5u 10u)", Pulse(0, 5, 1e-9, 1e-9, 1e-9, 5e-6, 10e-6))
	require.Equal(t, "SIN(0 100m 1k)", Sin(0, 0.1, 1e3))
	require.Equal(t, "DC 5 AC 1", Source(DC(5), AC(1)))
	require.Equal(t, "AC 1 90", AC("1", 90))

	pwl, err := PWL([]float64{0, 1e-3}, []float64{0, 5})
	require.NoError(t, err)
	require.Equal(t, "PWL(0 0 1m 5)", pwl)

	_, err = PWL([]float64{0}, nil)
	require.Error(t, err)

	v, err := NewVoltageSource("in", "in", "0", Sin(0, 1, 1e3))
	require.NoError(t, err)
	require.Equal(t, "Vin in 0 SIN(0 1 1k)", v.String())
}

func TestLookup(t *testing.T) {
	k, ok := Lookup("r")
	require.True(t, ok)
	require.Same(t, Resistor, k)

	_, ok = Lookup("Z")
	require.False(t, ok)

	var prefixes []string
	for _, k := range Kinds() {
		prefixes = append(prefixes, k.Prefix)
	}
	require.Equal(t, []string{"B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "Q", "R", "S", "T", "V", "W", "X"}, prefixes)
}
