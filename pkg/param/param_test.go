package param

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edp1096/spicedeck/pkg/unit"
)

func switchTable() *Table {
	return MustTable(
		Model("model", 0).AsKey(),
		InitialState("initial_state", 1).AsKey(),
		Float("value", 1),
		Expression("expr", 0),
		Int("multiplier", "m"),
		FloatKey("temperature", "temp"),
		FloatPair("ic", "ic"),
		Flag("off", "off"),
		Bool("noisy", "noisy"),
		ExpressionKey("v", "v"),
	)
}

func TestFromArgsOrder(t *testing.T) {
	tbl := switchTable()

	var names []string
	for _, s := range tbl.FromArgs() {
		names = append(names, s.Name)
	}
	require.Equal(t, []string{"expr", "value"}, names)

	vals := tbl.NewValues()
	require.NoError(t, vals.Bind([]any{"dc", "1k"}))
	require.Equal(t, "dc 1k", vals.Format())
}

func TestBindTooMany(t *testing.T) {
	vals := switchTable().NewValues()
	err := vals.Bind([]any{"a", 1, 2})

	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	require.Equal(t, 3, arity.Got)
	require.Equal(t, 2, arity.Max)
}

func TestRequireMissing(t *testing.T) {
	vals := switchTable().NewValues()
	require.NoError(t, vals.Bind([]any{"a"}))

	err := vals.Require()
	var arity *ArityError
	require.True(t, errors.As(err, &arity))
	require.Equal(t, []string{"value"}, arity.Missing)

	require.NoError(t, vals.Apply(Keywords{"value": 2}))
	require.NoError(t, vals.Require())
}

func TestKeyParametersRenderLast(t *testing.T) {
	vals := switchTable().NewValues()
	require.NoError(t, vals.Apply(Keywords{
		"model":         "sw1",
		"initial_state": true,
		"value":         10,
		"expr":          "x",
	}))
	require.Equal(t, []string{"x", "10", "sw1", "on"}, vals.Tokens())
}

func TestUnsetFieldsOmitted(t *testing.T) {
	vals := switchTable().NewValues()
	require.NoError(t, vals.Bind([]any{"", 1000}))
	require.Equal(t, "1000", vals.Format())

	// defaults are readable but never rendered
	off, ok := vals.Get("off")
	require.True(t, ok)
	require.False(t, off.Bool())
	require.False(t, vals.IsSet("off"))
}

func TestKeyValueTokens(t *testing.T) {
	vals := switchTable().NewValues()
	require.NoError(t, vals.Apply(Keywords{
		"multiplier":  2.0,
		"temperature": "27",
		"ic":          []float64{0.5, 1},
		"off":         true,
		"noisy":       true,
		"v":           "V(1)*2",
	}))
	require.Equal(t, []string{"m=2", "temp=27", "ic=0.5,1", "off", "noisy=0", "v=V(1)*2"}, vals.Tokens())

	require.NoError(t, vals.Set("off", false))
	require.NoError(t, vals.Set("noisy", false))
	require.Equal(t, []string{"m=2", "temp=27", "ic=0.5,1", "v=V(1)*2"}, vals.Tokens())
	require.True(t, vals.IsSet("noisy"))
}

func TestBoolToken(t *testing.T) {
	spec := Bool("noisy", "noisy")
	on, err := spec.Validate(true)
	require.NoError(t, err)
	off, err := spec.Validate("off")
	require.NoError(t, err)

	require.Equal(t, "noisy=0", spec.Token(on))
	require.Equal(t, "noisy=1", spec.Token(off))
}

func TestNaNRejected(t *testing.T) {
	vals := switchTable().NewValues()

	var verr *ValidationError
	require.True(t, errors.As(vals.Set("value", math.NaN()), &verr))
	require.ErrorIs(t, verr, unit.ErrNotFinite)
	require.True(t, errors.As(vals.Set("temperature", math.NaN()), &verr))
	require.Equal(t, "temperature", verr.Field)
	require.False(t, vals.IsSet("value"))
	require.False(t, vals.IsSet("temperature"))
}

func TestInitialStateOff(t *testing.T) {
	vals := switchTable().NewValues()
	require.NoError(t, vals.Set("initial_state", "off"))
	require.Equal(t, "off", vals.Format())
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		field string
		raw   any
	}{
		{"value", "abc"},
		{"multiplier", 1.5},
		{"multiplier", "two"},
		{"temperature", []int{1}},
		{"ic", []float64{1, 2, 3}},
		{"ic", "1"},
		{"off", "maybe"},
		{"expr", nil},
		{"value", math.Inf(1)},
		{"value", "1e999"},
		{"multiplier", uint64(math.MaxUint64)},
		{"multiplier", 1e30},
		{"temperature", "NaN"},
		{"temperature", "-Inf"},
		{"temperature", math.Inf(-1)},
		{"ic", []float64{1, math.Inf(1)}},
		{"model", "q 1"},
	}

	for _, tt := range tests {
		vals := switchTable().NewValues()
		err := vals.Set(tt.field, tt.raw)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "%s=%v", tt.field, tt.raw)
		require.Equal(t, tt.field, verr.Field)
		require.Equal(t, tt.raw, verr.Value)
		require.Contains(t, err.Error(), tt.field)
	}
}

func TestPairLength(t *testing.T) {
	_, err := FloatPair("ic", "ic").Validate([3]float64{1, 2, 3})
	require.ErrorIs(t, err, ErrPairLength)

	v, err := FloatPair("ic", "ic").Validate("1.5, 2")
	require.NoError(t, err)
	require.Equal(t, [2]float64{1.5, 2}, v.Pair())
}

func TestUnknownParameter(t *testing.T) {
	vals := switchTable().NewValues()
	err := vals.Apply(Keywords{"tc1": 0.1})

	var unknown *UnknownParameterError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "tc1", unknown.Name)
}

func TestFloatValidationKeepsUnit(t *testing.T) {
	v, err := Float("r", 0).Validate(unit.MustNew("4.7k"))
	require.NoError(t, err)
	require.Equal(t, "4.7k", v.String())
	require.InDelta(t, 4700, v.Float(), 1e-9)
}

type named struct{}

func (named) GetName() string { return "L1" }

func TestElementNameCoercion(t *testing.T) {
	v, err := ElementName("inductor1", 0).Validate(named{})
	require.NoError(t, err)
	require.Equal(t, "L1", v.String())
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	_, err := NewTable(Float("r", 0), FloatKey("r", "r"))
	require.Error(t, err)

	_, err = NewTable(Int("m", "m").WithDefault("x"))
	require.Error(t, err)

	require.Panics(t, func() { MustTable(Spec{}) })
}

func TestExpressionKeyEmptySkipped(t *testing.T) {
	vals := switchTable().NewValues()
	require.NoError(t, vals.Set("v", ""))
	require.Empty(t, vals.Tokens())
}
