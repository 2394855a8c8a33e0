package unit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		value     float64
		canonical string
	}{
		{"1000", 1000, "1000"},
		{"1k", 1e3, "1k"},
		{"1K", 1e3, "1k"},
		{"2MEG", 2e6, "2meg"},
		{"10uF", 10e-6, "10uF"},
		{"1.5e3", 1500, "1.5e3"},
		{"+3.3", 3.3, "3.3"},
		{"-5V", -5, "-5V"},
		{"1m", 1e-3, "1m"},
		{"100p", 100e-12, "100p"},
		{" 47n ", 47e-9, "47n"},
		{"10mil", 254e-6, "10mil"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			u, err := Parse(tt.in)
			require.NoError(t, err)
			require.InDelta(t, tt.value, u.Float(), 1e-12*max(1, tt.value))
			require.Equal(t, tt.canonical, u.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1k2", "1 2", "--1"} {
		_, err := Parse(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestNew(t *testing.T) {
	u, err := New(1000)
	require.NoError(t, err)
	require.Equal(t, "1000", u.String())

	u, err = New(uint8(3))
	require.NoError(t, err)
	require.Equal(t, 3.0, u.Float())

	u, err = New(0.5)
	require.NoError(t, err)
	require.Equal(t, "0.5", u.String())

	u, err = New("1k")
	require.NoError(t, err)
	same, err := New(u)
	require.NoError(t, err)
	require.Equal(t, u, same)

	_, err = New([]int{1})
	require.Error(t, err)

	_, err = New((*Unit)(nil))
	require.Error(t, err)
}

func TestZeroValue(t *testing.T) {
	var u Unit
	require.Equal(t, "0", u.String())
	require.Equal(t, "0", u.Engineering())
}

func TestEngineering(t *testing.T) {
	require.Equal(t, "1.5k", FromFloat(1500).Engineering())
	require.Equal(t, "4.7u", FromFloat(4.7e-6).Engineering())
	require.Equal(t, "10meg", FromFloat(10e6).Engineering())
	require.Equal(t, "-2m", FromFloat(-2e-3).Engineering())
	require.Equal(t, "250", MustNew("250").Engineering())
}

func TestMustNewPanics(t *testing.T) {
	require.Panics(t, func() { MustNew("not a number") })
}

func TestNewNotFinite(t *testing.T) {
	for _, raw := range []any{math.NaN(), math.Inf(1), float32(math.Inf(-1)), "1e999"} {
		_, err := New(raw)
		require.Error(t, err, "input %v", raw)
	}

	_, err := New(math.NaN())
	require.ErrorIs(t, err, ErrNotFinite)

	u, err := New(uint64(math.MaxUint64))
	require.NoError(t, err)
	require.Equal(t, float64(math.MaxUint64), u.Float())
}
