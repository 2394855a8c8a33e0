// Package unit implements the physical value type used for element parameters.
// A Unit keeps the magnitude together with the canonical literal it was written
// as, so "1k" stays "1k" in the netlist while 1000 stays "1000".
package unit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/edp1096/spicedeck/pkg/util"
)

var scaleFactors = map[string]float64{
	"t": 1e12,  // tera
	"g": 1e9,   // giga
	"k": 1e3,   // kilo
	"m": 1e-3,  // milli
	"u": 1e-6,  // micro
	"n": 1e-9,  // nano
	"p": 1e-12, // pico
	"f": 1e-15, // femto
}

// ErrNotFinite is returned for NaN and infinite magnitudes.
var ErrNotFinite = errors.New("unit: value is not a finite number")

type Unit struct {
	value   float64
	literal string
}

func FromFloat(v float64) Unit {
	return Unit{value: v}
}

// Parse reads a SPICE number literal: "10", "1.5e3", "4.7k", "2MEG", "10uF".
func Parse(s string) (Unit, error) {
	lit, err := literalParser.ParseString("", strings.TrimSpace(s))
	if err != nil {
		return Unit{}, fmt.Errorf("unit: invalid value format %q: %w", s, err)
	}

	mantissa := strings.TrimPrefix(strings.ToLower(lit.Number), "+")
	num, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return Unit{}, fmt.Errorf("unit: invalid number %q: %w", lit.Number, err)
	}

	scale, factor, rest := splitSuffix(lit.Suffix)
	return Unit{
		value:   num * factor,
		literal: mantissa + scale + rest,
	}, nil
}

// New converts a primitive into a Unit. NaN and infinities are rejected.
func New(raw any) (Unit, error) {
	u, err := newUnit(raw)
	if err != nil {
		return Unit{}, err
	}
	if math.IsNaN(u.value) || math.IsInf(u.value, 0) {
		return Unit{}, fmt.Errorf("%w: %v", ErrNotFinite, raw)
	}
	return u, nil
}

func newUnit(raw any) (Unit, error) {
	switch v := raw.(type) {
	case Unit:
		return v, nil
	case *Unit:
		if v == nil {
			return Unit{}, fmt.Errorf("unit: nil value")
		}
		return *v, nil
	case float64:
		return FromFloat(v), nil
	case float32:
		return FromFloat(float64(v)), nil
	case int:
		return FromFloat(float64(v)), nil
	case int8:
		return FromFloat(float64(v)), nil
	case int16:
		return FromFloat(float64(v)), nil
	case int32:
		return FromFloat(float64(v)), nil
	case int64:
		return FromFloat(float64(v)), nil
	case uint:
		return FromFloat(float64(v)), nil
	case uint8:
		return FromFloat(float64(v)), nil
	case uint16:
		return FromFloat(float64(v)), nil
	case uint32:
		return FromFloat(float64(v)), nil
	case uint64:
		return FromFloat(float64(v)), nil
	case string:
		return Parse(v)
	case fmt.Stringer:
		return Parse(v.String())
	default:
		return Unit{}, fmt.Errorf("unit: unsupported type %T", raw)
	}
}

func MustNew(raw any) Unit {
	u, err := New(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Unit) Float() float64 {
	return u.value
}

// String is the canonical token written into the netlist.
func (u Unit) String() string {
	if u.literal != "" {
		return u.literal
	}
	return util.FormatFloat(u.value)
}

// Engineering renders the magnitude with the nearest scale suffix.
func (u Unit) Engineering() string {
	return util.FormatValueFactor(u.value, "")
}

// splitSuffix separates the scale factor from the free unit letters.
// The scale is returned lower-cased; the unit letters are kept as written.
func splitSuffix(suffix string) (scale string, factor float64, rest string) {
	lower := strings.ToLower(suffix)
	switch {
	case strings.HasPrefix(lower, "meg"):
		return "meg", 1e6, suffix[3:]
	case strings.HasPrefix(lower, "mil"):
		return "mil", 25.4e-6, suffix[3:]
	}
	if lower != "" {
		if f, ok := scaleFactors[lower[:1]]; ok {
			return lower[:1], f, suffix[1:]
		}
	}
	return "", 1, suffix
}
