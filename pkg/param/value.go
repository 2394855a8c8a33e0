package param

import (
	"strconv"

	"github.com/edp1096/spicedeck/pkg/unit"
	"github.com/edp1096/spicedeck/pkg/util"
)

// Value is a validated parameter value, tagged with the kind it was validated for.
type Value struct {
	kind Kind
	unit unit.Unit
	str  string
	b    bool
	i    int
	f    float64
	pair [2]float64
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Unit() unit.Unit { return v.unit }

func (v Value) Bool() bool { return v.b }

func (v Value) Int() int { return v.i }

func (v Value) Pair() [2]float64 { return v.pair }

// Float returns the magnitude of numeric kinds.
func (v Value) Float() float64 {
	switch v.kind {
	case PositionalFloat:
		return v.unit.Float()
	case KeyInt:
		return float64(v.i)
	}
	return v.f
}

// String is the bare value text, without any key.
func (v Value) String() string {
	switch v.kind {
	case PositionalFloat:
		return v.unit.String()
	case PositionalInitialState:
		if v.b {
			return "on"
		}
		return "off"
	case KeyFlag, KeyBool:
		return strconv.FormatBool(v.b)
	case KeyInt:
		return strconv.Itoa(v.i)
	case KeyFloat:
		return util.FormatFloat(v.f)
	case KeyFloatPair:
		return util.FormatFloat(v.pair[0]) + "," + util.FormatFloat(v.pair[1])
	}
	return v.str
}
