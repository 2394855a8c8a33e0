// Package param declares, validates and renders element parameters.
//
// Every element kind owns a Table: a fixed, ordered list of Specs built once at
// package initialisation. Instances keep their assigned values in a Values set
// bound to that table; only explicitly set values are rendered.
package param

import (
	"strconv"

	"github.com/edp1096/spicedeck/pkg/unit"
	"github.com/edp1096/spicedeck/pkg/util"
)

type Kind int

const (
	PositionalFloat Kind = iota
	PositionalExpression
	PositionalElementName
	PositionalModel
	PositionalInitialState
	KeyInt
	KeyFloat
	KeyFloatPair
	KeyExpression
	KeyFlag
	KeyBool
)

var kindNames = map[Kind]string{
	PositionalFloat:        "float",
	PositionalExpression:   "expression",
	PositionalElementName:  "element name",
	PositionalModel:        "model",
	PositionalInitialState: "initial state",
	KeyInt:                 "int",
	KeyFloat:               "float",
	KeyFloatPair:           "float pair",
	KeyExpression:          "expression",
	KeyFlag:                "flag",
	KeyBool:                "bool",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) IsPositional() bool {
	return k <= PositionalInitialState
}

// Spec describes one parameter of an element kind.
type Spec struct {
	Name         string // field identifier
	SpiceName    string // token written for key-value kinds
	Kind         Kind
	Position     int  // positional kinds only
	KeyParameter bool // positional, but only settable by name
	Default      any
}

func Float(name string, position int) Spec {
	return Spec{Name: name, Kind: PositionalFloat, Position: position}
}

func Expression(name string, position int) Spec {
	return Spec{Name: name, Kind: PositionalExpression, Position: position}
}

func ElementName(name string, position int) Spec {
	return Spec{Name: name, Kind: PositionalElementName, Position: position}
}

func Model(name string, position int) Spec {
	return Spec{Name: name, Kind: PositionalModel, Position: position}
}

func InitialState(name string, position int) Spec {
	return Spec{Name: name, Kind: PositionalInitialState, Position: position}
}

func Int(name, spiceName string) Spec {
	return Spec{Name: name, SpiceName: spiceName, Kind: KeyInt}
}

func FloatKey(name, spiceName string) Spec {
	return Spec{Name: name, SpiceName: spiceName, Kind: KeyFloat}
}

func FloatPair(name, spiceName string) Spec {
	return Spec{Name: name, SpiceName: spiceName, Kind: KeyFloatPair}
}

func ExpressionKey(name, spiceName string) Spec {
	return Spec{Name: name, SpiceName: spiceName, Kind: KeyExpression}
}

func Flag(name, spiceName string) Spec {
	return Spec{Name: name, SpiceName: spiceName, Kind: KeyFlag, Default: false}
}

func Bool(name, spiceName string) Spec {
	return Spec{Name: name, SpiceName: spiceName, Kind: KeyBool, Default: false}
}

// AsKey marks a positional spec as settable by name only. It still renders
// positionally, after the purely positional fields.
func (s Spec) AsKey() Spec {
	s.KeyParameter = true
	return s
}

func (s Spec) WithDefault(v any) Spec {
	s.Default = v
	return s
}

// Validate coerces raw into the spec's kind.
func (s Spec) Validate(raw any) (Value, error) {
	v := Value{kind: s.Kind}
	var err error

	switch s.Kind {
	case PositionalFloat:
		v.unit, err = unit.New(raw)
	case PositionalExpression, KeyExpression:
		v.str, err = toString(raw)
	case PositionalElementName, PositionalModel:
		v.str, err = toName(raw)
	case PositionalInitialState, KeyFlag, KeyBool:
		v.b, err = toBool(raw)
	case KeyInt:
		v.i, err = toInt(raw)
	case KeyFloat:
		v.f, err = toFloat(raw)
	case KeyFloatPair:
		v.pair, err = toPair(raw)
	default:
		err = errUnknownKind
	}

	if err != nil {
		return Value{}, &ValidationError{Field: s.Name, Value: raw, Err: err}
	}
	return v, nil
}

// Token renders v as it appears on the element line. An empty token means
// the value contributes nothing.
func (s Spec) Token(v Value) string {
	switch s.Kind {
	case PositionalFloat:
		return v.unit.String()
	case PositionalExpression, PositionalElementName, PositionalModel:
		return v.str
	case PositionalInitialState:
		if v.b {
			return "on"
		}
		return "off"
	case KeyInt:
		return s.SpiceName + "=" + strconv.Itoa(v.i)
	case KeyFloat:
		return s.SpiceName + "=" + util.FormatFloat(v.f)
	case KeyFloatPair:
		return s.SpiceName + "=" + util.FormatFloat(v.pair[0]) + "," + util.FormatFloat(v.pair[1])
	case KeyExpression:
		if v.str == "" {
			return ""
		}
		return s.SpiceName + "=" + v.str
	case KeyFlag:
		if v.b {
			return s.SpiceName
		}
		return ""
	case KeyBool:
		// Inverted on purpose: the simulator switches read 0 as enabled.
		// A false value is zero and never reaches the line.
		if v.b {
			return s.SpiceName + "=0"
		}
		return s.SpiceName + "=1"
	}
	return ""
}

// nonzero reports whether a set value should be rendered at all.
func (s Spec) nonzero(v Value) bool {
	switch s.Kind {
	case PositionalExpression, PositionalElementName, PositionalModel, KeyExpression:
		return v.str != ""
	case KeyFlag, KeyBool:
		return v.b
	}
	return true
}
