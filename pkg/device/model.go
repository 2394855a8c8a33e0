package device

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/edp1096/spicedeck/internal/consts"
	"github.com/edp1096/spicedeck/pkg/util"
)

// ErrModelType is returned for a model type outside the simulator vocabulary.
var ErrModelType = errors.New("unknown model type")

var modelTypes = map[string]string{
	"R":    "Semiconductor resistor model",
	"C":    "Semiconductor capacitor model",
	"L":    "Inductor model",
	"SW":   "Voltage controlled switch",
	"CSW":  "Current controlled switch",
	"URC":  "Uniform distributed RC model",
	"LTRA": "Lossy transmission line model",
	"D":    "Diode model",
	"NPN":  "NPN BJT model",
	"PNP":  "PNP BJT model",
	"NJF":  "N-channel JFET model",
	"PJF":  "P-channel JFET model",
	"NMOS": "N-channel MOSFET model",
	"PMOS": "P-channel MOSFET model",
	"NMF":  "N-channel MESFET model",
	"PMF":  "P-channel MESFET model",
}

// ModelTypes lists the accepted model type codes.
func ModelTypes() []string {
	types := make([]string, 0, len(modelTypes))
	for t := range modelTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func DescribeModelType(code string) (string, bool) {
	desc, ok := modelTypes[strings.ToUpper(code)]
	return desc, ok
}

// Model is a .model statement. Parameter values are rendered as-is.
type Model struct {
	name      string
	modelType string
	params    map[string]any
}

func NewModel(name, modelType string, params map[string]any) (*Model, error) {
	if err := CheckName("model", name); err != nil {
		return nil, fmt.Errorf("device: %w", err)
	}
	code := strings.ToUpper(modelType)
	if _, ok := modelTypes[code]; !ok {
		return nil, fmt.Errorf("device: model %s: %w %q", name, ErrModelType, modelType)
	}

	m := &Model{
		name:      name,
		modelType: code,
		params:    make(map[string]any, len(params)),
	}
	for k, v := range params {
		m.params[k] = v
	}
	return m, nil
}

func (m *Model) Name() string { return m.name }

func (m *Model) Type() string { return m.modelType }

func (m *Model) Param(key string) (any, bool) {
	v, ok := m.params[key]
	return v, ok
}

func (m *Model) Params() map[string]any {
	params := make(map[string]any, len(m.params))
	for k, v := range m.params {
		params[k] = v
	}
	return params
}

func (m *Model) String() string {
	return fmt.Sprintf("%s %s %s (%s)", consts.MODEL, m.name, m.modelType, util.JoinDict(m.params))
}
