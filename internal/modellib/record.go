package modellib

import (
	"bytes"
	"encoding/gob"

	"github.com/edp1096/spicedeck/pkg/device"
	"github.com/edp1096/spicedeck/pkg/util"
)

// Record is one stored device model.
type Record struct {
	Name        string
	Type        string
	Description string
	Params      map[string]any
}

// Model validates the record as a .model statement.
func (r Record) Model() (*device.Model, error) {
	return device.NewModel(r.Name, r.Type, r.Params)
}

// document is what gets indexed for search.
func (r Record) document() map[string]any {
	return map[string]any{
		"name":        r.Name,
		"type":        r.Type,
		"description": r.Description,
		"params":      util.JoinDict(r.Params),
	}
}

func marshal(v any) ([]byte, error) {
	b := new(bytes.Buffer)
	if err := gob.NewEncoder(b).Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}
