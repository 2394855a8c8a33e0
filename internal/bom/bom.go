// Package bom exports a circuit's element list as an xlsx bill of materials.
package bom

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/edp1096/spicedeck/pkg/circuit"
	"github.com/edp1096/spicedeck/pkg/device"
	"github.com/edp1096/spicedeck/pkg/param"
)

const Sheet = "BOM"

var header = []any{"Scope", "Designator", "Kind", "Nodes", "Value", "Model", "Parameters"}

type Row struct {
	Scope      string // sub-circuit name, empty for the top level
	Designator string
	Kind       string
	Nodes      string
	Value      string
	Model      string
	Parameters string
}

// Rows lists sub-circuit elements first, in attachment order, then the
// top-level elements.
func Rows(c *circuit.Circuit) []Row {
	var rows []Row
	for _, sub := range c.SubCircuits() {
		for _, e := range sub.Elements() {
			rows = append(rows, row(sub.Name(), e))
		}
	}
	for _, e := range c.Elements() {
		rows = append(rows, row("", e))
	}
	return rows
}

func row(scope string, e *device.Element) Row {
	r := Row{
		Scope:      scope,
		Designator: e.GetName(),
		Kind:       e.Kind().Name,
		Nodes:      strings.Join(e.GetNodeNames(), " "),
		Parameters: e.FormatParameters(),
	}
	for _, spec := range e.Kind().Params.RenderOrder() {
		if !e.IsSet(spec.Name) {
			continue
		}
		v, _ := e.Param(spec.Name)
		switch spec.Kind {
		case param.PositionalFloat, param.PositionalExpression:
			if r.Value == "" {
				r.Value = v.String()
			}
		case param.PositionalModel:
			r.Model = v.String()
		}
	}
	return r
}

// Write renders the rows of c into a single-sheet workbook.
func Write(w io.Writer, c *circuit.Circuit) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return fmt.Errorf("bom: %w", err)
	}
	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		return fmt.Errorf("bom: header: %w", err)
	}

	for i, r := range Rows(c) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("bom: %w", err)
		}
		values := []any{r.Scope, r.Designator, r.Kind, r.Nodes, r.Value, r.Model, r.Parameters}
		if err := f.SetSheetRow(Sheet, cell, &values); err != nil {
			return fmt.Errorf("bom: row %s: %w", r.Designator, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("bom: write: %w", err)
	}
	return nil
}
