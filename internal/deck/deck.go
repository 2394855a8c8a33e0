// Package deck loads circuit descriptions written in HCL.
//
//	title    = "divider"
//	includes = ["models.lib"]
//
//	param "vdd" {
//	  value = 5
//	}
//
//	element "V" "in" {
//	  nodes = ["in", "0"]
//	  args  = ["{vdd}"]
//	}
//
//	element "R" "1" {
//	  nodes  = ["in", "out"]
//	  args   = ["9k"]
//	  params = { tc1 = 0.001 }
//	}
//
//	probe "R1" {
//	  pin = "minus"
//	}
package deck

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/edp1096/spicedeck/internal/ctxlog"
	"github.com/edp1096/spicedeck/pkg/circuit"
	"github.com/edp1096/spicedeck/pkg/device"
	"github.com/edp1096/spicedeck/pkg/netlist"
	"github.com/edp1096/spicedeck/pkg/param"
)

// ModelSource resolves library_models into .model statements.
type ModelSource interface {
	Apply(n *netlist.Netlist, names ...string) error
}

type Option func(*loader)

func WithModelSource(src ModelSource) Option {
	return func(l *loader) { l.models = src }
}

// WithStrict runs CheckNodes on every sub-circuit after loading.
func WithStrict(strict bool) Option {
	return func(l *loader) { l.strict = strict }
}

type loader struct {
	models ModelSource
	strict bool
}

// Load reads and builds the deck at path.
func Load(ctx context.Context, path string, opts ...Option) (*circuit.Circuit, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("deck: failed to parse %s: %w", path, diags)
	}
	return decode(ctx, path, file, opts)
}

// LoadBytes is Load for in-memory sources; filename is used in diagnostics.
func LoadBytes(ctx context.Context, src []byte, filename string, opts ...Option) (*circuit.Circuit, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("deck: failed to parse %s: %w", filename, diags)
	}
	return decode(ctx, filename, file, opts)
}

func decode(ctx context.Context, filename string, file *hcl.File, opts []Option) (*circuit.Circuit, error) {
	logger := ctxlog.FromContext(ctx).With("deck", filename)

	var root deckFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("deck: failed to decode %s: %w", filename, diags)
	}

	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}

	c, err := l.build(ctx, &root)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", filename, err)
	}
	logger.Debug("Deck loaded.",
		"elements", len(c.Elements()),
		"models", len(c.Models()),
		"subcircuits", len(c.SubCircuits()),
	)
	return c, nil
}

func (l *loader) build(ctx context.Context, root *deckFile) (*circuit.Circuit, error) {
	logger := ctxlog.FromContext(ctx)

	var opts []circuit.Option
	if root.Ground != "" {
		opts = append(opts, circuit.WithGround(root.Ground))
	}
	c := circuit.New(root.Title, append(opts, circuit.WithGlobalNodes(root.Globals...))...)

	for _, path := range root.Includes {
		c.Include(path)
	}
	for _, p := range root.Params {
		value, err := ctyToNative(p.Value)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", p.Name, err)
		}
		if value == nil {
			return nil, fmt.Errorf("param %s: value is null", p.Name)
		}
		c.Parameter(p.Name, value)
	}

	for _, block := range root.SubCircuits {
		ground := block.Ground
		if ground == "" {
			ground = c.Gnd()
		}
		sub, err := circuit.NewSubCircuit(block.Name, block.Nodes, circuit.WithGround(ground))
		if err != nil {
			return nil, err
		}
		if err := l.fill(ctx, sub.Netlist, block.Models, block.Elements, block.Probes, nil); err != nil {
			return nil, fmt.Errorf("subckt %s: %w", block.Name, err)
		}
		if err := c.AddSubCircuit(sub); err != nil {
			return nil, err
		}
		logger.Debug("Sub-circuit built.", "name", sub.Name(), "elements", len(sub.Elements()))
	}

	if len(root.LibraryModels) > 0 {
		if l.models == nil {
			return nil, fmt.Errorf("library_models %v given but no model library is configured", root.LibraryModels)
		}
		if err := l.models.Apply(c.Netlist, root.LibraryModels...); err != nil {
			return nil, err
		}
	}

	if err := l.fill(ctx, c.Netlist, root.Models, root.Elements, root.Probes, c); err != nil {
		return nil, err
	}

	if l.strict {
		var errs []error
		for _, sub := range c.SubCircuits() {
			if err := sub.CheckNodes(); err != nil {
				errs = append(errs, err)
			}
		}
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// fill adds models, elements and probes to one scope. top is set for the
// circuit scope so X elements are checked against attached sub-circuits.
func (l *loader) fill(ctx context.Context, n *netlist.Netlist, models []*modelBlock, elements []*elementBlock, probes []*probeBlock, top *circuit.Circuit) error {
	logger := ctxlog.FromContext(ctx)

	for _, m := range models {
		params, err := toMap(m.Params)
		if err != nil {
			return fmt.Errorf("model %s: %w", m.Name, err)
		}
		if _, err := n.AddModel(m.Name, m.Type, params); err != nil {
			return err
		}
	}

	for _, block := range elements {
		e, err := l.element(n, block, top)
		if err != nil {
			return err
		}
		logger.Debug("Element added.", "element", e.GetName(), "nodes", e.GetNodeNames())
	}

	for _, p := range probes {
		probe, err := n.Probe(p.Element, p.Pin)
		if err != nil {
			return fmt.Errorf("probe %s: %w", p.Element, err)
		}
		logger.Debug("Current probe added.", "probe", probe.GetName())
	}
	return nil
}

func (l *loader) element(n *netlist.Netlist, block *elementBlock, top *circuit.Circuit) (*device.Element, error) {
	kind, ok := device.Lookup(block.Prefix)
	if !ok {
		return nil, fmt.Errorf("element %s%s: unknown element prefix %q", block.Prefix, block.Name, block.Prefix)
	}
	args, err := toList(block.Args)
	if err != nil {
		return nil, fmt.Errorf("element %s%s: args: %w", kind.Prefix, block.Name, err)
	}
	kw, err := toMap(block.Params)
	if err != nil {
		return nil, fmt.Errorf("element %s%s: params: %w", kind.Prefix, block.Name, err)
	}

	if top != nil && kind == device.SubCircuitElement && len(args) == 1 && len(kw) == 0 {
		if name, ok := args[0].(string); ok {
			if _, attached := top.SubCircuit(name); attached {
				return top.X(block.Name, name, block.Nodes...)
			}
		}
	}

	if len(kw) > 0 {
		args = append(args, param.Keywords(kw))
	}
	return n.Build(kind, block.Name, block.Nodes, args...)
}
