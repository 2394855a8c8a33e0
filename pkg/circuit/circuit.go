// Package circuit renders complete netlists: a top-level Circuit with its
// directives and the SubCircuit definitions it carries.
package circuit

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/edp1096/spicedeck/internal/consts"
	"github.com/edp1096/spicedeck/pkg/device"
	"github.com/edp1096/spicedeck/pkg/netlist"
	"github.com/edp1096/spicedeck/pkg/util"
)

type Parameter struct {
	Name       string
	Expression string
}

type Circuit struct {
	*netlist.Netlist
	title       string
	globals     []string
	includes    []string
	params      []Parameter
	subcircuits []*SubCircuit
	subByName   map[string]*SubCircuit
}

func New(title string, opts ...Option) *Circuit {
	cfg := newConfig(opts)

	c := &Circuit{
		Netlist:   netlist.New(),
		title:     title,
		subByName: make(map[string]*SubCircuit),
	}
	c.SetGround(cfg.ground)
	for _, node := range cfg.globals {
		c.AddGlobalNode(node)
	}
	return c
}

func (c *Circuit) Title() string { return c.title }

func (c *Circuit) SetTitle(title string) { c.title = title }

func (c *Circuit) Gnd() string { return c.Ground() }

// AddGlobalNode declares a .global node; repeats are ignored.
func (c *Circuit) AddGlobalNode(node string) {
	if !slices.Contains(c.globals, node) {
		c.globals = append(c.globals, node)
	}
}

func (c *Circuit) GlobalNodes() []string {
	return append([]string(nil), c.globals...)
}

// Include adds an .include path; repeats are ignored.
func (c *Circuit) Include(path string) {
	if !slices.Contains(c.includes, path) {
		c.includes = append(c.includes, path)
	}
}

func (c *Circuit) Includes() []string {
	return append([]string(nil), c.includes...)
}

// Parameter sets a .param. Reassigning a name keeps its original position.
func (c *Circuit) Parameter(name string, expression any) {
	expr := fmt.Sprint(expression)
	for i := range c.params {
		if c.params[i].Name == name {
			c.params[i].Expression = expr
			return
		}
	}
	c.params = append(c.params, Parameter{Name: name, Expression: expr})
}

func (c *Circuit) Parameters() []Parameter {
	return append([]Parameter(nil), c.params...)
}

func (c *Circuit) AddSubCircuit(s *SubCircuit) error {
	if _, exists := c.subByName[s.name]; exists {
		return &device.DuplicateNameError{Kind: "subcircuit", Name: s.name}
	}
	c.subcircuits = append(c.subcircuits, s)
	c.subByName[s.name] = s
	return nil
}

func (c *Circuit) SubCircuit(name string) (*SubCircuit, bool) {
	s, ok := c.subByName[name]
	return s, ok
}

func (c *Circuit) SubCircuits() []*SubCircuit {
	return append([]*SubCircuit(nil), c.subcircuits...)
}

// X instantiates an attached sub-circuit. The node count must match its
// external nodes.
func (c *Circuit) X(name, subcircuit string, nodes ...string) (*device.Element, error) {
	s, ok := c.subByName[subcircuit]
	if !ok {
		return nil, &netlist.NotFoundError{Name: subcircuit}
	}
	if len(nodes) != len(s.nodes) {
		return nil, &device.ShapeError{Element: device.SubCircuitElement.Prefix + name, Kind: s.name, Got: len(nodes)}
	}
	return c.Netlist.X(name, s.name, nodes...)
}

func (c *Circuit) String() string {
	var sb strings.Builder
	line := func(parts ...string) {
		sb.WriteString(util.JoinList(parts...))
		sb.WriteByte('\n')
	}

	line(consts.TITLE, c.title)
	if len(c.includes) > 0 {
		line(util.JoinLines(c.includes, consts.INCLUDE+" "))
	}
	if len(c.globals) > 0 {
		line(consts.GLOBAL, util.JoinList(c.globals...))
	}
	if len(c.params) > 0 {
		assignments := make([]string, len(c.params))
		for i, p := range c.params {
			assignments[i] = p.Name + "=" + p.Expression
		}
		line(util.JoinLines(assignments, consts.PARAM+" "))
	}
	for _, s := range c.subcircuits {
		sb.WriteString(s.String())
	}
	sb.WriteString(c.Netlist.String())
	line(consts.END)
	return sb.String()
}

func (c *Circuit) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.String())
	return int64(n), err
}
