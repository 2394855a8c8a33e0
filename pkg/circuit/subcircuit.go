package circuit

import (
	"fmt"
	"strings"

	"github.com/edp1096/spicedeck/internal/consts"
	"github.com/edp1096/spicedeck/pkg/device"
	"github.com/edp1096/spicedeck/pkg/netlist"
	"github.com/edp1096/spicedeck/pkg/util"
)

// SubCircuit is a .subckt definition. It is attached to a Circuit with
// AddSubCircuit and instantiated there with X.
type SubCircuit struct {
	*netlist.Netlist
	name  string
	nodes []string
}

func NewSubCircuit(name string, nodes []string, opts ...Option) (*SubCircuit, error) {
	if err := device.CheckName("subcircuit", name); err != nil {
		return nil, fmt.Errorf("circuit: %w", err)
	}
	for _, node := range nodes {
		if err := device.CheckName("node", node); err != nil {
			return nil, fmt.Errorf("circuit: subcircuit %s: %w", name, err)
		}
	}
	cfg := newConfig(opts)

	s := &SubCircuit{
		Netlist: netlist.New(),
		name:    name,
		nodes:   append([]string(nil), nodes...),
	}
	s.SetGround(cfg.ground)
	return s, nil
}

// Define builds a reusable sub-circuit: build fills the body of a fresh
// SubCircuit every time Define is called.
func Define(name string, nodes []string, build func(s *SubCircuit) error, opts ...Option) (*SubCircuit, error) {
	s, err := NewSubCircuit(name, nodes, opts...)
	if err != nil {
		return nil, err
	}
	if err := build(s); err != nil {
		return nil, fmt.Errorf("circuit: subcircuit %s: %w", name, err)
	}
	return s, nil
}

func (s *SubCircuit) Name() string { return s.name }

func (s *SubCircuit) ExternalNodes() []string {
	return append([]string(nil), s.nodes...)
}

// Gnd is the local ground node.
func (s *SubCircuit) Gnd() string { return s.Ground() }

// CheckNodes reports every external node no element connects to.
func (s *SubCircuit) CheckNodes() error {
	var unconnected []string
	for _, node := range s.nodes {
		if _, ok := s.Node(node); !ok {
			unconnected = append(unconnected, node)
		}
	}
	if len(unconnected) > 0 {
		return &UnconnectedNodeError{SubCircuit: s.name, Nodes: unconnected}
	}
	return nil
}

func (s *SubCircuit) String() string {
	var sb strings.Builder
	sb.WriteString(util.JoinList(consts.SUBCKT, s.name, util.JoinList(s.nodes...)))
	sb.WriteByte('\n')
	sb.WriteString(s.Netlist.String())
	sb.WriteString(consts.ENDS)
	sb.WriteByte('\n')
	return sb.String()
}

type UnconnectedNodeError struct {
	SubCircuit string
	Nodes      []string
}

func (e *UnconnectedNodeError) Error() string {
	return fmt.Sprintf("subcircuit %s: nodes %s are not connected", e.SubCircuit, strings.Join(e.Nodes, ", "))
}
