package netlist

import (
	"fmt"
	"strings"
)

// Node is a derived view: the names of the elements whose pins bind to it.
type Node struct {
	name     string
	elements []string
}

func (n *Node) Name() string { return n.name }

func (n *Node) Elements() []string {
	out := make([]string, len(n.elements))
	copy(out, n.elements)
	return out
}

func (n *Node) String() string {
	return fmt.Sprintf("Node %s [%s]", n.name, strings.Join(n.elements, " "))
}

func (n *Node) add(element string) {
	for _, e := range n.elements {
		if e == element {
			return
		}
	}
	n.elements = append(n.elements, element)
}

// Nodes returns the node index in order of first appearance.
func (n *Netlist) Nodes() []*Node {
	n.rebuild()
	out := make([]*Node, len(n.nodes))
	copy(out, n.nodes)
	return out
}

func (n *Netlist) Node(name string) (*Node, bool) {
	n.rebuild()
	node, ok := n.nodeMap[name]
	return node, ok
}

func (n *Netlist) NodeNames() []string {
	n.rebuild()
	names := make([]string, len(n.nodes))
	for i, node := range n.nodes {
		names[i] = node.name
	}
	return names
}

// Invalidate forces the next read to rebuild the node index. Needed only
// after pins were rebound outside of AddElement.
func (n *Netlist) Invalidate() { n.dirty = true }

func (n *Netlist) rebuild() {
	if !n.dirty {
		return
	}
	n.nodes = n.nodes[:0]
	n.nodeMap = make(map[string]*Node)

	for _, e := range n.elements {
		for _, nodeName := range e.GetNodeNames() {
			node, ok := n.nodeMap[nodeName]
			if !ok {
				node = &Node{name: nodeName}
				n.nodeMap[nodeName] = node
				n.nodes = append(n.nodes, node)
			}
			node.add(e.GetName())
		}
	}
	n.dirty = false
}
