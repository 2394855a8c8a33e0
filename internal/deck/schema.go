package deck

import "github.com/zclconf/go-cty/cty"

// deckFile is the top-level layout of a deck file.
type deckFile struct {
	Title         string   `hcl:"title,optional"`
	Ground        string   `hcl:"ground,optional"`
	Globals       []string `hcl:"globals,optional"`
	Includes      []string `hcl:"includes,optional"`
	LibraryModels []string `hcl:"library_models,optional"`

	Params      []*paramBlock   `hcl:"param,block"`
	Models      []*modelBlock   `hcl:"model,block"`
	SubCircuits []*subcktBlock  `hcl:"subckt,block"`
	Elements    []*elementBlock `hcl:"element,block"`
	Probes      []*probeBlock   `hcl:"probe,block"`
}

type paramBlock struct {
	Name  string    `hcl:"name,label"`
	Value cty.Value `hcl:"value"`
}

type modelBlock struct {
	Name   string    `hcl:"name,label"`
	Type   string    `hcl:"type"`
	Params cty.Value `hcl:"params,optional"`
}

type subcktBlock struct {
	Name     string          `hcl:"name,label"`
	Nodes    []string        `hcl:"nodes"`
	Ground   string          `hcl:"ground,optional"`
	Models   []*modelBlock   `hcl:"model,block"`
	Elements []*elementBlock `hcl:"element,block"`
	Probes   []*probeBlock   `hcl:"probe,block"`
}

type elementBlock struct {
	Prefix string    `hcl:"prefix,label"`
	Name   string    `hcl:"name,label"`
	Nodes  []string  `hcl:"nodes,optional"`
	Args   cty.Value `hcl:"args,optional"`
	Params cty.Value `hcl:"params,optional"`
}

type probeBlock struct {
	Element string `hcl:"element,label"`
	Pin     string `hcl:"pin"`
}
