package device

import (
	"fmt"
	"strings"
	"unicode"
)

// DuplicateNameError is returned when a name is already taken in its scope.
type DuplicateNameError struct {
	Kind string // "element", "model" or "subcircuit"
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s name %s is already defined", e.Kind, e.Name)
}

// ShapeError is returned when an element gets a node count its kind cannot take.
type ShapeError struct {
	Element string
	Kind    string
	Got     int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("device %s: %s cannot take %d nodes", e.Element, e.Kind, e.Got)
}

// NameError is returned for an empty name or one that would split into
// several netlist fields.
type NameError struct {
	Kind string // "element", "node", "model" or "subcircuit"
	Name string
}

func (e *NameError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s name is empty", e.Kind)
	}
	return fmt.Sprintf("%s name %q contains whitespace", e.Kind, e.Name)
}

// CheckName rejects names that cannot be written as a single token.
func CheckName(kind, name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return &NameError{Kind: kind, Name: name}
	}
	return nil
}
