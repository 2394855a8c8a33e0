package param

import (
	"fmt"
	"sort"
)

// Table is the ordered parameter declaration of one element kind.
type Table struct {
	specs      []Spec
	index      map[string]int
	defaults   map[string]Value
	fromArgs   []int
	positional []int
	keyed      []int
}

func NewTable(specs ...Spec) (*Table, error) {
	t := &Table{
		specs:    make([]Spec, len(specs)),
		index:    make(map[string]int, len(specs)),
		defaults: make(map[string]Value),
	}
	copy(t.specs, specs)

	for i := range t.specs {
		s := &t.specs[i]
		if s.Name == "" {
			return nil, fmt.Errorf("param: spec %d has no name", i)
		}
		if _, exists := t.index[s.Name]; exists {
			return nil, fmt.Errorf("param: duplicate spec %q", s.Name)
		}
		t.index[s.Name] = i

		if s.Kind.IsPositional() {
			t.positional = append(t.positional, i)
			if !s.KeyParameter {
				t.fromArgs = append(t.fromArgs, i)
			}
		} else {
			if s.SpiceName == "" {
				s.SpiceName = s.Name
			}
			t.keyed = append(t.keyed, i)
		}

		if s.Default != nil {
			v, err := s.Validate(s.Default)
			if err != nil {
				return nil, fmt.Errorf("param: default of %q: %w", s.Name, err)
			}
			t.defaults[s.Name] = v
		}
	}

	sort.SliceStable(t.fromArgs, func(i, j int) bool {
		return t.specs[t.fromArgs[i]].Position < t.specs[t.fromArgs[j]].Position
	})
	// Key parameters render after the purely positional ones.
	sort.SliceStable(t.positional, func(i, j int) bool {
		a, b := t.specs[t.positional[i]], t.specs[t.positional[j]]
		if a.KeyParameter != b.KeyParameter {
			return !a.KeyParameter
		}
		return a.Position < b.Position
	})

	return t, nil
}

// MustTable is NewTable for static declarations; it panics on a bad table.
func MustTable(specs ...Spec) *Table {
	t, err := NewTable(specs...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) Specs() []Spec {
	out := make([]Spec, len(t.specs))
	copy(out, t.specs)
	return out
}

func (t *Table) Spec(name string) (Spec, bool) {
	i, ok := t.index[name]
	if !ok {
		return Spec{}, false
	}
	return t.specs[i], true
}

// FromArgs lists the fields bound by positional constructor arguments, in
// binding order.
func (t *Table) FromArgs() []Spec {
	out := make([]Spec, len(t.fromArgs))
	for i, idx := range t.fromArgs {
		out[i] = t.specs[idx]
	}
	return out
}

// RenderOrder lists every field in the order its token is emitted.
func (t *Table) RenderOrder() []Spec {
	out := make([]Spec, 0, len(t.specs))
	for _, idx := range t.positional {
		out = append(out, t.specs[idx])
	}
	for _, idx := range t.keyed {
		out = append(out, t.specs[idx])
	}
	return out
}

func (t *Table) NewValues() *Values {
	return &Values{table: t, set: make(map[string]Value)}
}
