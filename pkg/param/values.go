package param

import (
	"sort"
	"strings"
)

// Keywords carries parameters assigned by name.
type Keywords map[string]any

// Values holds the parameters explicitly assigned on one element instance.
type Values struct {
	table *Table
	set   map[string]Value
}

func (v *Values) Table() *Table { return v.table }

// Set validates raw and stores it under name.
func (v *Values) Set(name string, raw any) error {
	spec, ok := v.table.Spec(name)
	if !ok {
		return &UnknownParameterError{Name: name}
	}
	value, err := spec.Validate(raw)
	if err != nil {
		return err
	}
	v.set[name] = value
	return nil
}

// Bind assigns positional arguments to FromArgs fields in order.
func (v *Values) Bind(args []any) error {
	fields := v.table.FromArgs()
	if len(args) > len(fields) {
		return &ArityError{Got: len(args), Max: len(fields)}
	}
	for i, arg := range args {
		if err := v.Set(fields[i].Name, arg); err != nil {
			return err
		}
	}
	return nil
}

// Apply assigns keywords. Keys are processed in sorted order so the first
// reported error is stable.
func (v *Values) Apply(kw Keywords) error {
	keys := make([]string, 0, len(kw))
	for k := range kw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := v.Set(k, kw[k]); err != nil {
			return err
		}
	}
	return nil
}

// Require fails when a positional-argument field is still unset.
func (v *Values) Require() error {
	var missing []string
	for _, spec := range v.table.FromArgs() {
		if _, ok := v.set[spec.Name]; !ok {
			missing = append(missing, spec.Name)
		}
	}
	if len(missing) > 0 {
		return &ArityError{Missing: missing}
	}
	return nil
}

// Get returns the assigned value, or the declared default.
func (v *Values) Get(name string) (Value, bool) {
	if value, ok := v.set[name]; ok {
		return value, true
	}
	value, ok := v.table.defaults[name]
	return value, ok
}

func (v *Values) IsSet(name string) bool {
	_, ok := v.set[name]
	return ok
}

// Tokens renders every set, non-zero value in render order.
func (v *Values) Tokens() []string {
	var tokens []string
	for _, spec := range v.table.RenderOrder() {
		value, ok := v.set[spec.Name]
		if !ok || !spec.nonzero(value) {
			continue
		}
		if token := spec.Token(value); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func (v *Values) Format() string {
	return strings.Join(v.Tokens(), " ")
}
