package device

import (
	"sort"
	"strings"
)

var kinds = map[string]*Kind{}

func register(k *Kind) *Kind {
	kinds[k.Prefix] = k
	return k
}

// Lookup finds an element kind by its prefix letter.
func Lookup(prefix string) (*Kind, bool) {
	k, ok := kinds[strings.ToUpper(prefix)]
	return k, ok
}

func Kinds() []*Kind {
	out := make([]*Kind, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Prefix < out[j].Prefix })
	return out
}
