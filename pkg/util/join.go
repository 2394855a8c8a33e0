package util

import (
	"fmt"
	"sort"
	"strings"
)

// JoinList joins the non-empty items with a single space.
func JoinList(items ...string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			parts = append(parts, item)
		}
	}
	return strings.Join(parts, " ")
}

// JoinLines prefixes every item and joins them with "\n". No trailing newline.
func JoinLines(items []string, prefix string) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(prefix)
		sb.WriteString(item)
	}
	return sb.String()
}

// JoinDict renders "k=v, k=v" with keys in sorted order.
func JoinDict(dict map[string]any) string {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, dict[k]))
	}
	return strings.Join(parts, ", ")
}
