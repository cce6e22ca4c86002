package config

import (
	"slices"
	"strings"

	"github.com/gogpu/gg"
)

// IsHexColor reports whether s is an RGB, RGBA, RRGGBB or RRGGBBAA hex
// color with an optional leading '#'.
func IsHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// Color parses a hex color. Invalid input yields opaque black; run
// Validate first to catch it.
func Color(s string) gg.RGBA {
	return gg.Hex(s)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
