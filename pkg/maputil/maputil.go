package maputil

import (
	"maps"
	"sort"
	"strings"
)

// Extend copies every key from src into dst, overwriting existing entries,
// and returns dst. This is an intentional in-place mutation: the returned map
// is the same reference as dst, and values are copied shallowly, so nested
// maps and slices end up aliased between src and the result.
//
// A nil dst is replaced with a freshly allocated map so the merged result is
// still usable; callers relying on the mutation contract should pass a
// non-nil destination.
func Extend(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// LowerKeys returns a new shallow copy of m whose keys are lower-cased.
// When two keys collide after lower-casing, the lexicographically later
// original key wins, giving a deterministic last-write-wins policy. Values
// are not copied deeply. A nil map yields nil.
func LowerKeys[V any](m map[string]V) map[string]V {
	if m == nil {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]V, len(m))
	for _, k := range keys {
		out[strings.ToLower(k)] = m[k]
	}
	return out
}

// NormalizeKeys lower-cases the keys of v when it is a map[string]any and
// returns anything else unchanged, including nil. Useful for values of
// dynamic shape such as decoded JSON headers, where the input may turn out to
// be a scalar.
func NormalizeKeys(v any) any {
	if m, ok := v.(map[string]any); ok {
		return LowerKeys(m)
	}
	return v
}
