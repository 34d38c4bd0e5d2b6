// Package maputil provides small map transformation helpers used when
// assembling JWT headers and normalizing HTTP response metadata.
//
// Extend is a mutating overwrite-merge: source entries win and the
// destination reference is returned, which keeps header-override composition
// allocation-free. LowerKeys and NormalizeKeys produce case-normalized
// copies, e.g. for treating response header maps case-insensitively.
//
// # Usage
//
//	import "github.com/clearauth/oauthkit/pkg/maputil"
//
//	header := map[string]any{"alg": "RS256", "typ": "JWT"}
//	maputil.Extend(header, map[string]any{"kid": "key-1"})
//
//	h := maputil.LowerKeys(map[string]string{"Content-Type": "application/json"})
//	// h["content-type"] == "application/json"
//
// Extend mutates its first argument by design; use LowerKeys when a fresh
// map is needed.
package maputil
