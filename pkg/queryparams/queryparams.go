package queryparams

import (
	"net/url"
	"sort"
	"strings"
)

// BuildURL appends the given parameters to base as a query string.
//
// Every key and value is percent-encoded (spaces become %20, not +, so the
// result is safe in any URL position). If base already contains a query
// string the parameters are appended with "&", otherwise with "?". The base
// URL itself is passed through untouched; no well-formedness check is done.
//
// Parameters are appended in sorted key order so the output is deterministic
// across calls.
func BuildURL(base string, params map[string]string) string {
	if len(params) == 0 {
		return base
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(base)

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	for _, k := range keys {
		sb.WriteString(sep)
		sb.WriteString(escape(k))
		sb.WriteString("=")
		sb.WriteString(escape(params[k]))
		sep = "&"
	}

	return sb.String()
}

// Validate checks that every parameter has a non-empty value.
//
// The first offending key (in sorted order) determines the error; remaining
// parameters are not inspected and errors are never aggregated. The returned
// error wraps ErrMissingParam and its message names the key, e.g.
// "client_id is required.".
func Validate(params map[string]string) error {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if params[k] == "" {
			return &MissingParamError{Param: k}
		}
	}

	return nil
}

// escape percent-encodes s for use in a query component. url.QueryEscape
// encodes spaces as "+", which some authorization servers reject in redirect
// URIs, so spaces are re-encoded as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
