// Package queryparams builds and validates URL query parameters for OAuth
// request construction.
//
// BuildURL appends a parameter map to a base URL, percent-encoding keys and
// values and picking "?" or "&" depending on whether the base already carries
// a query string. Validate rejects parameter maps containing empty values,
// failing fast on the first offender.
//
// Both functions iterate parameters in sorted key order so results and error
// messages are deterministic regardless of map construction order.
//
// # Usage
//
//	import "github.com/clearauth/oauthkit/pkg/queryparams"
//
//	params := map[string]string{
//	    "client_id":     "abc",
//	    "redirect_uri":  "https://app.example.com/cb",
//	    "response_type": "code",
//	}
//
//	if err := queryparams.Validate(params); err != nil {
//	    // err message: "<key> is required."
//	}
//
//	u := queryparams.BuildURL("https://auth.example.com/authorize", params)
//
// # Error Handling
//
// Validate returns a *MissingParamError naming the offending key; it wraps
// ErrMissingParam so callers can match with errors.Is. Only the first empty
// parameter is reported, errors are never aggregated.
package queryparams
