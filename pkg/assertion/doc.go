// Package assertion builds service-account JWT-bearer assertions (RFC 7523)
// and the request parameters that carry them.
//
// A Builder turns a validated Config into freshly signed assertions: iat/exp
// are derived from the configured lifetime, jti is a new UUID per token, and
// signing defaults to RS256 with the configured PEM key unless a custom
// signing capability is injected. GrantParams and AuthorizationURL produce
// the validated parameter sets for the token and authorization endpoints;
// performing the HTTP exchange itself is out of scope for this library.
//
// # Usage
//
//	import "github.com/clearauth/oauthkit/pkg/assertion"
//
//	cfg, err := assertion.LoadConfig() // OAUTH_SA_* environment variables
//	if err != nil {
//	    // handle error
//	}
//
//	b, err := assertion.NewBuilder(cfg)
//	if err != nil {
//	    // handle error
//	}
//
//	token, err := b.Assertion()
//	params, err := assertion.GrantParams(token)
//	// POST params to cfg.Audience with your HTTP client of choice.
//
//	// Later, decide whether the access token needs refreshing.
//	stale, err := assertion.ExpiresWithin(accessToken, 5*time.Minute)
//
// # Error Handling
//
// Missing configuration surfaces as queryparams.MissingParamError naming the
// field; ErrNoExpiry and ErrInvalidLifetime cover the package's own failure
// modes. Signing errors propagate from the jwt package unchanged.
package assertion
