// Package jwt encodes and introspects JSON Web Tokens for OAuth client
// flows, with RS256 as the default algorithm and a pluggable signing
// capability for callers that keep key material elsewhere (HSM, KMS, another
// process).
//
// Encode accepts any JSON-serializable claims value, merges caller header
// overrides onto the default {"alg":"RS256","typ":"JWT"} header, and signs
// the base64url(header).base64url(claims) string with either the built-in
// RSA-SHA256 signer or an injected SignFunc.
//
// Decode and DecodeHeader deliberately skip signature verification: they
// exist to read claims out of tokens this client itself produced or received
// (for example checking exp before a refresh), never to establish trust in a
// token of unknown origin. Use a verifying library on the receiving side.
//
// # Usage
//
//	import "github.com/clearauth/oauthkit/pkg/jwt"
//
//	claims := map[string]any{
//	    "iss": "svc@project.example.com",
//	    "aud": "https://auth.example.com/token",
//	    "exp": time.Now().Add(time.Hour).Unix(),
//	}
//
//	// Sign with a PEM-encoded service-account key.
//	token, err := jwt.Encode(claims, privateKeyPEM)
//
//	// Or inject a custom signing capability.
//	token, err = jwt.Encode(claims, nil, jwt.WithSignFunc(kmsSigner))
//
//	// Introspect claims without verification.
//	var parsed map[string]any
//	err = jwt.Decode(token, &parsed)
//
// # Error Handling
//
// Sentinel errors (ErrInvalidToken, ErrMissingClaims, ErrMissingKey,
// ErrInvalidKey, ErrUnsupportedKeyType) are comparable with errors.Is.
// Malformed base64 or JSON inside a structurally valid token propagates from
// the underlying decoder wrapped with context.
package jwt
