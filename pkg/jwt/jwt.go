package jwt

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"strings"

	"github.com/clearauth/oauthkit/pkg/maputil"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "RS256" // service-account assertions require an asymmetric signature
)

// SignFunc is an injectable signing capability. It receives the signing
// string (base64url(header) + "." + base64url(claims)) and opaque key
// material, and returns the signature segment verbatim. The returned string
// is appended to the token without further encoding.
type SignFunc func(signingString string, key any) (string, error)

// Option configures token encoding.
type Option func(*options)

type options struct {
	header map[string]any
	sign   SignFunc
}

// WithHeader merges extra or overriding fields into the default
// {"alg":"RS256","typ":"JWT"} header. Caller-supplied fields win.
func WithHeader(header map[string]any) Option {
	return func(o *options) {
		o.header = header
	}
}

// WithSignFunc replaces the default RS256 signer. Nil functions are ignored
// to prevent accidental misconfiguration.
func WithSignFunc(fn SignFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.sign = fn
		}
	}
}

// Encode serializes and signs claims as a JWT.
//
// Accepts any JSON-serializable claims value. The key material is passed
// through to the signing capability unchanged; the default RS256 signer
// accepts *rsa.PrivateKey or PEM-encoded key bytes (see SignRS256).
//
// JSON field order follows encoding/json (declaration order for structs,
// sorted keys for maps); no canonical ordering is guaranteed, so other
// producers may serialize logically equal claims differently.
func Encode(claims any, key any, opts ...Option) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	o := options{sign: SignRS256}
	for _, opt := range opts {
		opt(&o)
	}

	header := maputil.Extend(map[string]any{
		"alg": HeaderAlgorithm,
		"typ": HeaderType,
	}, o.header)

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	signingString := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)

	signature, err := o.sign(signingString, key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signingString + "." + signature, nil
}

// Decode unmarshals a token's claims into the provided structure WITHOUT
// verifying the signature. It must never be used for trust decisions; its
// purpose is claim introspection, such as reading exp to decide whether a
// cached token needs refreshing.
func Decode(token string, claims any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return fmt.Errorf("failed to decode claims: %w", err)
	}

	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	return nil
}

// DecodeHeader returns a token's header fields WITHOUT verifying the
// signature. Like Decode, this is introspection only.
func DecodeHeader(token string) (map[string]any, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}

	var header map[string]any
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, fmt.Errorf("failed to unmarshal header: %w", err)
	}

	return header, nil
}

// SignRS256 is the default signing capability: RSA-SHA256 (PKCS#1 v1.5) over
// the signing string, signature base64url-encoded without padding.
//
// Key material may be a *rsa.PrivateKey, or a PEM-encoded private key as
// []byte or string in PKCS#1 ("RSA PRIVATE KEY") or PKCS#8 ("PRIVATE KEY")
// form, matching the formats service-account key files ship in.
func SignRS256(signingString string, key any) (string, error) {
	priv, err := rsaPrivateKey(key)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256([]byte(signingString))
	signature, err := rsa.SignPKCS1v15(rand.Reader, priv, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("rsa signing failed: %w", err)
	}

	return base64URLEncode(signature), nil
}

func rsaPrivateKey(key any) (*rsa.PrivateKey, error) {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return k, nil
	case []byte:
		if len(k) == 0 {
			return nil, ErrMissingKey
		}
		return parsePEMKey(k)
	case string:
		if k == "" {
			return nil, ErrMissingKey
		}
		return parsePEMKey([]byte(k))
	case nil:
		return nil, ErrMissingKey
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKeyType, key)
	}
}

func parsePEMKey(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrInvalidKey)
	}

	if priv, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return priv, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	priv, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKeyType, parsed)
	}

	return priv, nil
}

// base64URLEncode encodes data using base64url encoding without padding,
// as required by RFC 7515.
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// base64URLDecode decodes base64url data, tolerating padded input from
// producers that keep the "=" suffix.
func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
