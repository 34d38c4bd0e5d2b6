package assertion

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clearauth/oauthkit/pkg/epoch"
	"github.com/clearauth/oauthkit/pkg/jwt"
	"github.com/clearauth/oauthkit/pkg/queryparams"
)

// GrantType identifies the JWT-bearer authorization grant (RFC 7523).
const GrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

// Claims is the claim set carried by a service-account assertion.
type Claims struct {
	Issuer    string `json:"iss"`
	Subject   string `json:"sub,omitempty"`
	Audience  string `json:"aud"`
	Scope     string `json:"scope,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
	ID        string `json:"jti"`
}

// Builder produces signed JWT-bearer assertions from a validated Config.
type Builder struct {
	cfg     Config
	now     func() time.Time
	encOpts []jwt.Option
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock replaces the time source, mainly for tests.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

// WithSignFunc injects a custom signing capability; Config.PrivateKey is then
// ignored and may stay empty.
func WithSignFunc(fn jwt.SignFunc) BuilderOption {
	return func(b *Builder) {
		b.encOpts = append(b.encOpts, jwt.WithSignFunc(fn))
	}
}

// WithHeader adds or overrides JWT header fields, e.g. a key id.
func WithHeader(header map[string]any) BuilderOption {
	return func(b *Builder) {
		b.encOpts = append(b.encOpts, jwt.WithHeader(header))
	}
}

// NewBuilder validates cfg and returns a Builder.
func NewBuilder(cfg Config, opts ...BuilderOption) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Lifetime <= 0 {
		return nil, ErrInvalidLifetime
	}

	b := &Builder{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Assertion builds and signs a fresh assertion token. Each call mints a new
// jti and validity window.
func (b *Builder) Assertion() (string, error) {
	now := b.now()

	claims := Claims{
		Issuer:    b.cfg.Issuer,
		Subject:   b.cfg.Subject,
		Audience:  b.cfg.Audience,
		Scope:     strings.Join(b.cfg.Scopes, " "),
		IssuedAt:  epoch.Seconds(now),
		ExpiresAt: epoch.Seconds(now.Add(b.cfg.Lifetime)),
		ID:        uuid.NewString(),
	}

	return jwt.Encode(claims, b.cfg.PrivateKey, b.encOpts...)
}

// GrantParams returns the token-endpoint body parameters for exchanging an
// assertion, after validating that none are empty.
func GrantParams(assertionToken string) (map[string]string, error) {
	params := map[string]string{
		"grant_type": GrantType,
		"assertion":  assertionToken,
	}
	if err := queryparams.Validate(params); err != nil {
		return nil, err
	}
	return params, nil
}

// AuthorizationURL builds an authorization-request URL for the three-legged
// flow. Scopes are optional; everything else is required.
func AuthorizationURL(endpoint, clientID, redirectURI string, scopes []string, state string) (string, error) {
	params := map[string]string{
		"response_type": "code",
		"client_id":     clientID,
		"redirect_uri":  redirectURI,
		"state":         state,
	}
	if err := queryparams.Validate(params); err != nil {
		return "", err
	}

	if len(scopes) > 0 {
		params["scope"] = strings.Join(scopes, " ")
	}

	return queryparams.BuildURL(endpoint, params), nil
}

// ExpiresWithin reports whether the token's exp claim falls inside the next
// window. The signature is NOT verified; this is the refresh-decision
// introspection described in the jwt package, not a trust check.
func ExpiresWithin(token string, window time.Duration) (bool, error) {
	var c struct {
		ExpiresAt int64 `json:"exp"`
	}
	if err := jwt.Decode(token, &c); err != nil {
		return false, err
	}
	if c.ExpiresAt == 0 {
		return false, ErrNoExpiry
	}

	return c.ExpiresAt <= epoch.Seconds(time.Now().Add(window)), nil
}
