package jwt

import "errors"

var (
	ErrInvalidToken       = errors.New("jwt: invalid token")
	ErrMissingClaims      = errors.New("jwt: missing claims")
	ErrMissingKey         = errors.New("jwt: missing signing key")
	ErrInvalidKey         = errors.New("jwt: invalid signing key")
	ErrUnsupportedKeyType = errors.New("jwt: unsupported key type")
)
