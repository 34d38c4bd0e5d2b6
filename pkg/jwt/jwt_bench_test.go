package jwt_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/clearauth/oauthkit/pkg/jwt"
)

func BenchmarkEncode(b *testing.B) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		b.Fatal(err)
	}

	claims := assertionClaims{
		Issuer:   "svc@project.example.com",
		Audience: "https://auth.example.com/token",
		IssuedAt: time.Now().Unix(),
		Expires:  time.Now().Add(time.Hour).Unix(),
	}

	for i := 0; i < b.N; i++ {
		if _, err := jwt.Encode(claims, key); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	sign := func(string, any) (string, error) { return "sig", nil }
	token, err := jwt.Encode(assertionClaims{Issuer: "svc", Expires: 1}, nil, jwt.WithSignFunc(sign))
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		var out assertionClaims
		if err := jwt.Decode(token, &out); err != nil {
			b.Fatal(err)
		}
	}
}
