package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	signed, err := codec.Encode("alice@example.com", "User")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	claims, err := codec.Decode(signed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Subject != "alice@example.com" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.Role != "User" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.ExpiresAt.Before(claims.IssuedAt) {
		t.Fatalf("expiry %v before issued-at %v", claims.ExpiresAt, claims.IssuedAt)
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt)
	if ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	codec := NewCodec("secret", 0)
	if codec.TTL() != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, codec.TTL())
	}
}

func TestCodec_Expired(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "alice@example.com",
		"role": "User",
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Decode(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestCodec_BadSignature(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	other := NewCodec("other-secret", time.Hour)
	signed, err := other.Encode("alice@example.com", "User")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if _, err := codec.Decode(signed); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestCodec_RejectsWrongAlgorithm(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  "alice@example.com",
		"role": "Admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tkn.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Decode(signed); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestCodec_Malformed(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	for _, garbage := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := codec.Decode(garbage); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Decode(%q): expected ErrMalformed, got %v", garbage, err)
		}
	}
}
