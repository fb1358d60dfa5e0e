package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)
	tok, err := codec.Encode(jwt.MapClaims{"email": "alice@bloodlink.test", "name": "Alice"})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	claims, err := codec.Decode(tok)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got := Email(claims); got != "alice@bloodlink.test" {
		t.Fatalf("email mismatch: got %q", got)
	}
	if claims["name"] != "Alice" {
		t.Fatalf("name claim lost: %v", claims["name"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatal("expiry claim missing")
	}
}

func TestEncode_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	codec := NewCodec("s", time.Hour)
	in := jwt.MapClaims{"email": "a@b.test"}
	if _, err := codec.Encode(in); err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if _, ok := in["exp"]; ok {
		t.Fatal("Encode wrote exp into caller's map")
	}
}

func TestDecode_Expired(t *testing.T) {
	t.Parallel()

	codec := NewCodec("secret", -1*time.Second)
	tok, err := codec.Encode(jwt.MapClaims{"email": "old@bloodlink.test"})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, err = codec.Decode(tok)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestDecode_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec("right-secret", time.Hour).Encode(jwt.MapClaims{"email": "x@y.test"})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	_, err = NewCodec("wrong-secret", time.Hour).Decode(tok)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewCodec("k", time.Hour).Decode("not.a.jwt")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestNewCodec_DefaultTTL(t *testing.T) {
	t.Parallel()

	if got := NewCodec("k", 0).TTL; got != DefaultTTL {
		t.Fatalf("expected default ttl, got %v", got)
	}
}
