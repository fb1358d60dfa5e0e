package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// DefaultTTL matches the issued-token lifetime of the platform: one year.
const DefaultTTL = 365 * 24 * time.Hour

// Codec signs and verifies identity tokens. It is safe for concurrent use.
type Codec struct {
	Secret []byte
	TTL    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{Secret: []byte(secret), TTL: ttl}
}

// Encode signs the given claims with HS256, stamping an absolute expiry of
// now+TTL. The input map is not mutated.
func (c *Codec) Encode(claims jwt.MapClaims) (string, error) {
	out := jwt.MapClaims{}
	for k, v := range claims {
		out[k] = v
	}
	out["exp"] = jwt.NewNumericDate(time.Now().Add(c.TTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, out)
	return token.SignedString(c.Secret)
}

// Decode verifies signature and expiry and returns the embedded claims.
// Callers get ErrTokenExpired for an elapsed token and ErrTokenInvalid for
// anything else (bad signature, malformed input, wrong algorithm).
func (c *Codec) Decode(tok string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return c.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Email pulls the email claim out of a decoded claims map.
func Email(claims jwt.MapClaims) string {
	if v, ok := claims["email"].(string); ok {
		return v
	}
	return ""
}
