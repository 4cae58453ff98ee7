package jwt

import (
	"encoding/json"
	"errors"
	"time"

	"session-booking/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

type payloadClaims struct {
	Payload json.RawMessage `json:"pl"`
	jwt.RegisteredClaims
}

// Signer wraps an opaque JSON payload in an HS256 token with an expiry.
type Signer struct {
	secretKey []byte
	issuer    string
	clock     clock.Clock
}

func NewSigner(secretKey []byte, issuer string, clk clock.Clock) *Signer {
	return &Signer{secretKey: secretKey, issuer: issuer, clock: clk}
}

// Sign requires payload to be valid JSON.
func (s *Signer) Sign(payload []byte, ttl time.Duration) (string, error) {
	if !json.Valid(payload) {
		return "", errors.New("jwt: payload is not valid JSON")
	}
	now := s.clock.Now()
	claims := payloadClaims{
		Payload: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

func (s *Signer) Verify(tokenString string) ([]byte, error) {
	claims := &payloadClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || len(claims.Payload) == 0 {
		return nil, ErrInvalidToken
	}
	return claims.Payload, nil
}
