// Package auth implements credential primitives for the sync server:
// signed JWTs (access, refresh and device tokens) and argon2id password
// hashing. Token persistence and revocation live in the repositories;
// this package only mints, parses and hashes.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guardianos/guardian-sync/internal/common"
)

// TokenType discriminates the three credential kinds carried in claims.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
	TokenTypeDevice  TokenType = "device"
)

// Claims are the signed JWT claims. Subject is the account hash; DeviceID is
// set when the token is bound to a registered device.
type Claims struct {
	jwt.RegisteredClaims
	DeviceID  string    `json:"device_id,omitempty"`
	TokenType TokenType `json:"token_type"`
}

// GenerateToken mints an HS256 token for accountHash with the given type and
// validity. deviceID may be empty. Returns the signed string and its expiry.
func GenerateToken(accountHash, deviceID string, tokenType TokenType, secretKey []byte, validity time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(validity)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountHash,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		DeviceID:  deviceID,
		TokenType: tokenType,
	})

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, exp, nil
}

// ParseToken validates signature and expiry and returns the claims.
// Expired tokens yield common.ErrTokenExpired, anything else invalid
// yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// HashToken returns the hex-encoded SHA-256 of a token string. Only this
// hash is ever persisted; the plaintext stays with the client.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
