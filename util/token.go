package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt"
)

var (
	jwtSecret     = getEnv("JWTSECRET", "")
	jwtSecretByte = []byte(jwtSecret)
	jwtMutex      sync.RWMutex
)

func getEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// SetJWTSecret allows tests or runtime code to update the secret used for
// anti-forgery token signing. Thread-safe.
func SetJWTSecret(secret string) {
	jwtMutex.Lock()
	defer jwtMutex.Unlock()
	jwtSecret = secret
	jwtSecretByte = []byte(secret)
}

// GetJWTSecretByte returns a copy of the current secret bytes in a
// thread-safe manner.
func GetJWTSecretByte() []byte {
	jwtMutex.RLock()
	defer jwtMutex.RUnlock()
	return append([]byte(nil), jwtSecretByte...)
}

const antiForgeryPurpose = "antiforgery"

// NewAntiForgeryToken mints a signed single-purpose token for mutating
// requests. The returned id identifies the token for single-use tracking.
func NewAntiForgeryToken(ttl time.Duration) (token string, id string, err error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	id = hex.EncodeToString(buf)

	now := time.Now()
	claims := jwt.MapClaims{
		"purpose": antiForgeryPurpose,
		"jti":     id,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(GetJWTSecretByte())
	if err != nil {
		return "", "", err
	}
	return token, id, nil
}

// ParseAntiForgeryToken verifies signature, expiry and purpose, returning the
// token id on success.
func ParseAntiForgeryToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return GetJWTSecretByte(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if purpose, _ := claims["purpose"].(string); purpose != antiForgeryPurpose {
		return "", fmt.Errorf("token purpose mismatch")
	}
	id, _ := claims["jti"].(string)
	if id == "" {
		return "", fmt.Errorf("token id missing")
	}
	return id, nil
}
