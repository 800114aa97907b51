package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAntiForgeryTokenRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret-123")
	t.Cleanup(func() { SetJWTSecret("") })

	token, id, err := NewAntiForgeryToken(time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, id)

	parsedID, err := ParseAntiForgeryToken(token)
	assert.NoError(t, err)
	assert.Equal(t, id, parsedID)
}

func TestAntiForgeryTokenExpired(t *testing.T) {
	SetJWTSecret("test-secret-123")
	t.Cleanup(func() { SetJWTSecret("") })

	token, _, err := NewAntiForgeryToken(-time.Minute)
	assert.NoError(t, err)

	_, err = ParseAntiForgeryToken(token)
	assert.Error(t, err)
}

func TestAntiForgeryTokenWrongSecret(t *testing.T) {
	SetJWTSecret("secret-one")
	token, _, err := NewAntiForgeryToken(time.Minute)
	assert.NoError(t, err)

	SetJWTSecret("secret-two")
	t.Cleanup(func() { SetJWTSecret("") })

	_, err = ParseAntiForgeryToken(token)
	assert.Error(t, err)
}

func TestAntiForgeryTokenGarbage(t *testing.T) {
	SetJWTSecret("test-secret-123")
	t.Cleanup(func() { SetJWTSecret("") })

	_, err := ParseAntiForgeryToken("not-a-token")
	assert.Error(t, err)
}

func TestAntiForgeryTokenIDsUnique(t *testing.T) {
	SetJWTSecret("test-secret-123")
	t.Cleanup(func() { SetJWTSecret("") })

	_, first, err := NewAntiForgeryToken(time.Minute)
	assert.NoError(t, err)
	_, second, err := NewAntiForgeryToken(time.Minute)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
