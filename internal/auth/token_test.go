package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestService(ttl time.Duration) (*TokenService, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewTokenService("test-secret", ttl)
	svc.now = clock.Now
	return svc, clock
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc, clock := newTestService(time.Hour)
	payload := map[string]interface{}{
		"email": "a@x.com",
		"name":  "Ada",
		"admin": false,
	}

	raw, err := svc.Issue(payload)
	require.NoError(t, err)

	clock.t = clock.t.Add(59 * time.Minute)
	claims, err := svc.Verify(raw)
	require.NoError(t, err)

	for key, value := range payload {
		assert.Equal(t, value, claims[key], key)
	}
	assert.Equal(t, "a@x.com", Email(claims))

	exp, ok := ExpiresAt(claims)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC), exp.UTC())
}

func TestIssueOverridesCallerExpiry(t *testing.T) {
	svc, clock := newTestService(time.Hour)

	raw, err := svc.Issue(map[string]interface{}{"email": "a@x.com", "exp": 4102444800})
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Hour)
	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyExpired(t *testing.T) {
	svc, clock := newTestService(time.Hour)

	raw, err := svc.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Hour + time.Second)
	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyRejectsTampering(t *testing.T) {
	svc, _ := newTestService(time.Hour)
	raw, err := svc.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	other, err := NewTokenService("other-secret", time.Hour).Issue(map[string]interface{}{"email": "b@x.com"})
	require.NoError(t, err)
	otherParts := strings.Split(other, ".")

	cases := map[string]string{
		"empty":           "",
		"garbage":         "not-a-token",
		"swapped payload": parts[0] + "." + otherParts[1] + "." + parts[2],
		"wrong secret":    other,
		"bad signature":   parts[0] + "." + parts[1] + ".c2lnbmF0dXJl",
	}
	for name, tok := range cases {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestVerifyRejectsUnsignedTokens(t *testing.T) {
	svc, clock := newTestService(time.Hour)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   clock.t.Add(time.Hour).Unix(),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresExpiry(t *testing.T) {
	svc, _ := newTestService(time.Hour)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
