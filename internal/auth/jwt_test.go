package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWT_SignVerify(t *testing.T) {
	t.Parallel()

	j := NewJWT("super-secret")
	tok, err := j.Sign(42)
	require.NoError(t, err)

	uid, err := j.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), uid)
}

func TestJWT_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tok, err := NewJWT("k").WithClock(fixedClock(issued)).Sign(7)
	require.NoError(t, err)

	cases := []struct {
		name string
		at   time.Time
		ok   bool
	}{
		{"at issue", issued, true},
		{"one second before expiry", issued.Add(TokenTTL - time.Second), true},
		{"at expiry", issued.Add(TokenTTL), false},
		{"after expiry", issued.Add(TokenTTL + time.Hour), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewJWT("k").WithClock(fixedClock(c.at)).Verify(tok)
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWT("right").Sign(1)
	require.NoError(t, err)

	_, err = NewJWT("wrong").Verify(tok)
	assert.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWT("k").Verify("not.a.jwt")
	assert.Error(t, err)
}

func TestJWT_RejectsOtherAlgorithm(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{"userId": 1, "exp": time.Now().Add(time.Hour).Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewJWT("k").Verify(tok)
	assert.Error(t, err)
}

func TestJWT_MissingClaims(t *testing.T) {
	t.Parallel()

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = NewJWT("k").Verify(noUser)
	assert.Error(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 1,
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, err = NewJWT("k").Verify(noExp)
	assert.Error(t, err)
}

func TestJWT_RejectsNonIntegralUserID(t *testing.T) {
	t.Parallel()

	for _, id := range []any{1.7, 0, -3, "1"} {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"userId": id,
			"exp":    time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("k"))
		require.NoError(t, err)

		_, err = NewJWT("k").Verify(tok)
		assert.Error(t, err, "userId %v", id)
	}
}
