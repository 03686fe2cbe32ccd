package auth

import (
	"errors"
	"math"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 7 * 24 * time.Hour

type JWT struct {
	secret []byte
	now    func() time.Time
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret), now: time.Now}
}

// WithClock returns a copy of j that reads the current time from now.
func (j *JWT) WithClock(now func() time.Time) *JWT {
	return &JWT{secret: j.secret, now: now}
}

func (j *JWT) Sign(userID uint64) (string, error) {
	now := j.now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(TokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(j.secret)
}

// Verify checks signature and expiry and returns the embedded user id. A token
// is rejected from the second of its exp claim onwards.
func (j *JWT) Verify(tokenStr string) (uint64, error) {
	t, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil || !t.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	uid, ok := claims["userId"]
	if !ok {
		return 0, errors.New("missing userId")
	}

	// jwt MapClaims numbers are float64
	idf, ok := uid.(float64)
	if !ok || idf < 1 || idf != math.Trunc(idf) {
		return 0, errors.New("invalid userId type")
	}
	return uint64(idf), nil
}
