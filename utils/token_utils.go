// token_utils is the canonical place for issuing and verifying user bearer
// tokens. It should not contain any HTTP specific logic, status code mapping
// lives in server/middlewares.
package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

var (
	// ErrTokenExpired is returned when the token signature checks out but the
	// expiry timestamp is in the past.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenInvalid is returned for a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token is invalid")
)

// UserClaims is the payload embedded in every issued token. Id is the user id
// the token authenticates.
type UserClaims struct {
	Id string `json:"id"`
	jwt.RegisteredClaims
}

// NewUserToken issues a signed HS256 token for the given user id, expiring
// after the provided duration.
func NewUserToken(userId string, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		Id: userId,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseUserToken verifies signature and expiry against the given secret and
// returns the embedded user id. Errors are normalized to ErrTokenExpired /
// ErrTokenInvalid so that callers can map them without knowing the jwt
// library.
func ParseUserToken(token string, secret string) (string, error) {
	claims := &UserClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !parsed.Valid || claims.Id == "" {
		return "", ErrTokenInvalid
	}
	return claims.Id, nil
}
