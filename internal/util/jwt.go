package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries nothing but the user id; roles are always read from
// the database so a role change takes effect on the next request.
type SessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

var errEmptySubject = errors.New("session token has no user id")

func GenerateSessionToken(userID, secret string, expiration time.Duration) (string, error) {
	if userID == "" {
		return "", errEmptySubject
	}
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken returns the user id inside a valid token. Malformed,
// expired and badly signed tokens all yield ok == false.
func ParseSessionToken(tokenString, secret string) (string, bool) {
	if tokenString == "" {
		return "", false
	}
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
