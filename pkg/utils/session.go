package utils

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("missing token")
)

// SessionClaims is what the external login flow puts in the tokens it
// issues. Only the email matters to this service; it is the identity the
// admin allow-list is checked against.
type SessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionUser is the caller identity resolved from a session token.
type SessionUser struct {
	Email string
	Name  string
}

// ParseSessionToken verifies the token signature and expiry and returns the
// caller identity.
func ParseSessionToken(tokenString, jwtSecret string) (*SessionUser, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}

	return &SessionUser{
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

// ExtractTokenFromHeader pulls the bearer token out of an Authorization
// header, returning "" when the header is absent or malformed.
func ExtractTokenFromHeader(authHeader string) string {
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
