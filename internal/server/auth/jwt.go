// Package auth implements the credential and token primitives of the server:
// bcrypt password hashing and HS256 bearer tokens.
package auth

import (
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates signed bearer tokens. The signing secret
// and the default validity are injected at construction; rotating the secret
// invalidates all outstanding tokens.
type TokenService struct {
	secretKey []byte
	validity  time.Duration
}

// NewTokenService constructs a TokenService with the given HMAC secret and
// default token validity.
func NewTokenService(secretKey []byte, validity time.Duration) *TokenService {
	return &TokenService{secretKey: secretKey, validity: validity}
}

// Issue returns a token for subject using the default validity.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueWithValidity(subject, s.validity)
}

// IssueWithValidity returns an HS256-signed token carrying the subject and
// an absolute expiry of now + validityDuration.
func (s *TokenService) IssueWithValidity(subject string, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate checks signature and expiry and returns the subject.
// Malformed, forged, expired and subject-less tokens all collapse to
// common.ErrInvalidToken; callers are not told which.
func (s *TokenService) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, common.ErrInvalidToken
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
