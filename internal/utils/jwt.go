package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/prasetyadi/ecosort/models"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying the given
// identity for the session cookie.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user id encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus sessionDuration
//   - name, role:      custom claims carrying the rest of the identity
//
// All parameters are required. Returns an error if issuer, signKey, or
// sessionDuration are empty or zero.
func GenerateSessionToken(issuer string, identity models.Identity, sessionDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || sessionDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: identity.Username,
		Role:     identity.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, Identity: identity}, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// rebuilds the identity it carries.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to the user id
//
// Returns the token model with its Identity populated, or an error if
// validation fails or claims are malformed.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Token, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	identity, ok := claims.ParseIdentity()
	if !ok {
		return models.Token{}, errors.New("session token carries no identity")
	}

	return models.Token{Token: token, SignedString: tokenString, Identity: identity}, nil
}
