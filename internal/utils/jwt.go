package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-bio-console/models"
)

var (
	ErrInvalidTokenParams   = errors.New("invalid params for generating JWT Token")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidAuthorization = errors.New("invalid authorization header")
)

// GenerateJWTToken signs claims with HMAC-SHA256.
//
// IssuedAt (iat) is set to the current time and ExpiresAt (exp) to the
// current time plus tokenDuration. claims must carry the issuer, the subject
// (user ID) and the session ID (jti).
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.Claims{
//	    RegisteredClaims: jwt.RegisteredClaims{Issuer: "go-bio-console", Subject: "42", ID: sessionID},
//	    Role:             models.RoleUser,
//	}, time.Hour, "secret")
func GenerateJWTToken(claims models.Claims, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if claims.Issuer == "" || claims.Subject == "" || claims.ID == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidTokenParams, err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) conversion to int64 UserID and jti presence
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.SessionID() == "" {
		return models.Token{}, fmt.Errorf("%w: missing session id", ErrInvalidToken)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorization
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthorization
	}
	return token, nil
}
