package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-bio-console/internal/config"
	"github.com/MKhiriev/go-bio-console/internal/utils"
	"github.com/MKhiriev/go-bio-console/models"
)

// jwtIssuer issues HS256 credentials bound to a session through the jti
// claim. A credential never outlives its session.
type jwtIssuer struct {
	signKey  string
	issuer   string
	duration time.Duration
	now      func() time.Time
}

func NewCredentialIssuer(cfg config.App) CredentialIssuer {
	return &jwtIssuer{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
	}
}

func (i *jwtIssuer) Issue(session models.Session) (models.Token, error) {
	duration := i.duration
	if !session.ExpiresAt.IsZero() {
		if left := session.ExpiresAt.Sub(i.now()); left < duration {
			duration = left
		}
	}
	if duration <= 0 {
		return models.Token{}, fmt.Errorf("%w: session already expired", ErrTokenCreationFailed)
	}

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  i.issuer,
			Subject: strconv.FormatInt(session.UserID, 10),
			ID:      session.ID,
		},
		Role:              session.Role,
		BiometricVerified: session.BiometricVerified,
	}

	token, err := utils.GenerateJWTToken(claims, duration, i.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Parse normalises every validation failure to ErrTokenIsExpiredOrInvalid.
func (i *jwtIssuer) Parse(tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, i.signKey, i.issuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
