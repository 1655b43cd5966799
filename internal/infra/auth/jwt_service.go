// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"pixelforge/config"
	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultAccessTokenTTL = 30 * time.Minute

// accessClaims is the claim set carried by access tokens.
type accessClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte           // Secret key for signing access tokens.
	accessTTL    time.Duration    // Time-to-live for access tokens.
	issuer       string           // Value of the iss claim.
	parser       *jwt.Parser      // Parser restricted to HS256.
	now          func() time.Time // Clock used for iat/exp and the expiry check.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	srv, err := newJWTService(cfg, time.Now)
	if err != nil {
		return nil, err
	}

	return srv, nil
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := defaultAccessTokenTTL
	issuer := ""
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			ttl = cfg.Auth.AccessTokenTTL
		}
		issuer = cfg.Auth.Issuer
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		issuer:       issuer,
		// Expiry is checked against s.now so validation can report expired tokens instead of failing.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
		now: now,
	}, nil
}

// Issue creates a signed access token for subject with a fresh token ID.
func (s *jwtService) Issue(subject string, userID uuid.UUID, ttl time.Duration) (*entity.AccessToken, error) {
	if ttl <= 0 {
		ttl = s.accessTTL
	}

	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(ttl)
	tokenID := uuid.NewString()

	claims := accessClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &entity.AccessToken{
		Token:     signed,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// Validate checks the signature of tokenString and reports whether it has expired.
func (s *jwtService) Validate(tokenString string) (*entity.TokenClaims, error) {
	claims := &accessClaims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidSignature.WrapMessage("failed to parse token")
	}

	if claims.Subject == "" || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, domainerrors.ErrInvalidSignature.WrapMessage("token is missing required claims")
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerrors.ErrInvalidSignature.WrapMessage("token carries an invalid user id")
	}

	result := &entity.TokenClaims{
		Subject:   claims.Subject,
		UserID:    userID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
		Expired:   !s.now().Before(claims.ExpiresAt.Time),
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	return result, nil
}

// AccessTokenTTL returns the configured duration for access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
