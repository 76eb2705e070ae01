// Package auth provides the credential and token implementations of the Identity Store.
package auth

import (
	"time"

	"cardportal/config"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/service"
	"cardportal/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "cardportal"

// tokenClaims is the signed payload: {id, role} plus registered claims.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// jwtService implements service.TokenService with HS256 tokens.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt signing secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// GenerateToken signs a token for userID with a fresh jti.
func (s *jwtService) GenerateToken(userID uuid.UUID, role entity.Role) (string, *service.Claims, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)
	tokenID := uuid.NewString()

	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign token")
	}

	return signed, &service.Claims{
		TokenID:   tokenID,
		UserID:    userID,
		Role:      role,
		ExpiresAt: expiresAt.Truncate(time.Second),
	}, nil
}

// ValidateToken checks signature, algorithm and expiry. Any failure is
// reported as ErrUnauthenticated.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage(err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid subject")
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid role claim")
	}

	return &service.Claims{
		TokenID:   claims.ID,
		UserID:    userID,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
