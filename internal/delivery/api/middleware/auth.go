package middleware

import (
	"log/slog"
	"strings"

	"cardportal/config"
	"cardportal/internal/delivery/api/response"
	deliverycontext "cardportal/internal/delivery/context"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"
	"cardportal/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Context keys set by Authenticate.
const (
	keyUserID = "userID"
	keyClaims = "claims"
	keyUser   = "user"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Revoker      service.TokenRevoker
	UserRepo     repository.UserRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthMiddleware is the access gate in front of every protected route.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	revoker    service.TokenRevoker
	userRepo   repository.UserRepository
	cookieName string
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenService,
		revoker:    params.Revoker,
		userRepo:   params.UserRepo,
		cookieName: params.Config.Auth.CookieName,
		logger:     params.Logger,
	}
}

// Authenticate resolves the bearer token (header first, then the session
// cookie) to an active user. Every failure looks the same to the caller.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		token := m.extractToken(c)
		if token == "" {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		claims, err := m.tokenSvc.ValidateToken(token)
		if err != nil {
			logger.Debug("Token rejected", slog.Any("error", err))

			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		revoked, err := m.revoker.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return errors.Wrap(err, "failed to check token revocation")
		}
		if revoked {
			return response.AppError(c, domainerrors.ErrUnauthenticated)
		}

		user, err := m.userRepo.FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrUserNotFound) {
				return response.AppError(c, domainerrors.ErrUnauthenticated)
			}

			return errors.Wrap(err, "failed to load authenticated user")
		}
		if !user.IsActive {
			return response.AppError(c, domainerrors.ErrAccountInactive)
		}

		c.Set(keyUserID, user.ID)
		c.Set(keyClaims, claims)
		c.Set(keyUser, user)
		c.SetRequest(c.Request().WithContext(
			deliverycontext.WithActor(ctx, m.logger, user.ID, user.Role.String()),
		))

		return next(c)
	}
}

// Identify stores the claims of a valid token and passes every request
// through. Used where a session is optional, such as logout.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.extractToken(c)
		if token == "" {
			return next(c)
		}
		if claims, err := m.tokenSvc.ValidateToken(token); err == nil {
			c.Set(keyUserID, claims.UserID)
			c.Set(keyClaims, claims)
		}

		return next(c)
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if cookie, err := c.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// RequireRole rejects users whose role differs from role. It must be used
// after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUser(c)
			if !ok {
				return response.AppError(c, domainerrors.ErrUnauthenticated)
			}
			if user.Role != role {
				return response.AppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok
}

// GetClaims returns the verified token claims.
func GetClaims(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(keyClaims).(*service.Claims)

	return claims, ok
}

// GetUser returns the authenticated user as loaded by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyUser).(*entity.User)

	return user, ok && user != nil
}
