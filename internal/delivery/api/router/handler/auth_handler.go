package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cardportal/config"
	"cardportal/internal/delivery/api/middleware"
	"cardportal/internal/delivery/api/response"
	"cardportal/internal/domain/entity"
	"cardportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves registration and sessions.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:       params.AuthUC,
		cookieName:   params.Config.Auth.CookieName,
		cookieSecure: params.Config.Auth.CookieSecure,
		logger:       params.Logger,
	}
}

// RegisterRequest is a student's self-registration draft.
type RegisterRequest struct {
	FullName           string `json:"full_name" validate:"required,max=100"`
	Email              string `json:"email" validate:"required,email"`
	PersonalEmail      string `json:"personal_email" validate:"required,email"`
	Password           string `json:"password" validate:"required,min=8,max=72"`
	Department         string `json:"department" validate:"required,department"`
	RegistrationNumber string `json:"registration_number" validate:"required,regno"`
	CNIC               string `json:"cnic" validate:"required,cnic"`
	Session            string `json:"session" validate:"omitempty,session"`
	DateOfBirth        string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	FatherName         string `json:"father_name" validate:"max=100"`
	Address            string `json:"address" validate:"max=255"`
	PhoneNumber        string `json:"phone_number" validate:"omitempty,phone_pk"`
}

// LoginRequest carries credentials. Either email field is accepted.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token      string             `json:"token"`
	ExpiresAt  time.Time          `json:"expires_at"`
	User       entity.UserSummary `json:"user"`
	RedirectTo string             `json:"redirect_to"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.RegisterInput{
		FullName:           req.FullName,
		Email:              req.Email,
		PersonalEmail:      req.PersonalEmail,
		Password:           req.Password,
		Department:         entity.Department(req.Department),
		RegistrationNumber: req.RegistrationNumber,
		CNIC:               req.CNIC,
		Session:            req.Session,
		FatherName:         req.FatherName,
		Address:            req.Address,
		PhoneNumber:        req.PhoneNumber,
	}
	if req.DateOfBirth != "" {
		dob, _ := time.Parse(dateLayout, req.DateOfBirth)
		input.DateOfBirth = &dob
	}

	user, err := h.authUC.Register(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user.Summary())
}

// Login handles POST /auth/login. The token is returned in the body and
// also set as an HTTP-only cookie for browser sessions.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.SetCookie(h.sessionCookie(output.Token, output.ExpiresAt))

	return response.Success(c, http.StatusOK, &LoginResponse{
		Token:      output.Token,
		ExpiresAt:  output.ExpiresAt,
		User:       output.User,
		RedirectTo: output.RedirectTo,
	})
}

// Logout handles POST /auth/logout. A presented token is revoked; the
// cookie is cleared either way.
func (h *AuthHandler) Logout(c echo.Context) error {
	if claims, ok := middleware.GetClaims(c); ok {
		if err := h.authUC.Logout(c.Request().Context(), claims); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	user, err := h.authUC.Me(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	}

	return cookie
}
