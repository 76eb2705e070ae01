package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cardportal/config"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/service"
	"cardportal/internal/usecase"
	mockUsecase "cardportal/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{}
	cfg.Auth.CookieName = "cardportal_session"
	cfg.Auth.CookieSecure = true

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Config: cfg, Logger: newDiscardLogger()}), authUC
}

const registerBody = `{
	"full_name": "Ayesha Khan",
	"email": "ayesha@uni.edu.pk",
	"personal_email": "ayesha@gmail.com",
	"password": "s3cret-pass",
	"department": "Computer Science",
	"registration_number": "2021-CS-123",
	"cnic": "35202-1234567-1",
	"session": "2021-2025",
	"date_of_birth": "2003-05-14",
	"phone_number": "0300-1234567"
}`

func TestAuthHandler_Register(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	e := newTestEcho()
	student := newTestStudent()

	authUC.EXPECT().Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
		return in.Department == entity.DeptComputerScience &&
			in.CNIC == "35202-1234567-1" &&
			in.DateOfBirth != nil && in.DateOfBirth.Equal(time.Date(2003, time.May, 14, 0, 0, 0, 0, time.UTC))
	})).Return(student, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"approval_status":"pending"`)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_ValidationFailed(t *testing.T) {
	h, _ := createTestAuthHandler(t)
	e := newTestEcho()

	body := strings.Replace(registerBody, `"35202-1234567-1"`, `"12345"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, string(env.Error.Details), "cnic")
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	e := newTestEcho()

	authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.NewDuplicateIdentity("email"))

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_IDENTITY", decodeEnvelope(t, rec).Error.Code)
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	e := newTestEcho()
	student := newTestStudent()
	expires := testNow.Add(24 * time.Hour)

	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ayesha@uni.edu.pk", Password: "s3cret-pass"}).
		Return(&usecase.LoginOutput{
			Token:      "signed.jwt.token",
			ExpiresAt:  expires,
			User:       student.Summary(),
			RedirectTo: "/student/dashboard",
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ayesha@uni.edu.pk","password":"s3cret-pass"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect_to":"/student/dashboard"`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cardportal_session", cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	e := newTestEcho()

	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ayesha@uni.edu.pk","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes presented token", func(t *testing.T) {
		h, authUC := createTestAuthHandler(t)
		e := newTestEcho()
		claims := &service.Claims{TokenID: "jti-1"}

		authUC.EXPECT().Logout(mock.Anything, claims).Return(nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)
		c.Set("claims", claims)

		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("without a session", func(t *testing.T) {
		h, _ := createTestAuthHandler(t)
		e := newTestEcho()
		rec := httptest.NewRecorder()

		require.NoError(t, h.Logout(e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	h, authUC := createTestAuthHandler(t)
	e := newTestEcho()
	student := newTestStudent()

	authUC.EXPECT().Me(mock.Anything, student.ID).Return(student, nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/auth/me", nil), rec)
	asUser(c, student.ID)

	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"registration_number":"2021-CS-123"`)
	assert.Contains(t, rec.Body.String(), `"profile_completion"`)
}
