package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cardportal/config"
	apimiddleware "cardportal/internal/delivery/api/middleware"
	"cardportal/internal/delivery/api/router"
	"cardportal/internal/delivery/api/router/handler"
	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"
	"cardportal/internal/domain/service"
	mockRepo "cardportal/internal/mocks/repository"
	mockService "cardportal/internal/mocks/service"
	mockUsecase "cardportal/internal/mocks/usecase"
	"cardportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	echo    *echo.Echo
	tokens  *mockService.MockTokenService
	revoker *mockService.MockTokenRevoker
	users   *mockRepo.MockUserRepository
	cardUC  *mockUsecase.MockCardUsecase
	adminUC *mockUsecase.MockAdminUsecase
}

func createTestServer(t *testing.T) *serverFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowOrigins = []string{"https://portal.example.edu"}
	cfg.Auth.CookieName = "token"
	cfg.Upload.MaxPhotoSize = 1 << 10
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &serverFixtures{
		tokens:  mockService.NewMockTokenService(t),
		revoker: mockService.NewMockTokenRevoker(t),
		users:   mockRepo.NewMockUserRepository(t),
		cardUC:  mockUsecase.NewMockCardUsecase(t),
		adminUC: mockUsecase.NewMockAdminUsecase(t),
	}

	routerParams := router.RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			AuthUC: mockUsecase.NewMockAuthUsecase(t), Config: cfg, Logger: logger,
		}),
		StudentHandler: handler.NewStudentHandler(handler.StudentHandlerParams{
			StudentUC: mockUsecase.NewMockStudentUsecase(t),
			QRCodes:   mockService.NewMockQRCodeService(t),
			Config:    cfg,
			Logger:    logger,
		}),
		AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: f.adminUC}),
		CardHandler:  handler.NewCardHandler(handler.CardHandlerParams{CardUC: f.cardUC}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
			TokenService: f.tokens,
			Revoker:      f.revoker,
			UserRepo:     f.users,
			Config:       cfg,
			Logger:       logger,
		}),
	}

	srv, err := NewServer(ServerParams{
		Lc:           fxtest.NewLifecycle(t),
		Cfg:          cfg,
		Logger:       logger,
		RouterParams: routerParams,
	})
	require.NoError(t, err)
	f.echo = srv.(*apiServer).server

	return f
}

func (f *serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"`+rec.Header().Get(echo.HeaderXRequestID)+`"`)
}

func TestServer_UnknownRoute(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
}

func TestServer_BodyLimit(t *testing.T) {
	f := createTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(strings.Repeat("x", 4096)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := f.do(req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"PAYLOAD_TOO_LARGE"`)
}

func TestServer_StudentRoutesRequireToken(t *testing.T) {
	f := createTestServer(t)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/student/id-card", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"UNAUTHENTICATED"`)
}

func TestServer_AdminRoutesRejectStudents(t *testing.T) {
	f := createTestServer(t)
	student := &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleStudent,
		IsActive: true,
		Student:  &entity.StudentProfile{ApprovalStatus: entity.ApprovalApproved},
	}

	f.tokens.EXPECT().ValidateToken("student-token").
		Return(&service.Claims{TokenID: "jti", UserID: student.ID, Role: entity.RoleStudent}, nil)
	f.revoker.EXPECT().IsRevoked(mock.Anything, "jti").Return(false, nil)
	f.users.EXPECT().FindByID(mock.Anything, student.ID).Return(student, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer student-token")
	rec := f.do(req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)
}

func TestServer_CardVerificationIsPublic(t *testing.T) {
	f := createTestServer(t)

	f.cardUC.EXPECT().Verify(mock.Anything, "2025COM0007").Return(&usecase.CardVerification{
		CardNumber: "2025COM0007",
		State:      approval.CardValid,
	}, nil)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/cards/2025COM0007/verify", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)
}

func TestServer_CORSPreflight(t *testing.T) {
	f := createTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/auth/login", nil)
	req.Header.Set(echo.HeaderOrigin, "https://portal.example.edu")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := f.do(req)

	assert.Equal(t, "https://portal.example.edu", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestServer_Metrics(t *testing.T) {
	f := createTestServer(t)
	f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cardportal_http_requests_total")
}
