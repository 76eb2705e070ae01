package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"cardportal/internal/delivery/api/validator"
	"cardportal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

// asUser marks c as authenticated the way the auth middleware does.
func asUser(c echo.Context, id uuid.UUID) {
	c.Set("userID", id)
}

func newTestStudent() *entity.User {
	return &entity.User{
		ID:            uuid.MustParse("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"),
		FullName:      "Ayesha Khan",
		Role:          entity.RoleStudent,
		Email:         "ayesha@uni.edu.pk",
		PersonalEmail: "ayesha@gmail.com",
		IsActive:      true,
		Student: &entity.StudentProfile{
			Department:         entity.DeptComputerScience,
			RegistrationNumber: "2021-CS-123",
			Session:            "2021-2025",
			CNIC:               "35202-1234567-1",
			ApprovalStatus:     entity.ApprovalPending,
		},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}
