package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"cardportal/config"
	"cardportal/internal/delivery/api/middleware"
	"cardportal/internal/delivery/api/response"
	"cardportal/internal/domain/entity"
	"cardportal/internal/domain/service"
	"cardportal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// photoFormField is the multipart field carrying the profile photo.
const photoFormField = "photo"

// StudentHandlerParams holds dependencies for StudentHandler, injected by Fx.
type StudentHandlerParams struct {
	fx.In

	StudentUC usecase.StudentUsecase
	QRCodes   service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// StudentHandler serves the authenticated student's own record.
type StudentHandler struct {
	studentUC    usecase.StudentUsecase
	qrCodes      service.QRCodeService
	maxPhotoSize int64
	logger       *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler
func NewStudentHandler(params StudentHandlerParams) *StudentHandler {
	return &StudentHandler{
		studentUC:    params.StudentUC,
		qrCodes:      params.QRCodes,
		maxPhotoSize: params.Config.Upload.MaxPhotoSize,
		logger:       params.Logger,
	}
}

// UpdateProfileRequest is a partial profile update. Absent fields are left
// unchanged.
type UpdateProfileRequest struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Department  *string `json:"department" validate:"omitempty,department"`
	Session     *string `json:"session" validate:"omitempty,session"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	FatherName  *string `json:"father_name" validate:"omitempty,max=100"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone_pk"`
}

// GetProfile handles GET /student/profile.
func (h *StudentHandler) GetProfile(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	user, err := h.studentUC.GetProfile(c.Request().Context(), studentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateProfile handles PUT /student/profile. Every key in the body is
// forwarded by name so that protected and unknown keys are refused, not
// ignored.
func (h *StudentHandler) UpdateProfile(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return response.BindingError(c, "Profile update must be a JSON object")
	}

	var req UpdateProfileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	fields := make([]string, 0, len(raw))
	for key := range raw {
		fields = append(fields, key)
	}
	slices.Sort(fields)

	input := &usecase.ProfileUpdateInput{
		Fields:      fields,
		FullName:    req.FullName,
		Session:     req.Session,
		FatherName:  req.FatherName,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if req.Department != nil {
		dept := entity.Department(*req.Department)
		input.Department = &dept
	}
	if req.DateOfBirth != nil {
		dob, _ := time.Parse(dateLayout, *req.DateOfBirth)
		input.DateOfBirth = &dob
	}

	user, err := h.studentUC.UpdateProfile(c.Request().Context(), studentID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UploadPhoto handles POST /student/photo (multipart, field "photo").
func (h *StudentHandler) UploadPhoto(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		return response.BindingError(c, "A photo file is required in the \"photo\" field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, "Uploaded photo could not be read")
	}
	defer file.Close()

	// One byte past the limit is enough for the size check downstream.
	data, err := io.ReadAll(io.LimitReader(file, h.maxPhotoSize+1))
	if err != nil {
		return response.BindingError(c, "Uploaded photo could not be read")
	}

	ref, err := h.studentUC.UploadPhoto(c.Request().Context(), studentID, &usecase.UploadPhotoInput{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPhotoResponse(ref))
}

// GetPhoto handles GET /student/photo.
func (h *StudentHandler) GetPhoto(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	content, err := h.studentUC.GetPhoto(c.Request().Context(), studentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return streamPhoto(c, content)
}

func streamPhoto(c echo.Context, content *usecase.PhotoContent) error {
	defer content.Body.Close()

	c.Response().Header().Set("Cache-Control", "private, max-age=300")

	return c.Stream(http.StatusOK, content.Ref.ContentType, content.Body)
}

// SubmitForApproval handles POST /student/submit-approval.
func (h *StudentHandler) SubmitForApproval(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	user, err := h.studentUC.SubmitForApproval(c.Request().Context(), studentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// GetIDCard handles GET /student/id-card.
func (h *StudentHandler) GetIDCard(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	card, err := h.studentUC.GetIDCard(c.Request().Context(), studentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &IDCardResponse{
		IDCard:    card,
		VerifyURL: h.qrCodes.VerificationURL(card.CardNumber),
	})
}

// GetIDCardQR handles GET /student/id-card/qr and returns a PNG.
func (h *StudentHandler) GetIDCardQR(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	png, err := h.studentUC.GetIDCardQR(c.Request().Context(), studentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Dashboard handles GET /student/dashboard.
func (h *StudentHandler) Dashboard(c echo.Context) error {
	studentID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	dashboard, err := h.studentUC.Dashboard(c.Request().Context(), studentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDashboardResponse(dashboard))
}
