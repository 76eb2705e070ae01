package handler

import (
	"net/http"

	"cardportal/internal/delivery/api/middleware"
	"cardportal/internal/delivery/api/response"
	"cardportal/internal/domain/entity"
	"cardportal/internal/infra/metrics"
	"cardportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler serves the review endpoints.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
	}
}

// ListStudentsQuery is the query string of the listing endpoints.
type ListStudentsQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Status     string `query:"status"`
	Department string `query:"department"`
	Search     string `query:"search"`
}

func (q *ListStudentsQuery) toInput() usecase.ListStudentsInput {
	return usecase.ListStudentsInput{
		Page:       q.Page,
		Limit:      q.Limit,
		Status:     entity.ApprovalStatus(q.Status),
		Department: entity.Department(q.Department),
		Search:     q.Search,
	}
}

// RejectRequest carries the reason shown to the student.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// SetStatusRequest toggles whether a student may sign in.
type SetStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// ListStudents handles GET /admin/students.
func (h *AdminHandler) ListStudents(c echo.Context) error {
	var query ListStudentsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	page, err := h.adminUC.ListStudents(c.Request().Context(), query.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toStudentPageResponse(page))
}

// PendingRequests handles GET /admin/pending-requests.
func (h *AdminHandler) PendingRequests(c echo.Context) error {
	var query ListStudentsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BindingError(c, "Invalid query parameters")
	}

	page, err := h.adminUC.PendingRequests(c.Request().Context(), query.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toStudentPageResponse(page))
}

// GetStudent handles GET /admin/student/:id.
func (h *AdminHandler) GetStudent(c echo.Context) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return response.BindingError(c, "Invalid student ID")
	}

	detail, err := h.adminUC.GetStudent(c.Request().Context(), studentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toStudentDetailResponse(detail))
}

// GetStudentPhoto handles GET /admin/student/:id/photo.
func (h *AdminHandler) GetStudentPhoto(c echo.Context) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return response.BindingError(c, "Invalid student ID")
	}

	content, err := h.adminUC.GetStudentPhoto(c.Request().Context(), studentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return streamPhoto(c, content)
}

// Approve handles PUT /admin/student/:id/approve.
func (h *AdminHandler) Approve(c echo.Context) error {
	adminID, studentID, ok, err := h.actors(c)
	if !ok {
		return err
	}

	user, err := h.adminUC.Approve(c.Request().Context(), adminID, studentID)

	return h.transitionResult(c, "approve", user, err)
}

// Reject handles PUT /admin/student/:id/reject.
func (h *AdminHandler) Reject(c echo.Context) error {
	adminID, studentID, ok, err := h.actors(c)
	if !ok {
		return err
	}

	var req RejectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.adminUC.Reject(c.Request().Context(), adminID, studentID, req.Reason)

	return h.transitionResult(c, "reject", user, err)
}

// SetStatus handles PUT /admin/student/:id/status.
func (h *AdminHandler) SetStatus(c echo.Context) error {
	adminID, studentID, ok, err := h.actors(c)
	if !ok {
		return err
	}

	var req SetStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	action := "deactivate"
	if *req.IsActive {
		action = "activate"
	}

	user, err := h.adminUC.SetActive(c.Request().Context(), adminID, studentID, *req.IsActive)

	return h.transitionResult(c, action, user, err)
}

// Remove handles DELETE /admin/student/:id.
func (h *AdminHandler) Remove(c echo.Context) error {
	adminID, studentID, ok, err := h.actors(c)
	if !ok {
		return err
	}

	user, err := h.adminUC.Remove(c.Request().Context(), adminID, studentID)

	return h.transitionResult(c, "remove", user, err)
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toStatsResponse(stats))
}

// actors resolves the acting admin and the target student. When ok is false
// the response has already been written and err is what the handler returns.
func (h *AdminHandler) actors(c echo.Context) (adminID, studentID uuid.UUID, ok bool, err error) {
	adminID, found := middleware.GetUserID(c)
	if !found {
		return uuid.Nil, uuid.Nil, false, response.Unauthorized(c, "Invalid user ID in token")
	}

	studentID, err = parseStudentID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, false, response.BindingError(c, "Invalid student ID")
	}

	return adminID, studentID, true, nil
}

func (h *AdminHandler) transitionResult(c echo.Context, action string, user *entity.User, err error) error {
	if err != nil {
		metrics.RecordTransition(action, metrics.OutcomeFailure)

		return response.HandleAppError(c, err)
	}
	metrics.RecordTransition(action, metrics.OutcomeSuccess)

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

func parseStudentID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}
