package handler

import (
	"time"

	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"
	"cardportal/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = time.DateOnly

// UserResponse is the profile view of an account. Student fields are
// omitted for admins. The password hash is never part of it.
type UserResponse struct {
	ID            uuid.UUID   `json:"id"`
	FullName      string      `json:"full_name"`
	Email         string      `json:"email"`
	PersonalEmail string      `json:"personal_email,omitempty"`
	Role          entity.Role `json:"role"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	*StudentResponse
}

// StudentResponse holds the student-only part of UserResponse.
type StudentResponse struct {
	Department         entity.Department     `json:"department"`
	RegistrationNumber string                `json:"registration_number"`
	Session            string                `json:"session"`
	CNIC               string                `json:"cnic"`
	DateOfBirth        string                `json:"date_of_birth,omitempty"`
	FatherName         string                `json:"father_name"`
	Address            string                `json:"address"`
	PhoneNumber        string                `json:"phone_number"`
	ApprovalStatus     entity.ApprovalStatus `json:"approval_status"`
	RejectionReason    string                `json:"rejection_reason,omitempty"`
	ProfileSubmitted   bool                  `json:"profile_submitted"`
	SubmittedAt        *time.Time            `json:"submitted_at,omitempty"`
	ProfilePhoto       *PhotoResponse        `json:"profile_photo,omitempty"`
	CardDetails        *entity.CardDetails   `json:"card_details,omitempty"`
	ApprovedAt         *time.Time            `json:"approved_at,omitempty"`
	RejectedAt         *time.Time            `json:"rejected_at,omitempty"`
	ProfileCompletion  int                   `json:"profile_completion"`
}

// PhotoResponse describes an uploaded photo without exposing its storage key.
type PhotoResponse struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func toPhotoResponse(ref *entity.PhotoRef) *PhotoResponse {
	if ref == nil || ref.Key == "" {
		return nil
	}

	return &PhotoResponse{
		Filename:    ref.Filename,
		ContentType: ref.ContentType,
		Size:        ref.Size,
		UploadedAt:  ref.UploadedAt,
	}
}

func toUserResponse(u *entity.User) *UserResponse {
	resp := &UserResponse{
		ID:            u.ID,
		FullName:      u.FullName,
		Email:         u.Email,
		PersonalEmail: u.PersonalEmail,
		Role:          u.Role,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
	if !u.IsStudent() {
		return resp
	}

	p := u.Student
	resp.StudentResponse = &StudentResponse{
		Department:         p.Department,
		RegistrationNumber: p.RegistrationNumber,
		Session:            p.Session,
		CNIC:               p.CNIC,
		FatherName:         p.FatherName,
		Address:            p.Address,
		PhoneNumber:        p.PhoneNumber,
		ApprovalStatus:     p.ApprovalStatus,
		RejectionReason:    p.RejectionReason,
		ProfileSubmitted:   p.ProfileSubmitted,
		SubmittedAt:        p.SubmittedAt,
		ProfilePhoto:       toPhotoResponse(p.Photo),
		CardDetails:        p.Card,
		ApprovedAt:         p.ApprovedAt,
		RejectedAt:         p.RejectedAt,
		ProfileCompletion:  approval.Completion(u),
	}
	if p.DateOfBirth != nil {
		resp.DateOfBirth = p.DateOfBirth.Format(dateLayout)
	}

	return resp
}

func toUserResponses(users []*entity.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	return out
}

// StudentPageResponse is one page of the admin student listing.
type StudentPageResponse struct {
	Students   []*UserResponse `json:"students"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

func toStudentPageResponse(page *usecase.StudentPage) *StudentPageResponse {
	return &StudentPageResponse{
		Students:   toUserResponses(page.Students),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}
}

// AuditEntryResponse is one line of a student's admin history.
type AuditEntryResponse struct {
	ID        uuid.UUID          `json:"id"`
	ActorID   uuid.UUID          `json:"actor_id"`
	Action    entity.AuditAction `json:"action"`
	OldValue  map[string]any     `json:"old_value,omitempty"`
	NewValue  map[string]any     `json:"new_value,omitempty"`
	Note      string             `json:"note,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}

// StudentDetailResponse is a student plus its admin history.
type StudentDetailResponse struct {
	Student *UserResponse         `json:"student"`
	History []*AuditEntryResponse `json:"history"`
}

func toStudentDetailResponse(detail *usecase.StudentDetail) *StudentDetailResponse {
	history := make([]*AuditEntryResponse, 0, len(detail.History))
	for _, entry := range detail.History {
		history = append(history, &AuditEntryResponse{
			ID:        entry.ID,
			ActorID:   entry.ActorID,
			Action:    entry.Action,
			OldValue:  entry.OldValue,
			NewValue:  entry.NewValue,
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		})
	}

	return &StudentDetailResponse{Student: toUserResponse(detail.Student), History: history}
}

// DepartmentCountResponse is one department row of the admin statistics.
type DepartmentCountResponse struct {
	Department entity.Department `json:"department"`
	Total      int64             `json:"total"`
	Approved   int64             `json:"approved"`
}

// StatsResponse is the admin dashboard aggregate.
type StatsResponse struct {
	Total          int64                           `json:"total"`
	Active         int64                           `json:"active"`
	ByStatus       map[entity.ApprovalStatus]int64 `json:"by_status"`
	ByDepartment   []DepartmentCountResponse       `json:"by_department"`
	RecentStudents []*UserResponse                 `json:"recent_students"`
}

func toStatsResponse(stats *usecase.AdminStats) *StatsResponse {
	departments := make([]DepartmentCountResponse, 0, len(stats.ByDepartment))
	for _, d := range stats.ByDepartment {
		departments = append(departments, DepartmentCountResponse{
			Department: d.Department,
			Total:      d.Total,
			Approved:   d.Approved,
		})
	}

	return &StatsResponse{
		Total:          stats.Total,
		Active:         stats.Active,
		ByStatus:       stats.ByStatus,
		ByDepartment:   departments,
		RecentStudents: toUserResponses(stats.Recent),
	}
}

// DashboardResponse is the student dashboard.
type DashboardResponse struct {
	User              entity.UserSummary    `json:"user"`
	ApprovalStatus    entity.ApprovalStatus `json:"approval_status"`
	RejectionReason   string                `json:"rejection_reason,omitempty"`
	ProfileSubmitted  bool                  `json:"profile_submitted"`
	SubmittedAt       *time.Time            `json:"submitted_at,omitempty"`
	ProfileCompletion int                   `json:"profile_completion"`
	HasPhoto          bool                  `json:"has_photo"`
	MissingFields     []string              `json:"missing_fields"`
	CanSubmit         bool                  `json:"can_submit"`
	CardDetails       *entity.CardDetails   `json:"card_details,omitempty"`
}

func toDashboardResponse(d *usecase.StudentDashboard) *DashboardResponse {
	missing := d.MissingFields
	if missing == nil {
		missing = []string{}
	}

	return &DashboardResponse{
		User:              d.User,
		ApprovalStatus:    d.ApprovalStatus,
		RejectionReason:   d.RejectionReason,
		ProfileSubmitted:  d.ProfileSubmitted,
		SubmittedAt:       d.SubmittedAt,
		ProfileCompletion: d.ProfileCompletion,
		HasPhoto:          d.HasPhoto,
		MissingFields:     missing,
		CanSubmit:         d.CanSubmit,
		CardDetails:       d.Card,
	}
}

// IDCardResponse is the printable card plus where it can be verified.
type IDCardResponse struct {
	*approval.IDCard
	VerifyURL string `json:"verify_url"`
}

// CardVerificationResponse is the public answer for a scanned card.
type CardVerificationResponse struct {
	CardNumber string             `json:"card_number"`
	Valid      bool               `json:"valid"`
	State      approval.CardState `json:"state"`
	FullName   string             `json:"full_name,omitempty"`
	Department entity.Department  `json:"department,omitempty"`
	ExpiryDate *time.Time         `json:"expiry_date,omitempty"`
}

func toCardVerificationResponse(v *usecase.CardVerification) *CardVerificationResponse {
	return &CardVerificationResponse{
		CardNumber: v.CardNumber,
		Valid:      v.Valid(),
		State:      v.State,
		FullName:   v.FullName,
		Department: v.Department,
		ExpiryDate: v.ExpiryDate,
	}
}
