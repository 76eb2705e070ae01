package usecase

import (
	"context"
	"io"
	"time"

	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUpdateInput is a partial profile update. Fields lists every key the
// caller sent, so writes to protected fields can be refused by name.
type ProfileUpdateInput struct {
	Fields      []string
	FullName    *string
	Department  *entity.Department
	Session     *string
	DateOfBirth *time.Time
	FatherName  *string
	Address     *string
	PhoneNumber *string
}

// UploadPhotoInput is a raw uploaded file.
type UploadPhotoInput struct {
	Filename string
	Data     []byte
}

// PhotoContent is an open photo stream. Callers must close Body.
type PhotoContent struct {
	Ref  *entity.PhotoRef
	Body io.ReadCloser
}

// StudentDashboard summarizes a student's progress towards a card.
type StudentDashboard struct {
	User              entity.UserSummary
	ApprovalStatus    entity.ApprovalStatus
	RejectionReason   string
	ProfileSubmitted  bool
	SubmittedAt       *time.Time
	ProfileCompletion int
	HasPhoto          bool
	MissingFields     []string
	CanSubmit         bool
	Card              *entity.CardDetails
}

// StudentUsecase is everything a student can do with their own record.
type StudentUsecase interface {
	GetProfile(ctx context.Context, studentID uuid.UUID) (*entity.User, error)

	// UpdateProfile fails with ValidationFailed naming any protected field
	// present in input.Fields; nothing is written in that case.
	UpdateProfile(ctx context.Context, studentID uuid.UUID, input *ProfileUpdateInput) (*entity.User, error)

	UploadPhoto(ctx context.Context, studentID uuid.UUID, input *UploadPhotoInput) (*entity.PhotoRef, error)
	GetPhoto(ctx context.Context, studentID uuid.UUID) (*PhotoContent, error)

	SubmitForApproval(ctx context.Context, studentID uuid.UUID) (*entity.User, error)

	GetIDCard(ctx context.Context, studentID uuid.UUID) (*approval.IDCard, error)

	// GetIDCardQR renders the verification QR code of an approved card.
	GetIDCardQR(ctx context.Context, studentID uuid.UUID) ([]byte, error)

	Dashboard(ctx context.Context, studentID uuid.UUID) (*StudentDashboard, error)
}
