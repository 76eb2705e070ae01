// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"cardportal/internal/domain/entity"
	"cardportal/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput is a student's self-registration draft.
type RegisterInput struct {
	FullName           string
	Email              string // institutional
	PersonalEmail      string
	Password           string
	Department         entity.Department
	RegistrationNumber string
	CNIC               string
	Session            string
	DateOfBirth        *time.Time
	FatherName         string
	Address            string
	PhoneNumber        string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ProvisionAdminInput holds the bootstrap admin credentials.
type ProvisionAdminInput struct {
	Email    string
	Password string
	FullName string
}

// --- Output DTOs ---

// LoginOutput carries the issued token and where the client should go next.
type LoginOutput struct {
	Token      string
	ExpiresAt  time.Time
	User       entity.UserSummary
	RedirectTo string
}

// AuthUsecase covers account creation and sessions.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout revokes the presented token until it would have expired.
	Logout(ctx context.Context, claims *service.Claims) error

	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ProvisionAdmin creates the admin if no account uses the email yet.
	// created is false when the account already existed.
	ProvisionAdmin(ctx context.Context, input *ProvisionAdminInput) (user *entity.User, created bool, err error)
}
