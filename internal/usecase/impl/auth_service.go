// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"cardportal/config"
	deliverycontext "cardportal/internal/delivery/context"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"
	"cardportal/internal/domain/service"
	"cardportal/internal/errors"
	"cardportal/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	minPasswordLength = 8
	maxFullNameLength = 100
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	revoker      service.TokenRevoker
	emailDomain  string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Revoker      service.TokenRevoker
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		revoker:      params.Revoker,
		emailDomain:  strings.ToLower(strings.TrimPrefix(params.Config.Registration.InstitutionalEmailDomain, "@")),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a pending student. Both email columns share one
// namespace, so each address is checked against both before insert.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	user, err := srv.buildStudent(input)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	user.PasswordHash = hash

	srv.log(ctx).Info("Registering student", slog.String("email", user.Email))

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.NewUserRepository()

		if err := ensureEmailFree(ctx, users, user.Email, "email"); err != nil {
			return err
		}
		if err := ensureEmailFree(ctx, users, user.PersonalEmail, "personal_email"); err != nil {
			return err
		}

		return users.Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Warn("Student registration failed", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register student")
	}

	srv.log(ctx).Debug("Student registered", slog.Any("userID", user.ID))

	return user, nil
}

func ensureEmailFree(ctx context.Context, users repository.UserRepository, email, field string) error {
	_, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return domainerrors.NewDuplicateIdentity(field)
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return nil
	default:
		return errors.Wrap(err, "failed to check email")
	}
}

func (srv *authService) buildStudent(input *usecase.RegisterInput) (*entity.User, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := entity.NormalizeEmail(input.Email)
	personalEmail := entity.NormalizeEmail(input.PersonalEmail)
	cnic := entity.NormalizeCNIC(input.CNIC)

	var invalid []string
	if fullName == "" || utf8.RuneCountInString(fullName) > maxFullNameLength {
		invalid = append(invalid, "full_name")
	}
	if srv.emailDomain != "" && !strings.HasSuffix(email, "@"+srv.emailDomain) {
		invalid = append(invalid, "email")
	}
	if personalEmail == "" || personalEmail == email {
		invalid = append(invalid, "personal_email")
	}
	if len(input.Password) < minPasswordLength {
		invalid = append(invalid, "password")
	}
	if !input.Department.IsValid() {
		invalid = append(invalid, "department")
	}
	if strings.TrimSpace(input.RegistrationNumber) == "" {
		invalid = append(invalid, "registration_number")
	}
	if cnic == "" {
		invalid = append(invalid, "cnic")
	}
	if len(invalid) > 0 {
		return nil, domainerrors.NewValidationFailed("registration details are invalid", invalid...)
	}

	return &entity.User{
		FullName:      fullName,
		Role:          entity.RoleStudent,
		Email:         email,
		PersonalEmail: personalEmail,
		IsActive:      true,
		Student: &entity.StudentProfile{
			Department:         input.Department,
			RegistrationNumber: strings.ToUpper(strings.TrimSpace(input.RegistrationNumber)),
			CNIC:               cnic,
			Session:            strings.TrimSpace(input.Session),
			DateOfBirth:        input.DateOfBirth,
			FatherName:         strings.TrimSpace(input.FatherName),
			Address:            strings.TrimSpace(input.Address),
			PhoneNumber:        strings.TrimSpace(input.PhoneNumber),
			ApprovalStatus:     entity.ApprovalPending,
		},
	}, nil
}

// Login verifies credentials and issues a token. Approval state does not
// gate login; only inactive accounts are refused.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected: bad password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		srv.log(ctx).Info("Login rejected: account inactive", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrAccountInactive
	}

	token, claims, err := srv.tokenService.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.LoginOutput{
		Token:      token,
		ExpiresAt:  claims.ExpiresAt,
		User:       user.Summary(),
		RedirectTo: user.Role.DashboardPath(),
	}, nil
}

func (srv *authService) Logout(ctx context.Context, claims *service.Claims) error {
	if claims == nil || claims.TokenID == "" {
		return nil
	}

	if err := srv.revoker.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) ProvisionAdmin(ctx context.Context, input *usecase.ProvisionAdminInput) (*entity.User, bool, error) {
	email := entity.NormalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		fullName = "Administrator"
	}

	var invalid []string
	if email == "" || !strings.Contains(email, "@") {
		invalid = append(invalid, "email")
	}
	if len(input.Password) < minPasswordLength {
		invalid = append(invalid, "password")
	}
	if len(invalid) > 0 {
		return nil, false, domainerrors.NewValidationFailed("admin credentials are invalid", invalid...)
	}

	var admin *entity.User
	created := false
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.NewUserRepository()

		existing, err := users.FindByEmail(ctx, email)
		if err == nil {
			if existing.Role != entity.RoleAdmin {
				return domainerrors.NewDuplicateIdentity("email")
			}
			admin = existing

			return nil
		}
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find admin")
		}

		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
		}

		admin = &entity.User{
			FullName:     fullName,
			Role:         entity.RoleAdmin,
			Email:        email,
			PasswordHash: hash,
			IsActive:     true,
		}
		created = true

		return users.Create(ctx, admin)
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to provision admin")
	}

	srv.log(ctx).Info("Admin provisioned", slog.String("email", email), slog.Bool("created", created))

	return admin, created, nil
}
