package impl

import (
	"context"
	"testing"
	"time"

	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/service"
	mockRepo "cardportal/internal/mocks/repository"
	mockService "cardportal/internal/mocks/service"
	"cardportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	revoker      *mockService.MockTokenRevoker
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	revoker := mockService.NewMockTokenRevoker(t)

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Revoker:      revoker,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		revoker:      revoker,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FullName:           "Ayesha Khan",
		Email:              "Ayesha@Student.UET.edu.pk",
		PersonalEmail:      "ayesha@gmail.com",
		Password:           "Password123!",
		Department:         entity.DeptComputerScience,
		RegistrationNumber: "2024-cs-123",
		CNIC:               "35202-1234567-1",
		Session:            "2024-2028",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, "ayesha@student.uet.edu.pk").Return(nil, domainerrors.ErrUserNotFound)
	repos.users.EXPECT().FindByEmail(ctx, "ayesha@gmail.com").Return(nil, domainerrors.ErrUserNotFound)
	repos.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ayesha@student.uet.edu.pk", user.Email)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Equal(t, entity.RoleStudent, user.Role)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.Student)
	assert.Equal(t, entity.ApprovalPending, user.Student.ApprovalStatus)
	assert.Equal(t, "2024-CS-123", user.Student.RegistrationNumber)
}

func TestAuthService_Register_CanonicalCNIC(t *testing.T) {
	for _, cnic := range []string{"35202-1234567-1", "3520212345671", " 3520212345671 "} {
		t.Run(cnic, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()
			input := validRegisterInput()
			input.CNIC = cnic

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
			repos := expectTx(t, fx.txManager)
			repos.users.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, domainerrors.ErrUserNotFound)
			repos.users.EXPECT().
				Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
					return user.Student.CNIC == "35202-1234567-1"
				})).
				Return(nil)

			_, err := fx.service.Register(ctx, input)

			require.NoError(t, err)
		})
	}
}

func TestAuthService_Register_DuplicatePersonalEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, "ayesha@student.uet.edu.pk").Return(nil, domainerrors.ErrUserNotFound)
	repos.users.EXPECT().FindByEmail(ctx, "ayesha@gmail.com").Return(newTestStudent(), nil)

	_, err := fx.service.Register(ctx, input)

	require.ErrorIs(t, err, domainerrors.ErrDuplicateIdentity)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.FieldDetails{Fields: []string{"personal_email"}}, appErr.Details())
}

func TestAuthService_Register_StoreConstraint(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, mock.Anything).Return(nil, domainerrors.ErrUserNotFound)
	repos.users.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.NewDuplicateIdentity("cnic"))

	_, err := fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentity)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *usecase.RegisterInput)
		field  string
	}{
		{"foreign email domain", func(in *usecase.RegisterInput) { in.Email = "ayesha@gmail.com"; in.PersonalEmail = "a@yahoo.com" }, "email"},
		{"same emails", func(in *usecase.RegisterInput) { in.PersonalEmail = in.Email }, "personal_email"},
		{"short password", func(in *usecase.RegisterInput) { in.Password = "short" }, "password"},
		{"unknown department", func(in *usecase.RegisterInput) { in.Department = "Alchemy" }, "department"},
		{"missing cnic", func(in *usecase.RegisterInput) { in.CNIC = " " }, "cnic"},
		{"blank name", func(in *usecase.RegisterInput) { in.FullName = "" }, "full_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			input := validRegisterInput()
			tt.mutate(input)

			_, err := fx.service.Register(context.Background(), input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Contains(t, appErr.Details().(domainerrors.FieldDetails).Fields, tt.field)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestStudent()
	expiresAt := testNow.Add(7 * 24 * time.Hour)

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(user.ID, entity.RoleStudent).
		Return("signed.jwt.token", &service.Claims{TokenID: "jti", UserID: user.ID, Role: entity.RoleStudent, ExpiresAt: expiresAt}, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, expiresAt, output.ExpiresAt)
	assert.Equal(t, "/student/dashboard", output.RedirectTo)
	assert.Equal(t, entity.ApprovalPending, output.User.ApprovalStatus)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@student.uet.edu.pk").Return(nil, domainerrors.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@student.uet.edu.pk", Password: "whatever1"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestStudent()

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong-password", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong-password"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveApprovedStudent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestStudent()
	user.Student.ApprovalStatus = entity.ApprovalApproved
	user.IsActive = false

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.ErrorIs(t, err, domainerrors.ErrAccountInactive)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 401, appErr.HTTPCode())
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	claims := &service.Claims{TokenID: "jti-1", ExpiresAt: testNow.Add(time.Hour)}

	fx.revoker.EXPECT().Revoke(ctx, "jti-1", claims.ExpiresAt).Return(nil)

	require.NoError(t, fx.service.Logout(ctx, claims))
	require.NoError(t, fx.service.Logout(ctx, nil))
}

func TestAuthService_ProvisionAdmin_Creates(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, "admin@uet.edu.pk").Return(nil, domainerrors.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("AdminPass1!").Return("admin_hash", nil)
	repos.users.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == entity.RoleAdmin && u.Student == nil && u.IsActive
	})).Return(nil)

	admin, created, err := fx.service.ProvisionAdmin(ctx, &usecase.ProvisionAdminInput{
		Email:    "Admin@UET.edu.pk",
		Password: "AdminPass1!",
	})

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Administrator", admin.FullName)
}

func TestAuthService_ProvisionAdmin_Idempotent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, Email: "admin@uet.edu.pk", IsActive: true}

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, "admin@uet.edu.pk").Return(existing, nil)

	admin, created, err := fx.service.ProvisionAdmin(ctx, &usecase.ProvisionAdminInput{
		Email:    "admin@uet.edu.pk",
		Password: "AdminPass1!",
	})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, existing.ID, admin.ID)
}

func TestAuthService_ProvisionAdmin_EmailTakenByStudent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByEmail(ctx, "ayesha@student.uet.edu.pk").Return(newTestStudent(), nil)

	_, _, err := fx.service.ProvisionAdmin(ctx, &usecase.ProvisionAdminInput{
		Email:    "ayesha@student.uet.edu.pk",
		Password: "AdminPass1!",
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentity)
}
