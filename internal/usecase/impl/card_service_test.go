package impl

import (
	"context"
	"testing"

	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	mockRepo "cardportal/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCardService(t *testing.T) (*cardService, *mockRepo.MockUserRepository) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewCardService(CardServiceParams{UserRepo: userRepo, Logger: newDiscardLogger()}).(*cardService)
	svc.now = fixedClock()

	return svc, userRepo
}

func TestCardService_Verify(t *testing.T) {
	svc, userRepo := createTestCardService(t)
	ctx := context.Background()
	student := newTestStudent()
	require.NoError(t, approval.Approve(student, uuid.New(), "2025COM0007", testNow, 4))

	userRepo.EXPECT().FindByCardNumber(ctx, "2025COM0007").Return(student, nil)

	verification, err := svc.Verify(ctx, " 2025com0007 ")

	require.NoError(t, err)
	assert.Equal(t, "2025COM0007", verification.CardNumber)
	assert.Equal(t, approval.CardValid, verification.State)
	assert.True(t, verification.Valid())
	assert.Equal(t, "Ayesha Khan", verification.FullName)
	require.NotNil(t, verification.ExpiryDate)
	assert.Equal(t, testNow.AddDate(4, 0, 0), *verification.ExpiryDate)
}

func TestCardService_Verify_Inactive(t *testing.T) {
	svc, userRepo := createTestCardService(t)
	ctx := context.Background()
	student := newTestStudent()
	require.NoError(t, approval.Approve(student, uuid.New(), "2025COM0007", testNow, 4))
	student.IsActive = false

	userRepo.EXPECT().FindByCardNumber(ctx, "2025COM0007").Return(student, nil)

	verification, err := svc.Verify(ctx, "2025COM0007")

	require.NoError(t, err)
	assert.Equal(t, approval.CardInactive, verification.State)
	assert.False(t, verification.Valid())
}

func TestCardService_Verify_WithholdsHolderUnlessValid(t *testing.T) {
	tests := []struct {
		name      string
		transform func(u *entity.User) error
		wantState approval.CardState
	}{
		{
			name: "removed",
			transform: func(u *entity.User) error {
				return approval.Remove(u, uuid.New(), testNow)
			},
			wantState: approval.CardInactive,
		},
		{
			name: "rejected",
			transform: func(u *entity.User) error {
				return approval.Reject(u, uuid.New(), "photo is blurry", testNow)
			},
			wantState: approval.CardNotApproved,
		},
		{
			name: "expired",
			transform: func(u *entity.User) error {
				u.Student.Card.ExpiryDate = testNow.AddDate(0, 0, -1)

				return nil
			},
			wantState: approval.CardExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo := createTestCardService(t)
			ctx := context.Background()
			student := newTestStudent()
			require.NoError(t, approval.Approve(student, uuid.New(), "2025COM0007", testNow, 4))
			require.NoError(t, tt.transform(student))

			userRepo.EXPECT().FindByCardNumber(ctx, "2025COM0007").Return(student, nil)

			verification, err := svc.Verify(ctx, "2025COM0007")

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, verification.State)
			assert.Empty(t, verification.FullName)
			assert.Empty(t, verification.Department)
			assert.Nil(t, verification.ExpiryDate)
		})
	}
}

func TestCardService_Verify_NotFound(t *testing.T) {
	svc, userRepo := createTestCardService(t)
	ctx := context.Background()

	userRepo.EXPECT().FindByCardNumber(ctx, "2025COM0099").Return(nil, domainerrors.ErrUserNotFound)

	_, err := svc.Verify(ctx, "2025COM0099")

	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestCardService_Verify_Malformed(t *testing.T) {
	svc, userRepo := createTestCardService(t)

	_, err := svc.Verify(context.Background(), "not-a-card")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	userRepo.AssertNotCalled(t, "FindByCardNumber", mock.Anything, mock.Anything)
}
