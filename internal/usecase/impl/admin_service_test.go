package impl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"
	mockRepo "cardportal/internal/mocks/repository"
	mockService "cardportal/internal/mocks/service"
	"cardportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service       *adminService
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	auditRepo     *mockRepo.MockAuditRepository
	cardSequences *mockRepo.MockCardSequenceRepository
	blobs         *mockService.MockBlobStore
	publisher     *mockService.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fx := adminServiceFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		userRepo:      mockRepo.NewMockUserRepository(t),
		auditRepo:     mockRepo.NewMockAuditRepository(t),
		cardSequences: mockRepo.NewMockCardSequenceRepository(t),
		blobs:         mockService.NewMockBlobStore(t),
		publisher:     mockService.NewMockEventPublisher(t),
	}

	svc := NewAdminService(AdminServiceParams{
		TxManager:     fx.txManager,
		UserRepo:      fx.userRepo,
		AuditRepo:     fx.auditRepo,
		CardSequences: fx.cardSequences,
		Blobs:         fx.blobs,
		Publisher:     fx.publisher,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	}).(*adminService)
	svc.now = fixedClock()
	fx.service = svc

	return fx
}

func submittedStudent() *entity.User {
	student := newTestStudent()
	student.Student.Photo = &entity.PhotoRef{Key: "profiles/a.png"}
	if err := approval.Submit(student, testNow); err != nil {
		panic(err)
	}

	return student
}

func TestAdminService_Approve_IssuesCard(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	adminID := uuid.New()
	student := submittedStudent()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)
	fx.cardSequences.EXPECT().Next(ctx, 2025, "COM").Return(7, nil)
	repos.users.EXPECT().Update(ctx, student).Return(nil)

	var recorded *entity.AuditEntry
	repos.audits.EXPECT().Record(ctx, mock.Anything).
		Run(func(_ context.Context, entry *entity.AuditEntry) { recorded = entry }).
		Return(nil)

	var published *entity.StudentEvent
	fx.publisher.EXPECT().PublishStudentEvent(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.StudentEvent) { published = event }).
		Return(nil)

	approved, err := fx.service.Approve(ctx, adminID, student.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, approved.Student.ApprovalStatus)
	assert.Equal(t, "2025COM0007", approved.Student.Card.Number)
	assert.Equal(t, testNow, approved.Student.Card.IssueDate)
	assert.Equal(t, testNow.AddDate(4, 0, 0), approved.Student.Card.ExpiryDate)
	assert.Equal(t, adminID, *approved.Student.ApprovedBy)

	require.NotNil(t, recorded)
	assert.Equal(t, entity.AuditApprove, recorded.Action)
	assert.Equal(t, adminID, recorded.ActorID)
	assert.Equal(t, "pending", recorded.OldValue["approval_status"])
	assert.Equal(t, "approved", recorded.NewValue["approval_status"])
	assert.Equal(t, "2025COM0007", recorded.NewValue["card_number"])

	require.NotNil(t, published)
	assert.Equal(t, entity.EventStudentApproved, published.Type)
	assert.Equal(t, "2025COM0007", published.CardNumber)
	assert.Equal(t, adminID, published.ActorID)
}

func TestAdminService_Approve_RetriesOnCardConflict(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	stored := submittedStudent()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, stored.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.User, error) {
			return cloneStudent(stored), nil
		}).Times(2)
	fx.cardSequences.EXPECT().Next(ctx, 2025, "COM").Return(7, nil).Once()
	fx.cardSequences.EXPECT().Next(ctx, 2025, "COM").Return(8, nil).Once()
	repos.users.EXPECT().Update(ctx, mock.Anything).Return(domainerrors.ErrCardNumberConflict.WrapMessage("update user")).Once()
	repos.users.EXPECT().Update(ctx, mock.Anything).Return(nil).Once()
	repos.audits.EXPECT().Record(ctx, mock.Anything).Return(nil).Once()
	fx.publisher.EXPECT().PublishStudentEvent(ctx, mock.Anything).Return(nil)

	approved, err := fx.service.Approve(ctx, uuid.New(), stored.ID)

	require.NoError(t, err)
	assert.Equal(t, "2025COM0008", approved.Student.Card.Number)
	assert.Equal(t, entity.ApprovalPending, stored.Student.ApprovalStatus, "a failed attempt must not leak into the stored record")
}

func TestAdminService_Approve_ExhaustsAttempts(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	stored := submittedStudent()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, stored.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.User, error) {
			return cloneStudent(stored), nil
		}).Times(3)
	fx.cardSequences.EXPECT().Next(ctx, 2025, "COM").Return(7, nil).Times(3)
	repos.users.EXPECT().Update(ctx, mock.Anything).Return(domainerrors.ErrCardNumberConflict).Times(3)

	_, err := fx.service.Approve(ctx, uuid.New(), stored.ID)

	assert.ErrorIs(t, err, domainerrors.ErrCardNumberConflict)
	fx.publisher.AssertNotCalled(t, "PublishStudentEvent", mock.Anything, mock.Anything)
}

func TestAdminService_Approve_KeepsExistingCard(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	student := submittedStudent()
	issued := testNow.AddDate(-1, 0, 0)
	require.NoError(t, approval.Approve(student, uuid.New(), "2024COM0001", issued, 4))

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)
	repos.users.EXPECT().Update(ctx, student).Return(nil)
	repos.audits.EXPECT().Record(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishStudentEvent(ctx, mock.Anything).Return(nil)

	approved, err := fx.service.Approve(ctx, uuid.New(), student.ID)

	require.NoError(t, err)
	assert.Equal(t, "2024COM0001", approved.Student.Card.Number)
	assert.Equal(t, issued, approved.Student.Card.IssueDate)
	fx.cardSequences.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_Approve_NotStudent(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, IsActive: true}

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, admin.ID).Return(admin, nil)

	_, err := fx.service.Approve(ctx, uuid.New(), admin.ID)

	assert.ErrorIs(t, err, domainerrors.ErrNotStudent)
}

func TestAdminService_Reject(t *testing.T) {
	t.Run("requires a reason", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		student := submittedStudent()

		repos := expectTx(t, fx.txManager)
		repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)

		_, err := fx.service.Reject(ctx, uuid.New(), student.ID, "   ")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		repos.users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("records reason", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		student := submittedStudent()

		repos := expectTx(t, fx.txManager)
		repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)
		repos.users.EXPECT().Update(ctx, student).Return(nil)
		repos.audits.EXPECT().
			Record(ctx, mock.MatchedBy(func(entry *entity.AuditEntry) bool {
				return entry.Action == entity.AuditReject && entry.Note == "photo is blurry"
			})).
			Return(nil)
		fx.publisher.EXPECT().
			PublishStudentEvent(ctx, mock.MatchedBy(func(event *entity.StudentEvent) bool {
				return event.Type == entity.EventStudentRejected && event.Reason == "photo is blurry"
			})).
			Return(nil)

		rejected, err := fx.service.Reject(ctx, uuid.New(), student.ID, "photo is blurry")

		require.NoError(t, err)
		assert.Equal(t, entity.ApprovalRejected, rejected.Student.ApprovalStatus)
		assert.Equal(t, "photo is blurry", rejected.Student.RejectionReason)
	})
}

func TestAdminService_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	student := submittedStudent()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)
	repos.users.EXPECT().Update(ctx, student).Return(nil)
	repos.audits.EXPECT().Record(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishStudentEvent(ctx, mock.Anything).Return(assert.AnError)

	_, err := fx.service.Reject(ctx, uuid.New(), student.ID, "wrong session")

	assert.NoError(t, err)
}

func TestAdminService_AuditFailureRollsBack(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	student := submittedStudent()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)
	repos.users.EXPECT().Update(ctx, student).Return(nil)
	repos.audits.EXPECT().Record(ctx, mock.Anything).Return(assert.AnError)

	_, err := fx.service.Reject(ctx, uuid.New(), student.ID, "wrong session")

	assert.ErrorIs(t, err, assert.AnError)
	fx.publisher.AssertNotCalled(t, "PublishStudentEvent", mock.Anything, mock.Anything)
}

func TestAdminService_SetActive(t *testing.T) {
	tests := []struct {
		name   string
		active bool
		action entity.AuditAction
		event  entity.StudentEventType
	}{
		{"deactivate", false, entity.AuditDeactivate, entity.EventStudentDeactivated},
		{"activate", true, entity.AuditActivate, entity.EventStudentActivated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			ctx := context.Background()
			student := submittedStudent()
			student.IsActive = !tt.active

			repos := expectTx(t, fx.txManager)
			repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)
			repos.users.EXPECT().Update(ctx, student).Return(nil)
			repos.audits.EXPECT().
				Record(ctx, mock.MatchedBy(func(entry *entity.AuditEntry) bool { return entry.Action == tt.action })).
				Return(nil)
			fx.publisher.EXPECT().
				PublishStudentEvent(ctx, mock.MatchedBy(func(event *entity.StudentEvent) bool { return event.Type == tt.event })).
				Return(nil)

			updated, err := fx.service.SetActive(ctx, uuid.New(), student.ID, tt.active)

			require.NoError(t, err)
			assert.Equal(t, tt.active, updated.IsActive)
			assert.Equal(t, entity.ApprovalPending, updated.Student.ApprovalStatus)
		})
	}
}

func TestAdminService_Remove(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	student := submittedStudent()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)
	repos.users.EXPECT().Update(ctx, student).Return(nil)
	repos.audits.EXPECT().Record(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().
		PublishStudentEvent(ctx, mock.MatchedBy(func(event *entity.StudentEvent) bool { return event.Type == entity.EventStudentRemoved })).
		Return(nil)

	removed, err := fx.service.Remove(ctx, uuid.New(), student.ID)

	require.NoError(t, err)
	assert.False(t, removed.IsActive)
	assert.Equal(t, entity.ApprovalRejected, removed.Student.ApprovalStatus)
	assert.Equal(t, approval.RemovedReason, removed.Student.RejectionReason)
}

func TestAdminService_ListStudents(t *testing.T) {
	t.Run("pages", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		filter := repository.StudentFilter{Status: entity.ApprovalApproved, Search: "khan"}

		fx.userRepo.EXPECT().ListStudents(ctx, filter, 20, 10).Return([]*entity.User{newTestStudent()}, 21, nil)

		page, err := fx.service.ListStudents(ctx, usecase.ListStudentsInput{Page: 3, Limit: 10, Status: entity.ApprovalApproved, Search: "khan"})

		require.NoError(t, err)
		assert.Equal(t, int64(21), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Students, 1)
	})

	t.Run("clamps limit", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().ListStudents(ctx, repository.StudentFilter{}, 0, usecase.MaxPageLimit).Return(nil, 0, nil)

		page, err := fx.service.ListStudents(ctx, usecase.ListStudentsInput{Page: -1, Limit: 1000})

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, usecase.MaxPageLimit, page.Limit)
		assert.Equal(t, 0, page.TotalPages)
	})

	t.Run("all means any status", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().ListStudents(ctx, repository.StudentFilter{Search: "khan"}, 0, usecase.DefaultPageLimit).Return(nil, 0, nil)

		_, err := fx.service.ListStudents(ctx, usecase.ListStudentsInput{Status: "ALL", Search: "khan"})

		assert.NoError(t, err)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.ListStudents(context.Background(), usecase.ListStudentsInput{Status: "archived"})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAdminService_PendingRequests(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ListStudents(ctx, mock.MatchedBy(func(filter repository.StudentFilter) bool {
			return filter.Status == entity.ApprovalPending && filter.Submitted != nil && *filter.Submitted
		}), 0, usecase.DefaultPageLimit).
		Return(nil, 0, nil)

	_, err := fx.service.PendingRequests(ctx, usecase.ListStudentsInput{})

	assert.NoError(t, err)
}

func TestAdminService_GetStudent(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	student := newTestStudent()
	history := []*entity.AuditEntry{{Action: entity.AuditReject}}

	fx.userRepo.EXPECT().FindByID(ctx, student.ID).Return(student, nil)
	fx.auditRepo.EXPECT().ListByStudent(ctx, student.ID, historyLimit).Return(history, nil)

	detail, err := fx.service.GetStudent(ctx, student.ID)

	require.NoError(t, err)
	assert.Same(t, student, detail.Student)
	assert.Equal(t, history, detail.History)
}

func TestAdminService_Stats(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	stats := &repository.StudentStats{
		Total:    3,
		Active:   2,
		ByStatus: map[entity.ApprovalStatus]int64{entity.ApprovalPending: 2, entity.ApprovalApproved: 1, entity.ApprovalRejected: 0},
	}
	recent := []*entity.User{newTestStudent()}

	fx.userRepo.EXPECT().Stats(ctx).Return(stats, nil)
	fx.userRepo.EXPECT().RecentStudents(ctx, usecase.RecentLimit).Return(recent, nil)

	got, err := fx.service.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Total)
	assert.Equal(t, int64(2), got.ByStatus[entity.ApprovalPending])
	assert.Equal(t, recent, got.Recent)
}

func TestAdminService_LogsTransitionOnce(t *testing.T) {
	fx := createTestAdminService(t)
	var logs bytes.Buffer
	fx.service.logger = slog.New(slog.NewTextHandler(&logs, nil))
	ctx := context.Background()
	student := submittedStudent()

	repos := expectTx(t, fx.txManager)
	repos.users.EXPECT().FindByIDForUpdate(ctx, student.ID).Return(student, nil)
	repos.users.EXPECT().Update(ctx, student).Return(nil)
	repos.audits.EXPECT().Record(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishStudentEvent(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Reject(ctx, uuid.New(), student.ID, "photo is blurry")

	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(logs.String(), "Student lifecycle transition"))
	assert.Contains(t, logs.String(), "studentID="+student.ID.String())
}
