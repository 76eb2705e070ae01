package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cardportal/config"
	"cardportal/internal/domain/entity"
	"cardportal/internal/domain/repository"
	mockRepo "cardportal/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Registration.InstitutionalEmailDomain = "student.uet.edu.pk"
	cfg.Card.ValidityYears = 4
	cfg.Card.MaxAllocationAttempts = 3
	cfg.Upload.MaxPhotoSize = 1 << 10
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png"}

	return cfg
}

// txRepos are the repositories handed out inside a mocked transaction.
type txRepos struct {
	factory *mockRepo.MockRepositoryFactory
	users   *mockRepo.MockUserRepository
	audits  *mockRepo.MockAuditRepository
}

// expectTx makes every Execute call run fn against the same mocked factory
// and return fn's error, like the real transaction manager.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) txRepos {
	repos := txRepos{
		factory: mockRepo.NewMockRepositoryFactory(t),
		users:   mockRepo.NewMockUserRepository(t),
		audits:  mockRepo.NewMockAuditRepository(t),
	}
	repos.factory.EXPECT().NewUserRepository().Return(repos.users).Maybe()
	repos.factory.EXPECT().NewAuditRepository().Return(repos.audits).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})

	return repos
}

func newTestStudent() *entity.User {
	return &entity.User{
		ID:            uuid.New(),
		FullName:      "Ayesha Khan",
		Role:          entity.RoleStudent,
		Email:         "ayesha@student.uet.edu.pk",
		PersonalEmail: "ayesha@gmail.com",
		PasswordHash:  "hashed",
		IsActive:      true,
		Student: &entity.StudentProfile{
			Department:         entity.DeptComputerScience,
			RegistrationNumber: "2024-CS-123",
			CNIC:               "35202-1234567-1",
			Session:            "2024-2028",
			ApprovalStatus:     entity.ApprovalPending,
		},
	}
}

// cloneStudent returns a deep enough copy for lifecycle tests, so each
// mocked row lock hands out an unmodified record.
func cloneStudent(u *entity.User) *entity.User {
	c := *u
	p := *u.Student
	if u.Student.Card != nil {
		card := *u.Student.Card
		p.Card = &card
	}
	if u.Student.Photo != nil {
		photo := *u.Student.Photo
		p.Photo = &photo
	}
	c.Student = &p

	return &c
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}
