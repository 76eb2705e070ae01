package postgres

import (
	"testing"
	"time"

	"cardportal/internal/domain/entity"
	"cardportal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldStats(t *testing.T) {
	rows := []statsRow{
		{Department: "Physics", ApprovalStatus: "approved", Total: 2, Active: 2},
		{Department: "Computer Science", ApprovalStatus: "pending", Total: 5, Active: 5},
		{Department: "Computer Science", ApprovalStatus: "approved", Total: 3, Active: 2},
		{Department: "Computer Science", ApprovalStatus: "rejected", Total: 1, Active: 0},
	}

	stats := foldStats(rows)

	assert.Equal(t, int64(11), stats.Total)
	assert.Equal(t, int64(9), stats.Active)
	assert.Equal(t, map[entity.ApprovalStatus]int64{
		entity.ApprovalPending:  5,
		entity.ApprovalApproved: 5,
		entity.ApprovalRejected: 1,
	}, stats.ByStatus)
	assert.Equal(t, []repository.DepartmentCount{
		{Department: entity.DeptComputerScience, Total: 9, Approved: 3},
		{Department: entity.DeptPhysics, Total: 2, Approved: 2},
	}, stats.ByDepartment)
}

func TestFoldStats_Empty(t *testing.T) {
	stats := foldStats(nil)

	assert.Zero(t, stats.Total)
	assert.Len(t, stats.ByStatus, 3)
	assert.Empty(t, stats.ByDepartment)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\d`, escapeLike(`c:\d`))
	assert.Equal(t, "2024-CS", escapeLike("2024-CS"))
}

func TestUserMapping_StudentRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	adminID := uuid.New()
	user := &entity.User{
		ID:            uuid.New(),
		FullName:      "Ayesha Khan",
		Role:          entity.RoleStudent,
		Email:         "Ayesha@Student.UET.edu.pk",
		PersonalEmail: "",
		PasswordHash:  "hash",
		IsActive:      true,
		Student: &entity.StudentProfile{
			Department:         entity.DeptComputerScience,
			RegistrationNumber: "2024-CS-123",
			CNIC:               "35202-1234567-1",
			DateOfBirth:        &now,
			Photo:              &entity.PhotoRef{Key: "profiles/a/b.png", ContentType: "image/png", Size: 10, UploadedAt: now},
			ApprovalStatus:     entity.ApprovalApproved,
			Card:               &entity.CardDetails{Number: "2025COM0001", IssueDate: now, ExpiryDate: now.AddDate(4, 0, 0)},
			ApprovedBy:         &adminID,
		},
	}

	userM := fromUserDomain(user)

	assert.Equal(t, "ayesha@student.uet.edu.pk", userM.Email)
	assert.Nil(t, userM.PersonalEmail, "empty personal email must be NULL")
	assert.Nil(t, userM.Student.RejectionReason)
	require.NotNil(t, userM.Student.CardNumber)

	back := toUserDomain(userM)

	assert.Equal(t, user.Student.Card, back.Student.Card)
	assert.Equal(t, user.Student.Photo, back.Student.Photo)
	assert.Equal(t, now, *back.Student.DateOfBirth)
	assert.Equal(t, adminID, *back.Student.ApprovedBy)
	assert.Empty(t, back.Student.RejectionReason)
}

func TestUserMapping_AdminHasNoProfile(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, Email: "admin@uet.edu.pk", IsActive: true}

	userM := fromUserDomain(admin)
	assert.Nil(t, userM.Student)

	back := toUserDomain(userM)
	assert.Nil(t, back.Student)
	assert.False(t, back.IsStudent())
}

func TestUserMapping_NoCardOrPhoto(t *testing.T) {
	user := &entity.User{
		ID:      uuid.New(),
		Role:    entity.RoleStudent,
		Student: &entity.StudentProfile{RegistrationNumber: "2024-CS-1", CNIC: "3520212345671"},
	}

	userM := fromUserDomain(user)
	assert.Equal(t, string(entity.ApprovalPending), userM.Student.ApprovalStatus)
	assert.Nil(t, userM.Student.CardNumber)
	assert.Nil(t, userM.Student.PhotoKey)
	assert.Equal(t, "35202-1234567-1", userM.Student.CNIC)

	back := toUserDomain(userM)
	assert.Nil(t, back.Student.Card)
	assert.Nil(t, back.Student.Photo)
}
