// Package model holds the GORM persistence models. Domain code never sees these types.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Unique index names. Constraint violations are mapped back to fields by these names.
const (
	IndexUserEmail         = "uq_users_email"
	IndexUserPersonalEmail = "uq_users_personal_email"
	IndexStudentRegNumber  = "uq_student_profiles_registration_number"
	IndexStudentCNIC       = "uq_student_profiles_cnic"
	IndexStudentCardNumber = "uq_student_profiles_card_number"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 assigned by the application.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName      string    `gorm:"type:varchar(100);not null"`
	Role          string    `gorm:"type:varchar(16);not null;index:idx_users_role_created_at,priority:1"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PersonalEmail *string   `gorm:"type:varchar(255);uniqueIndex:uq_users_personal_email"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time `gorm:"index:idx_users_role_created_at,priority:2,sort:desc"`
	UpdatedAt     time.Time

	Student *StudentProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StudentProfileModel mirrors 'student_profiles'. UserID references users.id.
type StudentProfileModel struct {
	UserID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Department         string          `gorm:"type:varchar(64);not null;index:idx_student_profiles_department"`
	RegistrationNumber string          `gorm:"type:varchar(32);not null;uniqueIndex:uq_student_profiles_registration_number"`
	Session            string          `gorm:"type:varchar(16)"`
	CNIC               string          `gorm:"column:cnic;type:varchar(15);not null;uniqueIndex:uq_student_profiles_cnic"`
	DateOfBirth        *datatypes.Date `gorm:"type:date"`
	FatherName         string          `gorm:"type:varchar(100)"`
	Address            string          `gorm:"type:varchar(500)"`
	PhoneNumber        string          `gorm:"type:varchar(16)"`

	PhotoKey         *string `gorm:"type:varchar(255)"`
	PhotoFilename    string  `gorm:"type:varchar(255)"`
	PhotoContentType string  `gorm:"type:varchar(64)"`
	PhotoSize        int64
	PhotoUploadedAt  *time.Time

	ApprovalStatus   string  `gorm:"type:varchar(16);not null;default:pending;index:idx_student_profiles_approval_status"`
	RejectionReason  *string `gorm:"type:text"`
	ProfileSubmitted bool    `gorm:"not null;default:false"`
	SubmittedAt      *time.Time

	CardNumber     *string `gorm:"type:varchar(16);uniqueIndex:uq_student_profiles_card_number"`
	CardIssueDate  *time.Time
	CardExpiryDate *time.Time

	ApprovedBy *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt *time.Time
	RejectedBy *uuid.UUID `gorm:"type:uuid"`
	RejectedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentProfileModel) TableName() string {
	return "student_profiles"
}
