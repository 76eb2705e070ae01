package postgres

import (
	"time"

	"cardportal/internal/domain/entity"
	"cardportal/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:            data.ID,
		FullName:      data.FullName,
		Role:          entity.Role(data.Role),
		Email:         data.Email,
		PersonalEmail: deref(data.PersonalEmail),
		PasswordHash:  data.PasswordHash,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if user.Role == entity.RoleStudent {
		user.Student = toStudentDomain(data.Student)
	}

	return user
}

func toUserDomains(models []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, toUserDomain(m))
	}

	return users
}

func toStudentDomain(data *model.StudentProfileModel) *entity.StudentProfile {
	if data == nil {
		return nil
	}

	profile := &entity.StudentProfile{
		Department:         entity.Department(data.Department),
		RegistrationNumber: data.RegistrationNumber,
		Session:            data.Session,
		CNIC:               data.CNIC,
		FatherName:         data.FatherName,
		Address:            data.Address,
		PhoneNumber:        data.PhoneNumber,
		ApprovalStatus:     entity.ApprovalStatus(data.ApprovalStatus),
		RejectionReason:    deref(data.RejectionReason),
		ProfileSubmitted:   data.ProfileSubmitted,
		SubmittedAt:        data.SubmittedAt,
		ApprovedBy:         data.ApprovedBy,
		ApprovedAt:         data.ApprovedAt,
		RejectedBy:         data.RejectedBy,
		RejectedAt:         data.RejectedAt,
	}

	if data.DateOfBirth != nil {
		dob := time.Time(*data.DateOfBirth)
		profile.DateOfBirth = &dob
	}

	if key := deref(data.PhotoKey); key != "" {
		profile.Photo = &entity.PhotoRef{
			Key:         key,
			Filename:    data.PhotoFilename,
			ContentType: data.PhotoContentType,
			Size:        data.PhotoSize,
			UploadedAt:  derefTime(data.PhotoUploadedAt),
		}
	}

	if number := deref(data.CardNumber); number != "" {
		profile.Card = &entity.CardDetails{
			Number:     number,
			IssueDate:  derefTime(data.CardIssueDate),
			ExpiryDate: derefTime(data.CardExpiryDate),
		}
	}

	return profile
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:            data.ID,
		FullName:      data.FullName,
		Role:          data.Role.String(),
		Email:         entity.NormalizeEmail(data.Email),
		PersonalEmail: ptrOrNil(entity.NormalizeEmail(data.PersonalEmail)),
		PasswordHash:  data.PasswordHash,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
	if data.Role == entity.RoleStudent && data.Student != nil {
		userM.Student = fromStudentDomain(data, data.Student)
	}

	return userM
}

func fromStudentDomain(user *entity.User, data *entity.StudentProfile) *model.StudentProfileModel {
	profileM := &model.StudentProfileModel{
		UserID:             user.ID,
		Department:         string(data.Department),
		RegistrationNumber: data.RegistrationNumber,
		Session:            data.Session,
		CNIC:               entity.NormalizeCNIC(data.CNIC),
		FatherName:         data.FatherName,
		Address:            data.Address,
		PhoneNumber:        data.PhoneNumber,
		ApprovalStatus:     string(data.ApprovalStatus),
		RejectionReason:    ptrOrNil(data.RejectionReason),
		ProfileSubmitted:   data.ProfileSubmitted,
		SubmittedAt:        data.SubmittedAt,
		ApprovedBy:         data.ApprovedBy,
		ApprovedAt:         data.ApprovedAt,
		RejectedBy:         data.RejectedBy,
		RejectedAt:         data.RejectedAt,
		CreatedAt:          user.CreatedAt,
	}
	if profileM.ApprovalStatus == "" {
		profileM.ApprovalStatus = string(entity.ApprovalPending)
	}

	if data.DateOfBirth != nil {
		dob := datatypes.Date(*data.DateOfBirth)
		profileM.DateOfBirth = &dob
	}

	if data.Photo != nil {
		uploadedAt := data.Photo.UploadedAt
		profileM.PhotoKey = ptrOrNil(data.Photo.Key)
		profileM.PhotoFilename = data.Photo.Filename
		profileM.PhotoContentType = data.Photo.ContentType
		profileM.PhotoSize = data.Photo.Size
		profileM.PhotoUploadedAt = &uploadedAt
	}

	if data.Card != nil {
		issue, expiry := data.Card.IssueDate, data.Card.ExpiryDate
		profileM.CardNumber = ptrOrNil(data.Card.Number)
		profileM.CardIssueDate = &issue
		profileM.CardExpiryDate = &expiry
	}

	return profileM
}

// toAuditDomain converts a GORM AuditLogModel to a domain AuditEntry.
func toAuditDomain(data *model.AuditLogModel) *entity.AuditEntry {
	return &entity.AuditEntry{
		ID:        data.ID,
		ActorID:   data.ActorID,
		StudentID: data.StudentID,
		Action:    entity.AuditAction(data.Action),
		OldValue:  map[string]any(data.OldValue),
		NewValue:  map[string]any(data.NewValue),
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
	}
}

func fromAuditDomain(data *entity.AuditEntry) *model.AuditLogModel {
	return &model.AuditLogModel{
		ID:        data.ID,
		ActorID:   data.ActorID,
		StudentID: data.StudentID,
		Action:    string(data.Action),
		OldValue:  datatypes.JSONMap(nonNilMap(data.OldValue)),
		NewValue:  datatypes.JSONMap(nonNilMap(data.NewValue)),
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}

// ptrOrNil stores empty strings as NULL so optional unique columns do not collide.
func ptrOrNil(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func nonNilMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}

	return m
}
