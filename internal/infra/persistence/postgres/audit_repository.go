package postgres

import (
	"context"
	"time"

	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"
	"cardportal/internal/errors"
	"cardportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (repo *auditRepository) Record(ctx context.Context, entry *entity.AuditEntry) error {
	if entry.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate audit id")
		}
		entry.ID = id
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := repo.db.WithContext(ctx).Create(fromAuditDomain(entry)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "record audit entry")
	}

	return nil
}

func (repo *auditRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, limit int) ([]*entity.AuditEntry, error) {
	var models []*model.AuditLogModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list audit entries")
	}

	entries := make([]*entity.AuditEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, toAuditDomain(m))
	}

	return entries, nil
}
