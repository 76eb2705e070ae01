package postgres

import (
	"context"

	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"

	"gorm.io/gorm"
)

const nextCardSequenceSQL = `
INSERT INTO card_sequences (year, prefix, last_value, updated_at)
VALUES (?, ?, 1, NOW())
ON CONFLICT (year, prefix)
DO UPDATE SET last_value = card_sequences.last_value + 1, updated_at = NOW()
RETURNING last_value`

type cardSequenceRepository struct {
	db *gorm.DB
}

// NewCardSequenceRepository is the constructor for cardSequenceRepository.
func NewCardSequenceRepository(db *gorm.DB) repository.CardSequenceRepository {
	return &cardSequenceRepository{db: db}
}

// Next upserts the counter row and returns the incremented value in one
// statement. Concurrent callers queue on the row lock and never see the
// same value.
func (repo *cardSequenceRepository) Next(ctx context.Context, year int, prefix string) (int64, error) {
	var value int64
	if err := repo.db.WithContext(ctx).Raw(nextCardSequenceSQL, year, prefix).Scan(&value).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "reserve card sequence")
	}

	return value, nil
}
