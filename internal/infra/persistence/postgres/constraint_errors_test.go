package postgres

import (
	"testing"

	"cardportal/internal/errors"
	"cardportal/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUniqueViolationField(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
		wantOK    bool
	}{
		{
			name:      "registration number",
			err:       errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: model.IndexStudentRegNumber}, "insert"),
			wantField: "registration_number",
			wantOK:    true,
		},
		{
			name:      "card number",
			err:       &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: model.IndexStudentCardNumber},
			wantField: "card_number",
			wantOK:    true,
		},
		{
			name:   "unknown constraint",
			err:    &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_pkey"},
			wantOK: true,
		},
		{
			name: "other sqlstate",
			err:  &pgconn.PgError{Code: pgNotNullViolation, ConstraintName: model.IndexUserEmail},
		},
		{
			name:   "translated gorm error",
			err:    gorm.ErrDuplicatedKey,
			wantOK: true,
		},
		{
			name: "unrelated",
			err:  errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, ok := uniqueViolationField(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.False(t, isNotNullConstraintViolation(errors.New("x")))
}
