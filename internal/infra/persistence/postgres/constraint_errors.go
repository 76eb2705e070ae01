package postgres

import (
	"cardportal/internal/errors"
	"cardportal/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE codes
const (
	pgUniqueViolation  = "23505"
	pgNotNullViolation = "23502"
)

// uniqueIndexFields maps unique index names to API field names.
var uniqueIndexFields = map[string]string{
	model.IndexUserEmail:         "email",
	model.IndexUserPersonalEmail: "personal_email",
	model.IndexStudentRegNumber:  "registration_number",
	model.IndexStudentCNIC:       "cnic",
	model.IndexStudentCardNumber: "card_number",
}

// uniqueViolationField reports whether err is a unique violation and, when
// the constraint is known, which field collided.
func uniqueViolationField(err error) (field string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}

		return uniqueIndexFields[pgErr.ConstraintName], true
	}

	return "", errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgNotNullViolation
}
