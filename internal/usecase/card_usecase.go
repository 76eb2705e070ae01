package usecase

import (
	"context"
	"time"

	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"
)

// CardVerification is the public answer for a scanned card. Holder fields
// are only filled while the card is valid.
type CardVerification struct {
	CardNumber string
	State      approval.CardState
	FullName   string
	Department entity.Department
	ExpiryDate *time.Time
}

// Valid reports whether the card should be honoured.
func (v *CardVerification) Valid() bool {
	return v.State == approval.CardValid
}

// CardUsecase answers public card checks.
type CardUsecase interface {
	Verify(ctx context.Context, cardNumber string) (*CardVerification, error)
}
