package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "cardportal/internal/delivery/context"
	"cardportal/internal/domain/approval"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"
	"cardportal/internal/errors"
	"cardportal/internal/usecase"

	"go.uber.org/fx"
)

// cardService implements the CardUsecase interface.
type cardService struct {
	userRepo repository.UserRepository
	now      func() time.Time
	logger   *slog.Logger
}

// CardServiceParams holds dependencies for CardService, injected by Fx.
type CardServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewCardService is the constructor for cardService.
func NewCardService(params CardServiceParams) usecase.CardUsecase {
	return &cardService{
		userRepo: params.UserRepo,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *cardService) Verify(ctx context.Context, cardNumber string) (*usecase.CardVerification, error) {
	number := strings.ToUpper(strings.TrimSpace(cardNumber))
	if !approval.CardNumberPattern.MatchString(number) {
		return nil, domainerrors.NewValidationFailed("malformed card number", approval.FieldCardNumber)
	}

	user, err := srv.userRepo.FindByCardNumber(ctx, number)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card")
	}

	verification := &usecase.CardVerification{
		CardNumber: number,
		State:      approval.CardStateOf(user, srv.now()),
	}
	if verification.Valid() {
		expiry := user.Student.Card.ExpiryDate
		verification.FullName = user.FullName
		verification.Department = user.Student.Department
		verification.ExpiryDate = &expiry
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Card verified",
		slog.String("card_number", number),
		slog.String("state", string(verification.State)),
	)

	return verification, nil
}
