package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cardportal/config"
	deliverycontext "cardportal/internal/delivery/context"
	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"
	"cardportal/internal/domain/service"
	"cardportal/internal/errors"
	"cardportal/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	historyLimit = 20

	// statusFilterAll is accepted in listings as "no status filter".
	statusFilterAll = "all"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	auditRepo     repository.AuditRepository
	cardSequences repository.CardSequenceRepository
	blobs         service.BlobStore
	publisher     service.EventPublisher
	validityYears int
	maxAttempts   int
	now           func() time.Time
	logger        *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	AuditRepo     repository.AuditRepository
	CardSequences repository.CardSequenceRepository
	Blobs         service.BlobStore
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	maxAttempts := params.Config.Card.MaxAllocationAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &adminService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		auditRepo:     params.AuditRepo,
		cardSequences: params.CardSequences,
		blobs:         params.Blobs,
		publisher:     params.Publisher,
		validityYears: params.Config.Card.ValidityYears,
		maxAttempts:   maxAttempts,
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) ListStudents(ctx context.Context, input usecase.ListStudentsInput) (*usecase.StudentPage, error) {
	if strings.EqualFold(string(input.Status), statusFilterAll) {
		input.Status = ""
	}
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.NewValidationFailed("unknown approval status", "status")
	}
	if input.Department != "" && !input.Department.IsValid() {
		return nil, domainerrors.NewValidationFailed("unknown department", "department")
	}

	return srv.list(ctx, input, repository.StudentFilter{
		Status:     input.Status,
		Department: input.Department,
		Search:     input.Search,
	})
}

func (srv *adminService) PendingRequests(ctx context.Context, input usecase.ListStudentsInput) (*usecase.StudentPage, error) {
	submitted := true

	return srv.list(ctx, input, repository.StudentFilter{
		Status:     entity.ApprovalPending,
		Department: input.Department,
		Search:     input.Search,
		Submitted:  &submitted,
	})
}

func (srv *adminService) list(ctx context.Context, input usecase.ListStudentsInput, filter repository.StudentFilter) (*usecase.StudentPage, error) {
	input.Normalize()

	students, total, err := srv.userRepo.ListStudents(ctx, filter, (input.Page-1)*input.Limit, input.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list students")
	}

	return &usecase.StudentPage{
		Students:   students,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: int((total + int64(input.Limit) - 1) / int64(input.Limit)),
	}, nil
}

func (srv *adminService) findStudent(ctx context.Context, studentID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find student")
	}
	if !user.IsStudent() {
		return nil, domainerrors.ErrNotStudent
	}

	return user, nil
}

func (srv *adminService) GetStudent(ctx context.Context, studentID uuid.UUID) (*usecase.StudentDetail, error) {
	user, err := srv.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	history, err := srv.auditRepo.ListByStudent(ctx, studentID, historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load audit history")
	}

	return &usecase.StudentDetail{Student: user, History: history}, nil
}

func (srv *adminService) GetStudentPhoto(ctx context.Context, studentID uuid.UUID) (*usecase.PhotoContent, error) {
	user, err := srv.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return openPhoto(ctx, srv.blobs, user)
}

// transition is one admin write: lock, apply, save, audit. The event is
// built from the saved record and published after commit.
type transition struct {
	action entity.AuditAction
	note   string
	apply  func(user *entity.User, now time.Time) error
	event  func(user *entity.User) entity.StudentEventType
}

func (srv *adminService) execute(ctx context.Context, adminID, studentID uuid.UUID, t transition) (*entity.User, error) {
	var updated *entity.User
	now := srv.now().UTC()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.NewUserRepository()

		user, err := users.FindByIDForUpdate(ctx, studentID)
		if err != nil {
			return err
		}
		if !user.IsStudent() {
			return domainerrors.ErrNotStudent
		}

		before := snapshot(user)
		if err := t.apply(user, now); err != nil {
			return err
		}
		if err := users.Update(ctx, user); err != nil {
			return err
		}

		err = repoFactory.NewAuditRepository().Record(ctx, &entity.AuditEntry{
			ActorID:   adminID,
			StudentID: studentID,
			Action:    t.action,
			OldValue:  before,
			NewValue:  snapshot(user),
			Note:      t.note,
			CreatedAt: now,
		})
		if err != nil {
			return errors.Wrap(err, "failed to record audit entry")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s student", t.action)
	}

	srv.log(ctx).Info("Student lifecycle transition",
		slog.String("action", string(t.action)),
		slog.Any("studentID", studentID),
		slog.Any("adminID", adminID),
		slog.String("status", string(updated.Student.ApprovalStatus)),
	)

	srv.publish(ctx, &entity.StudentEvent{
		Type:       t.event(updated),
		StudentID:  updated.ID,
		ActorID:    adminID,
		CardNumber: cardNumberOf(updated),
		Reason:     updated.Student.RejectionReason,
		OccurredAt: now,
	})

	return updated, nil
}

// publish never fails the caller: the transition is already committed.
func (srv *adminService) publish(ctx context.Context, event *entity.StudentEvent) {
	if err := srv.publisher.PublishStudentEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish student event",
			slog.String("event_type", string(event.Type)),
			slog.Any("studentID", event.StudentID),
			slog.Any("error", err),
		)
	}
}

// Approve reserves a card number when the student has none and retries
// with a fresh reservation if the number is already taken. Reservations
// are committed on their own, so a rolled back approval burns its value.
func (srv *adminService) Approve(ctx context.Context, adminID, studentID uuid.UUID) (*entity.User, error) {
	for attempt := 1; ; attempt++ {
		user, err := srv.execute(ctx, adminID, studentID, transition{
			action: entity.AuditApprove,
			apply: func(user *entity.User, now time.Time) error {
				cardNumber := ""
				if approval.NeedsCardNumber(user) {
					seq, err := srv.cardSequences.Next(ctx, now.Year(), user.Student.Department.Prefix())
					if err != nil {
						return errors.Wrap(err, "failed to reserve card number")
					}
					cardNumber = approval.FormatCardNumber(now.Year(), user.Student.Department, seq)
				}

				return approval.Approve(user, adminID, cardNumber, now, srv.validityYears)
			},
			event: func(*entity.User) entity.StudentEventType { return entity.EventStudentApproved },
		})
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, domainerrors.ErrCardNumberConflict) || attempt >= srv.maxAttempts {
			return nil, err
		}

		srv.log(ctx).Warn("Card number collision, retrying",
			slog.Any("studentID", studentID),
			slog.Int("attempt", attempt),
		)
	}
}

func (srv *adminService) Reject(ctx context.Context, adminID, studentID uuid.UUID, reason string) (*entity.User, error) {
	return srv.execute(ctx, adminID, studentID, transition{
		action: entity.AuditReject,
		note:   reason,
		apply: func(user *entity.User, now time.Time) error {
			return approval.Reject(user, adminID, reason, now)
		},
		event: func(*entity.User) entity.StudentEventType { return entity.EventStudentRejected },
	})
}

func (srv *adminService) SetActive(ctx context.Context, adminID, studentID uuid.UUID, active bool) (*entity.User, error) {
	action, eventType := entity.AuditDeactivate, entity.EventStudentDeactivated
	if active {
		action, eventType = entity.AuditActivate, entity.EventStudentActivated
	}

	return srv.execute(ctx, adminID, studentID, transition{
		action: action,
		apply: func(user *entity.User, _ time.Time) error {
			return approval.SetActive(user, active)
		},
		event: func(*entity.User) entity.StudentEventType { return eventType },
	})
}

func (srv *adminService) Remove(ctx context.Context, adminID, studentID uuid.UUID) (*entity.User, error) {
	return srv.execute(ctx, adminID, studentID, transition{
		action: entity.AuditRemove,
		apply: func(user *entity.User, now time.Time) error {
			return approval.Remove(user, adminID, now)
		},
		event: func(*entity.User) entity.StudentEventType { return entity.EventStudentRemoved },
	})
}

func (srv *adminService) Stats(ctx context.Context) (*usecase.AdminStats, error) {
	stats, err := srv.userRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute student stats")
	}

	recent, err := srv.userRepo.RecentStudents(ctx, usecase.RecentLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent students")
	}

	return &usecase.AdminStats{StudentStats: *stats, Recent: recent}, nil
}

func snapshot(user *entity.User) map[string]any {
	p := user.Student

	return map[string]any{
		"approval_status":  string(p.ApprovalStatus),
		"rejection_reason": p.RejectionReason,
		"is_active":        user.IsActive,
		"card_number":      cardNumberOf(user),
	}
}

func cardNumberOf(user *entity.User) string {
	if !user.IsStudent() || user.Student.Card == nil {
		return ""
	}

	return user.Student.Card.Number
}
