package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"cardportal/config"
	deliverycontext "cardportal/internal/delivery/context"
	"cardportal/internal/domain/approval"
	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"
	"cardportal/internal/domain/service"
	"cardportal/internal/errors"
	"cardportal/internal/usecase"
	"cardportal/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/fx"
)

// studentService implements the StudentUsecase interface.
type studentService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	blobs        service.BlobStore
	qrCodes      service.QRCodeService
	maxPhotoSize int64
	allowedTypes []string
	now          func() time.Time
	logger       *slog.Logger
}

// StudentServiceParams holds dependencies for StudentService, injected by Fx.
type StudentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Blobs     service.BlobStore
	QRCodes   service.QRCodeService
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStudentService is the constructor for studentService.
func NewStudentService(params StudentServiceParams) usecase.StudentUsecase {
	return &studentService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		blobs:        params.Blobs,
		qrCodes:      params.QRCodes,
		maxPhotoSize: params.Config.Upload.MaxPhotoSize,
		allowedTypes: params.Config.Upload.AllowedTypes,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *studentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *studentService) findStudent(ctx context.Context, studentID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find student")
	}
	if !user.IsStudent() {
		return nil, domainerrors.ErrNotStudent
	}

	return user, nil
}

// mutate applies fn to the row-locked student and saves it in one transaction.
func (srv *studentService) mutate(ctx context.Context, studentID uuid.UUID, fn func(*entity.User) error) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.NewUserRepository()

		user, err := users.FindByIDForUpdate(ctx, studentID)
		if err != nil {
			return err
		}
		if !user.IsStudent() {
			return domainerrors.ErrNotStudent
		}
		if err := fn(user); err != nil {
			return err
		}
		if err := users.Update(ctx, user); err != nil {
			return err
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update student")
	}

	return updated, nil
}

func (srv *studentService) GetProfile(ctx context.Context, studentID uuid.UUID) (*entity.User, error) {
	return srv.findStudent(ctx, studentID)
}

func (srv *studentService) UpdateProfile(ctx context.Context, studentID uuid.UUID, input *usecase.ProfileUpdateInput) (*entity.User, error) {
	if disallowed := approval.DisallowedFields(input.Fields); len(disallowed) > 0 {
		return nil, domainerrors.NewValidationFailed("these fields cannot be changed from the profile", disallowed...)
	}
	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" || utf8.RuneCountInString(name) > maxFullNameLength {
			return nil, domainerrors.NewValidationFailed("full name must be 1 to 100 characters", "full_name")
		}
		input.FullName = &name
	}
	if input.Department != nil && !input.Department.IsValid() {
		return nil, domainerrors.NewValidationFailed("unknown department", "department")
	}

	user, err := srv.mutate(ctx, studentID, func(user *entity.User) error {
		p := user.Student
		if input.FullName != nil {
			user.FullName = *input.FullName
		}
		if input.Department != nil {
			p.Department = *input.Department
		}
		if input.Session != nil {
			p.Session = strings.TrimSpace(*input.Session)
		}
		if input.DateOfBirth != nil {
			dob := *input.DateOfBirth
			p.DateOfBirth = &dob
		}
		if input.FatherName != nil {
			p.FatherName = strings.TrimSpace(*input.FatherName)
		}
		if input.Address != nil {
			p.Address = strings.TrimSpace(*input.Address)
		}
		if input.PhoneNumber != nil {
			p.PhoneNumber = strings.TrimSpace(*input.PhoneNumber)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Any("studentID", studentID), slog.Any("fields", input.Fields))

	return user, nil
}

// UploadPhoto stores the file under a fresh key, points the profile at it
// and then drops the previous blob. The stored type comes from the content,
// not from the client.
func (srv *studentService) UploadPhoto(ctx context.Context, studentID uuid.UUID, input *usecase.UploadPhotoInput) (*entity.PhotoRef, error) {
	size := int64(len(input.Data))
	if size == 0 {
		return nil, domainerrors.NewValidationFailed("photo is empty", approval.FieldPhoto)
	}
	if srv.maxPhotoSize > 0 && size > srv.maxPhotoSize {
		return nil, domainerrors.ErrPayloadTooLarge.WithDetails(map[string]string{"max_size": util.FormatBytes(srv.maxPhotoSize)})
	}

	mtype := mimetype.Detect(input.Data)
	if !slices.ContainsFunc(srv.allowedTypes, func(allowed string) bool { return mtype.Is(allowed) }) {
		return nil, domainerrors.ErrUnsupportedMedia.WithDetails(map[string]string{"detected": mtype.String()})
	}

	ref := &entity.PhotoRef{
		Key:         fmt.Sprintf("profiles/%s/%s%s", studentID, ulid.Make(), mtype.Extension()),
		Filename:    path.Base(strings.ReplaceAll(input.Filename, `\`, "/")),
		ContentType: mtype.String(),
		Size:        size,
		UploadedAt:  srv.now().UTC(),
	}
	if err := srv.blobs.Put(ctx, ref.Key, ref.ContentType, input.Data); err != nil {
		return nil, errors.Wrap(err, "failed to store photo")
	}

	var previous *entity.PhotoRef
	_, err := srv.mutate(ctx, studentID, func(user *entity.User) error {
		previous = user.Student.Photo
		user.Student.Photo = ref

		return nil
	})
	if err != nil {
		srv.deleteBlob(ctx, ref.Key)

		return nil, err
	}

	if previous != nil && previous.Key != "" && previous.Key != ref.Key {
		srv.deleteBlob(ctx, previous.Key)
	}

	srv.log(ctx).Info("Photo uploaded", slog.Any("studentID", studentID), slog.String("key", ref.Key), slog.Int64("size", size))

	return ref, nil
}

func (srv *studentService) deleteBlob(ctx context.Context, key string) {
	if err := srv.blobs.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete photo blob", slog.String("key", key), slog.Any("error", err))
	}
}

func (srv *studentService) GetPhoto(ctx context.Context, studentID uuid.UUID) (*usecase.PhotoContent, error) {
	user, err := srv.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return openPhoto(ctx, srv.blobs, user)
}

func openPhoto(ctx context.Context, blobs service.BlobStore, user *entity.User) (*usecase.PhotoContent, error) {
	photo := user.Student.Photo
	if photo == nil || photo.Key == "" {
		return nil, domainerrors.ErrPhotoNotFound
	}

	body, err := blobs.Open(ctx, photo.Key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo")
	}

	return &usecase.PhotoContent{Ref: photo, Body: body}, nil
}

func (srv *studentService) SubmitForApproval(ctx context.Context, studentID uuid.UUID) (*entity.User, error) {
	user, err := srv.mutate(ctx, studentID, func(user *entity.User) error {
		return approval.Submit(user, srv.now())
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile submitted for approval", slog.Any("studentID", studentID))

	return user, nil
}

func (srv *studentService) GetIDCard(ctx context.Context, studentID uuid.UUID) (*approval.IDCard, error) {
	user, err := srv.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return approval.BuildIDCard(user)
}

func (srv *studentService) GetIDCardQR(ctx context.Context, studentID uuid.UUID) ([]byte, error) {
	card, err := srv.GetIDCard(ctx, studentID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateCardQR(card.CardNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render card QR code")
	}

	return png, nil
}

func (srv *studentService) Dashboard(ctx context.Context, studentID uuid.UUID) (*usecase.StudentDashboard, error) {
	user, err := srv.findStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	p := user.Student
	missing := approval.MissingSubmissionFields(p)

	var card *entity.CardDetails
	if p.ApprovalStatus == entity.ApprovalApproved {
		card = p.Card
	}

	return &usecase.StudentDashboard{
		User:              user.Summary(),
		ApprovalStatus:    p.ApprovalStatus,
		RejectionReason:   p.RejectionReason,
		ProfileSubmitted:  p.ProfileSubmitted,
		SubmittedAt:       p.SubmittedAt,
		ProfileCompletion: approval.Completion(user),
		HasPhoto:          p.Photo != nil && p.Photo.Key != "",
		MissingFields:     missing,
		CanSubmit:         len(missing) == 0,
		Card:              card,
	}, nil
}
