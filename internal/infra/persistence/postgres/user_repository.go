package postgres

import (
	"context"
	"slices"
	"strings"

	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"
	"cardportal/internal/domain/repository"
	"cardportal/internal/errors"
	"cardportal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const studentJoin = "JOIN student_profiles ON student_profiles.user_id = users.id"

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.first(repo.db.WithContext(ctx).Where("users.id = ?", id), "find user by id")
}

// FindByIDForUpdate locks the users row. Every lifecycle write takes this
// lock first, which serializes concurrent transitions on one student.
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("users.id = ?", id)

	return repo.first(query, "lock user by id")
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	normalized := entity.NormalizeEmail(email)
	if normalized == "" {
		return nil, domainerrors.ErrUserNotFound
	}

	query := repo.db.WithContext(ctx).
		Where("users.email = ? OR users.personal_email = ?", normalized, normalized)

	return repo.first(query, "find user by email")
}

func (repo *userRepository) FindByCardNumber(ctx context.Context, cardNumber string) (*entity.User, error) {
	query := repo.db.WithContext(ctx).
		Joins(studentJoin).
		Where("student_profiles.card_number = ?", strings.ToUpper(strings.TrimSpace(cardNumber)))

	return repo.first(query, "find user by card number")
}

func (repo *userRepository) first(query *gorm.DB, op string) (*entity.User, error) {
	var userM model.UserModel
	if err := query.Preload("Student").Order("users.created_at").First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user and, for students, the profile row. Callers that
// need both rows to land together run this inside a transaction.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate user id")
		}
		user.ID = id
	}

	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, "create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update saves every column of the user and its profile.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error
	if err != nil {
		return translateWriteError(err, "update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func translateWriteError(err error, op string) error {
	if field, ok := uniqueViolationField(err); ok {
		if field == "card_number" {
			return domainerrors.ErrCardNumberConflict.WrapMessage(op)
		}

		return domainerrors.NewDuplicateIdentity(field).WrapMessage(op)
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.NewValidationFailed("missing required user information").WrapMessage(op)
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

func (repo *userRepository) studentQuery(ctx context.Context, filter repository.StudentFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins(studentJoin).
		Where("users.role = ?", entity.RoleStudent.String())

	if filter.Status != "" {
		query = query.Where("student_profiles.approval_status = ?", string(filter.Status))
	}
	if filter.Department != "" {
		query = query.Where("student_profiles.department = ?", string(filter.Department))
	}
	if filter.Submitted != nil {
		query = query.Where("student_profiles.profile_submitted = ?", *filter.Submitted)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where(
			"users.full_name ILIKE ? OR users.email ILIKE ? OR users.personal_email ILIKE ? OR student_profiles.registration_number ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	return query
}

func (repo *userRepository) ListStudents(ctx context.Context, filter repository.StudentFilter, offset, limit int) ([]*entity.User, int64, error) {
	var total int64
	if err := repo.studentQuery(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "count students")
	}

	var models []*model.UserModel
	err := repo.studentQuery(ctx, filter).
		Preload("Student").
		Order("users.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "list students")
	}

	return toUserDomains(models), total, nil
}

type statsRow struct {
	Department     string
	ApprovalStatus string
	Total          int64
	Active         int64
}

// Stats folds a single grouped query into per-status and per-department counts.
func (repo *userRepository) Stats(ctx context.Context) (*repository.StudentStats, error) {
	var rows []statsRow
	err := repo.studentQuery(ctx, repository.StudentFilter{}).
		Select("student_profiles.department AS department, " +
			"student_profiles.approval_status AS approval_status, " +
			"COUNT(*) AS total, " +
			"COUNT(*) FILTER (WHERE users.is_active) AS active").
		Group("student_profiles.department, student_profiles.approval_status").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "student stats")
	}

	return foldStats(rows), nil
}

func foldStats(rows []statsRow) *repository.StudentStats {
	stats := &repository.StudentStats{ByStatus: make(map[entity.ApprovalStatus]int64, len(entity.ApprovalStatuses))}
	for _, status := range entity.ApprovalStatuses {
		stats.ByStatus[status] = 0
	}

	byDept := make(map[entity.Department]*repository.DepartmentCount)
	var order []entity.Department
	for _, row := range rows {
		status := entity.ApprovalStatus(row.ApprovalStatus)
		dept := entity.Department(row.Department)

		stats.Total += row.Total
		stats.Active += row.Active
		stats.ByStatus[status] += row.Total

		count, ok := byDept[dept]
		if !ok {
			count = &repository.DepartmentCount{Department: dept}
			byDept[dept] = count
			order = append(order, dept)
		}
		count.Total += row.Total
		if status == entity.ApprovalApproved {
			count.Approved += row.Total
		}
	}

	slices.Sort(order)
	for _, dept := range order {
		stats.ByDepartment = append(stats.ByDepartment, *byDept[dept])
	}

	return stats
}

func (repo *userRepository) RecentStudents(ctx context.Context, limit int) ([]*entity.User, error) {
	var models []*model.UserModel
	err := repo.studentQuery(ctx, repository.StudentFilter{}).
		Preload("Student").
		Order("users.created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "recent students")
	}

	return toUserDomains(models), nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
