// Package approval implements the student approval lifecycle: submission,
// approval, rejection, removal and the read guards on ID-card data.
//
// Functions here mutate a *entity.User in memory and never touch storage.
// Callers load the record under a row lock, apply a transition and persist
// the result in the same transaction, so a failed guard leaves the stored
// record unchanged.
package approval

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"cardportal/internal/domain/entity"
	domainerrors "cardportal/internal/domain/errors"

	"github.com/google/uuid"
)

// RemovedReason is the rejection reason written by Remove.
const RemovedReason = "account removed"

// DefaultValidityYears is the card lifetime when none is configured.
const DefaultValidityYears = 4

// CardNumberPattern matches numbers produced by FormatCardNumber.
var CardNumberPattern = regexp.MustCompile(`^\d{4}[A-Z]{1,3}\d{4}$`)

// Field names as they appear in API payloads and error details.
const (
	FieldRegistrationNumber = "registration_number"
	FieldCNIC               = "cnic"
	FieldPhoto              = "profile_photo"
	FieldSession            = "session"
	FieldCardExpiry         = "card_expiry"
	FieldCardNumber         = "card_number"
	FieldReason             = "reason"
)

// MissingSubmissionFields returns the required submission fields that are
// empty, in a stable order. A nil profile is missing everything.
func MissingSubmissionFields(p *entity.StudentProfile) []string {
	if p == nil {
		return []string{FieldRegistrationNumber, FieldCNIC, FieldPhoto, FieldSession}
	}

	var missing []string
	if strings.TrimSpace(p.RegistrationNumber) == "" {
		missing = append(missing, FieldRegistrationNumber)
	}
	if strings.TrimSpace(p.CNIC) == "" {
		missing = append(missing, FieldCNIC)
	}
	if p.Photo == nil || p.Photo.Key == "" {
		missing = append(missing, FieldPhoto)
	}
	if strings.TrimSpace(p.Session) == "" {
		missing = append(missing, FieldSession)
	}

	return missing
}

// Submit marks the profile as submitted and puts it back in the review queue.
func Submit(u *entity.User, now time.Time) error {
	if !u.IsStudent() {
		return domainerrors.ErrNotStudent
	}

	if missing := MissingSubmissionFields(u.Student); len(missing) > 0 {
		return domainerrors.NewIncompleteProfile(missing)
	}

	submittedAt := now
	u.Student.ProfileSubmitted = true
	u.Student.SubmittedAt = &submittedAt
	u.Student.ApprovalStatus = entity.ApprovalPending
	u.Student.RejectionReason = ""

	return nil
}

// NeedsCardNumber reports whether approving u has to allocate a number.
func NeedsCardNumber(u *entity.User) bool {
	if !u.IsStudent() {
		return false
	}

	return u.Student.Card == nil || u.Student.Card.Number == ""
}

// Approve moves u to approved. cardNumber is only used when u has no card
// number yet; an existing number is never replaced. Issue and expiry dates
// are set when the student enters the approved state and left alone when
// an already approved student is approved again.
func Approve(u *entity.User, adminID uuid.UUID, cardNumber string, now time.Time, validityYears int) error {
	if !u.IsStudent() {
		return domainerrors.ErrNotStudent
	}
	if validityYears <= 0 {
		validityYears = DefaultValidityYears
	}

	p := u.Student
	wasApproved := p.ApprovalStatus == entity.ApprovalApproved && p.Card != nil && p.Card.Number != ""

	if NeedsCardNumber(u) {
		if cardNumber == "" {
			return domainerrors.ErrInternalError.WithDetails("card number required for first approval")
		}
		p.Card = &entity.CardDetails{Number: cardNumber}
	}

	if !wasApproved || p.Card.IssueDate.IsZero() {
		p.Card.IssueDate = now
		p.Card.ExpiryDate = now.AddDate(validityYears, 0, 0)
	}

	approvedBy := adminID
	approvedAt := now
	p.ApprovalStatus = entity.ApprovalApproved
	p.RejectionReason = ""
	p.ApprovedBy = &approvedBy
	p.ApprovedAt = &approvedAt

	return nil
}

// Reject moves u to rejected with reason. Any issued card is kept on record.
func Reject(u *entity.User, adminID uuid.UUID, reason string, now time.Time) error {
	if !u.IsStudent() {
		return domainerrors.ErrNotStudent
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domainerrors.NewValidationFailed("rejection reason is required", FieldReason)
	}

	rejectedBy := adminID
	rejectedAt := now
	u.Student.ApprovalStatus = entity.ApprovalRejected
	u.Student.RejectionReason = reason
	u.Student.RejectedBy = &rejectedBy
	u.Student.RejectedAt = &rejectedAt

	return nil
}

// Remove tombstones a student: deactivated and rejected with RemovedReason.
func Remove(u *entity.User, adminID uuid.UUID, now time.Time) error {
	if err := Reject(u, adminID, RemovedReason, now); err != nil {
		return err
	}
	u.IsActive = false

	return nil
}

// SetActive toggles whether u may authenticate. Approval state is untouched.
func SetActive(u *entity.User, active bool) error {
	if !u.IsStudent() {
		return domainerrors.ErrNotStudent
	}
	u.IsActive = active

	return nil
}

// IDCard is the data printed on a student card.
type IDCard struct {
	StudentID          uuid.UUID         `json:"student_id"`
	FullName           string            `json:"full_name"`
	FatherName         string            `json:"father_name"`
	Department         entity.Department `json:"department"`
	RegistrationNumber string            `json:"registration_number"`
	Session            string            `json:"session"`
	CNIC               string            `json:"cnic"`
	DateOfBirth        *time.Time        `json:"date_of_birth,omitempty"`
	CardNumber         string            `json:"card_number"`
	IssueDate          time.Time         `json:"issue_date"`
	ExpiryDate         time.Time         `json:"expiry_date"`
	HasPhoto           bool              `json:"has_photo"`
}

// BuildIDCard returns the card for u. It fails with NotApproved unless u is
// approved, and with IncompleteProfile when an approved record lacks data
// needed to render the card.
func BuildIDCard(u *entity.User) (*IDCard, error) {
	if !u.IsStudent() {
		return nil, domainerrors.ErrNotStudent
	}

	p := u.Student
	if p.ApprovalStatus != entity.ApprovalApproved {
		return nil, domainerrors.ErrNotApproved
	}

	var missing []string
	if strings.TrimSpace(p.RegistrationNumber) == "" {
		missing = append(missing, FieldRegistrationNumber)
	}
	if strings.TrimSpace(p.CNIC) == "" {
		missing = append(missing, FieldCNIC)
	}
	if p.Card == nil || p.Card.Number == "" {
		missing = append(missing, FieldCardNumber)
	}
	if p.Card == nil || p.Card.ExpiryDate.IsZero() {
		missing = append(missing, FieldCardExpiry)
	}
	if len(missing) > 0 {
		return nil, domainerrors.NewIncompleteProfile(missing)
	}

	return &IDCard{
		StudentID:          u.ID,
		FullName:           u.FullName,
		FatherName:         p.FatherName,
		Department:         p.Department,
		RegistrationNumber: p.RegistrationNumber,
		Session:            p.Session,
		CNIC:               p.CNIC,
		DateOfBirth:        p.DateOfBirth,
		CardNumber:         p.Card.Number,
		IssueDate:          p.Card.IssueDate,
		ExpiryDate:         p.Card.ExpiryDate,
		HasPhoto:           p.Photo != nil && p.Photo.Key != "",
	}, nil
}

// CardState is what a card consumer should conclude about a card number.
type CardState string

const (
	CardValid       CardState = "valid"
	CardNotApproved CardState = "not_approved"
	CardExpired     CardState = "expired"
	CardInactive    CardState = "inactive"
)

// CardStateOf evaluates the card held by u at now. A card stays on record
// after rejection but is only valid while the student is approved, active
// and within the expiry date.
func CardStateOf(u *entity.User, now time.Time) CardState {
	switch {
	case !u.IsStudent() || u.Student.Card == nil:
		return CardNotApproved
	case !u.IsActive:
		return CardInactive
	case u.Student.ApprovalStatus != entity.ApprovalApproved:
		return CardNotApproved
	case !u.Student.Card.ExpiryDate.IsZero() && now.After(u.Student.Card.ExpiryDate):
		return CardExpired
	default:
		return CardValid
	}
}

// FormatCardNumber builds <year><department prefix><4 digits> from a
// sequence value. Sequences wrap at 10000.
func FormatCardNumber(year int, dept entity.Department, seq int64) string {
	if seq < 0 {
		seq = -seq
	}

	return fmt.Sprintf("%d%s%04d", year, dept.Prefix(), seq%10000)
}

// protectedProfileFields are owned by the system or by admins and may not be
// written through a student profile update.
var protectedProfileFields = []string{
	"id",
	"password",
	"password_hash",
	"email",
	"personal_email",
	"registration_number",
	"cnic",
	"role",
	"approval_status",
	"rejection_reason",
	"is_active",
	"profile_submitted",
	"card_details",
	"card_number",
	"approved_by",
	"rejected_by",
	"profile_photo",
}

// updatableProfileFields are the only keys a student profile update accepts.
var updatableProfileFields = []string{
	"full_name",
	"department",
	"session",
	"date_of_birth",
	"father_name",
	"address",
	"phone_number",
}

// DisallowedFields returns the entries of requested that a student may not
// update, sorted and deduplicated. Protected fields are reported by their
// canonical name and any other unknown key as it was sent.
func DisallowedFields(requested []string) []string {
	var disallowed []string
	for _, field := range requested {
		name := strings.TrimSpace(field)
		key := strings.ToLower(name)
		if slices.Contains(updatableProfileFields, key) {
			continue
		}
		if slices.Contains(protectedProfileFields, key) {
			name = key
		}
		if !slices.Contains(disallowed, name) {
			disallowed = append(disallowed, name)
		}
	}
	slices.Sort(disallowed)

	return disallowed
}

// Completion is the share of the twelve dashboard profile fields that are
// filled, rounded to a whole percentage.
func Completion(u *entity.User) int {
	if !u.IsStudent() {
		return 0
	}

	p := u.Student
	filled := []bool{
		u.FullName != "",
		u.Email != "",
		u.PersonalEmail != "",
		p.Department != "",
		p.RegistrationNumber != "",
		p.Session != "",
		p.CNIC != "",
		p.DateOfBirth != nil,
		p.FatherName != "",
		p.Address != "",
		p.PhoneNumber != "",
		p.Photo != nil && p.Photo.Key != "",
	}

	count := 0
	for _, ok := range filled {
		if ok {
			count++
		}
	}

	return (count*100 + len(filled)/2) / len(filled)
}
