package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ApprovalStatus is the state of a student's submission.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsValid checks if the status is one of the three lifecycle states.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// ApprovalStatuses lists every status in display order.
var ApprovalStatuses = []ApprovalStatus{ApprovalPending, ApprovalApproved, ApprovalRejected}

// StudentProfile holds the data a student submits for their card, plus the
// approval state owned by admins.
type StudentProfile struct {
	Department         Department
	RegistrationNumber string // e.g. 2024-CS-123, unique
	Session            string // academic session "YYYY-YYYY", the card's expiry basis
	CNIC               string // national ID, unique
	DateOfBirth        *time.Time
	FatherName         string
	Address            string
	PhoneNumber        string
	Photo              *PhotoRef

	ApprovalStatus   ApprovalStatus
	RejectionReason  string
	ProfileSubmitted bool
	SubmittedAt      *time.Time
	Card             *CardDetails

	ApprovedBy *uuid.UUID
	ApprovedAt *time.Time
	RejectedBy *uuid.UUID
	RejectedAt *time.Time
}

const cnicDigits = 13

// NormalizeCNIC returns the dashed XXXXX-XXXXXXX-X form of a national ID
// written with or without dashes. Input that does not hold exactly 13
// digits is returned trimmed.
func NormalizeCNIC(cnic string) string {
	digits := make([]byte, 0, cnicDigits)
	for i := 0; i < len(cnic); i++ {
		if c := cnic[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) != cnicDigits {
		return strings.TrimSpace(cnic)
	}

	return string(digits[:5]) + "-" + string(digits[5:12]) + "-" + string(digits[12:])
}

// PhotoRef points at a profile photo held in the blob store.
type PhotoRef struct {
	Key         string    `json:"key"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// CardDetails is the issued card metadata. Number is assigned once.
type CardDetails struct {
	Number     string    `json:"card_number"`
	IssueDate  time.Time `json:"issue_date"`
	ExpiryDate time.Time `json:"expiry_date"`
}

// Department is one of the fixed academic departments.
type Department string

const (
	DeptComputerScience       Department = "Computer Science"
	DeptSoftwareEngineering   Department = "Software Engineering"
	DeptElectricalEngineering Department = "Electrical Engineering"
	DeptMechanicalEngineering Department = "Mechanical Engineering"
	DeptCivilEngineering      Department = "Civil Engineering"
	DeptChemicalEngineering   Department = "Chemical Engineering"
	DeptIndustrialEngineering Department = "Industrial Engineering"
	DeptArchitecture          Department = "Architecture"
	DeptCityRegionalPlanning  Department = "City and Regional Planning"
	DeptMathematics           Department = "Mathematics"
	DeptPhysics               Department = "Physics"
	DeptChemistry             Department = "Chemistry"
	DeptManagementSciences    Department = "Management Sciences"
)

// Departments lists every accepted department.
var Departments = []Department{
	DeptComputerScience,
	DeptSoftwareEngineering,
	DeptElectricalEngineering,
	DeptMechanicalEngineering,
	DeptCivilEngineering,
	DeptChemicalEngineering,
	DeptIndustrialEngineering,
	DeptArchitecture,
	DeptCityRegionalPlanning,
	DeptMathematics,
	DeptPhysics,
	DeptChemistry,
	DeptManagementSciences,
}

// IsValid checks d against the fixed department list.
func (d Department) IsValid() bool {
	for _, dept := range Departments {
		if dept == d {
			return true
		}
	}

	return false
}

// Prefix is the card-number segment for d: the first three letters of its
// first word, uppercased. "Computer Science" -> "COM".
func (d Department) Prefix() string {
	word, _, _ := strings.Cut(strings.TrimSpace(string(d)), " ")
	letters := make([]rune, 0, 3)
	for _, r := range word {
		if len(letters) == 3 {
			break
		}
		letters = append(letters, r)
	}

	return strings.ToUpper(string(letters))
}
