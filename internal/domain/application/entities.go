package application

import (
	"time"

	"buffrlend-backend/pkg/apperr"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound  = apperr.NotFound("loan application not found")
	ErrDuplicate = apperr.Conflict("loan application already submitted")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Table: loan_applications
type Application struct {
	ID string `gorm:"primaryKey;size:36;column:id" json:"id"`
	// Client supplied reference, unique across applications.
	ApplicationID          string           `gorm:"size:64;not null;uniqueIndex:ux_loan_applications_application_id;column:application_id" json:"application_id"`
	UserID                 string           `gorm:"size:255;not null;index;column:user_id" json:"user_id"`
	CompanyID              string           `gorm:"size:64;not null;column:company_id" json:"company_id"`
	EmployeeVerificationID string           `gorm:"size:64;not null;column:employee_verification_id" json:"employee_verification_id"`
	LoanAmount             decimal.Decimal  `gorm:"type:decimal(15,2);not null;column:loan_amount" json:"loan_amount"`
	LoanTerm               int              `gorm:"not null;column:loan_term" json:"loan_term"`
	LoanPurpose            string           `gorm:"type:text;column:loan_purpose" json:"loan_purpose,omitempty"`
	MonthlyIncome          *decimal.Decimal `gorm:"type:decimal(15,2);column:monthly_income" json:"monthly_income,omitempty"`
	MonthlyExpenses        *decimal.Decimal `gorm:"type:decimal(15,2);column:monthly_expenses" json:"monthly_expenses,omitempty"`
	EmploymentInfo         map[string]any   `gorm:"serializer:json;type:text;column:employment_info" json:"employment_info,omitempty"`
	Status                 Status           `gorm:"size:16;not null;default:pending;column:status" json:"status"`
	CreatedAt              time.Time        `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt              time.Time        `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Application) TableName() string { return "loan_applications" }
