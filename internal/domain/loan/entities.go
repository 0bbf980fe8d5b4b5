package loan

import (
	"time"

	"buffrlend-backend/pkg/apperr"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = apperr.NotFound("loan not found")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
)

type Loan struct {
	ID               string          `gorm:"primaryKey;size:36;column:id" json:"id"`
	ApplicationID    string          `gorm:"size:36;not null;uniqueIndex:ux_loans_application_id;column:application_id" json:"application_id"`
	UserID           string          `gorm:"size:255;not null;index:idx_loans_user_created;column:user_id" json:"user_id"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount" json:"amount"`
	TermMonths       int             `gorm:"not null;column:term_months" json:"term_months"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(6,3);not null;column:interest_rate" json:"interest_rate"`
	MonthlyPayment   decimal.Decimal `gorm:"type:decimal(15,2);not null;column:monthly_payment" json:"monthly_payment"`
	TotalAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;column:total_amount" json:"total_amount"`
	Status           Status          `gorm:"size:16;not null;default:pending;column:status" json:"status"`
	DisbursementDate *time.Time      `gorm:"column:disbursement_date" json:"disbursement_date"`
	MaturityDate     *time.Time      `gorm:"column:maturity_date" json:"maturity_date"`
	NextPaymentDate  *time.Time      `gorm:"column:next_payment_date" json:"next_payment_date"`
	PrincipalBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;column:principal_balance" json:"principal_balance"`
	InterestBalance  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0;column:interest_balance" json:"interest_balance"`
	TotalPaid        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0;column:total_paid" json:"total_paid"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;column:remaining_balance" json:"remaining_balance"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;index:idx_loans_user_created;column:created_at" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// ApplyPayment books amount against the loan. The remaining balance never goes
// below zero and a loan that reaches zero is completed.
func (l *Loan) ApplyPayment(amount decimal.Decimal) {
	l.TotalPaid = l.TotalPaid.Add(amount)
	remaining := l.RemainingBalance.Sub(amount)
	if !remaining.IsPositive() {
		remaining = decimal.Zero
		l.Status = StatusCompleted
	}
	l.RemainingBalance = remaining
}
