package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Payment rows are append-only.
type Payment struct {
	ID              string          `gorm:"primaryKey;size:36;column:id" json:"id"`
	LoanID          string          `gorm:"size:36;not null;index:idx_payments_loan_date;column:loan_id" json:"loan_id"`
	UserID          string          `gorm:"size:255;not null;index;column:user_id" json:"user_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null;column:amount" json:"amount"`
	PaymentDate     time.Time       `gorm:"not null;index:idx_payments_loan_date;column:payment_date" json:"payment_date"`
	PaymentMethod   *string         `gorm:"size:32;column:payment_method" json:"payment_method,omitempty"`
	ReferenceNumber *string         `gorm:"size:64;column:reference_number" json:"reference_number,omitempty"`
	Status          Status          `gorm:"size:16;not null;default:pending;column:status" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime;column:created_at" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime;column:updated_at" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
