package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type RecordInput struct {
	UserID          string
	LoanID          string
	Amount          decimal.Decimal
	PaymentDate     time.Time
	PaymentMethod   *string
	ReferenceNumber *string
}

type RecordResult struct {
	PaymentID        string          `json:"payment_id"`
	LoanID           string          `json:"loan_id"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentDate      time.Time       `json:"payment_date"`
	Status           string          `json:"status"`
	LoanStatus       string          `json:"loan_status"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}
