package application

import (
	appdomain "buffrlend-backend/internal/domain/application"
	"buffrlend-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	UserID                 string
	ApplicationID          string
	CompanyID              string
	EmployeeVerificationID string
	LoanAmount             decimal.Decimal
	LoanTerm               int
	LoanPurpose            string
	MonthlyIncome          *decimal.Decimal
	MonthlyExpenses        *decimal.Decimal
	EmploymentInfo         map[string]any
}

// SubmitResult carries both rows as written by Submit.
type SubmitResult struct {
	Application *appdomain.Application `json:"application"`
	Loan        *loan.Loan             `json:"loan"`
}
