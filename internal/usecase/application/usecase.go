package application

import (
	"context"
	"strings"

	appdomain "buffrlend-backend/internal/domain/application"
	"buffrlend-backend/internal/domain/loan"
	"buffrlend-backend/internal/domain/uow"
	"buffrlend-backend/internal/usecase/pricing"
	"buffrlend-backend/pkg/apperr"
	"buffrlend-backend/pkg/id"

	"go.uber.org/zap"
)

type Usecase struct {
	loans loan.Repository
	tx    uow.UnitOfWork
	log   *zap.Logger
}

func NewUsecase(loans loan.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{loans: loans, tx: tx, log: log}
}

func validate(in SubmitInput) error {
	switch {
	case strings.TrimSpace(in.UserID) == "":
		return apperr.Validation("user_id is required")
	case strings.TrimSpace(in.ApplicationID) == "":
		return apperr.Validation("application_id is required")
	case strings.TrimSpace(in.CompanyID) == "":
		return apperr.Validation("company_id is required")
	case strings.TrimSpace(in.EmployeeVerificationID) == "":
		return apperr.Validation("employee_verification_id is required")
	case !in.LoanAmount.IsPositive():
		return apperr.Validation("loan_amount must be greater than 0")
	case in.LoanTerm <= 0:
		return apperr.Validation("loan_term must be greater than 0")
	case in.MonthlyIncome != nil && in.MonthlyIncome.IsNegative():
		return apperr.Validation("monthly_income must not be negative")
	case in.MonthlyExpenses != nil && in.MonthlyExpenses.IsNegative():
		return apperr.Validation("monthly_expenses must not be negative")
	}
	return nil
}

// Submit prices the request and writes the application together with its loan.
// Neither row survives if the other fails to persist.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	amount := in.LoanAmount.Round(2)
	q := pricing.NewQuote(amount, in.LoanTerm, in.MonthlyIncome)

	app := &appdomain.Application{
		ID:                     id.New(),
		ApplicationID:          in.ApplicationID,
		UserID:                 in.UserID,
		CompanyID:              in.CompanyID,
		EmployeeVerificationID: in.EmployeeVerificationID,
		LoanAmount:             amount,
		LoanTerm:               in.LoanTerm,
		LoanPurpose:            in.LoanPurpose,
		MonthlyIncome:          in.MonthlyIncome,
		MonthlyExpenses:        in.MonthlyExpenses,
		EmploymentInfo:         in.EmploymentInfo,
		Status:                 appdomain.StatusPending,
	}
	l := &loan.Loan{
		ID:               id.New(),
		ApplicationID:    app.ID,
		UserID:           in.UserID,
		Amount:           amount,
		TermMonths:       in.LoanTerm,
		InterestRate:     q.Rate,
		MonthlyPayment:   q.MonthlyPayment,
		TotalAmount:      q.TotalAmount,
		Status:           loan.StatusPending,
		PrincipalBalance: amount,
		RemainingBalance: amount,
	}

	err := u.tx.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Applications.GetByApplicationID(ctx, in.ApplicationID); err == nil {
			return appdomain.ErrDuplicate
		} else if apperr.CodeOf(err) != apperr.CodeNotFound {
			return apperr.Wrap(err, "failed to check loan application")
		}
		if err := r.Applications.Create(ctx, app); err != nil {
			return apperr.Wrap(err, "failed to create loan application")
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return apperr.Wrap(err, "failed to create loan")
		}
		return nil
	})
	if err != nil {
		u.log.Warn("loan application rejected",
			zap.String("application_id", in.ApplicationID),
			zap.String("user_id", in.UserID),
			zap.Error(err))
		return nil, apperr.Wrap(err, "failed to submit loan application")
	}

	u.log.Info("loan application submitted",
		zap.String("application_id", in.ApplicationID),
		zap.String("loan_id", l.ID),
		zap.String("rate", q.Rate.String()))

	return &SubmitResult{Application: app, Loan: l}, nil
}

// ListLoans returns the caller's loans, newest first.
func (u *Usecase) ListLoans(ctx context.Context, userID string) ([]loan.Loan, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Unauthorized("missing user")
	}
	ls, err := u.loans.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list loans")
	}
	if ls == nil {
		ls = []loan.Loan{}
	}
	return ls, nil
}

// GetLoan reports another user's loan as not found.
func (u *Usecase) GetLoan(ctx context.Context, userID, loanID string) (*loan.Loan, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load loan")
	}
	if l.UserID != userID {
		return nil, loan.ErrNotFound
	}
	return l, nil
}
