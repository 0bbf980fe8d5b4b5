package payment

import (
	"context"
	"strings"

	"buffrlend-backend/internal/domain/loan"
	paydomain "buffrlend-backend/internal/domain/payment"
	"buffrlend-backend/internal/domain/uow"
	"buffrlend-backend/pkg/apperr"
	"buffrlend-backend/pkg/id"

	"go.uber.org/zap"
)

type Usecase struct {
	loans    loan.Repository
	payments paydomain.Repository
	tx       uow.UnitOfWork
	log      *zap.Logger
}

func NewUsecase(loans loan.Repository, payments paydomain.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{loans: loans, payments: payments, tx: tx, log: log}
}

// Record appends a completed payment and books it against the loan under the loan's row lock.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*RecordResult, error) {
	switch {
	case strings.TrimSpace(in.UserID) == "":
		return nil, apperr.Unauthorized("missing user")
	case strings.TrimSpace(in.LoanID) == "":
		return nil, apperr.Validation("loan_id is required")
	case !in.Amount.IsPositive():
		return nil, apperr.Validation("amount must be greater than 0")
	case in.PaymentDate.IsZero():
		return nil, apperr.Validation("payment_date is required")
	}

	amount := in.Amount.Round(2)
	p := &paydomain.Payment{
		ID:              id.New(),
		LoanID:          in.LoanID,
		UserID:          in.UserID,
		Amount:          amount,
		PaymentDate:     in.PaymentDate.UTC(),
		PaymentMethod:   in.PaymentMethod,
		ReferenceNumber: in.ReferenceNumber,
		Status:          paydomain.StatusCompleted,
	}

	var booked loan.Loan
	err := u.tx.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		if l.UserID != in.UserID {
			return loan.ErrNotFound
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return apperr.Wrap(err, "failed to create payment")
		}
		l.ApplyPayment(amount)
		if err := r.Loans.Save(ctx, l); err != nil {
			return apperr.Wrap(err, "failed to update loan balance")
		}
		booked = *l
		return nil
	})
	if err != nil {
		u.log.Warn("payment rejected",
			zap.String("loan_id", in.LoanID),
			zap.String("user_id", in.UserID),
			zap.Error(err))
		return nil, apperr.Wrap(err, "failed to record payment")
	}

	u.log.Info("payment recorded",
		zap.String("payment_id", p.ID),
		zap.String("loan_id", in.LoanID),
		zap.String("amount", amount.StringFixed(2)),
		zap.String("remaining", booked.RemainingBalance.StringFixed(2)))

	return &RecordResult{
		PaymentID:        p.ID,
		LoanID:           p.LoanID,
		Amount:           p.Amount,
		PaymentDate:      p.PaymentDate,
		Status:           string(p.Status),
		LoanStatus:       string(booked.Status),
		TotalPaid:        booked.TotalPaid,
		RemainingBalance: booked.RemainingBalance,
	}, nil
}

// ListByLoan returns the loan's payments oldest first. Foreign loans read as not found.
func (u *Usecase) ListByLoan(ctx context.Context, userID, loanID string) ([]paydomain.Payment, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load loan")
	}
	if l.UserID != userID {
		return nil, loan.ErrNotFound
	}
	ps, err := u.payments.ListByLoanID(ctx, loanID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list payments")
	}
	if ps == nil {
		ps = []paydomain.Payment{}
	}
	return ps, nil
}
