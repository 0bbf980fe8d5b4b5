package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"buffrlend-backend/internal/domain/loan"
	paydomain "buffrlend-backend/internal/domain/payment"
	"buffrlend-backend/internal/domain/uow"
	"buffrlend-backend/internal/testutil/loanmock"
	"buffrlend-backend/internal/testutil/paymentmock"
	"buffrlend-backend/internal/testutil/uowmock"
	"buffrlend-backend/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "jane@example.com"

var paidAt = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func openLoan() *loan.Loan {
	return &loan.Loan{
		ID:               "LN-1",
		UserID:           owner,
		Amount:           dec("10000"),
		Status:           loan.StatusPending,
		PrincipalBalance: dec("10000"),
		RemainingBalance: dec("10000"),
		TotalPaid:        decimal.Zero,
	}
}

type ledger struct {
	loan     *loan.Loan
	payments []*paydomain.Payment
	saves    int
}

func (lg *ledger) usecase() *Usecase {
	loans := &loanmock.Repo{
		GetByIDFn: func(_ context.Context, id string) (*loan.Loan, error) {
			if lg.loan == nil || id != lg.loan.ID {
				return nil, loan.ErrNotFound
			}
			return lg.loan, nil
		},
		GetByIDForUpdateFn: func(_ context.Context, id string) (*loan.Loan, error) {
			if lg.loan == nil || id != lg.loan.ID {
				return nil, loan.ErrNotFound
			}
			cp := *lg.loan
			return &cp, nil
		},
		SaveFn: func(_ context.Context, l *loan.Loan) error {
			cp := *l
			lg.loan = &cp
			lg.saves++
			return nil
		},
	}
	pays := &paymentmock.Repo{
		CreateFn: func(_ context.Context, p *paydomain.Payment) error {
			lg.payments = append(lg.payments, p)
			return nil
		},
		ListByLoanIDFn: func(_ context.Context, loanID string) ([]paydomain.Payment, error) {
			out := []paydomain.Payment{}
			for _, p := range lg.payments {
				if p.LoanID == loanID {
					out = append(out, *p)
				}
			}
			return out, nil
		},
	}
	tx := uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays})
	return NewUsecase(loans, pays, tx, nil)
}

func pay(amount string) RecordInput {
	return RecordInput{UserID: owner, LoanID: "LN-1", Amount: dec(amount), PaymentDate: paidAt}
}

func TestRecord_PartialPayment(t *testing.T) {
	lg := &ledger{loan: openLoan()}
	res, err := lg.usecase().Record(context.Background(), pay("2500"))
	require.NoError(t, err)

	assert.Equal(t, "completed", res.Status)
	assert.Equal(t, "pending", res.LoanStatus)
	assert.Equal(t, "2500.00", res.TotalPaid.StringFixed(2))
	assert.Equal(t, "7500.00", res.RemainingBalance.StringFixed(2))
	assert.True(t, res.PaymentDate.Equal(paidAt))
	require.Len(t, lg.payments, 1)
	assert.Equal(t, paydomain.StatusCompleted, lg.payments[0].Status)
}

func TestRecord_TwoPaymentsCloseLoanThirdClamps(t *testing.T) {
	lg := &ledger{loan: openLoan()}
	uc := lg.usecase()
	ctx := context.Background()

	_, err := uc.Record(ctx, pay("4000"))
	require.NoError(t, err)
	res, err := uc.Record(ctx, pay("6000"))
	require.NoError(t, err)
	assert.True(t, res.RemainingBalance.IsZero())
	assert.Equal(t, string(loan.StatusCompleted), res.LoanStatus)

	res, err = uc.Record(ctx, pay("100"))
	require.NoError(t, err)
	assert.True(t, res.RemainingBalance.IsZero(), "remaining = %s", res.RemainingBalance)
	assert.Equal(t, string(loan.StatusCompleted), res.LoanStatus)
	assert.Equal(t, "10100.00", res.TotalPaid.StringFixed(2))
	assert.Len(t, lg.payments, 3)
	assert.Equal(t, 3, lg.saves)
}

func TestRecord_MissingLoanWritesNothing(t *testing.T) {
	lg := &ledger{}
	_, err := lg.usecase().Record(context.Background(), pay("10"))
	require.ErrorIs(t, err, loan.ErrNotFound)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
	assert.Empty(t, lg.payments)
	assert.Zero(t, lg.saves)
}

func TestRecord_ForeignLoanReadsAsNotFound(t *testing.T) {
	lg := &ledger{loan: openLoan()}
	in := pay("10")
	in.UserID = "mallory@example.com"
	_, err := lg.usecase().Record(context.Background(), in)
	require.ErrorIs(t, err, loan.ErrNotFound)
	assert.Empty(t, lg.payments)
}

func TestRecord_Validation(t *testing.T) {
	cases := map[string]func(*RecordInput){
		"zero amount":     func(in *RecordInput) { in.Amount = decimal.Zero },
		"negative amount": func(in *RecordInput) { in.Amount = dec("-1") },
		"blank loan":      func(in *RecordInput) { in.LoanID = "" },
		"zero date":       func(in *RecordInput) { in.PaymentDate = time.Time{} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			lg := &ledger{loan: openLoan()}
			in := pay("10")
			mutate(&in)
			_, err := lg.usecase().Record(context.Background(), in)
			assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
			assert.Empty(t, lg.payments)
		})
	}
}

func TestRecord_SaveFailureIsPersistence(t *testing.T) {
	boom := errors.New("deadlock")
	loans := &loanmock.Repo{
		GetByIDForUpdateFn: func(context.Context, string) (*loan.Loan, error) { return openLoan(), nil },
		SaveFn:             func(context.Context, *loan.Loan) error { return boom },
	}
	pays := &paymentmock.Repo{}
	tx := uowmock.Passthrough(uow.Repos{Loans: loans, Payments: pays})

	_, err := NewUsecase(loans, pays, tx, nil).Record(context.Background(), pay("10"))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
}

func TestListByLoan(t *testing.T) {
	lg := &ledger{loan: openLoan()}
	uc := lg.usecase()
	ctx := context.Background()

	empty, err := uc.ListByLoan(ctx, owner, "LN-1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = uc.Record(ctx, pay("10"))
	require.NoError(t, err)
	got, err := uc.ListByLoan(ctx, owner, "LN-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = uc.ListByLoan(ctx, "mallory@example.com", "LN-1")
	assert.ErrorIs(t, err, loan.ErrNotFound)
	_, err = uc.ListByLoan(ctx, owner, "LN-404")
	assert.ErrorIs(t, err, loan.ErrNotFound)
}
