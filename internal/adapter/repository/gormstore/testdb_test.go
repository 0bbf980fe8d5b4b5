package gormstore

import (
	"testing"
	"time"

	applicationDomain "buffrlend-backend/internal/domain/application"
	loanDomain "buffrlend-backend/internal/domain/loan"
	paymentDomain "buffrlend-backend/internal/domain/payment"
	"buffrlend-backend/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB pinned to a single connection,
// so every query (and every transaction) sees the same database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func makeApplication(appRef, userID string) *applicationDomain.Application {
	income := decimal.NewFromInt(3000)
	return &applicationDomain.Application{
		ID:                     id.New(),
		ApplicationID:          appRef,
		UserID:                 userID,
		CompanyID:              "CMP-1",
		EmployeeVerificationID: "EV-1",
		LoanAmount:             decimal.NewFromInt(10000),
		LoanTerm:               12,
		LoanPurpose:            "school fees",
		MonthlyIncome:          &income,
		EmploymentInfo:         map[string]any{"employer": "Namib Mills", "years": float64(3)},
		Status:                 applicationDomain.StatusPending,
	}
}

func makeLoan(applicationID, userID string) *loanDomain.Loan {
	principal := decimal.NewFromInt(10000)
	return &loanDomain.Loan{
		ID:               id.New(),
		ApplicationID:    applicationID,
		UserID:           userID,
		Amount:           principal,
		TermMonths:       12,
		InterestRate:     decimal.RequireFromString("3.0"),
		MonthlyPayment:   decimal.RequireFromString("1133.33"),
		TotalAmount:      decimal.RequireFromString("13600.00"),
		Status:           loanDomain.StatusPending,
		PrincipalBalance: principal,
		InterestBalance:  decimal.Zero,
		TotalPaid:        decimal.Zero,
		RemainingBalance: principal,
	}
}

func makePayment(loanID, userID string, amount int64, when time.Time) *paymentDomain.Payment {
	method := "eft"
	return &paymentDomain.Payment{
		ID:            id.New(),
		LoanID:        loanID,
		UserID:        userID,
		Amount:        decimal.NewFromInt(amount),
		PaymentDate:   when.UTC(),
		PaymentMethod: &method,
		Status:        paymentDomain.StatusCompleted,
	}
}
