package http

import (
	"net/http"
	"strings"

	"buffrlend-backend/internal/adapter/middleware"
	"buffrlend-backend/internal/domain/loan"
	"buffrlend-backend/internal/domain/payment"
	"buffrlend-backend/internal/usecase/application"
	paymentuc "buffrlend-backend/internal/usecase/payment"
	"buffrlend-backend/pkg/apperr"
	"buffrlend-backend/pkg/id"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct {
	uc       *application.Usecase
	payments *paymentuc.Usecase
}

func NewLoanHandler(uc *application.Usecase, payments *paymentuc.Usecase) *LoanHandler {
	return &LoanHandler{uc: uc, payments: payments}
}

type createLoanReq struct {
	ApplicationID          string         `json:"application_id" validate:"required,notblank,max=64"`
	UserID                 string         `json:"user_id" validate:"max=255"`
	CompanyID              string         `json:"company_id" validate:"required,notblank,max=64"`
	EmployeeVerificationID string         `json:"employee_verification_id" validate:"required,notblank,max=64"`
	LoanAmount             float64        `json:"loan_amount" validate:"required,gt=0,dec2"`
	LoanTerm               int            `json:"loan_term" validate:"required,gt=0,lte=360"`
	LoanPurpose            string         `json:"loan_purpose" validate:"max=2000"`
	MonthlyIncome          *float64       `json:"monthly_income" validate:"omitempty,gte=0,dec2"`
	MonthlyExpenses        *float64       `json:"monthly_expenses" validate:"omitempty,gte=0,dec2"`
	EmploymentInfo         map[string]any `json:"employment_info"`
}

// sessionUser returns the caller, refusing a body user_id that names someone else.
func sessionUser(c echo.Context, bodyUserID string) (string, error) {
	userID := middleware.UserID(c)
	if userID == "" {
		return "", apperr.Unauthorized("missing session")
	}
	if b := strings.TrimSpace(bodyUserID); b != "" && b != userID {
		return "", apperr.Forbidden("user_id does not match the session")
	}
	return userID, nil
}

// loanParam reads :loan_id. A value that is not a loan id cannot name a loan.
func loanParam(c echo.Context) (string, error) {
	v := strings.TrimSpace(c.Param("loan_id"))
	if !id.Valid(v) {
		return "", loan.ErrNotFound
	}
	return v, nil
}

func optDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	userID, err := sessionUser(c, req.UserID)
	if err != nil {
		return err
	}

	res, err := h.uc.Submit(c.Request().Context(), application.SubmitInput{
		UserID:                 userID,
		ApplicationID:          strings.TrimSpace(req.ApplicationID),
		CompanyID:              req.CompanyID,
		EmployeeVerificationID: req.EmployeeVerificationID,
		LoanAmount:             decimal.NewFromFloat(req.LoanAmount),
		LoanTerm:               req.LoanTerm,
		LoanPurpose:            req.LoanPurpose,
		MonthlyIncome:          optDecimal(req.MonthlyIncome),
		MonthlyExpenses:        optDecimal(req.MonthlyExpenses),
		EmploymentInfo:         req.EmploymentInfo,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, res, "Loan application created successfully")
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	loans, err := h.uc.ListLoans(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, loans, "Loans retrieved successfully")
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	loanID, err := loanParam(c)
	if err != nil {
		return err
	}
	l, err := h.uc.GetLoan(c.Request().Context(), middleware.UserID(c), loanID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, l, "Loan retrieved successfully")
}

func (h *LoanHandler) ListLoanPayments(c echo.Context) error {
	loanID, err := loanParam(c)
	if err != nil {
		return err
	}
	ps, err := h.payments.ListByLoan(c.Request().Context(), middleware.UserID(c), loanID)
	if err != nil {
		return err
	}
	if ps == nil {
		ps = []payment.Payment{}
	}
	return respond(c, http.StatusOK, ps, "Payments retrieved successfully")
}
