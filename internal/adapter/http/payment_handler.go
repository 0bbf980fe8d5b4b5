package http

import (
	"net/http"
	"strings"
	"time"

	paymentuc "buffrlend-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct{ uc *paymentuc.Usecase }

func NewPaymentHandler(uc *paymentuc.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createPaymentReq struct {
	LoanID          string    `json:"loan_id" validate:"required,notblank,max=36"`
	UserID          string    `json:"user_id" validate:"max=255"`
	Amount          float64   `json:"amount" validate:"required,gt=0,dec2"`
	PaymentDate     time.Time `json:"payment_date" validate:"required"`
	PaymentMethod   *string   `json:"payment_method" validate:"omitempty,max=32"`
	ReferenceNumber *string   `json:"reference_number" validate:"omitempty,max=64"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req createPaymentReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	userID, err := sessionUser(c, req.UserID)
	if err != nil {
		return err
	}

	res, err := h.uc.Record(c.Request().Context(), paymentuc.RecordInput{
		UserID:          userID,
		LoanID:          strings.TrimSpace(req.LoanID),
		Amount:          decimal.NewFromFloat(req.Amount),
		PaymentDate:     req.PaymentDate,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, res, "Payment processed successfully")
}
