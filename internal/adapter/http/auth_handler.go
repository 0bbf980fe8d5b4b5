package http

import (
	"net/http"

	"buffrlend-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type loginReq struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
	Product  string `json:"product" validate:"max=64"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.Product == "" {
		req.Product = "buffrlend"
	}
	res, err := h.uc.Login(c.Request().Context(), auth.LoginInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, res, "Authentication successful")
}
