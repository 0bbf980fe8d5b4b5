package http

import (
	"errors"
	"fmt"
	"net/http"

	"buffrlend-backend/pkg/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var statusCode = map[int]string{
	http.StatusBadRequest:          apperr.CodeInvalidArgument,
	http.StatusUnauthorized:        apperr.CodeUnauthenticated,
	http.StatusForbidden:           apperr.CodeForbidden,
	http.StatusNotFound:            apperr.CodeNotFound,
	http.StatusMethodNotAllowed:    "METHOD_NOT_ALLOWED",
	http.StatusConflict:            apperr.CodeConflict,
	http.StatusUnprocessableEntity: apperr.CodeInvalidArgument,
	http.StatusServiceUnavailable:  apperr.CodeUnavailable,
}

// Render turns any handler error into a status and an ErrorResponse.
// Internal causes are never echoed to the client.
func Render(err error) (int, ErrorResponse) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Code:    apperr.CodeInvalidArgument,
			Details: ToFieldErrors(ve),
		}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code, ok := statusCode[he.Code]
		if !ok {
			code = apperr.CodeInternal
		}
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
			msg = s
		}
		return he.Code, ErrorResponse{Error: msg, Code: code}
	}

	var ae *apperr.AppError
	if errors.As(err, &ae) {
		status := apperr.HTTPStatus(ae.Code())
		return status, ErrorResponse{Error: ae.Message(), Code: ae.Code()}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: apperr.CodeInternal}
}

// ErrorHandler is installed as echo's HTTPErrorHandler.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		status, body := Render(err)
		if status >= http.StatusInternalServerError {
			log.Error("request error",
				zap.Error(err),
				zap.Int("status", status),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path))
		}
		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			log.Error("failed to send error response", zap.Error(err))
		}
	}
}

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

func respond(c echo.Context, status int, data any, msg string) error {
	return c.JSON(status, Envelope{Success: true, Data: data, Message: msg})
}

// bindAndValidate wraps bind failures as 400 and leaves validator errors for Render.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid body: %s", bindReason(err)))
	}
	return c.Validate(req)
}

func bindReason(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if s, ok := he.Message.(string); ok {
			return s
		}
	}
	return "malformed JSON"
}
