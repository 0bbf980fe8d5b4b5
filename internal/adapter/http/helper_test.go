package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"buffrlend-backend/internal/adapter/repository/gormstore"
	"buffrlend-backend/internal/adapter/session"
	"buffrlend-backend/internal/usecase/application"
	"buffrlend-backend/internal/usecase/auth"
	"buffrlend-backend/internal/usecase/payment"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	janeEmail = "jane@example.com"
	johnEmail = "john@example.com"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

type testServer struct {
	e      *echo.Echo
	db     *gorm.DB
	mr     *miniredis.Miniredis
	tokens map[string]string
}

// newTestServer wires the real stack over in-memory SQLite and miniredis,
// with a session already open for jane and john.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := gormstore.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zap.NewNop()
	loans := gormstore.NewLoanRepository(db)
	tx := gormstore.NewGormUoW(db)
	authUC := auth.NewUsecase(session.NewRedisStore(rdb), time.Hour, log)
	appUC := application.NewUsecase(loans, tx, log)
	payUC := payment.NewUsecase(loans, gormstore.NewPaymentRepository(db), tx, log)

	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = ErrorHandler(log)
	Routes{
		Health:         NewHandler("1.0.0"),
		Auth:           NewAuthHandler(authUC),
		Loans:          NewLoanHandler(appUC, payUC),
		Payments:       NewPaymentHandler(payUC),
		Authenticator:  authUC,
		Redis:          rdb,
		IdempotencyTTL: time.Minute,
	}.Register(e, log)

	ts := &testServer{e: e, db: db, mr: mr, tokens: map[string]string{}}
	for _, email := range []string{janeEmail, johnEmail} {
		res, err := authUC.Login(context.Background(), auth.LoginInput{Email: email, Password: "pw"})
		if err != nil {
			t.Fatalf("login %s: %v", email, err)
		}
		ts.tokens[email] = res.AccessToken
	}
	return ts
}

func mustJSON(v any) io.Reader {
	if s, ok := v.(string); ok {
		return strings.NewReader(s)
	}
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// do sends a request as user ("" for anonymous) with optional extra headers.
func (ts *testServer) do(method, path, user string, body any, hdr ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		r = mustJSON(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if user != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+ts.tokens[user])
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, into any) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope json: %v; raw=%s", err, rec.Body.String())
	}
	if !env.Success {
		t.Fatalf("success=false: %s", rec.Body.String())
	}
	if into != nil {
		if err := json.Unmarshal(env.Data, into); err != nil {
			t.Fatalf("bad data json: %v; raw=%s", err, env.Data)
		}
	}
	return env
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var er ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &er); err != nil {
		t.Fatalf("bad error json: %v; raw=%s", err, rec.Body.String())
	}
	return er
}

func loanBody(appRef string, amount float64) map[string]any {
	return map[string]any{
		"application_id":           appRef,
		"company_id":               "CMP-1",
		"employee_verification_id": "EV-1",
		"loan_amount":              amount,
		"loan_term":                12,
		"loan_purpose":             "school fees",
		"monthly_income":           3000,
		"employment_info":          map[string]any{"employer": "Namib Mills", "years": 4},
	}
}

