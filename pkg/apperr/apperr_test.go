package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{Validation("bad"), CodeInvalidArgument},
		{NotFound("nope"), CodeNotFound},
		{Unauthorized("who"), CodeUnauthenticated},
		{Forbidden("no"), CodeForbidden},
		{Conflict("dup"), CodeConflict},
		{Unavailable("redis", errors.New("eof")), CodeUnavailable},
		{Persistence("db", errors.New("io")), CodeInternal},
		{errors.New("plain"), CodeInternal},
		{fmt.Errorf("outer: %w", NotFound("inner")), CodeNotFound},
	}
	for _, c := range cases {
		if got := CodeOf(c.err); got != c.want {
			t.Fatalf("CodeOf(%v) = %s, want %s", c.err, got, c.want)
		}
	}
}

func TestHTTPStatus(t *testing.T) {
	if HTTPStatus(CodeInvalidArgument) != http.StatusUnprocessableEntity {
		t.Fatal("validation should be 422")
	}
	if HTTPStatus(CodeNotFound) != http.StatusNotFound {
		t.Fatal("not found should be 404")
	}
	if HTTPStatus(CodeUnauthenticated) != http.StatusUnauthorized {
		t.Fatal("unauthenticated should be 401")
	}
	if HTTPStatus(CodeUnavailable) != http.StatusServiceUnavailable {
		t.Fatal("unavailable should be 503")
	}
	if HTTPStatus("WHATEVER") != http.StatusInternalServerError {
		t.Fatal("unknown should be 500")
	}
}

func TestPersistence_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence("failed to save", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable via errors.Is")
	}
	if err.Error() != "failed to save: connection reset" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "x") != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
	nf := NotFound("loan not found")
	if got := Wrap(nf, "ignored"); got != nf {
		t.Fatalf("Wrap should keep AppError as is, got %v", got)
	}
	got := Wrap(errors.New("disk full"), "failed to create payment")
	if CodeOf(got) != CodeInternal {
		t.Fatalf("plain error should become INTERNAL, got %s", CodeOf(got))
	}
}
