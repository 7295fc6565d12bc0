package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		expect int
	}{
		{name: "invalid argument", err: E(CodeInvalidArgument, "op", "bad", nil), expect: http.StatusBadRequest},
		{name: "forbidden", err: E(CodeForbidden, "op", "no", nil), expect: http.StatusForbidden},
		{name: "not found app error", err: E(CodeNotFound, "op", "missing", ErrNotFound), expect: http.StatusNotFound},
		{name: "bare not found sentinel", err: fmt.Errorf("repo: %w", ErrNotFound), expect: http.StatusNotFound},
		{name: "bare conflict sentinel", err: ErrConflict, expect: http.StatusConflict},
		{name: "ranking deadline", err: fmt.Errorf("rank: %w", context.DeadlineExceeded), expect: http.StatusGatewayTimeout},
		{name: "unknown error", err: errors.New("boom"), expect: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tt.err); got != tt.expect {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tt.expect)
			}
		})
	}
}

func TestIsCodeUsesOutermostAppError(t *testing.T) {
	inner := E(CodeNotFound, "Repo.Get", "missing", ErrNotFound)
	outer := E(CodeInternal, "Service.Get", "failed", inner)

	if !IsCode(outer, CodeInternal) {
		t.Fatalf("expected outer code to win")
	}
	if IsCode(nil, CodeInternal) {
		t.Fatalf("nil error must not match any code")
	}
	if !errors.Is(outer, ErrNotFound) {
		t.Fatalf("expected sentinel to stay reachable through Unwrap")
	}
}

func TestAppErrorMessage(t *testing.T) {
	err := E(CodeNotFound, "JobService.Get", "job not found", ErrNotFound)
	if got, want := err.Error(), "JobService.Get: job not found: not found"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestAppErrorMessageWithoutOp(t *testing.T) {
	if got := E(CodeInvalidArgument, "", "title is required", nil).Error(); got != "title is required" {
		t.Fatalf("Error() = %q", got)
	}
	if got := (&AppError{}).Error(); got != "error" {
		t.Fatalf("empty AppError = %q, want %q", got, "error")
	}
}
