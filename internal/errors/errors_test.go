package errors

import (
	"fmt"
	"testing"
)

func TestStashError_Error(t *testing.T) {
	err := &StashError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "prompt not found: abc",
	}

	expected := "NOT_FOUND: prompt not found: abc"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewInvalidRequest(t *testing.T) {
	err := NewInvalidRequest("title is required")

	if err.Code != ErrInvalidRequest {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidRequest)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Message != "title is required" {
		t.Errorf("Message = %q, want %q", err.Message, "title is required")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("prompt", "01ABC")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["kind"] != "prompt" {
		t.Errorf("Details[kind] = %v, want %q", err.Details["kind"], "prompt")
	}
	if err.Details["id"] != "01ABC" {
		t.Errorf("Details[id] = %v, want %q", err.Details["id"], "01ABC")
	}
}

func TestNewImportFailed(t *testing.T) {
	err := NewImportFailed(fmt.Errorf("unexpected end of JSON input"))

	if err.Code != ErrImportFailed {
		t.Errorf("Code = %q, want %q", err.Code, ErrImportFailed)
	}
	if err.Status != 422 {
		t.Errorf("Status = %d, want 422", err.Status)
	}
}

func TestOptimizationErrors(t *testing.T) {
	if err := NewNoAPIKey(); err.Code != ErrNoAPIKey || err.Status != 401 {
		t.Errorf("NewNoAPIKey() = %v", err)
	}
	if err := NewInvalidAPIKey(); err.Code != ErrInvalidAPIKey || err.Status != 401 {
		t.Errorf("NewInvalidAPIKey() = %v", err)
	}
	if err := NewMalformedResponse("empty content"); err.Code != ErrMalformedResponse || err.Status != 502 {
		t.Errorf("NewMalformedResponse() = %v", err)
	}

	err := NewUpstream(529, "overloaded")
	if err.Code != ErrUpstream {
		t.Errorf("Code = %q, want %q", err.Code, ErrUpstream)
	}
	if err.Details["upstream_status"] != 529 {
		t.Errorf("Details[upstream_status] = %v, want 529", err.Details["upstream_status"])
	}
}

func TestNewInternal(t *testing.T) {
	t.Run("with error", func(t *testing.T) {
		err := NewInternal(fmt.Errorf("document write failed"))

		if err.Code != ErrInternal {
			t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
		}
		if err.Status != 500 {
			t.Errorf("Status = %d, want 500", err.Status)
		}
	})

	t.Run("with nil", func(t *testing.T) {
		err := NewInternal(nil)
		if err.Message != "internal error" {
			t.Errorf("Message = %q, want %q", err.Message, "internal error")
		}
	})
}

func TestIs(t *testing.T) {
	t.Run("matching code", func(t *testing.T) {
		err := NewNotFound("prompt", "x")
		if !Is(err, ErrNotFound) {
			t.Error("Is() = false, want true")
		}
	})

	t.Run("non-matching code", func(t *testing.T) {
		err := NewNotFound("prompt", "x")
		if Is(err, ErrImportFailed) {
			t.Error("Is() = true, want false")
		}
	})

	t.Run("non-StashError", func(t *testing.T) {
		err := fmt.Errorf("plain error")
		if Is(err, ErrNotFound) {
			t.Error("Is() = true, want false for non-StashError")
		}
	})

	t.Run("wrapped StashError", func(t *testing.T) {
		inner := NewNotFound("project", "x")
		wrapped := fmt.Errorf("consolidate: %w", inner)
		if !Is(wrapped, ErrNotFound) {
			t.Error("Is() = false, want true for wrapped StashError")
		}
	})
}
