package forms

import (
	"errors"
	"testing"
)

func TestSubmitClosedEditor(t *testing.T) {
	e := NewEditor()
	err := e.Submit(nil, func() error { return nil })
	if !errors.Is(err, ErrNotOpen) {
		t.Fatalf("expected ErrNotOpen, got %v", err)
	}
}

func TestValidationBlocksMutation(t *testing.T) {
	e := NewEditor()
	e.Open(ModeCreate, map[string]string{"name": "  ", "brand": "Acme"})

	called := false
	err := e.Submit([]string{"name", "brand", "status"}, func() error {
		called = true
		return nil
	})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if called {
		t.Fatal("mutation must not run on validation failure")
	}
	if len(vErr.Missing) != 2 {
		t.Fatalf("expected name and status missing, got %v", vErr.Missing)
	}
	if e.State() != StateOpen {
		t.Fatalf("editor should stay open, state: %s", e.State())
	}
}

func TestSubmitSuccessClosesEditor(t *testing.T) {
	e := NewEditor()
	e.Open(ModeEdit, map[string]string{"name": "Summer Launch"})

	if err := e.Submit([]string{"name"}, func() error { return nil }); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if e.State() != StateClosed {
		t.Fatalf("expected closed, got %s", e.State())
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	e := NewEditor()
	e.Open(ModeEdit, map[string]string{"name": "Summer Launch"})

	boom := errors.New("api down")
	if err := e.Submit([]string{"name"}, func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected mutation error, got %v", err)
	}

	if e.State() != StateOpen {
		t.Fatalf("editor should reopen on failure, state: %s", e.State())
	}
	if e.Draft()["name"] != "Summer Launch" {
		t.Fatalf("draft lost: %v", e.Draft())
	}

	// A retry after fixing the outage succeeds
	if err := e.Submit([]string{"name"}, func() error { return nil }); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if e.State() != StateClosed {
		t.Fatalf("expected closed after retry, got %s", e.State())
	}
}

func TestOpenCopiesDraft(t *testing.T) {
	seed := map[string]string{"name": "a"}
	e := NewEditor()
	e.Open(ModeEdit, seed)
	seed["name"] = "b"

	if e.Draft()["name"] != "a" {
		t.Fatal("editor draft should not alias the caller's map")
	}
}

func TestPasswordsMatch(t *testing.T) {
	if err := PasswordsMatch("secret", "secret"); err != nil {
		t.Fatalf("matching passwords: %v", err)
	}
	if err := PasswordsMatch("secret", "Secret"); err == nil {
		t.Fatal("mismatched passwords should fail")
	}
}
