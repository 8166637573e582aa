// Package forms implements the modal editor lifecycle shared by every
// create/edit dialog: closed → open(create|edit) → submitting →
// closed on success, or back to open with the draft intact on failure.
package forms

import (
	"errors"
	"fmt"
	"strings"
)

// State is the editor's position in its lifecycle
type State string

const (
	StateClosed     State = "closed"
	StateOpen       State = "open"
	StateSubmitting State = "submitting"
)

// Mode distinguishes a blank draft from one seeded by a selected row
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// ErrNotOpen is returned when a submit is attempted on a closed editor
var ErrNotOpen = errors.New("editor is not open")

// ValidationError lists the required fields missing from a draft
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Editor is a draft record bound to a create/edit dialog
type Editor struct {
	state State
	mode  Mode
	draft map[string]string
}

// NewEditor returns a closed editor
func NewEditor() *Editor {
	return &Editor{state: StateClosed}
}

// Open initializes the draft, empty for create mode or copied from the
// selected row for edit mode.
func (e *Editor) Open(mode Mode, draft map[string]string) {
	e.state = StateOpen
	e.mode = mode
	e.draft = make(map[string]string, len(draft))
	for k, v := range draft {
		e.draft[k] = v
	}
}

// SetField updates one draft field
func (e *Editor) SetField(name, value string) {
	if e.draft == nil {
		e.draft = make(map[string]string)
	}
	e.draft[name] = value
}

// Validate checks required-field presence. No cross-field business
// rules live here; PasswordsMatch covers the one exception.
func (e *Editor) Validate(required ...string) error {
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(e.draft[field]) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Submit validates the draft and runs the mutation. On success the
// editor closes; on failure it returns to open with the draft intact
// so the user can correct and retry. Validation failures never invoke
// the mutation.
func (e *Editor) Submit(required []string, mutate func() error) error {
	if e.state != StateOpen {
		return ErrNotOpen
	}
	if err := e.Validate(required...); err != nil {
		return err
	}

	e.state = StateSubmitting
	if err := mutate(); err != nil {
		e.state = StateOpen
		return err
	}

	e.state = StateClosed
	e.draft = nil
	return nil
}

// State returns the editor's lifecycle state
func (e *Editor) State() State {
	return e.state
}

// Mode returns the editor's mode; meaningful only while open
func (e *Editor) Mode() Mode {
	return e.mode
}

// Draft returns a copy of the current draft
func (e *Editor) Draft() map[string]string {
	out := make(map[string]string, len(e.draft))
	for k, v := range e.draft {
		out[k] = v
	}
	return out
}

// PasswordsMatch is the password-reset form's one cross-field rule
func PasswordsMatch(password, confirm string) error {
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	return nil
}
