// Package workflow implements the two-step confirmation gate between a
// submitted order and the store: a draft is built on submit, held in memory,
// and committed only on an explicit confirm.
package workflow

import (
	"errors"
	"sync"

	"burger_club/internal/builder"
	"burger_club/internal/models"
	"burger_club/internal/validation"
)

type State string

const (
	// Idle means no draft is outstanding; the form is editable.
	Idle State = "idle"
	// AwaitingConfirmation means a draft has been built and the
	// confirmation dialog is up.
	AwaitingConfirmation State = "awaiting_confirmation"
)

var (
	// ErrNoDraft is returned by Confirm and Cancel when no draft is
	// outstanding, which makes a repeated confirm a no-op.
	ErrNoDraft = errors.New("no draft awaiting confirmation")
	// ErrDraftPending is returned by Submit while a draft is already
	// awaiting confirmation.
	ErrDraftPending = errors.New("a draft is already awaiting confirmation")
)

// OrderStore is the workflow's view of the committed order collection.
type OrderStore interface {
	builder.IDSource
	Append(order models.Order)
}

// Workflow holds at most one draft at a time. A mutex guards the state
// because the HTTP adapter may drive it from concurrent requests.
type Workflow struct {
	store OrderStore

	mu    sync.Mutex
	state State
	draft *models.Order
}

func New(store OrderStore) *Workflow {
	return &Workflow{store: store, state: Idle}
}

// Submit validates input and, when valid, builds a draft and moves to
// AwaitingConfirmation. Invalid input leaves the workflow Idle and returns
// the field errors in the result. Building the draft advances the ID
// counter; a later Cancel does not roll that back.
func (w *Workflow) Submit(input models.OrderInput) (models.ValidationResult, *models.Order, error) {
	result := validation.Validate(input)
	if !result.Valid {
		return result, nil, nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Idle {
		return result, nil, ErrDraftPending
	}

	order := builder.Build(input, w.store)
	w.draft = &order
	w.state = AwaitingConfirmation
	return result, &order, nil
}

// Confirm commits the outstanding draft to the store and returns to Idle.
// With no outstanding draft it returns ErrNoDraft and appends nothing.
func (w *Workflow) Confirm() (*models.Order, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != AwaitingConfirmation || w.draft == nil {
		return nil, ErrNoDraft
	}

	order := *w.draft
	w.draft = nil
	w.state = Idle

	w.store.Append(order)
	return &order, nil
}

// Cancel discards the outstanding draft without persisting it. Closing the
// confirmation dialog by any route (cancel, edit, outside click, escape)
// lands here.
func (w *Workflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != AwaitingConfirmation {
		return ErrNoDraft
	}

	w.draft = nil
	w.state = Idle
	return nil
}

// State returns the current machine state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Draft returns a copy of the outstanding draft, or nil when Idle.
func (w *Workflow) Draft() *models.Order {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft == nil {
		return nil
	}
	draft := *w.draft
	return &draft
}
