package flow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/stockdesk/internal/client/draft"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/validate"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

var (
	ErrBusy        = errors.New("submission in progress")
	ErrNotOpen     = errors.New("modal is not open")
	ErrAlreadyOpen = errors.New("modal is already open")
	ErrWrongKind   = errors.New("draft kind does not match the form")
)

// Mode tells whether a modal creates a new entity or edits a fetched one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// State of a modal.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	default:
		return "closed"
	}
}

// Outcome of a Submit or Delete call.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeRejected
	OutcomeFailed
	OutcomeSucceeded
	OutcomeDeclined
)

const (
	LabelSubmit     = "Submit"
	LabelSubmitting = "Submitting..."
)

// Notifier shows blocking notifications and asks for confirmation.
type Notifier interface {
	Alert(ctx context.Context, msg string)
	Confirm(ctx context.Context, prompt string) bool
}

// UserMessager is implemented by API errors that carry a message meant for
// the user.
type UserMessager interface {
	UserMessage() string
}

// Descriptor parameterizes a modal for one entity kind and mode. T is the
// request body the API expects.
type Descriptor[T any] struct {
	Kind     models.Kind
	Mode     Mode
	Validate validate.Func
	Refs     validate.Refs
	Encode   func(d *draft.Draft) (T, error)
	Send     func(ctx context.Context, body T) error
	Signal   *RefreshSignal

	SuccessNotice  string
	FailureMessage string
	// SurfaceAPIMessage shows the API's own error message, when it sends
	// one, instead of FailureMessage.
	SurfaceAPIMessage bool
}

// Modal is the lifecycle of one create or edit form. It is safe for
// concurrent use; Send runs without holding the lock.
type Modal[T any] struct {
	desc     Descriptor[T]
	notifier Notifier
	log      logging.Logger

	mu            sync.Mutex
	id            string
	state         State
	draft         *draft.Draft
	validationErr string
	submitErr     string
}

func NewModal[T any](desc Descriptor[T], notifier Notifier, log logging.Logger) *Modal[T] {
	return &Modal[T]{desc: desc, notifier: notifier, log: log}
}

// Open enters the open state with a freshly seeded draft. The modal takes
// ownership of d.
func (m *Modal[T]) Open(d *draft.Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateClosed {
		return ErrAlreadyOpen
	}
	if d.Kind() != m.desc.Kind {
		return fmt.Errorf("%w: %s vs %s", ErrWrongKind, d.Kind(), m.desc.Kind)
	}
	m.id = uuid.NewString()
	m.state = StateOpen
	m.draft = d
	m.validationErr = ""
	m.submitErr = ""
	return nil
}

// Cancel closes an open modal and discards its draft. An in-flight
// submission cannot be cancelled.
func (m *Modal[T]) Cancel() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateSubmitting:
		return ErrBusy
	case StateOpen:
		m.close()
	}
	return nil
}

// SetField edits the draft of an open modal.
func (m *Modal[T]) SetField(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateClosed:
		return ErrNotOpen
	case StateSubmitting:
		return ErrBusy
	}
	return m.draft.SetField(key, value)
}

// Submit validates the draft and, if it passes, sends it. See the package
// documentation for the state machine.
func (m *Modal[T]) Submit(ctx context.Context) (Outcome, error) {
	m.mu.Lock()
	switch m.state {
	case StateClosed:
		m.mu.Unlock()
		return OutcomeNone, ErrNotOpen
	case StateSubmitting:
		m.mu.Unlock()
		return OutcomeNone, ErrBusy
	}

	m.validationErr = ""
	m.submitErr = ""

	body, err := m.check()
	if err != nil {
		var ve *validate.ValidationError
		if errors.As(err, &ve) {
			m.validationErr = ve.Reason
		} else {
			m.validationErr = err.Error()
		}
		m.mu.Unlock()
		return OutcomeRejected, err
	}

	m.state = StateSubmitting
	log := m.log.With("modal", m.id, "kind", m.desc.Kind, "mode", m.desc.Mode)
	m.mu.Unlock()

	if err := m.desc.Send(ctx, body); err != nil {
		msg := m.failureMessage(err)
		log.Error(ctx, "submission failed", "error", err)

		m.mu.Lock()
		m.state = StateOpen
		m.submitErr = msg
		m.mu.Unlock()

		m.notifier.Alert(ctx, msg)
		return OutcomeFailed, err
	}

	log.Info(ctx, "submission succeeded")
	if m.desc.Signal != nil {
		m.desc.Signal.Invalidate(ctx)
	}
	m.notifier.Alert(ctx, m.desc.SuccessNotice)

	m.mu.Lock()
	m.close()
	m.mu.Unlock()
	return OutcomeSucceeded, nil
}

// check runs the validator and encodes the body. Called with mu held.
func (m *Modal[T]) check() (T, error) {
	var zero T
	if m.desc.Validate != nil {
		if err := m.desc.Validate(m.draft, m.desc.Refs); err != nil {
			return zero, err
		}
	}
	body, err := m.desc.Encode(m.draft)
	if err != nil {
		var ce *draft.CoerceError
		if errors.As(err, &ce) {
			return zero, &validate.ValidationError{Field: ce.Key, Reason: fmt.Sprintf(validate.MsgInvalidFieldTmpl, ce.Label)}
		}
		return zero, err
	}
	return body, nil
}

func (m *Modal[T]) failureMessage(err error) string {
	if m.desc.SurfaceAPIMessage {
		var um UserMessager
		if errors.As(err, &um) && um.UserMessage() != "" {
			return um.UserMessage()
		}
	}
	return m.desc.FailureMessage
}

func (m *Modal[T]) close() {
	m.state = StateClosed
	m.draft = nil
	m.validationErr = ""
	m.submitErr = ""
}

// State returns the current lifecycle state.
func (m *Modal[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Draft returns a copy of the current draft, or nil when closed.
func (m *Modal[T]) Draft() *draft.Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.draft == nil {
		return nil
	}
	return m.draft.Clone()
}

// ValidationError is the inline message of the last rejected submit.
func (m *Modal[T]) ValidationError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validationErr
}

// SubmitError is the inline message of the last failed submit.
func (m *Modal[T]) SubmitError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submitErr
}

// Busy reports whether the submit control is disabled.
func (m *Modal[T]) Busy() bool {
	return m.State() == StateSubmitting
}

// SubmitLabel is the caption of the submit control.
func (m *Modal[T]) SubmitLabel() string {
	if m.Busy() {
		return LabelSubmitting
	}
	return LabelSubmit
}
