package registration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/go-petr/money-guard/internal/domain"
)

var (
	// ErrInvalidForm indicates that the form did not pass validation and was not submitted.
	ErrInvalidForm = errors.New("invalid form")
	// ErrSubmitInProgress indicates that a submission of the same form is still pending.
	ErrSubmitInProgress = errors.New("submission in progress")
	// ErrUnknownField indicates a change to a field the form does not have.
	ErrUnknownField = errors.New("unknown field")
)

// Registrar registers a user.
//
//go:generate mockgen -source controller.go -destination controller_mock.go -package registration
type Registrar interface {
	Register(ctx context.Context, arg domain.RegisterParams) (domain.UserWihtoutPassword, error)
}

// Notifier delivers transient user-facing messages. Calls are fire-and-forget.
type Notifier interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// RegistrationError is a rejected registration carrying user-facing messages.
type RegistrationError struct {
	Messages []string
	Err      error
}

func (e *RegistrationError) Error() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return "registration failed"
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// State is a form submission state.
type State int

// Form states. A form starts in Editing and leaves Submitting exactly once per submission.
const (
	Editing State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome describes the result of a Submit call.
type Outcome struct {
	State   State
	User    domain.UserWihtoutPassword
	Message string
	Errors  Errors
	Err     error
}

// Controller owns the state of one registration form.
type Controller struct {
	registrar Registrar
	notifier  Notifier

	mu     sync.Mutex
	values Values
	errors Errors
	state  State
}

// NewController returns an empty form in the Editing state.
func NewController(r Registrar, n Notifier) *Controller {
	return &Controller{
		registrar: r,
		notifier:  n,
		errors:    make(Errors),
	}
}

// Change sets one field and re-runs validation.
func (c *Controller) Change(field, value string) (Errors, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		return c.errors.clone(), ErrSubmitInProgress
	}

	switch field {
	case FieldUsername:
		c.values.Username = value
	case FieldEmail:
		c.values.Email = value
	case FieldPassword:
		c.values.Password = value
	case FieldPassword2:
		c.values.Password2 = value
	default:
		return c.errors.clone(), fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	c.state = Editing
	c.errors = Validate(c.values)

	return c.errors.clone(), nil
}

// Fill sets every field at once and re-runs validation.
func (c *Controller) Fill(v Values) (Errors, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		return c.errors.clone(), ErrSubmitInProgress
	}

	c.values = v
	c.state = Editing
	c.errors = Validate(c.values)

	return c.errors.clone(), nil
}

// SubmitDisabled reports whether the submit control is disabled: the password and its
// confirmation differ.
func (c *Controller) SubmitDisabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.values.Password != c.values.Password2
}

// Strength rates the live password. It never affects validation.
func (c *Controller) Strength() Strength {
	c.mu.Lock()
	defer c.mu.Unlock()

	return MeasureStrength(c.values.Password)
}

// State returns the current submission state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Values returns the current field values.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.values
}

// Errors returns the current validation errors.
func (c *Controller) Errors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.errors.clone()
}

// Submit validates the form and, when valid, registers the user.
//
// An invalid form returns ErrInvalidForm without calling the Registrar. A rejected
// registration is not an error of Submit: it moves the form to Failed, keeps the values
// and notifies the first message. A successful one moves the form to Succeeded, resets it
// and notifies a welcome message.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	l := zerolog.Ctx(ctx)

	c.mu.Lock()

	if c.state == Submitting {
		c.mu.Unlock()
		return Outcome{State: Submitting}, ErrSubmitInProgress
	}

	c.errors = Validate(c.values)
	if len(c.errors) > 0 || c.values.Password != c.values.Password2 {
		out := Outcome{State: c.state, Errors: c.errors.clone()}
		c.mu.Unlock()

		return out, ErrInvalidForm
	}

	c.state = Submitting
	arg := domain.RegisterParams{
		Username: c.values.Username,
		Password: c.values.Password,
		Email:    c.values.Email,
	}

	c.mu.Unlock()

	user, err := c.registrar.Register(ctx, arg)

	c.mu.Lock()

	var out Outcome

	if err != nil {
		c.state = Failed
		out = Outcome{State: Failed, Message: firstMessage(err), Errors: c.errors.clone(), Err: err}
	} else {
		c.state = Succeeded
		c.values = Values{}
		c.errors = make(Errors)
		out = Outcome{
			State:   Succeeded,
			User:    user,
			Message: fmt.Sprintf("%s, welcome to Money Guard!!!", user.Username),
			Errors:  make(Errors),
		}
	}

	c.mu.Unlock()

	if out.State == Failed {
		l.Info().Err(err).Str("username", arg.Username).Msg("registration rejected")
		c.notifier.Error(ctx, out.Message)
	} else {
		l.Info().Str("username", user.Username).Msg("user registered")
		c.notifier.Success(ctx, out.Message)
	}

	return out, nil
}

func firstMessage(err error) string {
	var re *RegistrationError
	if errors.As(err, &re) {
		return re.Error()
	}

	return err.Error()
}
