package submission

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/patkim97/folio/pkg/contact"
	"github.com/patkim97/folio/pkg/i18n"
	"github.com/patkim97/folio/pkg/logger"
	"github.com/patkim97/folio/pkg/statemachine"
)

// State is the visible status of a form.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Event drives the form's state machine.
type Event string

const (
	EventSubmit  Event = "submit"
	EventInvalid Event = "invalid"
	EventSucceed Event = "succeed"
	EventFail    Event = "fail"
	EventOpen    Event = "open"
)

// Field names one of the four inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Translation keys of the localized status copy.
const (
	keySending = "contact.modal.sending"
	keySuccess = "contact.modal.success"
	keyError   = "contact.modal.error"
)

// Outcome is a snapshot of the form status.
type Outcome struct {
	State   State
	Message string
}

// Listener observes state changes. It runs outside the form lock.
type Listener func(from, to State)

type transition struct {
	from, to State
}

// Form is one contact form instance.
type Form struct {
	mu         sync.Mutex
	machine    *statemachine.Machine[State, Event]
	fields     contact.Message
	reason     string
	pending    []transition
	transport  Transport
	translator *i18n.Translator
	locale     func() i18n.Locale
	listeners  []Listener
	logger     *slog.Logger
}

// Option configures a Form.
type Option func(*Form)

// WithTranslator sets the translator used for status copy.
func WithTranslator(tr *i18n.Translator) Option {
	return func(f *Form) {
		if tr != nil {
			f.translator = tr
		}
	}
}

// WithLocale sets the source of the current locale, typically a
// cascade resolver's Current method. It is read on every message.
func WithLocale(current func() i18n.Locale) Option {
	return func(f *Form) {
		if current != nil {
			f.locale = current
		}
	}
}

// WithListener registers a state change observer.
func WithListener(l Listener) Option {
	return func(f *Form) {
		if l != nil {
			f.listeners = append(f.listeners, l)
		}
	}
}

// WithLogger sets the form logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates an idle form sending through transport. Without
// WithTranslator the embedded translations are loaded.
func New(ctx context.Context, transport Transport, opts ...Option) (*Form, error) {
	if transport == nil {
		return nil, ErrNilTransport
	}

	f := &Form{
		transport: transport,
		locale:    func() i18n.Locale { return i18n.DefaultLocale },
		logger:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.translator == nil {
		tr, err := i18n.NewDefaultTranslator(ctx, i18n.WithLogger(f.logger))
		if err != nil {
			return nil, err
		}
		f.translator = tr
	}

	rearmable := []State{StateIdle, StateSucceeded, StateFailed}
	f.machine = statemachine.New[State, Event](StateIdle,
		statemachine.WithTransitionFrom[State, Event](rearmable, StateSubmitting, EventSubmit,
			statemachine.WithGuard[State, Event](func(_ context.Context, _ State, _ Event, data any) bool {
				msg, ok := data.(contact.Message)
				return ok && contact.Validate(msg) == nil
			}),
		),
		statemachine.WithTransitionFrom[State, Event](rearmable, StateFailed, EventInvalid),
		statemachine.WithTransition[State, Event](StateSubmitting, StateSucceeded, EventSucceed),
		statemachine.WithTransition[State, Event](StateSubmitting, StateFailed, EventFail),
		statemachine.WithTransitionFrom[State, Event](rearmable, StateIdle, EventOpen),
		statemachine.WithListener[State, Event](func(ctx context.Context, from, to State, event Event) {
			f.pending = append(f.pending, transition{from: from, to: to})
			f.logger.DebugContext(ctx, "contact form transition",
				logger.Component("submission"),
				slog.String("from", string(from)),
				slog.String("to", string(to)),
				logger.Event(string(event)),
			)
		}),
	)

	return f, nil
}

// SetField replaces one input value. Editing is allowed in every state.
func (f *Form) SetField(field Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.fields.Name = value
	case FieldEmail:
		f.fields.Email = value
	case FieldSubject:
		f.fields.Subject = value
	case FieldMessage:
		f.fields.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Fields returns the current input values as typed.
func (f *Form) Fields() contact.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// State returns the current state.
func (f *Form) State() State {
	return f.machine.Current()
}

// Outcome returns the current state with its localized message.
func (f *Form) Outcome() Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcomeLocked()
}

// Open re-arms the form: idle state, no error. Fields are kept.
// It fails with ErrInFlight while a submission is pending.
func (f *Form) Open(ctx context.Context) error {
	f.mu.Lock()
	if f.machine.Is(StateSubmitting) {
		f.mu.Unlock()
		return ErrInFlight
	}

	err := f.machine.Fire(ctx, EventOpen, nil)
	f.reason = ""
	f.unlockAndNotify()
	return err
}

// Submit validates the trimmed fields and sends them. Invalid input moves
// the form to failed with the generic localized error and no transport
// call. On success the fields are cleared; on failure they are kept and the
// message is the server's reason when it gave one.
//
// The returned error is the validation or delivery cause, or ErrInFlight
// when another submission is pending. The form state is updated either way.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	f.mu.Lock()
	if f.machine.Is(StateSubmitting) {
		out := f.outcomeLocked()
		f.mu.Unlock()
		return out, ErrInFlight
	}

	msg := f.fields.Normalize()
	if err := f.machine.Fire(ctx, EventSubmit, msg); err != nil {
		if !statemachine.IsTransitionRejectedError(err) {
			f.mu.Unlock()
			return f.Outcome(), err
		}

		cause := contact.Validate(msg)
		_ = f.machine.Fire(ctx, EventInvalid, nil)
		f.reason = f.translate(keyError)
		out := f.outcomeLocked()
		f.unlockAndNotify()
		return out, cause
	}
	f.reason = ""
	f.unlockAndNotify()

	sendErr := f.transport.Send(ctx, msg)

	f.mu.Lock()
	if sendErr != nil {
		f.reason = f.failureReason(sendErr)
		_ = f.machine.Fire(ctx, EventFail, nil)
		f.logger.WarnContext(ctx, "contact submission failed", logger.Component("submission"), logger.Error(sendErr))
	} else {
		f.fields = contact.Message{}
		_ = f.machine.Fire(ctx, EventSucceed, nil)
	}
	out := f.outcomeLocked()
	f.unlockAndNotify()
	return out, sendErr
}

func (f *Form) failureReason(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) && serverErr.Message != "" {
		return serverErr.Message
	}
	return f.translate(keyError)
}

func (f *Form) outcomeLocked() Outcome {
	state := f.machine.Current()
	out := Outcome{State: state}
	switch state {
	case StateSubmitting:
		out.Message = f.translate(keySending)
	case StateSucceeded:
		out.Message = f.translate(keySuccess)
	case StateFailed:
		out.Message = f.reason
	}
	return out
}

func (f *Form) translate(key string) string {
	return f.translator.T(f.locale(), key)
}

// unlockAndNotify releases f.mu and then delivers queued transitions.
func (f *Form) unlockAndNotify() {
	pending := f.pending
	f.pending = nil
	f.mu.Unlock()

	for _, t := range pending {
		for _, l := range f.listeners {
			l(t.from, t.to)
		}
	}
}
