package contact

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/schedule"
)

// Templates names the relay template used by each form.
type Templates struct {
	Inquiry string
	Quick   string
}

// Result is the outcome of one Submit call.
type Result struct {
	Status       Status
	SubmissionID string
	// Dispatched is true when the relay was called.
	Dispatched bool
	Err        error
}

// Form holds the field values and shared status of both contact forms.
// Every terminal status is cleared back to idle after ClearDelay.
type Form struct {
	relay     domain.Relay
	templates Templates
	timers    *schedule.Group
	newID     func() string

	mu        sync.Mutex
	fields    Fields
	status    Status
	clear     schedule.Timer
	inflight  map[domain.Form]bool
	listeners []func(Status)
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithTemplates sets the relay template ids.
func WithTemplates(t Templates) FormOption {
	return func(f *Form) { f.templates = t }
}

// WithIDs overrides the submission id generator.
func WithIDs(fn func() string) FormOption {
	return func(f *Form) { f.newID = fn }
}

// NewForm creates an idle form. All of its timers run on sched and are
// cancelled by Close.
func NewForm(relay domain.Relay, sched schedule.Scheduler, opts ...FormOption) *Form {
	f := &Form{
		relay:     relay,
		templates: Templates{Inquiry: "contact_inquiry", Quick: "contact_quick"},
		timers:    schedule.NewGroup(sched),
		newID:     uuid.NewString,
		status:    StatusIdle,
		inflight:  make(map[domain.Form]bool),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// OnStatus registers fn to observe every status change.
func (f *Form) OnStatus(fn func(Status)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}

// SetFields replaces the field values, as typing would.
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// Fields returns the current field values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Status returns the current banner status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit validates the named form and, when valid, makes exactly one relay
// call with the current field values. A second Submit for a form whose relay
// call is still outstanding is ignored.
func (f *Form) Submit(ctx context.Context, form domain.Form) Result {
	f.mu.Lock()
	if f.inflight[form] {
		f.mu.Unlock()
		return Result{Status: StatusSubmitting}
	}

	var verr error
	if form == domain.FormQuick {
		verr = ValidateQuick(f.fields)
	} else {
		verr = ValidateInquiry(f.fields)
	}
	if verr != nil {
		st := StatusFor(verr)
		notify := f.setStatusLocked(st)
		f.mu.Unlock()
		notifyAll(notify, st)
		return Result{Status: st, Err: verr}
	}

	snapshot := f.fields
	f.inflight[form] = true
	notify := f.setStatusLocked(StatusSubmitting)
	f.mu.Unlock()
	notifyAll(notify, StatusSubmitting)

	id := f.newID()
	err := f.relay.Send(ctx, f.message(form, id, snapshot))

	f.mu.Lock()
	delete(f.inflight, form)
	st := outcome(form, err)
	if err == nil {
		f.fields = clearFields(form, f.fields)
	}
	notify = f.setStatusLocked(st)
	f.mu.Unlock()
	notifyAll(notify, st)

	return Result{Status: st, SubmissionID: id, Dispatched: true, Err: err}
}

// Close cancels the pending auto-clear. The status stays where it is.
func (f *Form) Close() {
	f.timers.Stop()
}

// setStatusLocked sets st and (re)arms the auto-clear timer. It returns the
// listeners to notify once the lock is released.
func (f *Form) setStatusLocked(st Status) []func(Status) {
	f.status = st
	if f.clear != nil {
		f.clear.Stop()
		f.clear = nil
	}
	if st.Terminal() {
		f.clear = f.timers.After(ClearDelay, f.clearStatus)
	}
	return append([]func(Status){}, f.listeners...)
}

func (f *Form) clearStatus() {
	f.mu.Lock()
	f.clear = nil
	if !f.status.Terminal() {
		f.mu.Unlock()
		return
	}
	f.status = StatusIdle
	notify := append([]func(Status){}, f.listeners...)
	f.mu.Unlock()
	notifyAll(notify, StatusIdle)
}

func (f *Form) message(form domain.Form, id string, fields Fields) domain.RelayMessage {
	msg := domain.RelayMessage{SubmissionID: id, Form: form}
	if form == domain.FormQuick {
		email := strings.TrimSpace(fields.QuickEmail)
		msg.TemplateID = f.templates.Quick
		msg.Params = map[string]string{
			"from_name":  email,
			"from_email": email,
			"subject":    "Quick message",
			"message":    fields.QuickMessage,
			"reply_to":   email,
		}
		return msg
	}
	email := strings.TrimSpace(fields.Email)
	msg.TemplateID = f.templates.Inquiry
	msg.Params = map[string]string{
		"from_name":  strings.TrimSpace(fields.Name),
		"from_email": email,
		"phone":      strings.TrimSpace(fields.Phone),
		"subject":    strings.TrimSpace(fields.Subject),
		"message":    fields.Message,
		"reply_to":   email,
	}
	return msg
}

func outcome(form domain.Form, err error) Status {
	switch {
	case err == nil && form == domain.FormQuick:
		return StatusSuccessQuick
	case err == nil:
		return StatusSuccess
	case form == domain.FormQuick:
		return StatusErrorQuick
	default:
		return StatusError
	}
}

func clearFields(form domain.Form, f Fields) Fields {
	if form == domain.FormQuick {
		f.QuickEmail, f.QuickMessage = "", ""
		return f
	}
	f.Name, f.Email, f.Phone, f.Subject, f.Message = "", "", "", "", ""
	return f
}

func notifyAll(fns []func(Status), st Status) {
	for _, fn := range fns {
		fn(st)
	}
}
