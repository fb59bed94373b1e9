package contact

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/metrics"
	"github.com/nfrund/backstory/internal/pubsub"
	"github.com/nfrund/backstory/internal/schedule"
)

// Service runs one submission per request against a fresh Form, so nothing
// about a visitor's form outlives the request.
type Service struct {
	relay     domain.Relay
	provider  string
	templates Templates
	publisher pubsub.Publisher
	sched     schedule.Scheduler
	logger    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithScheduler overrides the timer source.
func WithScheduler(s schedule.Scheduler) ServiceOption {
	return func(svc *Service) { svc.sched = s }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(svc *Service) { svc.logger = l }
}

// NewService wires a relay (named provider, for metrics) to the forms.
// publisher may be nil.
func NewService(relay domain.Relay, provider string, templates Templates, publisher pubsub.Publisher, opts ...ServiceOption) *Service {
	s := &Service{
		relay:     relay,
		provider:  provider,
		templates: templates,
		publisher: publisher,
		sched:     schedule.Real{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submission is the result of Service.Submit.
type Submission struct {
	Result
	// Fields are the values to re-render: cleared on success, retained otherwise.
	Fields Fields
}

// Submit validates and dispatches one form submission.
func (s *Service) Submit(ctx context.Context, form domain.Form, fields Fields) Submission {
	f := NewForm(&timedRelay{next: s.relay, provider: s.provider}, s.sched, WithTemplates(s.templates))
	defer f.Close()

	f.SetFields(fields)
	res := f.Submit(ctx, form)
	metrics.ContactSubmissions.WithLabelValues(string(form), string(res.Status)).Inc()
	s.publish(ctx, form, res)

	return Submission{Result: res, Fields: f.Fields()}
}

func (s *Service) publish(ctx context.Context, form domain.Form, res Result) {
	out := Outcome{Form: string(form), Status: res.Status}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}

	event := EventSent
	switch {
	case !res.Dispatched:
		event = EventRejected
	case res.Err != nil:
		event = EventFailed
	}

	if s.publisher == nil {
		return
	}
	if err := pubsub.Publish(ctx, s.publisher, event, res.SubmissionID, out); err != nil {
		s.logger.Error("failed to publish contact outcome", "topic", event.Name(), "error", err)
	}
}

// timedRelay records the duration of each relay call.
type timedRelay struct {
	next     domain.Relay
	provider string
}

func (t *timedRelay) Send(ctx context.Context, msg domain.RelayMessage) error {
	start := time.Now()
	err := t.next.Send(ctx, msg)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.RelayDuration.WithLabelValues(t.provider, outcome).Observe(time.Since(start).Seconds())
	return err
}
