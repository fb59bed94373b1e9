package contact

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/backstory/internal/domain"
	"github.com/nfrund/backstory/internal/pubsub"
	"github.com/nfrund/backstory/internal/schedule"
)

type fakeRelay struct {
	mu    sync.Mutex
	calls []domain.RelayMessage
	err   error
}

func (r *fakeRelay) Send(_ context.Context, msg domain.RelayMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, msg)
	return r.err
}

func (r *fakeRelay) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func validInquiry() Fields {
	return Fields{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "",
		Subject: "Booking",
		Message: "Are you free in May?",
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.co"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("a b@c.de"))
	assert.False(t, ValidEmail("@c.de"))
}

func TestEmailFormatTagRegistered(t *testing.T) {
	require.NotPanics(t, func() {
		assert.NoError(t, validatorInstance.Var("a@b.co", "email_format"))
		assert.Error(t, validatorInstance.Var("a@b", "email_format"))
	})
}

func TestValidateInquiry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Fields)
		want   error
	}{
		{"valid without phone", func(*Fields) {}, nil},
		{"missing name", func(f *Fields) { f.Name = "" }, ErrEmpty},
		{"whitespace subject", func(f *Fields) { f.Subject = "   " }, ErrEmpty},
		{"bad email", func(f *Fields) { f.Email = "ada@example" }, ErrInvalidEmail},
		{"empty beats bad email", func(f *Fields) { f.Email = "nope"; f.Message = "" }, ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validInquiry()
			tt.mutate(&f)
			err := ValidateInquiry(f)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestForm_EmptyFieldLeavesValuesAndClears(t *testing.T) {
	relay := &fakeRelay{}
	clock := schedule.NewManual()
	form := NewForm(relay, clock)

	fields := validInquiry()
	fields.Subject = ""
	form.SetFields(fields)

	res := form.Submit(context.Background(), domain.FormInquiry)
	assert.Equal(t, StatusErrorEmpty, res.Status)
	assert.False(t, res.Dispatched)
	assert.Equal(t, fields, form.Fields())
	assert.Zero(t, relay.count())

	clock.Advance(ClearDelay - time.Millisecond)
	assert.Equal(t, StatusErrorEmpty, form.Status())
	clock.Advance(time.Millisecond)
	assert.Equal(t, StatusIdle, form.Status())
}

func TestForm_InvalidEmail(t *testing.T) {
	relay := &fakeRelay{}
	form := NewForm(relay, schedule.NewManual())
	form.SetFields(Fields{QuickEmail: "me@nowhere", QuickMessage: "hi"})

	res := form.Submit(context.Background(), domain.FormQuick)
	assert.Equal(t, StatusErrorInvalidEmail, res.Status)
	assert.Zero(t, relay.count())
}

func TestForm_SuccessSendsOnceAndClears(t *testing.T) {
	relay := &fakeRelay{}
	clock := schedule.NewManual()
	form := NewForm(relay, clock,
		WithTemplates(Templates{Inquiry: "tpl_inq", Quick: "tpl_quick"}),
		WithIDs(func() string { return "id-1" }),
	)

	var seen []Status
	form.OnStatus(func(s Status) { seen = append(seen, s) })

	fields := validInquiry()
	fields.QuickMessage = "keep me"
	form.SetFields(fields)

	res := form.Submit(context.Background(), domain.FormInquiry)
	require.Equal(t, StatusSuccess, res.Status)
	assert.Equal(t, "id-1", res.SubmissionID)
	require.Equal(t, 1, relay.count())

	msg := relay.calls[0]
	assert.Equal(t, "tpl_inq", msg.TemplateID)
	assert.Equal(t, "Ada", msg.Params["from_name"])
	assert.Equal(t, "ada@example.com", msg.Params["reply_to"])
	assert.Equal(t, "Booking", msg.Params["subject"])

	after := form.Fields()
	assert.Empty(t, after.Name)
	assert.Empty(t, after.Message)
	assert.Equal(t, "keep me", after.QuickMessage, "only the submitted form is cleared")

	clock.Advance(ClearDelay)
	assert.Equal(t, []Status{StatusSubmitting, StatusSuccess, StatusIdle}, seen)
}

func TestForm_FailureRetainsFields(t *testing.T) {
	relay := &fakeRelay{err: errors.New("503")}
	clock := schedule.NewManual()
	form := NewForm(relay, clock)

	fields := Fields{QuickEmail: "me@example.com", QuickMessage: "hello"}
	form.SetFields(fields)

	res := form.Submit(context.Background(), domain.FormQuick)
	assert.Equal(t, StatusErrorQuick, res.Status)
	assert.Error(t, res.Err)
	assert.Equal(t, fields, form.Fields())
	assert.Equal(t, 1, relay.count(), "no automatic retry")

	clock.Advance(ClearDelay)
	assert.Equal(t, StatusIdle, form.Status())
	assert.Equal(t, 1, relay.count())
}

func TestForm_NewStatusRearmsClear(t *testing.T) {
	clock := schedule.NewManual()
	form := NewForm(&fakeRelay{}, clock)

	form.Submit(context.Background(), domain.FormQuick)
	clock.Advance(2 * time.Second)
	form.Submit(context.Background(), domain.FormQuick)

	clock.Advance(2 * time.Second)
	assert.Equal(t, StatusErrorEmpty, form.Status(), "second error has its own delay")
	clock.Advance(time.Second)
	assert.Equal(t, StatusIdle, form.Status())
}

func TestForm_CloseCancelsClear(t *testing.T) {
	clock := schedule.NewManual()
	form := NewForm(&fakeRelay{}, clock)

	form.Submit(context.Background(), domain.FormInquiry)
	form.Close()
	clock.Advance(ClearDelay)

	assert.Equal(t, StatusErrorEmpty, form.Status())
	assert.Zero(t, clock.Pending())
}

func TestStatus(t *testing.T) {
	assert.Len(t, Statuses(), 8)
	for _, st := range Statuses() {
		parsed, ok := ParseStatus(string(st))
		assert.True(t, ok)
		assert.Equal(t, st, parsed)
	}
	_, ok := ParseStatus("bogus")
	assert.False(t, ok)

	assert.Empty(t, StatusIdle.Message())
	assert.False(t, StatusSubmitting.Terminal())
	assert.True(t, StatusErrorEmpty.IsError())
	assert.False(t, StatusSuccessQuick.IsError())
}

func TestService_PublishesOutcome(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Outcome, 1)
	require.NoError(t, pubsub.Subscribe(ctx, bridge, EventFailed, func(_ context.Context, id string, o Outcome) error {
		assert.NotEmpty(t, id)
		got <- o
		return nil
	}))

	relay := &fakeRelay{err: domain.ErrRelayFailed}
	svc := NewService(relay, "fake", Templates{}, bridge, WithScheduler(schedule.NewManual()))

	sub := svc.Submit(ctx, domain.FormInquiry, validInquiry())
	assert.Equal(t, StatusError, sub.Status)
	assert.Equal(t, validInquiry(), sub.Fields)

	select {
	case o := <-got:
		assert.Equal(t, "inquiry", o.Form)
		assert.Equal(t, StatusError, o.Status)
		assert.Contains(t, o.Error, "rejected")
	case <-time.After(2 * time.Second):
		t.Fatal("no failure event")
	}
}

func TestAudit_LogsEvents(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&lockedWriter{mu: &mu, w: &buf}, nil))
	require.NoError(t, Audit(ctx, bridge, logger))

	svc := NewService(&fakeRelay{}, "fake", Templates{}, bridge, WithScheduler(schedule.NewManual()))
	svc.Submit(ctx, domain.FormQuick, Fields{QuickEmail: "x@y.zz", QuickMessage: "yo"})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return bytes.Contains(buf.Bytes(), []byte("contact.submission.sent"))
	}, 2*time.Second, 10*time.Millisecond)
}

type lockedWriter struct {
	mu *sync.Mutex
	w  *bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
