package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/backstory/internal/config"
	"github.com/nfrund/backstory/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func inquiry() domain.RelayMessage {
	return domain.RelayMessage{
		SubmissionID: "sub-1",
		Form:         domain.FormInquiry,
		TemplateID:   "contact_inquiry",
		Params: map[string]string{
			"from_name":  "Ada",
			"from_email": "ada@example.com",
			"phone":      "",
			"subject":    "Booking",
			"message":    "Hello <there>",
			"reply_to":   "ada@example.com",
		},
	}
}

func TestEmailJSRelay_PostsTemplateParams(t *testing.T) {
	var got emailJSPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	r := NewEmailJSRelay(srv.URL, "svc", "pub", "", time.Second, discardLogger())
	require.NoError(t, r.Send(context.Background(), inquiry()))

	assert.Equal(t, "svc", got.ServiceID)
	assert.Equal(t, "contact_inquiry", got.TemplateID)
	assert.Equal(t, "pub", got.UserID)
	assert.Equal(t, "Ada", got.TemplateParams["from_name"])
}

func TestEmailJSRelay_ErrorStatusIsRelayFailure(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	r := NewEmailJSRelay(srv.URL, "svc", "bad", "", time.Second, discardLogger())
	err := r.Send(context.Background(), inquiry())

	assert.ErrorIs(t, err, domain.ErrRelayFailed)
	assert.Equal(t, 1, calls, "exactly one attempt")
}

func TestResendRelay_RendersHTML(t *testing.T) {
	var got resendPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"x"}`))
	}))
	defer srv.Close()

	r := NewResendRelay(srv.URL, "key", "", "owner@example.com", time.Second, NewTemplates(), discardLogger())
	require.NoError(t, r.Send(context.Background(), inquiry()))

	assert.Equal(t, "owner@example.com", got.To)
	assert.Equal(t, "Booking", got.Subject)
	assert.Equal(t, "ada@example.com", got.ReplyTo)
	assert.Contains(t, got.HTML, "Hello &lt;there&gt;", "params are escaped")
	assert.NotContains(t, got.HTML, "Phone:", "empty phone is omitted")
}

func TestTemplates_FallbackToFormDefault(t *testing.T) {
	msg := inquiry()
	msg.Form = domain.FormQuick
	msg.TemplateID = "template_x9k2"

	out, err := NewTemplates().Render(msg)
	require.NoError(t, err)
	assert.Contains(t, out, "Quick message")

	msg.TemplateID = "../secret"
	msg.Form = "nope"
	_, err = NewTemplates().Render(msg)
	assert.Error(t, err)
}

func TestSubject(t *testing.T) {
	msg := inquiry()
	assert.Equal(t, "Booking", Subject(msg))

	msg.Params["subject"] = " "
	assert.Equal(t, "New inquiry", Subject(msg))

	msg.Form = domain.FormQuick
	assert.Equal(t, "Quick message from ada@example.com", Subject(msg))
}

func TestLogRelay(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogRelay("owner@example.com", slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, r.Send(context.Background(), inquiry()))
	assert.Contains(t, buf.String(), "component=relay.log")
	assert.Contains(t, buf.String(), "submission_id=sub-1")
}

func TestNew_Factory(t *testing.T) {
	base := map[string]string{"SESSION_SECRET": "s"}
	with := func(kv ...string) config.Provider {
		m := map[string]string{}
		for k, v := range base {
			m[k] = v
		}
		for i := 0; i+1 < len(kv); i += 2 {
			m[kv[i]] = kv[i+1]
		}
		cfg, err := config.LoadFrom(m)
		require.NoError(t, err)
		return cfg
	}

	r, err := New(with(), discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &LogRelay{}, r)

	_, err = New(with("RELAY_PROVIDER", "emailjs"), discardLogger())
	assert.ErrorIs(t, err, domain.ErrRelayNotConfigured)

	r, err = New(with("RELAY_PROVIDER", "emailjs", "RELAY_SERVICE_ID", "svc", "RELAY_PUBLIC_KEY", "pub"), discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &EmailJSRelay{}, r)

	_, err = New(with("RELAY_PROVIDER", "mailgun"), discardLogger())
	assert.ErrorIs(t, err, domain.ErrRelayNotConfigured)

	r, err = New(with("RELAY_PROVIDER", "mailgun", "MAILGUN_DOMAIN", "mg.example.com", "MAILGUN_API_KEY", "k", "RELAY_TO_ADDRESS", "o@example.com"), discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &MailgunRelay{}, r)

	r, err = New(with("RELAY_PROVIDER", "resend", "RESEND_API_KEY", "k", "RELAY_TO_ADDRESS", "o@example.com"), discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &ResendRelay{}, r)
}
