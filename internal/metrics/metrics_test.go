package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ExposesContactCounters(t *testing.T) {
	ContactSubmissions.WithLabelValues("quick", "success_quick").Inc()
	assert.GreaterOrEqual(t, testutil.ToFloat64(ContactSubmissions.WithLabelValues("quick", "success_quick")), 1.0)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "backstory_contact_submissions_total")
}
