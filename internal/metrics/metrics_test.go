package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSubmission(t *testing.T) {
	m := New()

	m.ObserveSubmission("buttons", 200)
	m.ObserveSubmission("buttons", 200)
	m.ObserveSubmission("customer", 400)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues("buttons", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissions.WithLabelValues("customer", "400")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.submissions.WithLabelValues("product", "500")))
}

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodPost, "/api/demo/product", 400, 3*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/demo/product", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveSubmission("employee", 200)

	assert.Equal(t, 0.0, testutil.ToFloat64(b.submissions.WithLabelValues("employee", "200")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSubmission("product", 400)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `formdemo_form_submissions_total{code="400",form="product"} 1`)
}
