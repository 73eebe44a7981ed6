package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()
	m.Observe("ahp", time.Now(), nil)
	m.Observe("ahp", time.Now(), nil)
	m.Observe("ahp", time.Now(), errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Computations.WithLabelValues("ahp", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Computations.WithLabelValues("ahp", OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestHandler(t *testing.T) {
	m := New()
	m.EntropyFallbacks.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ecoeval_entropy_fallback_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNewIsolated(t *testing.T) {
	a, b := New(), New()
	a.ConsistencyRejected.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ConsistencyRejected))
}
