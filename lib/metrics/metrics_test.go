package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleMetrics(t *testing.T) {
	m := NewSampleMetrics("metrics-test")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.FramesRendered))

	m.FramesRendered.Inc()
	m.FramesRendered.Inc()
	m.FrameSeconds.Observe(0.016)
	assert.Equal(t, 2.0, testutil.ToFloat64(FramesRendered.WithLabelValues("metrics-test")))
}

func TestHandlerExposesCounters(t *testing.T) {
	NewSampleMetrics("handler-test")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `dashgl_frames_rendered_total{sample="handler-test"} 0`)
}

func TestServeInBackgroundDisabled(t *testing.T) {
	assert.Nil(t, ServeInBackground(""))
}
