package metrics

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ShaderBuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashgl_shader_builds_total",
		Help: "Total number of shader program builds, by result",
	}, []string{"result"})
	ShaderReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashgl_shader_reloads_total",
		Help: "Total number of shader hot reloads, by result",
	}, []string{"result"})
	FramesRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashgl_frames_rendered_total",
		Help: "Total number of frames rendered per sample",
	}, []string{"sample"})
	FrameSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashgl_frame_seconds",
		Help:    "Time between two presented frames",
		Buckets: []float64{0.001, 0.004, 0.008, 0.016, 0.033, 0.066, 0.1, 0.25},
	}, []string{"sample"})
)

type SampleMetrics struct {
	FramesRendered prometheus.Counter
	FrameSeconds   prometheus.Observer
}

func NewSampleMetrics(sample string) SampleMetrics {
	s := SampleMetrics{
		FramesRendered: FramesRendered.WithLabelValues(sample),
		FrameSeconds:   FrameSeconds.WithLabelValues(sample),
	}
	s.FramesRendered.Add(0)
	return s
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}

// ServeInBackground exposes Handler on bind. An empty bind disables it.
func ServeInBackground(bind string) *http.Server {
	if bind == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())
	srv := &http.Server{Addr: bind, Handler: mux}

	slog.Info(fmt.Sprintf("serving metrics on %s", bind), slog.String("module", "metrics"))
	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			slog.Error(fmt.Sprintf("metrics server stopped: %s", err), slog.String("module", "metrics"))
		}
	}()
	return srv
}
