// Package metrics provides Prometheus metrics for orientation scans and
// preview computation.
package metrics

import (
	"errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
	"vincit.fi/image-preview/common/imagereader"
)

const (
	ScanOrientation = "orientation"
	ScanNotJpeg     = "not_jpeg"
	ScanNoExif      = "no_exif"
	ScanTruncated   = "truncated"
	ScanFailed      = "failed"

	PreviewOk      = "ok"
	PreviewInvalid = "invalid_dimensions"
	PreviewFailed  = "failed"
)

type Metrics struct {
	registry        *prometheus.Registry
	scanResults     *prometheus.CounterVec
	previews        *prometheus.CounterVec
	previewDuration prometheus.Histogram
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	return &Metrics{
		registry: registry,
		scanResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imagepreview_scan_results_total",
				Help: "Orientation scans by result",
			},
			[]string{"result"},
		),
		previews: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "imagepreview_previews_total",
				Help: "Computed previews by status",
			},
			[]string{"status"},
		),
		previewDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "imagepreview_preview_duration_seconds",
				Help:    "Time to compute a preview including the orientation scan",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
	}
}

// ScanResult maps a scan error to its result label.
func ScanResult(err error) string {
	switch {
	case err == nil:
		return ScanOrientation
	case errors.Is(err, imagereader.ErrNotJpeg):
		return ScanNotJpeg
	case errors.Is(err, imagereader.ErrNoExif):
		return ScanNoExif
	case errors.Is(err, imagereader.ErrTruncated):
		return ScanTruncated
	}
	return ScanFailed
}

func (s *Metrics) RecordScan(err error) {
	s.scanResults.WithLabelValues(ScanResult(err)).Inc()
}

func (s *Metrics) RecordPreview(status string, duration time.Duration) {
	s.previews.WithLabelValues(status).Inc()
	s.previewDuration.Observe(duration.Seconds())
}

func (s *Metrics) ScanResults() *prometheus.CounterVec {
	return s.scanResults
}

func (s *Metrics) Previews() *prometheus.CounterVec {
	return s.previews
}

// Handler returns the Prometheus metrics HTTP handler for this registry.
func (s *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// WriteToTextfile writes the metrics in the format of the node exporter
// textfile collector.
func (s *Metrics) WriteToTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, s.registry)
}
