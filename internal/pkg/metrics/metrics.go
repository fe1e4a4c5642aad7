package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ams"

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "route", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	LoginAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "login_attempts_total", Help: "Login attempts by role and outcome",
	}, []string{"role", "outcome"})
	Registrations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "registrations_total", Help: "Registration attempts by role and outcome",
	}, []string{"role", "outcome"})
	AchievementSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "achievement_submissions_total", Help: "Achievement submissions by outcome",
	}, []string{"outcome"})
	CertificateUploads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "certificate_uploads_total", Help: "Certificate uploads by outcome",
	}, []string{"outcome"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

// Outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

func init() {
	prometheus.MustRegister(
		HTTPRequests,
		HTTPDuration,
		LoginAttempts,
		Registrations,
		AchievementSubmissions,
		CertificateUploads,
		DBPing,
	)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
