package metric

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	contractCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byzantine_contract_calls_total",
			Help: "Total number of contract calls issued",
		},
		[]string{"protocol", "method"},
	)

	contractCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "byzantine_contract_call_duration_seconds",
			Help:    "Contract call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"protocol", "method"},
	)

	contractErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "byzantine_contract_errors_total",
			Help: "Total number of failed contract calls",
		},
		[]string{"protocol", "method"},
	)
)

type Server struct {
	conf *Config
}

type Config struct {
	Port int `default:"4014"`
}

func New(conf *Config) *Server {
	if conf == nil {
		conf = &Config{}
		envconfig.MustProcess("metric", conf)
	}
	return &Server{conf: conf}
}

func (s *Server) Start() error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", s.conf.Port), nil)
}

// RecordContractCall records one contract call and its duration
func RecordContractCall(protocol, method string, duration time.Duration) {
	contractCallsTotal.WithLabelValues(protocol, method).Inc()
	contractCallDuration.WithLabelValues(protocol, method).Observe(duration.Seconds())
}

// RecordContractError records a failed contract call
func RecordContractError(protocol, method string) {
	contractErrorsTotal.WithLabelValues(protocol, method).Inc()
}
