package statsd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	datagramsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "statsd",
		Name:      "datagrams_sent_total",
		Help:      "The total number of datagrams written to the collector.",
	})
	bytesSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "statsd",
		Name:      "bytes_sent_total",
		Help:      "The total number of payload bytes written to the collector.",
	})
	datagramsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statsd",
		Name:      "datagrams_dropped_total",
		Help:      "The total number of measurements that were not sent because the client was unopened or the sampler rejected them.",
	}, []string{"reason"})
	clientErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statsd",
		Name:      "errors_total",
		Help:      "The total number of errors reported by statsd clients.",
	}, []string{"kind"})

	droppedUnopened = datagramsDropped.WithLabelValues("unopened")
	droppedSampled  = datagramsDropped.WithLabelValues("sampled")

	connectionErrors   = clientErrors.WithLabelValues("connection")
	transmissionErrors = clientErrors.WithLabelValues("transmission")
	closeErrors        = clientErrors.WithLabelValues("close")
)
