package config

import (
	"flag"
	"strings"

	"github.com/grafana/globalconf"
	"github.com/grafana/mt-statsd/statsd"
	log "github.com/sirupsen/logrus"
)

var enabled bool
var host string
var port int
var prefix string
var sampleRate float64

func ConfigSetup() {
	fs := flag.NewFlagSet("statsd", flag.ExitOnError)
	fs.BoolVar(&enabled, "enabled", true, "enable sending statsd messages for instrumentation")
	fs.StringVar(&host, "host", "localhost", "statsd collector hostname or IPv4 address")
	fs.IntVar(&port, "port", 8125, "statsd collector UDP port")
	fs.StringVar(&prefix, "prefix", "metrictank.stats.default.$instance", "prefix for every key (will add trailing dot automatically if needed)")
	fs.Float64Var(&sampleRate, "sample-rate", 1, "default fraction of measurements to send, in (0,1]")
	globalconf.Register("statsd", fs, flag.ExitOnError)
}

func ConfigProcess(instance string) {
	if !enabled {
		return
	}
	if port <= 0 || port > 65535 {
		log.Fatalf("statsd: port must be in 1..65535, got %d", port)
	}
	if sampleRate <= 0 || sampleRate > 1 {
		log.Fatalf("statsd: sample-rate must be in (0,1], got %f", sampleRate)
	}
	prefix = strings.Replace(prefix, "$instance", instance, -1)
	if len(prefix) != 0 && !strings.HasSuffix(prefix, ".") {
		prefix = prefix + "."
	}
}

// SampleRate returns the configured default sample rate
func SampleRate() float32 {
	return float32(sampleRate)
}

// Start returns an opened client.
// the configured prefix is applied first so opts can override it.
// when sending is disabled the client is opened on a backend that discards everything.
func Start(opts ...statsd.Option) *statsd.Client {
	if !enabled {
		log.Warn("running without statsd instrumentation.")
		c := statsd.New(append(opts[:len(opts):len(opts)], statsd.WithDialer(statsd.DevnullDialer))...)
		c.Open("127.0.0.1", 8125)
		return c
	}
	c := statsd.New(append([]statsd.Option{statsd.WithPrefix(prefix)}, opts...)...)
	c.Open(host, port)
	return c
}
