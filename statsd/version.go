package statsd

// version is set at build time via -ldflags "-X github.com/grafana/mt-statsd/statsd.version=..."
var version = "1.1.0"

// Version returns the build identifier of the client
func Version() string {
	return version
}
