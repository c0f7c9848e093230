package statsd

import (
	"fmt"
	"net"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// ConnectionError is reported when Open can't resolve the collector or can't create the socket.
// the client stays unopened.
type ConnectionError struct {
	Host string
	Port int
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("statsd: cannot open %s: %s", net.JoinHostPort(e.Host, strconv.Itoa(e.Port)), e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// TransmissionError is reported when a datagram could not be written.
// the metric is dropped, the client stays open.
type TransmissionError struct {
	Addr *net.UDPAddr
	Err  error
}

func (e *TransmissionError) Error() string {
	return fmt.Sprintf("statsd: send to %s failed: %s", e.Addr, e.Err)
}

func (e *TransmissionError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives every failure of a client.
// it is called while the client is locked, so it must not block or call back into the client.
type ErrorHandler func(error)

// LogErrors is the default ErrorHandler. it writes the error to the logrus standard logger.
func LogErrors(err error) {
	switch e := err.(type) {
	case *TransmissionError:
		log.WithFields(log.Fields{"collector": e.Addr.String(), "error": e.Err}).Warn("statsd: send failed. metric dropped")
	case *ConnectionError:
		log.WithFields(log.Fields{"host": e.Host, "port": e.Port, "error": e.Err}).Error("statsd: cannot open connection")
	default:
		log.WithError(err).Error("statsd: client error")
	}
}
