// Package statsd emits measurements to a statsd collector.
// every accepted measurement is sent as a single UDP datagram, there is no batching,
// buffering or retrying. failures never reach the caller, they are handed to the
// client's ErrorHandler.
package statsd

import (
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultRate sends every measurement
const DefaultRate float32 = 1

// Client sends measurements to one collector.
// a new client is unopened and silently drops everything until Open succeeds.
type Client struct {
	sync.RWMutex
	conn   *connection // nil while unopened
	prefix string

	dial    Dialer
	resolve Resolver
	rand    Rand
	onError ErrorHandler
}

// Option configures a Client
type Option func(*Client)

// WithPrefix sets the initial key prefix
func WithPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = prefix
	}
}

// WithDialer selects the socket backend
func WithDialer(d Dialer) Option {
	return func(c *Client) {
		c.dial = d
	}
}

// WithResolver replaces the address resolution used by Open
func WithResolver(r Resolver) Option {
	return func(c *Client) {
		c.resolve = r
	}
}

// WithRand gives the client its own source of randomness for sampling decisions.
// concurrent senders draw from it at the same time, so r must be safe for concurrent use.
func WithRand(r Rand) Option {
	return func(c *Client) {
		c.rand = r
	}
}

// WithErrorHandler replaces the default error reporting, which logs
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *Client) {
		c.onError = h
	}
}

// New returns an unopened client
func New(opts ...Option) *Client {
	c := &Client{
		dial:    UDPDialer,
		resolve: net.ResolveUDPAddr,
		onError: LogErrors,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = newRand()
	}
	return c
}

// Open resolves the collector address and creates the socket.
// calling Open on an open client does nothing. on failure a *ConnectionError
// is reported and the client stays unopened.
func (c *Client) Open(host string, port int) {
	c.Lock()
	defer c.Unlock()
	if c.conn != nil {
		return
	}
	if port <= 0 || port > 65535 {
		c.report(&ConnectionError{Host: host, Port: port, Err: errors.Errorf("invalid port %d", port)})
		return
	}
	dest, err := c.resolve("udp4", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		c.report(&ConnectionError{Host: host, Port: port, Err: err})
		return
	}
	if dest.IP == nil {
		// an empty host resolves to no address at all
		c.report(&ConnectionError{Host: host, Port: port, Err: errors.New("no address to send to")})
		return
	}
	sock, err := c.dial()
	if err != nil {
		c.report(&ConnectionError{Host: host, Port: port, Err: errors.Wrap(err, "socket")})
		return
	}
	c.conn = &connection{
		sock: sock,
		dest: dest,
	}
}

// Close releases the socket. the client can be opened again afterwards.
// closing an unopened client does nothing.
func (c *Client) Close() {
	c.Lock()
	defer c.Unlock()
	if c.conn == nil {
		return
	}
	conn := c.conn
	c.conn = nil
	if err := conn.sock.Close(); err != nil {
		c.report(errors.Wrapf(err, "statsd: closing socket for %s", conn.dest))
	}
}

// IsOpen returns whether the client currently has a socket
func (c *Client) IsOpen() bool {
	c.RLock()
	defer c.RUnlock()
	return c.conn != nil
}

// Addr returns the resolved collector address, or nil when unopened
func (c *Client) Addr() *net.UDPAddr {
	c.RLock()
	defer c.RUnlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.dest
}

// SetPrefix replaces the string prepended to the key of every subsequent measurement
func (c *Client) SetPrefix(prefix string) {
	c.Lock()
	c.prefix = prefix
	c.Unlock()
}

// Prefix returns the current key prefix
func (c *Client) Prefix() string {
	c.RLock()
	defer c.RUnlock()
	return c.prefix
}

// Prepare renders a measurement as the line that Send would transmit
func (c *Client) Prepare(key string, value int64, rate float32, unit Unit) string {
	c.RLock()
	prefix := c.prefix
	c.RUnlock()
	return string(AppendMetric(nil, prefix, key, value, rate, unit))
}

// Timing sends a duration in milliseconds
func (c *Client) Timing(key string, ms int64, rate float32) {
	c.Send(key, ms, rate, Timing)
}

// TimingDuration sends d as a timing, truncated to whole milliseconds
func (c *Client) TimingDuration(key string, d time.Duration, rate float32) {
	c.Send(key, int64(d/time.Millisecond), rate, Timing)
}

// Increment adds one to a counter
func (c *Client) Increment(key string, rate float32) {
	c.Count(key, 1, rate)
}

// Decrement subtracts one from a counter
func (c *Client) Decrement(key string, rate float32) {
	c.Count(key, -1, rate)
}

// Count adds value to a counter
func (c *Client) Count(key string, value int64, rate float32) {
	c.Send(key, value, rate, Counter)
}

// Gauge sets the absolute value of a gauge
func (c *Client) Gauge(key string, value int64, rate float32) {
	c.Send(key, value, rate, Gauge)
}

// Set reports value as a member of a set
func (c *Client) Set(key string, value int64, rate float32) {
	c.Send(key, value, rate, Set)
}

// Send transmits one measurement as a single datagram.
// nothing happens while the client is unopened or when the sampler rejects the measurement.
// a failed write is reported as a *TransmissionError.
func (c *Client) Send(key string, value int64, rate float32, unit Unit) {
	c.RLock()
	defer c.RUnlock()
	if c.conn == nil {
		droppedUnopened.Inc()
		return
	}
	if !ShouldSend(c.rand, rate) {
		droppedSampled.Inc()
		return
	}
	buf := AppendMetric(make([]byte, 0, 64), c.prefix, key, value, rate, unit)
	if err := c.conn.write(buf); err != nil {
		c.report(&TransmissionError{Addr: c.conn.dest, Err: err})
		return
	}
	datagramsSent.Inc()
	bytesSent.Add(float64(len(buf)))
}

func (c *Client) report(err error) {
	switch err.(type) {
	case *ConnectionError:
		connectionErrors.Inc()
	case *TransmissionError:
		transmissionErrors.Inc()
	default:
		closeErrors.Inc()
	}
	c.onError(err)
}
