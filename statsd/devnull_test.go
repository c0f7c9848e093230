package statsd

import (
	"testing"
)

func TestDevnull(t *testing.T) {
	var errs []error
	c := New(WithDialer(DevnullDialer), WithErrorHandler(func(err error) { errs = append(errs, err) }))
	c.Open("127.0.0.1", 8125)
	if !c.IsOpen() {
		t.Fatal("expected client on devnull backend to be open")
	}
	c.Increment("x", DefaultRate)
	c.Gauge("y", 3, 0.5)
	c.Close()
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
