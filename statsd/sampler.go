package statsd

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"
)

// Rand is a source of uniformly distributed fractions in [0, 1)
type Rand interface {
	Float64() float64
}

// ShouldSend decides whether a measurement taken at the given sample rate is to be transmitted.
// rates of 1 or more always send. otherwise one value is drawn from r and the
// measurement is accepted with probability rate, so rates <= 0 never send.
// every call is an independent draw.
func ShouldSend(r Rand, rate float32) bool {
	if rate >= 1 {
		return true
	}
	return r.Float64() < float64(rate)
}

// lockedRand is a math/rand generator that can be shared by goroutines
type lockedRand struct {
	sync.Mutex
	r *rand.Rand
}

// newRand returns a generator seeded once from the system entropy source
func newRand() *lockedRand {
	return &lockedRand{
		r: rand.New(rand.NewSource(seed())),
	}
}

func (l *lockedRand) Float64() float64 {
	l.Lock()
	f := l.r.Float64()
	l.Unlock()
	return f
}

func seed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// no entropy available, the clock is the best we have
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
