package statsd

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestShouldSend(t *testing.T) {
	Convey("When deciding whether to send", t, func() {
		Convey("rates of 1 and above always send", func() {
			r := newRand()
			for i := 0; i < 1000; i++ {
				So(ShouldSend(r, 1), ShouldBeTrue)
				So(ShouldSend(r, 1.5), ShouldBeTrue)
			}
		})
		Convey("rates of 0 and below never send", func() {
			r := &seqRand{vals: []float64{0, 0.5, 0.999}}
			for i := 0; i < 30; i++ {
				So(ShouldSend(r, 0), ShouldBeFalse)
				So(ShouldSend(r, -1), ShouldBeFalse)
			}
		})
		Convey("the draw is compared against the rate", func() {
			r := &seqRand{vals: []float64{0.29, 0.31, 0.5}}
			So(ShouldSend(r, 0.3), ShouldBeTrue)
			So(ShouldSend(r, 0.3), ShouldBeFalse)
			So(ShouldSend(r, 0.3), ShouldBeFalse)
		})
	})
}

func TestShouldSendFrequency(t *testing.T) {
	const trials = 100000
	r := newRand()
	for _, rate := range []float32{0.01, 0.1, 0.3, 0.5, 0.9} {
		sent := 0
		for i := 0; i < trials; i++ {
			if ShouldSend(r, rate) {
				sent++
			}
		}
		got := float64(sent) / trials
		// allow 6 standard deviations
		tolerance := 6 * math.Sqrt(float64(rate)*(1-float64(rate))/trials)
		if math.Abs(got-float64(rate)) > tolerance {
			t.Errorf("rate %v: sent fraction %v outside of +/- %v", rate, got, tolerance)
		}
	}
}

func TestRandRange(t *testing.T) {
	r := newRand()
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("draw %v outside of [0,1)", f)
		}
	}
}

func TestRandPerClient(t *testing.T) {
	a := New()
	b := New()
	if a.rand == b.rand {
		t.Fatal("expected every client to own its random source")
	}
}
