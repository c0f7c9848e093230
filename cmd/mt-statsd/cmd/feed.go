// Copyright © 2018 Grafana Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/grafana/mt-statsd/statsd"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var (
	feedKey      string
	feedUnit     string
	feedRate     int
	feedWorkers  int
	feedDuration time.Duration
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Sends a steady stream of measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		if feedRate <= 0 {
			return fmt.Errorf("rate must be > 0, got %d", feedRate)
		}
		if feedWorkers <= 0 {
			return fmt.Errorf("workers must be > 0, got %d", feedWorkers)
		}
		unit := statsd.Unit(feedUnit)
		switch unit {
		case statsd.Timing, statsd.Counter, statsd.Gauge, statsd.Set:
		default:
			return fmt.Errorf("unit must be one of ms|c|g|s, got %q", feedUnit)
		}

		ctx := context.Background()
		if feedDuration > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, feedDuration)
			defer cancel()
		}

		sent, err := feed(ctx, unit)
		log.Infof("feed done. %d measurements emitted", sent)
		return err
	},
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.Flags().StringVar(&feedKey, "key", "some.id.of.a.metric", "the key to send, each worker appends .<worker number>")
	feedCmd.Flags().StringVar(&feedUnit, "unit", "c", "the metric type to send. ms|c|g|s")
	feedCmd.Flags().IntVar(&feedRate, "rate", 100, "how many measurements to emit per second, across all workers")
	feedCmd.Flags().IntVar(&feedWorkers, "workers", 1, "how many workers to run, each with its own client")
	feedCmd.Flags().DurationVar(&feedDuration, "duration", 10*time.Second, "how long to run. 0 runs until killed")
}

// feed runs the workers until ctx is done and returns how many measurements were emitted.
// measurements dropped by sampling are included.
func feed(ctx context.Context, unit statsd.Unit) (uint64, error) {
	var sent uint64
	sr := sampleRate()
	limiter := rate.NewLimiter(rate.Limit(feedRate), 1)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < feedWorkers; i++ {
		key := feedKey + "." + strconv.Itoa(i)
		c := newClient()
		if !c.IsOpen() {
			// stops the workers already running
			g.Go(func() error { return errNotOpen })
			break
		}
		g.Go(func() error {
			defer c.Close()
			var value int64
			for {
				if err := limiter.Wait(ctx); err != nil {
					// deadline reached or the feed failed
					return nil
				}
				value++
				c.Send(key, value, sr, unit)
				atomic.AddUint64(&sent, 1)
			}
		})
	}
	err := g.Wait()
	return atomic.LoadUint64(&sent), err
}
