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
	"errors"
	"fmt"
	"strconv"

	"github.com/grafana/mt-statsd/statsd"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNotOpen = errors.New("could not open statsd client")

// valueCmd builds a subcommand that sends KEY with a value given as second argument
func valueCmd(use, short string, send func(c *statsd.Client, key string, value int64, rate float32)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " KEY VALUE",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %s", args[1], err)
			}
			return emit(func(c *statsd.Client) {
				send(c, args[0], value, sampleRate())
			})
		},
	}
}

// keyCmd builds a subcommand that only takes KEY
func keyCmd(use, short string, send func(c *statsd.Client, key string, rate float32)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " KEY",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(func(c *statsd.Client) {
				send(c, args[0], sampleRate())
			})
		},
	}
}

func emit(send func(c *statsd.Client)) error {
	c := newClient()
	defer c.Close()
	if !c.IsOpen() {
		return errNotOpen
	}
	send(c)
	log.Debugf("sent to %s", c.Addr())
	return nil
}

func init() {
	rootCmd.AddCommand(
		valueCmd("timing", "Send a duration in milliseconds", (*statsd.Client).Timing),
		valueCmd("count", "Send a counter delta", (*statsd.Client).Count),
		valueCmd("gauge", "Send an absolute gauge value", (*statsd.Client).Gauge),
		valueCmd("set", "Send a member of a set", (*statsd.Client).Set),
		keyCmd("incr", "Increment a counter by one", (*statsd.Client).Increment),
		keyCmd("decr", "Decrement a counter by one", (*statsd.Client).Decrement),
	)
}
