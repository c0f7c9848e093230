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
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func listen() (*net.UDPConn, string) {
	ln, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	So(err, ShouldBeNil)
	return ln, strconv.Itoa(ln.LocalAddr().(*net.UDPAddr).Port)
}

func read(ln *net.UDPConn) string {
	buf := make([]byte, 512)
	ln.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := ln.ReadFromUDP(buf)
	So(err, ShouldBeNil)
	return string(buf[:n])
}

func TestCommands(t *testing.T) {
	Convey("Given a collector on loopback", t, func() {
		ln, port := listen()
		defer ln.Close()
		common := []string{"--host", "127.0.0.1", "--port", port, "--prefix", "cli.", "--log-level", "error"}

		Convey("gauge sends one datagram", func() {
			rootCmd.SetArgs(append(append([]string{"gauge"}, common...), "--", "queue", "-5"))
			So(rootCmd.Execute(), ShouldBeNil)
			So(read(ln), ShouldEqual, "cli.queue:-5|g")
		})

		Convey("incr sends a +1 counter", func() {
			rootCmd.SetArgs(append([]string{"incr", "hits"}, common...))
			So(rootCmd.Execute(), ShouldBeNil)
			So(read(ln), ShouldEqual, "cli.hits:1|c")
		})

		Convey("a bad value is rejected", func() {
			rootCmd.SetArgs(append([]string{"timing", "latency", "fast"}, common...))
			So(rootCmd.Execute(), ShouldNotBeNil)
		})

		Convey("feed emits a stream from every worker", func() {
			rootCmd.SetArgs(append([]string{"feed", "--key", "feed", "--rate", "100", "--workers", "2", "--duration", "300ms"}, common...))
			So(rootCmd.Execute(), ShouldBeNil)
			So(strings.HasPrefix(read(ln), "cli.feed."), ShouldBeTrue)
		})
	})
}
