package logger

import (
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func format(f *TextFormatter, level log.Level, msg string, fields log.Fields) string {
	entry := &log.Entry{
		Logger:  log.New(),
		Data:    fields,
		Time:    time.Date(2018, 5, 4, 13, 2, 1, 5000000, time.UTC),
		Level:   level,
		Message: msg,
	}
	b, err := f.Format(entry)
	So(err, ShouldBeNil)
	return string(b)
}

func TestTextFormatter(t *testing.T) {
	Convey("When formatting a log entry", t, func() {
		Convey("the timestamp, level and module come first", func() {
			f := &TextFormatter{ModuleName: "mt-statsd"}
			So(format(f, log.InfoLevel, "sending", nil), ShouldEqual, "2018-05-04 13:02:01.005 [INFO] [mt-statsd] sending\n")
		})

		Convey("the module is left out when empty", func() {
			f := &TextFormatter{DisableTimestamp: true}
			So(format(f, log.WarnLevel, "dropped", nil), ShouldEqual, "[WARNING] dropped\n")
		})

		Convey("a custom timestamp format is honoured", func() {
			f := &TextFormatter{TimestampFormat: time.RFC3339}
			So(format(f, log.ErrorLevel, "x", nil), ShouldStartWith, "2018-05-04T13:02:01Z [ERROR] x")
		})

		Convey("fields are sorted and quoted when needed", func() {
			f := &TextFormatter{DisableTimestamp: true}
			out := format(f, log.ErrorLevel, "statsd: cannot open connection", log.Fields{
				"port":  8125,
				"host":  "collector.invalid",
				"error": errors.New("no such host"),
				"rate":  float32(0.5),
				"empty": "",
			})
			So(out, ShouldEqual, `[ERROR] statsd: cannot open connection empty="" error="no such host" host=collector.invalid port=8125 rate=0.5`+"\n")
		})

		Convey("addresses are written without quotes", func() {
			f := &TextFormatter{DisableTimestamp: true}
			out := format(f, log.WarnLevel, "send failed", log.Fields{"collector": "127.0.0.1:8125"})
			So(out, ShouldEqual, "[WARNING] send failed collector=127.0.0.1:8125\n")
		})
	})
}
