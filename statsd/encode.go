package statsd

import (
	"strconv"
	"strings"
)

// Unit is the type suffix of a statsd line
type Unit string

const (
	Timing  Unit = "ms" // duration in milliseconds
	Counter Unit = "c"  // delta, summed by the collector
	Gauge   Unit = "g"  // absolute value
	Set     Unit = "s"  // member of a collector-side set
)

// keyReplacer maps the protocol delimiters to dots so a key can never add fields to a line
var keyReplacer = strings.NewReplacer(":", ".", "|", ".", "@", ".")

// Normalize replaces the reserved characters ':', '|' and '@' in key with '.'
func Normalize(key string) string {
	return keyReplacer.Replace(key)
}

// AppendMetric appends the statsd line for the given measurement to buf:
// <prefix><key>:<value>|<unit>[|@<rate>]
// key is normalized, prefix is written as is.
// the rate suffix is only written when rate is not exactly 1.
func AppendMetric(buf []byte, prefix, key string, value int64, rate float32, unit Unit) []byte {
	buf = append(buf, prefix...)
	buf = append(buf, Normalize(key)...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, value, 10)
	buf = append(buf, '|')
	buf = append(buf, string(unit)...)
	if rate != 1 {
		buf = append(buf, '|', '@')
		buf = appendRate(buf, rate)
	}
	return buf
}

// appendRate writes the rate with a single significant digit:
// 0.5 -> "0.5", 0.25 -> "0.2", 0.01 -> "0.01"
func appendRate(buf []byte, rate float32) []byte {
	return strconv.AppendFloat(buf, float64(rate), 'g', 1, 32)
}
