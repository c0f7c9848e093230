// Package logger renders logrus entries as single lines of the form
//
//	2006-01-02 15:04:05.000 [LEVEL] [module] message key=value ...
//
// fields are written in sorted order so repeated errors line up.
package logger

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// TimestampFormat is used when the formatter does not set one
const TimestampFormat = "2006-01-02 15:04:05.000"

// TextFormatter is a logrus.Formatter.
type TextFormatter struct {
	// TimestampFormat defaults to the package TimestampFormat
	TimestampFormat string

	// DisableTimestamp leaves timestamps to whatever collects the output
	DisableTimestamp bool

	// ModuleName is printed in brackets after the level, unless empty
	ModuleName string
}

// Format renders a single log entry.
func (f *TextFormatter) Format(entry *log.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	if !f.DisableTimestamp {
		format := f.TimestampFormat
		if format == "" {
			format = TimestampFormat
		}
		b.WriteString(entry.Time.Format(format))
		b.WriteByte(' ')
	}

	b.WriteByte('[')
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("] ")

	if f.ModuleName != "" {
		b.WriteByte('[')
		b.WriteString(f.ModuleName)
		b.WriteString("] ")
	}

	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		appendValue(b, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func appendValue(b *bytes.Buffer, value interface{}) {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case error:
		s = v.Error()
	case int:
		b.WriteString(strconv.Itoa(v))
		return
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
		return
	case float32:
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
		return
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		return
	default:
		s = fmt.Sprint(v)
	}
	if needsQuoting(s) {
		b.WriteString(strconv.Quote(s))
		return
	}
	b.WriteString(s)
}

// needsQuoting reports whether s contains anything beyond what addresses, keys and
// plain words are made of. empty values are quoted so they remain visible.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, ch := range s {
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '-' || ch == '.' || ch == ':' || ch == '_') {
			return true
		}
	}
	return false
}
