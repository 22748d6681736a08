// Package log holds the verbosity levels autograde logs at, and a logr sink
// that collects entries in memory.
package log

import (
	"bytes"
	"fmt"

	"github.com/go-logr/logr"
)

const (
	DBG int = 1
	TRC int = 2
)

func NewBufferSink(buffer *bytes.Buffer) logr.LogSink {
	return bufferSink{
		buffer: buffer,
	}
}

type bufferSink struct {
	name   string
	buffer *bytes.Buffer
	values []interface{}
}

var _ logr.LogSink = bufferSink{}

func (s bufferSink) Enabled(level int) bool {
	return true
}

func (s bufferSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.buffer.WriteString(fmt.Sprintf("%s %v %s %v\n", s.name, err.Error(), msg, append(s.values, keysAndValues...)))
}

func (s bufferSink) Info(level int, msg string, keysAndValues ...interface{}) {
	s.buffer.WriteString(fmt.Sprintf("%s %s %v\n", s.name, msg, append(s.values, keysAndValues...)))
}

func (s bufferSink) Init(info logr.RuntimeInfo) {}

func (s bufferSink) WithName(name string) logr.LogSink {
	return bufferSink{
		name:   name,
		buffer: s.buffer,
		values: s.values,
	}
}

func (s bufferSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	values := make([]interface{}, 0, len(s.values)+len(keysAndValues))
	values = append(values, s.values...)
	values = append(values, keysAndValues...)
	return bufferSink{
		name:   s.name,
		buffer: s.buffer,
		values: values,
	}
}
