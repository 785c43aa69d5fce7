// Package eventlog writes the server's append-only structured event log.
//
// Each entry is one pretty-printed JSON object:
//
//	{
//	  "timestamp": "2024-05-01 12:00:00",
//	  "event": "message_received",
//	  "message": "ping",
//	  "client": {
//	    "ip": "127.0.0.1",
//	    "port": 40000
//	  }
//	}
//
// The client object is present only when the event concerns a datagram.
// Messages are JSON strings: bytes of a payload that are not valid UTF-8 are
// written as U+FFFD, so binary datagrams are not reproduced byte for byte.
package eventlog

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event is the value of the "event" key.
type Event string

const (
	ServerStart     Event = "server_start"
	ServerStop      Event = "server_stop"
	MessageReceived Event = "message_received"
	MessageSent     Event = "message_sent"
	Timeout         Event = "timeout"
	Error           Event = "error"
	SocketError     Event = "socket_error"
	Warning         Event = "warning"
)

const TimestampLayout = "2006-01-02 15:04:05"

// Endpoint identifies the client a datagram came from.
type Endpoint struct {
	IP   string
	Port int
}

func (e Endpoint) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("ip", e.IP)
	enc.AddInt("port", e.Port)
	return nil
}

// Writer is the sink consumed by the socket initializer and the event loop.
type Writer interface {
	Write(event Event, message string, client *Endpoint)
}

// Log is a Writer backed by a zap core.
type Log struct {
	logger *zap.Logger
	closer io.Closer
}

var _ Writer = (*Log)(nil)

// EncoderConfig produces the entry layout; the event type travels as the logger name.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		NameKey:        "event",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(TimestampLayout),
		EncodeName:     zapcore.FullNameEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

// Open appends to the log file at path, creating it when missing.
func Open(path string) (*Log, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(EncoderConfig()),
		zapcore.AddSync(&indentWriter{w: file}),
		zap.DebugLevel,
	)
	l := New(core)
	l.closer = file
	return l, nil
}

// New wraps an arbitrary core.
func New(core zapcore.Core) *Log {
	return &Log{logger: zap.New(core)}
}

// Disabled returns a Log that discards every entry.
func Disabled() *Log {
	return &Log{logger: zap.NewNop()}
}

func (l *Log) Write(event Event, message string, client *Endpoint) {
	if l == nil {
		return
	}

	var fields []zap.Field
	if client != nil {
		fields = append(fields, zap.Object("client", *client))
	}
	l.logger.Named(string(event)).Info(message, fields...)
}

func (l *Log) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	_ = l.logger.Sync()
	err := l.closer.Close()
	l.closer = nil
	return err
}

// indentWriter re-indents every single-line JSON entry produced by zap.
type indentWriter struct {
	w   io.Writer
	buf bytes.Buffer
}

func (iw *indentWriter) Write(p []byte) (int, error) {
	iw.buf.Reset()
	if err := json.Indent(&iw.buf, bytes.TrimRight(p, "\n"), "", "  "); err != nil {
		return 0, err
	}
	iw.buf.WriteByte('\n')

	if _, err := iw.w.Write(iw.buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}
