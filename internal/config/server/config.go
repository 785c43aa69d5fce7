package server

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/multierr"
	"tonysoft.com/echo/pkg/comerr"
)

const (
	defaultPort            = 8888
	defaultBufferSize      = 1024               // byte count, longer datagrams are truncated
	defaultResponseMessage = "Message received" // sent verbatim to every client
	defaultLogFile         = "udp_server.log"
	defaultLoggingEnabled  = true
	defaultReuseAddr       = true
	defaultReceiveBuffer   = 8192 // SO_RCVBUF bytes, 0 means unset
	defaultSendBuffer      = 8192 // SO_SNDBUF bytes, 0 means unset
	defaultBroadcast       = false
	defaultTTL             = 64 // IP_TTL, 0 means unset
	defaultReceiveTimeout  = 0  // seconds, 0 means block forever

	// MaxTextLength bounds ResponseMessage and LogFile.
	MaxTextLength = 255
)

type Config struct {
	Port            int
	BufferSize      int
	ResponseMessage string
	LogFile         string
	LoggingEnabled  bool

	ReuseAddr      bool
	ReceiveBuffer  int
	SendBuffer     int
	Broadcast      bool
	TTL            int
	ReceiveTimeout int
}

func NewConfig() Config {
	cfg := Config{
		Port:            defaultPort,
		BufferSize:      defaultBufferSize,
		ResponseMessage: defaultResponseMessage,
		LogFile:         defaultLogFile,
		LoggingEnabled:  defaultLoggingEnabled,
		ReuseAddr:       defaultReuseAddr,
		ReceiveBuffer:   defaultReceiveBuffer,
		SendBuffer:      defaultSendBuffer,
		Broadcast:       defaultBroadcast,
		TTL:             defaultTTL,
		ReceiveTimeout:  defaultReceiveTimeout,
	}
	return cfg
}

// Bound truncates s to at most MaxTextLength bytes without splitting a UTF-8 sequence.
func Bound(s string) string {
	if len(s) <= MaxTextLength {
		return s
	}
	n := MaxTextLength
	for back := 0; back < utf8.UTFMax-1 && n > 0 && !utf8.RuneStart(s[n]); back++ {
		n--
	}
	return s[:n]
}

// Validate reports every field outside its documented range.
func (c Config) Validate() error {
	var errs error
	if c.Port < 1 || c.Port > 65535 {
		errs = multierr.Append(errs, fmt.Errorf("port %d: %w", c.Port, comerr.ErrPortOutOfRange))
	}
	if c.BufferSize < 1 {
		errs = multierr.Append(errs, fmt.Errorf("buffer_size %d: %w", c.BufferSize, comerr.ErrBufferSize))
	}
	if len(c.ResponseMessage) > MaxTextLength {
		errs = multierr.Append(errs, fmt.Errorf("response_message exceeds %d bytes", MaxTextLength))
	}
	if len(c.LogFile) > MaxTextLength {
		errs = multierr.Append(errs, fmt.Errorf("log file path exceeds %d bytes", MaxTextLength))
	}
	for _, f := range []struct {
		name  string
		value int
	}{
		{"receive_buffer", c.ReceiveBuffer},
		{"send_buffer", c.SendBuffer},
		{"ttl", c.TTL},
		{"receive_timeout", c.ReceiveTimeout},
	} {
		if f.value < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s must not be negative, have %d", f.name, f.value))
		}
	}
	if c.TTL > 255 {
		errs = multierr.Append(errs, fmt.Errorf("ttl must not exceed 255, have %d", c.TTL))
	}
	return errs
}

// Summary returns the human-readable description printed after loading.
func (c Config) Summary() []string {
	return []string{
		fmt.Sprintf("Configuration loaded: Port=%d, Buffer size=%d, Response message=%s",
			c.Port, c.BufferSize, c.ResponseMessage),
		fmt.Sprintf("Log settings: File=%s, Enabled=%s", c.LogFile, yesNo(c.LoggingEnabled)),
		fmt.Sprintf("Socket options: REUSEADDR=%s, RCVBUF=%d, SNDBUF=%d, BROADCAST=%s, TTL=%d, RCVTIMEO=%d",
			yesNo(c.ReuseAddr), c.ReceiveBuffer, c.SendBuffer, yesNo(c.Broadcast), c.TTL, c.ReceiveTimeout),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
