package server_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
	"tonysoft.com/echo/internal/config/server"
	"tonysoft.com/echo/pkg/comerr"
)

func TestDefaults(t *testing.T) {
	assert := assert.New(t)
	cfg := server.NewConfig()

	assert.Equal(8888, cfg.Port)
	assert.Equal(1024, cfg.BufferSize)
	assert.Equal("Message received", cfg.ResponseMessage)
	assert.Equal("udp_server.log", cfg.LogFile)
	assert.True(cfg.LoggingEnabled)
	assert.True(cfg.ReuseAddr)
	assert.Equal(8192, cfg.ReceiveBuffer)
	assert.Equal(8192, cfg.SendBuffer)
	assert.False(cfg.Broadcast)
	assert.Equal(64, cfg.TTL)
	assert.Zero(cfg.ReceiveTimeout)
	assert.NoError(cfg.Validate())
}

func TestValidateCollectsEverything(t *testing.T) {
	assert := assert.New(t)
	cfg := server.NewConfig()
	cfg.Port = 70000
	cfg.BufferSize = 0
	cfg.TTL = 300
	cfg.ReceiveTimeout = -1

	err := cfg.Validate()
	assert.Len(multierr.Errors(err), 4)
	assert.ErrorIs(err, comerr.ErrPortOutOfRange)
	assert.ErrorIs(err, comerr.ErrBufferSize)
}

func TestBound(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("short", server.Bound("short"))
	assert.Len(server.Bound(strings.Repeat("a", 300)), server.MaxTextLength)

	// "é" is two bytes; byte 255 would fall inside the last one kept
	multi := strings.Repeat("a", 254) + strings.Repeat("é", 10)
	bounded := server.Bound(multi)
	assert.Equal(strings.Repeat("a", 254), bounded)
	assert.True(utf8.ValidString(bounded))

	// invalid input is still cut at the byte limit
	assert.Len(server.Bound(strings.Repeat("\xff", 300)), server.MaxTextLength)
}

func TestSummary(t *testing.T) {
	lines := server.NewConfig().Summary()
	assert.Equal(t, []string{
		"Configuration loaded: Port=8888, Buffer size=1024, Response message=Message received",
		"Log settings: File=udp_server.log, Enabled=yes",
		"Socket options: REUSEADDR=yes, RCVBUF=8192, SNDBUF=8192, BROADCAST=no, TTL=64, RCVTIMEO=0",
	}, lines)
}
