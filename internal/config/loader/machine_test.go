package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_server "tonysoft.com/echo/internal/config/server"
	"tonysoft.com/echo/pkg/comerr"
)

func makeAR(t require.TestingT) (*assert.Assertions, *require.Assertions) {
	return assert.New(t), require.New(t)
}

func scalar(v string) Event { return Event{Kind: Scalar, Value: v} }

var (
	mapStart = Event{Kind: MappingStart}
	mapEnd   = Event{Kind: MappingEnd}
	seqStart = Event{Kind: SequenceStart}
	seqEnd   = Event{Kind: SequenceEnd}
	alias    = Event{Kind: Alias}
	end      = Event{Kind: StreamEnd}
)

func feed(m *Machine, events ...Event) {
	for _, ev := range events {
		m.Feed(ev)
	}
}

func TestMachineTransitions(t *testing.T) {
	assert := assert.New(t)
	m := NewMachine(_server.NewConfig(), false)

	feed(m, mapStart, scalar("server"))
	assert.Equal(ServerSection, m.Section())

	feed(m, mapStart, scalar("port"))
	key, ok := m.PendingKey()
	assert.True(ok)
	assert.Equal("port", key)

	feed(m, scalar("9000"))
	_, ok = m.PendingKey()
	assert.False(ok)
	assert.Equal(9000, m.Config().Port)

	feed(m, mapEnd)
	assert.Equal(NoSection, m.Section())

	feed(m, scalar("socket_options"))
	assert.Equal(SocketOptionsSection, m.Section())
	feed(m, scalar("logging"))
	assert.Equal(LoggingSection, m.Section(), "a section name implicitly closes the prior section")
	feed(m, scalar("unrelated"))
	assert.Equal(NoSection, m.Section())

	feed(m, mapEnd, end)
	assert.True(m.Done())

	feed(m, mapStart, scalar("server"), mapStart, scalar("port"), scalar("1"))
	assert.Equal(9000, m.Config().Port, "events after StreamEnd are ignored")
	assert.NoError(m.Err())
}

func TestMachineAllKeys(t *testing.T) {
	assert := assert.New(t)
	m := NewMachine(_server.NewConfig(), false)

	feed(m, mapStart,
		scalar("server"), mapStart,
		scalar("port"), scalar("9999"),
		scalar("buffer_size"), scalar("64"),
		scalar("response_message"), scalar("pong"),
		mapEnd,
		scalar("logging"), mapStart,
		scalar("file"), scalar("/tmp/echo.log"),
		scalar("enable"), scalar("false"),
		mapEnd,
		scalar("socket_options"), mapStart,
		scalar("reuse_addr"), scalar("false"),
		scalar("receive_buffer"), scalar("65536"),
		scalar("send_buffer"), scalar("32768"),
		scalar("broadcast"), scalar("true"),
		scalar("ttl"), scalar("12"),
		scalar("receive_timeout"), scalar("2"),
		mapEnd,
		mapEnd, end)

	assert.Equal(_server.Config{
		Port:            9999,
		BufferSize:      64,
		ResponseMessage: "pong",
		LogFile:         "/tmp/echo.log",
		LoggingEnabled:  false,
		ReuseAddr:       false,
		ReceiveBuffer:   65536,
		SendBuffer:      32768,
		Broadcast:       true,
		TTL:             12,
		ReceiveTimeout:  2,
	}, m.Config())
}

func TestMachineUnknownKeys(t *testing.T) {
	assert := assert.New(t)
	m := NewMachine(_server.NewConfig(), false)

	feed(m, mapStart,
		scalar("server"), mapStart,
		scalar("colour"), scalar("red"),
		scalar("port"), scalar("7000"),
		scalar("extra"), mapStart, scalar("port"), scalar("1"), mapEnd,
		scalar("list"), seqStart, scalar("a"), scalar("b"), seqEnd,
		scalar("anchor"), alias,
		scalar("buffer_size"), scalar("2048"),
		mapEnd,
		scalar("port"), scalar("5"),
		mapEnd, end)

	cfg := m.Config()
	assert.Equal(7000, cfg.Port, "nested collections and keys outside sections are not dispatched")
	assert.Equal(2048, cfg.BufferSize, "the section stays open after a nested collection")
}

func TestMachineKeyValueNotSectionName(t *testing.T) {
	assert := assert.New(t)
	m := NewMachine(_server.NewConfig(), false)

	feed(m, mapStart,
		scalar("server"), mapStart,
		scalar("response_message"), scalar("logging"),
		scalar("port"), scalar("1234"),
		mapEnd, mapEnd, end)

	assert.Equal("logging", m.Config().ResponseMessage)
	assert.Equal(1234, m.Config().Port)
}

func TestMachineCoercion(t *testing.T) {
	assert := assert.New(t)

	events := []Event{mapStart,
		scalar("server"), mapStart,
		scalar("port"), scalar("abc"),
		scalar("buffer_size"), scalar("12kb"),
		mapEnd,
		scalar("logging"), mapStart,
		scalar("enable"), scalar("True"),
		mapEnd,
		scalar("socket_options"), mapStart,
		scalar("reuse_addr"), scalar("1"),
		scalar("broadcast"), scalar(""),
		mapEnd,
		mapEnd, end}

	lenient := NewMachine(_server.NewConfig(), false)
	feed(lenient, events...)
	cfg := lenient.Config()
	assert.Equal(0, cfg.Port)
	assert.Equal(12, cfg.BufferSize)
	assert.False(cfg.LoggingEnabled)
	assert.False(cfg.ReuseAddr)
	assert.False(cfg.Broadcast)
	assert.NoError(lenient.Err())

	strict := NewMachine(_server.NewConfig(), true)
	feed(strict, events...)
	assert.Equal(cfg, strict.Config())
	assert.ErrorIs(strict.Err(), comerr.ErrInvalidNumber)
	assert.Len(comerr.Split(strict.Err()), 2)
}

func TestAtoi(t *testing.T) {
	assert := assert.New(t)

	for _, tt := range []struct {
		input string
		n     int
		ok    bool
	}{
		{"8888", 8888, true},
		{" 42 ", 42, true},
		{"+7", 7, true},
		{"-3", -3, true},
		{"12abc", 12, false},
		{"  -9x", -9, false},
		{"abc", 0, false},
		{"", 0, false},
		{"0x40", 0, false},
		{"1.5", 1, false},
		{"99999999999", 2147483647, false},
		{"-99999999999", -2147483648, false},
	} {
		n, ok := Atoi(tt.input)
		assert.Equal(tt.n, n, "%q", tt.input)
		assert.Equal(tt.ok, ok, "%q", tt.input)
	}
}

func TestParseBool(t *testing.T) {
	assert := assert.New(t)
	assert.True(ParseBool("true"))
	for _, s := range []string{"True", "TRUE", "1", "yes", "", "false", " true"} {
		assert.False(ParseBool(s), "%q", s)
	}
}
