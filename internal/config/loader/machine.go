package loader

import (
	"fmt"

	"go.uber.org/multierr"
	_server "tonysoft.com/echo/internal/config/server"
	"tonysoft.com/echo/pkg/comerr"
)

// Section is the configuration section the machine is currently inside.
type Section int

const (
	NoSection Section = iota
	ServerSection
	LoggingSection
	SocketOptionsSection
)

var sectionNames = map[string]Section{
	"server":         ServerSection,
	"logging":        LoggingSection,
	"socket_options": SocketOptionsSection,
}

func (s Section) String() string {
	for name, section := range sectionNames {
		if section == s {
			return name
		}
	}
	return "none"
}

const (
	topLevel     = 1 // depth of the document's root mapping
	sectionLevel = 2 // depth of a section's own mapping
)

// Machine consumes parse events and fills a configuration record.
//
// Section names are recognized among the root mapping's scalars. Inside a
// section, scalars alternate between pending key and value; a value is
// dispatched for (section, key) and the key is cleared whether or not it was
// recognized. Collections nested inside a section are skipped as a whole.
type Machine struct {
	cfg    _server.Config
	strict bool
	errs   error

	section    Section
	pendingKey string
	hasKey     bool
	depth      int
	done       bool
}

// NewMachine starts from base, normally the all-defaults record.
func NewMachine(base _server.Config, strict bool) *Machine {
	return &Machine{cfg: base, strict: strict}
}

func (m *Machine) Feed(ev Event) {
	if m.done {
		return
	}

	switch ev.Kind {
	case MappingStart, SequenceStart:
		m.depth++
		if m.depth > sectionLevel {
			m.clearKey()
		}
	case MappingEnd, SequenceEnd:
		m.depth--
		if m.depth < sectionLevel {
			m.enter(NoSection)
		}
	case Scalar, Alias:
		m.scalar(ev)
	case StreamEnd:
		m.done = true
	}
}

func (m *Machine) scalar(ev Event) {
	switch m.depth {
	case topLevel:
		section := sectionNames[ev.Value]
		if ev.Kind != Scalar {
			section = NoSection
		}
		m.enter(section)
	case sectionLevel:
		if m.section == NoSection {
			return
		}
		if !m.hasKey {
			m.pendingKey, m.hasKey = ev.Value, true
			return
		}
		if ev.Kind == Scalar {
			m.dispatch(m.pendingKey, ev.Value)
		}
		m.clearKey()
	}
}

func (m *Machine) enter(section Section) {
	m.section = section
	m.clearKey()
}

func (m *Machine) clearKey() {
	m.pendingKey, m.hasKey = "", false
}

func (m *Machine) dispatch(key, value string) {
	switch m.section {
	case ServerSection:
		switch key {
		case "port":
			m.setInt(&m.cfg.Port, key, value)
		case "buffer_size":
			m.setInt(&m.cfg.BufferSize, key, value)
		case "response_message":
			m.cfg.ResponseMessage = _server.Bound(value)
		}
	case LoggingSection:
		switch key {
		case "file":
			m.cfg.LogFile = _server.Bound(value)
		case "enable":
			m.cfg.LoggingEnabled = ParseBool(value)
		}
	case SocketOptionsSection:
		switch key {
		case "reuse_addr":
			m.cfg.ReuseAddr = ParseBool(value)
		case "receive_buffer":
			m.setInt(&m.cfg.ReceiveBuffer, key, value)
		case "send_buffer":
			m.setInt(&m.cfg.SendBuffer, key, value)
		case "broadcast":
			m.cfg.Broadcast = ParseBool(value)
		case "ttl":
			m.setInt(&m.cfg.TTL, key, value)
		case "receive_timeout":
			m.setInt(&m.cfg.ReceiveTimeout, key, value)
		}
	}
}

func (m *Machine) setInt(field *int, key, value string) {
	n, ok := Atoi(value)
	if !ok && m.strict {
		m.errs = multierr.Append(m.errs, fmt.Errorf("%s.%s %q: %w", m.section, key, value, comerr.ErrInvalidNumber))
	}
	*field = n
}

// Config returns the record built so far.
func (m *Machine) Config() _server.Config {
	return m.cfg
}

// Err returns the strict-mode coercion failures.
func (m *Machine) Err() error {
	return m.errs
}

func (m *Machine) Section() Section {
	return m.section
}

func (m *Machine) PendingKey() (key string, ok bool) {
	return m.pendingKey, m.hasKey
}

// Done reports whether StreamEnd has been consumed.
func (m *Machine) Done() bool {
	return m.done
}
