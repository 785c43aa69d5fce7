package comerr

import "errors"

const (
	NotImplemented        = "function/feature not implemented"
	SetReadTimeout        = "failed to set read timeout"
	SocketCreate          = "socket creation failed"
	SocketBind            = "socket bind failed"
	SocketOptions         = "failed to apply some socket options"
	SocketControl         = "could not access socket descriptor"
	BufferSize            = "buffer size must be greater than zero"
	InvalidConfig         = "configuration is invalid"
	InvalidNumber         = "value is not a decimal integer"
	AddressEmpty          = "address is empty"
	AddressFormatUnknown  = "address does not match a known format"
	PortOutOfRange        = "port must be between 1 and 65535"
	ClientAlreadyStarted  = "client is already started"
	ClientNotStarted      = "client is not started"
	ServerAlreadyRunning  = "server is already running"
	ServerNotRunning      = "server is not running"
	LogFileUnavailable    = "log file could not be opened"
	ConfigFileUnavailable = "configuration file could not be opened"
)

var (
	ErrNotImplemented        = errors.New(NotImplemented)
	ErrSetReadTimeout        = errors.New(SetReadTimeout)
	ErrSocketCreate          = errors.New(SocketCreate)
	ErrSocketBind            = errors.New(SocketBind)
	ErrSocketOptions         = errors.New(SocketOptions)
	ErrSocketControl         = errors.New(SocketControl)
	ErrBufferSize            = errors.New(BufferSize)
	ErrInvalidConfig         = errors.New(InvalidConfig)
	ErrInvalidNumber         = errors.New(InvalidNumber)
	ErrAddressEmpty          = errors.New(AddressEmpty)
	ErrAddressFormatUnknown  = errors.New(AddressFormatUnknown)
	ErrPortOutOfRange        = errors.New(PortOutOfRange)
	ErrClientAlreadyStarted  = errors.New(ClientAlreadyStarted)
	ErrClientNotStarted      = errors.New(ClientNotStarted)
	ErrServerAlreadyRunning  = errors.New(ServerAlreadyRunning)
	ErrServerNotRunning      = errors.New(ServerNotRunning)
	ErrLogFileUnavailable    = errors.New(LogFileUnavailable)
	ErrConfigFileUnavailable = errors.New(ConfigFileUnavailable)
)
