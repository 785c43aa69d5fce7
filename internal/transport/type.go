package transport

import (
	"net"
	"net/netip"
	"strconv"
	"strings"

	"tonysoft.com/echo/internal/eventlog"
	"tonysoft.com/echo/pkg/comerr"
)

// Network is the only network the echo service speaks.
const Network = "udp4"

// ListenAddress returns the wildcard IPv4 address for port.
func ListenAddress(port int) string {
	return net.JoinHostPort(net.IPv4zero.String(), strconv.Itoa(port))
}

// ResolveServer parses an IPv4 literal (or "localhost") and port into a datagram target.
func ResolveServer(host string, port int) (netip.AddrPort, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return netip.AddrPort{}, comerr.ErrAddressEmpty
	}
	if port <= 0 || port > 65535 {
		return netip.AddrPort{}, comerr.ErrPortOutOfRange
	}
	if host == "localhost" {
		host = "127.0.0.1"
	}

	addr, err := netip.ParseAddr(host)
	if err != nil || !addr.Unmap().Is4() {
		return netip.AddrPort{}, comerr.ErrAddressFormatUnknown
	}
	return netip.AddrPortFrom(addr.Unmap(), uint16(port)), nil
}

// EndpointOf converts the source of a datagram into its printable form.
func EndpointOf(addr netip.AddrPort) eventlog.Endpoint {
	return eventlog.Endpoint{
		IP:   addr.Addr().Unmap().String(),
		Port: int(addr.Port()),
	}
}
