package transport

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"tonysoft.com/echo/pkg/comerr"
)

func TestResolveServer(t *testing.T) {
	assert := assert.New(t)

	ap, err := ResolveServer("127.0.0.1", 8888)
	assert.NoError(err)
	assert.Equal("127.0.0.1:8888", ap.String())

	ap, err = ResolveServer(" localhost ", 9999)
	assert.NoError(err)
	assert.Equal("127.0.0.1:9999", ap.String())

	ap, err = ResolveServer("::ffff:10.1.2.3", 53)
	assert.NoError(err)
	assert.Equal("10.1.2.3:53", ap.String())

	_, err = ResolveServer("", 8888)
	assert.ErrorIs(err, comerr.ErrAddressEmpty)
	_, err = ResolveServer("127.0.0.1", 0)
	assert.ErrorIs(err, comerr.ErrPortOutOfRange)
	_, err = ResolveServer("127.0.0.1", 65536)
	assert.ErrorIs(err, comerr.ErrPortOutOfRange)
	_, err = ResolveServer("::1", 8888)
	assert.ErrorIs(err, comerr.ErrAddressFormatUnknown)
	_, err = ResolveServer("example.invalid", 8888)
	assert.ErrorIs(err, comerr.ErrAddressFormatUnknown)
}

func TestEndpointOf(t *testing.T) {
	ep := EndpointOf(netip.MustParseAddrPort("[::ffff:192.168.1.20]:40001"))
	assert.Equal(t, "192.168.1.20", ep.IP)
	assert.Equal(t, 40001, ep.Port)
}

func TestListenAddress(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8888", ListenAddress(8888))
}
