package socket

import (
	"errors"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// IsTimeout reports whether a receive failed only because no datagram arrived in time.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
		return true
	}

	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
