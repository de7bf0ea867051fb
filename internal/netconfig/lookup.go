// Package netconfig rewrites the environment literals in the app's network
// configuration file to point a development build at a local server, a
// staging or AWS deployment, or a tunnel endpoint.
package netconfig

import (
	"errors"
	"os/exec"
	"strings"
)

// ErrNoLocalAddr is returned when no configured interface yields an address.
var ErrNoLocalAddr = errors.New("no local address found")

// AddrLookup resolves the machine's LAN address so development builds on
// devices can reach a server running on this host.
// This allows mocking the interface query in tests.
type AddrLookup interface {
	// LocalAddr returns the first address reported by the configured
	// network interfaces, tried in order.
	LocalAddr() (string, error)
}

// ipconfigLookup is the real implementation using exec.Command.
type ipconfigLookup struct {
	interfaces []string
}

// NewAddrLookup returns the default address lookup, querying the given
// interfaces in order. With no arguments it tries en0, then en1.
func NewAddrLookup(interfaces ...string) AddrLookup {
	if len(interfaces) == 0 {
		interfaces = []string{"en0", "en1"}
	}
	return &ipconfigLookup{interfaces: interfaces}
}

func (l *ipconfigLookup) LocalAddr() (string, error) {
	for _, iface := range l.interfaces {
		cmd := exec.Command("ipconfig", "getifaddr", iface)
		output, err := cmd.Output()
		if err != nil {
			continue
		}
		if addr := strings.TrimSpace(string(output)); addr != "" {
			return addr, nil
		}
	}
	return "", ErrNoLocalAddr
}

// Package-level variable for dependency injection.
// Tests can replace this with a mock implementation.
var defaultLookup = NewAddrLookup()
