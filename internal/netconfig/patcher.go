package netconfig

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Mode selects which environment the network configuration points at.
type Mode string

const (
	ModeLocal   Mode = "local"
	ModeStaging Mode = "staging"
	ModeAWS     Mode = "aws"
	ModeTunnel  Mode = "tunnel"
)

// ErrUnknownMode is returned for a mode outside the recognized set.
var ErrUnknownMode = fmt.Errorf("unknown mode")

// ParseMode validates a mode argument.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLocal, ModeStaging, ModeAWS, ModeTunnel:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w %q (expected local, staging, aws, or tunnel)", ErrUnknownMode, s)
}

// The configuration file is treated as opaque text. Each rewrite targets one
// fixed-shape assignment line; if the shape is absent the substitution is a
// silent no-op and the file is written back otherwise unchanged.
var (
	envLinePattern    = regexp.MustCompile(`let env = "[^"]*" // DEFAULT_ENVIRONMENT`)
	tunnelHostPattern = regexp.MustCompile(`let tunnelConfig = EnvironmentConfig\(host: "[^"]*"`)
	devHostPattern    = regexp.MustCompile(`let devConfig = EnvironmentConfig\(host: "[^"]*"`)
)

// Patcher rewrites the network configuration file in place.
type Patcher struct {
	// Path of the configuration file to rewrite.
	Path string
	// Lookup resolves the LAN address for local mode. Nil uses the
	// default ipconfig-backed lookup.
	Lookup AddrLookup
	// Out receives confirmation and warning lines. Nil uses stdout.
	Out io.Writer
}

// NewPatcher creates a patcher for the given configuration file.
func NewPatcher(path string) *Patcher {
	return &Patcher{Path: path}
}

// Update rewrites the environment marker line to the given mode and patches
// the related host line: tunnel mode substitutes the endpoint (scheme
// stripped) into the tunnel host, local mode substitutes the discovered LAN
// address into the development host. Address discovery is best effort; on
// failure the development host keeps its prior value and a warning is
// emitted. The file is overwritten in place with no backup.
func (p *Patcher) Update(mode Mode, endpoint string) error {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return fmt.Errorf("read network config: %w", err)
	}

	content := setEnvironment(string(data), mode)

	var confirmations []string
	switch {
	case mode == ModeTunnel && endpoint != "":
		host := stripScheme(endpoint)
		content = setTunnelHost(content, host)
		confirmations = append(confirmations, "  Tunnel host set to: "+host)

	case mode == ModeLocal:
		addr, err := p.lookup().LocalAddr()
		if err != nil {
			fmt.Fprintf(p.out(), "Warning: could not determine local address: %v\n", err)
			break
		}
		content = setDevHost(content, addr)
		confirmations = append(confirmations, "  Development host set to: "+addr)
	}

	if err := os.WriteFile(p.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write network config: %w", err)
	}

	fmt.Fprintf(p.out(), "✓ %s updated for %s mode\n", filepath.Base(p.Path), mode)
	for _, line := range confirmations {
		fmt.Fprintln(p.out(), line)
	}
	return nil
}

func (p *Patcher) lookup() AddrLookup {
	if p.Lookup != nil {
		return p.Lookup
	}
	return defaultLookup
}

func (p *Patcher) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

// setEnvironment rewrites the DEFAULT_ENVIRONMENT marker line to mode.
func setEnvironment(content string, mode Mode) string {
	return envLinePattern.ReplaceAllString(content,
		fmt.Sprintf(`let env = "%s" // DEFAULT_ENVIRONMENT`, mode))
}

// setTunnelHost rewrites the tunnel configuration's host literal.
func setTunnelHost(content, host string) string {
	return tunnelHostPattern.ReplaceAllString(content,
		fmt.Sprintf(`let tunnelConfig = EnvironmentConfig(host: "%s"`, host))
}

// setDevHost rewrites the development configuration's host literal.
func setDevHost(content, addr string) string {
	return devHostPattern.ReplaceAllString(content,
		fmt.Sprintf(`let devConfig = EnvironmentConfig(host: "%s"`, addr))
}

// stripScheme drops a leading https:// or http:// from an endpoint.
func stripScheme(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "https://")
	return strings.TrimPrefix(endpoint, "http://")
}
