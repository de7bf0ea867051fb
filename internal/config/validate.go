package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrNoSourcePatterns indicates no source glob patterns are configured
	ErrNoSourcePatterns = errors.New("no source patterns")

	// ErrInvalidPattern indicates a glob pattern that does not compile
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrEmptyNetconfigFile indicates a missing network configuration path
	ErrEmptyNetconfigFile = errors.New("empty netconfig file path")

	// ErrNoInterfaces indicates no interfaces for local address discovery
	ErrNoInterfaces = errors.New("no lookup interfaces")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}

	if err := validateNetconfig(&cfg.Netconfig); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validatePaths(cfg *PathsConfig) error {
	var errs []error

	if len(cfg.Source) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one source pattern required", ErrNoSourcePatterns))
	}

	for _, pattern := range cfg.Source {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: source pattern %q: %v", ErrInvalidPattern, pattern, err))
		}
	}

	for _, pattern := range cfg.Ignore {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: ignore pattern %q: %v", ErrInvalidPattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateNetconfig(cfg *NetconfigConfig) error {
	var errs []error

	if strings.TrimSpace(cfg.File) == "" {
		errs = append(errs, fmt.Errorf("%w: file is required", ErrEmptyNetconfigFile))
	}

	if len(cfg.Interfaces) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one interface required", ErrNoInterfaces))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
