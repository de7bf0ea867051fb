// Package config provides configuration loading for swiftmap.
package config

// Config represents the complete swiftmap configuration.
// It can be loaded from .swiftmap/config.yml with environment variable overrides.
type Config struct {
	Paths     PathsConfig     `yaml:"paths" mapstructure:"paths"`
	Netconfig NetconfigConfig `yaml:"netconfig" mapstructure:"netconfig"`
}

// PathsConfig defines which files to scan and which to ignore.
type PathsConfig struct {
	Source []string `yaml:"source" mapstructure:"source"` // glob patterns for Swift sources
	Ignore []string `yaml:"ignore" mapstructure:"ignore"` // glob patterns to ignore
}

// NetconfigConfig locates the network configuration file the patcher
// rewrites and names the interfaces tried for local address discovery.
type NetconfigConfig struct {
	File       string   `yaml:"file" mapstructure:"file"`
	Interfaces []string `yaml:"interfaces" mapstructure:"interfaces"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Source: []string{
				"**/*.swift",
			},
			Ignore: []string{
				"Pods/**",
				"Carthage/**",
				".build/**",
				"DerivedData/**",
				".git/**",
			},
		},
		Netconfig: NetconfigConfig{
			File:       "Models/Network/NetworkConfiguration.swift",
			Interfaces: []string{"en0", "en1"},
		},
	}
}
