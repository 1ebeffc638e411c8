// Package config provides YAML-based runtime configuration loading for the
// runner platform. Simulation constants (world geometry, physics, spawn and
// ramp rules) are deliberately not configurable; this covers platform options
// only.
package config

// Config contains all platform configuration.
type Config struct {
	Game      GameOptions      `yaml:"game"`
	Recording RecordingOptions `yaml:"recording"`
	Server    ServerOptions    `yaml:"server"`
}

// GameOptions defines display-loop parameters.
type GameOptions struct {
	TickRate int `yaml:"tick_rate"` // Display refreshes per second
}

// RecordingOptions defines session-recording parameters.
type RecordingOptions struct {
	Enabled  bool   `yaml:"enabled"`  // Record sessions by default
	Database string `yaml:"database"` // Path to the recordings database
}

// ServerOptions defines SSH server parameters.
type ServerOptions struct {
	Address            string `yaml:"address"`              // host:port to listen on
	HostKey            string `yaml:"host_key"`             // Host key path, auto-generated if empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"` // Idle disconnect timeout
}
