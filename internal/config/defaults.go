package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the final
// fallback if even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Game: GameOptions{
			TickRate: 60,
		},
		Recording: RecordingOptions{
			Enabled:  false,
			Database: "~/.runner/replays.db",
		},
		Server: ServerOptions{
			Address:            ":23235",
			HostKey:            "",
			IdleTimeoutMinutes: 30,
		},
	}
}
