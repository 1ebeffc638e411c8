package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkovalev/tui-runner/internal/config"
	"github.com/mkovalev/tui-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeRecord bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server for remote play",
	Long: `Start an SSH server that lets users connect and play over the network.

Each SSH connection gets its own run, sized to the connecting terminal.
With --record, every session is recorded to the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.runner/host_key

Examples:
  runner serve                           # Listen on :23235 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --host-key ./my_host_key  # Use specific host key
  runner serve --record --db ./runs.db   # Record sessions to a specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, empty = from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = from config)")
	serveCmd.Flags().BoolVar(&flagServeRecord, "record", false, "Record remote sessions")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	serverCfg := tui.DefaultSSHServerConfig()
	if cfg.Server.Address != "" {
		serverCfg.Address = cfg.Server.Address
	}
	if cfg.Server.HostKey != "" {
		serverCfg.HostKeyPath = cfg.Server.HostKey
	}
	if cfg.Server.IdleTimeoutMinutes > 0 {
		serverCfg.IdleTimeout = time.Duration(cfg.Server.IdleTimeoutMinutes) * time.Minute
	}
	if cfg.Recording.Database != "" {
		serverCfg.DBPath = cfg.Recording.Database
	}
	serverCfg.Record = flagServeRecord || cfg.Recording.Enabled

	// Flags override config
	if flagSSHAddr != "" {
		serverCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		serverCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flagDBPath != "" {
		serverCfg.DBPath = flagDBPath
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting SSH server on %s\n", serverCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
