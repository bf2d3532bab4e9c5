package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-klotski/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Klotski SSH server",
	Long: `Start an SSH server that lets users connect and solve boards.

Each SSH connection gets its own session with the pack and board chooser.
Solves are stored per-server (all users share the same table).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.klotski/host_key

Examples:
  klotski serve                           # Listen on :23234 with auto-generated key
  klotski serve --ssh :2222               # Listen on port 2222
  klotski serve --host-key ./my_host_key  # Use specific host key
  klotski serve --db ./solves.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address, host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle time before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeout = flagIdleTimeout
	}

	opts, err := gameOptions()
	if err != nil {
		exitf("%v", err)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(&cfg, opts))
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting Klotski SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("server: %v", err)
	}
}
