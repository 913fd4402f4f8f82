package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/config"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

// Version is set by main.go
var Version = "dev"

// rootCmd is the base command when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "aienc",
	Short: "Client for the AI encryption service",
	Long: `aienc submits files to an AI Encryptor server and collects the results.

  - encrypt: encrypt files with the chosen cipher mode and scheduling policy
  - compare: time Naive-FIFO against AI-Priority scheduling on the same files
  - decrypt: decrypt a package and download its members

Run without a subcommand to open the desktop dashboard.`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Persistent flags
var (
	cfgPath   string
	serverURL string
	verbose   bool
)

// cfg is the effective configuration of the running command.
var cfg = config.DefaultConfig()

// subcommands are the first arguments that select CLI mode.
var subcommands = []string{
	"encrypt", "compare", "decrypt", "fetch", "settings", "config",
	"help", "--help", "-h", "version", "--version", "-v",
}

func init() {
	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server base URL (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Write debug logs to stderr")
}

// IsCLI reports whether args select command-line mode.
func IsCLI(args []string) bool {
	return len(args) >= 2 && slices.Contains(subcommands, args[1])
}

// Execute runs the CLI application.
// Returns true if CLI mode was activated, false if GUI should run instead.
func Execute(version string) bool {
	Version = version
	rootCmd.Version = version

	if !IsCLI(os.Args) {
		return false
	}

	// Ctrl+C aborts the in-flight request
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		if !isReported(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	return true
}

// loadConfig layers defaults, the config file, environment and flags, then
// configures logging.
func loadConfig(cmd *cobra.Command, _ []string) error {
	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if serverURL != "" {
		c.ServerURL = serverURL
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	cfg = c

	level := log.ParseLevel(c.Logging.Level)
	if verbose {
		level = log.LevelDebug
	}
	switch {
	case c.Logging.File != "":
		if err := log.EnableFileLogging(c.Logging.File, level); err != nil {
			return errors.NewFileError("open log", c.Logging.File, err)
		}
	case verbose:
		log.EnableDebugLogging()
	}

	log.Debug("configuration loaded",
		log.String("path", path),
		log.String("server", c.ServerURL),
		log.String("command", cmd.Name()))
	return nil
}

// reportedError marks an error already shown to the user by a Reporter.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

func isReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
