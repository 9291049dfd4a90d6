// Package cli implements the zipdemographics command-line interface.
//
// This package provides commands for looking up ZIP code demographics via the
// hosted APIVerve API and for managing the stored API key. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - lookup: Fetch demographic data for a 5-digit US ZIP code
//   - auth: Store, inspect, or remove the API key
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/apiverve/zipdemographics-go/pkg/buildinfo"
	"github.com/apiverve/zipdemographics-go/pkg/credentials"
)

const (
	// appName is the application name used for directories and display.
	appName = "zipdemographics"

	// envAPIKey is the environment variable consulted for the API key.
	envAPIKey = "ZIPDEMOGRAPHICS_API_KEY"

	// configFile is the name of the optional TOML config file.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigDir overrides the default ~/.config/zipdemographics directory.
	// Empty means the default. Tests point this at a temp dir.
	ConfigDir string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Look up US Census demographics for a ZIP code",
		Long: `zipdemographics looks up demographic data for US ZIP codes via the
APIVerve ZIP Demographics API: population, income, education, housing,
employment, and racial composition from the US Census American Community
Survey.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.lookupCommand())
	root.AddCommand(c.authCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// credentialStore opens the file-backed credential store.
func (c *CLI) credentialStore() (*credentials.FileStore, error) {
	return credentials.NewFileStore(c.ConfigDir)
}

// configPath returns the location of the optional config file.
func (c *CLI) configPath() (string, error) {
	if c.ConfigDir != "" {
		return filepath.Join(c.ConfigDir, configFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}
