package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/apiverve/zipdemographics-go/pkg/zipdemographics"
)

// defaultLookupTimeout bounds the whole lookup including connection setup.
const defaultLookupTimeout = 30 * time.Second

// zipRE is the CLI-side argument check. The library itself sends the ZIP
// verbatim; rejecting junk here saves a round trip.
var zipRE = regexp.MustCompile(`^[0-9]{5}$`)

// lookupOpts holds the command-line flags for the lookup command.
type lookupOpts struct {
	apiKey     string
	timeout    time.Duration
	timeoutSet bool // true when --timeout was given explicitly
	jsonOut    bool
}

func (c *CLI) lookupCommand() *cobra.Command {
	opts := lookupOpts{timeout: defaultLookupTimeout}

	cmd := &cobra.Command{
		Use:   "lookup <zip>",
		Short: "Look up demographics for a US ZIP code",
		Long: `Look up demographic data for a 5-digit US ZIP code.

The API key is resolved in order: --api-key flag, ZIPDEMOGRAPHICS_API_KEY
environment variable (a .env file in the working directory is honored),
api_key in ~/.config/zipdemographics/config.toml, then the key stored via
'zipdemographics auth set'.

Examples:
  zipdemographics lookup 90210
  zipdemographics lookup 90210 --json | jq .population`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.timeoutSet = cmd.Flags().Changed("timeout")
			return c.runLookup(cmd.Context(), &opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.apiKey, "api-key", "k", "", "APIVerve API key (overrides env, config, and stored key)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "request timeout")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the raw JSON payload to stdout")

	return cmd
}

func (c *CLI) runLookup(ctx context.Context, opts *lookupOpts, zip string) error {
	if err := validateZip(zip); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	// A .env file is optional; a missing one is fine.
	_ = godotenv.Load()

	cfgPath, err := c.configPath()
	if err != nil {
		return err
	}
	cfg, err := loadFileConfig(cfgPath)
	if err != nil {
		return err
	}

	store, err := c.credentialStore()
	if err != nil {
		return err
	}

	key, err := resolveAPIKey(ctx, opts.apiKey, os.Getenv, cfg, store)
	if err != nil {
		return err
	}

	timeout := opts.timeout
	if !opts.timeoutSet && cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	clientOpts := []zipdemographics.Option{zipdemographics.WithTimeout(timeout)}
	if cfg.BaseURL != "" {
		clientOpts = append(clientOpts, zipdemographics.WithBaseURL(cfg.BaseURL))
	}
	client, err := zipdemographics.New(key, clientOpts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Debug("looking up", "zip", zip, "timeout", timeout)
	start := time.Now()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Looking up %s...", zip))
	spinner.Start()

	resp, err := client.Lookup(ctx, zip)
	if err != nil {
		spinner.StopWithError("Lookup failed")
		return describeLookupError(zip, err)
	}
	spinner.Stop()

	logger.Debug("lookup complete", "zip", zip, "duration", time.Since(start).Round(time.Millisecond))

	if opts.jsonOut {
		fmt.Println(string(resp.Payload()))
		return nil
	}
	return renderLookup(zip, resp.Payload())
}

// validateZip rejects anything that is not exactly five ASCII digits.
func validateZip(zip string) error {
	if !zipRE.MatchString(zip) {
		return fmt.Errorf("invalid ZIP code %q: expected exactly 5 digits", zip)
	}
	return nil
}

// describeLookupError adds a hint for auth failures and wraps everything
// else with the ZIP being looked up.
func describeLookupError(zip string, err error) error {
	var reqErr *zipdemographics.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			printDetail("Check your API key at https://apiverve.com")
		}
	}
	return fmt.Errorf("lookup %s: %w", zip, err)
}
