package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apiverve/zipdemographics-go/pkg/credentials"
	"github.com/apiverve/zipdemographics-go/pkg/zipdemographics"
)

// authCommand creates the auth command with subcommands.
func (c *CLI) authCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored API key",
		Long: `Store, inspect, or remove the API key used by lookup.

The key is kept in ~/.config/zipdemographics/credentials.json with
owner-only permissions. Get an API key at https://apiverve.com`,
	}

	cmd.AddCommand(c.authSetCommand())
	cmd.AddCommand(c.authStatusCommand())
	cmd.AddCommand(c.authClearCommand())

	return cmd
}

// authSetCommand creates the "auth set" subcommand.
func (c *CLI) authSetCommand() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "set <key>",
		Short: "Store an API key for future lookups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			// Run the same checks the client applies at construction so a
			// bad key is rejected before it is written to disk.
			if _, err := zipdemographics.New(key); err != nil {
				return fmt.Errorf("refusing to store key: %w", err)
			}

			store, err := c.credentialStore()
			if err != nil {
				return err
			}
			cred, err := credentials.New(key, label)
			if err != nil {
				return err
			}
			if err := store.Set(cmd.Context(), cred); err != nil {
				return fmt.Errorf("store credential: %w", err)
			}

			printSuccess("API key saved")
			printDetail("Stored in %s", store.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "optional label for the stored key")
	return cmd
}

// authStatusCommand creates the "auth status" subcommand.
func (c *CLI) authStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored API key (masked)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.credentialStore()
			if err != nil {
				return err
			}
			cred, err := store.Get(cmd.Context())
			if err != nil {
				return err
			}
			if cred == nil {
				printInfo("No API key stored")
				printDetail("Run '%s auth set <key>' to store one", appName)
				return nil
			}

			printSuccess("API key configured")
			printKeyValue("Key", cred.Masked())
			if cred.Label != "" {
				printKeyValue("Label", cred.Label)
			}
			printKeyValue("Added", cred.CreatedAt.Format("Jan 2, 2006"))
			return nil
		},
	}
}

// authClearCommand creates the "auth clear" subcommand.
func (c *CLI) authClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.credentialStore()
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context()); err != nil {
				return fmt.Errorf("delete credential: %w", err)
			}
			printSuccess("API key removed")
			return nil
		},
	}
}
