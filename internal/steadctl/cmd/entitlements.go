package cmd

import (
	"fmt"

	"github.com/sitestead/sitestead/internal/steadctl/client"
	"github.com/sitestead/sitestead/internal/steadctl/output"
	"github.com/spf13/cobra"
)

var entitlementsCmd = &cobra.Command{
	Use:   "entitlements",
	Short: "Manage workspace entitlements",
	Long:  `View and sync the feature entitlements of a workspace.`,
}

var entitlementsGetCmd = &cobra.Command{
	Use:   "get [workspace-id]",
	Short: "Show workspace entitlements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

		resp, err := c.GetEntitlements(args[0])
		if err != nil {
			return err
		}

		// Print output based on format
		format := output.Format(GetOutputFormat())
		if format == output.FormatJSON || format == output.FormatYAML {
			return output.Print(format, resp, nil)
		}

		if len(resp.Features) == 0 {
			output.Info("No entitlements for workspace")
			return nil
		}

		fmt.Printf("Workspace: %s\n\n", resp.WorkspaceID)
		for _, f := range resp.Features {
			fmt.Printf("  %s\n", f)
		}

		return nil
	},
}

var entitlementsSetCmd = &cobra.Command{
	Use:   "set [workspace-id] [feature...]",
	Short: "Replace workspace entitlements",
	Long: `Replace the full feature set of a workspace.

The given features replace whatever was previously synced; passing no
features clears all entitlements.

Example:
  steadctl entitlements set ws_42 crm apps.tickets
  steadctl entitlements set ws_42`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		workspaceID := args[0]
		features := args[1:]

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

		if err := c.SetEntitlements(workspaceID, features); err != nil {
			return err
		}

		output.Success(fmt.Sprintf("Entitlements updated (%d features)", len(features)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entitlementsCmd)
	entitlementsCmd.AddCommand(entitlementsGetCmd)
	entitlementsCmd.AddCommand(entitlementsSetCmd)
}
