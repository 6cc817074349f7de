package cmd

import (
	"fmt"

	"github.com/sitestead/sitestead/internal/steadctl/client"
	"github.com/sitestead/sitestead/internal/steadctl/output"
	"github.com/spf13/cobra"
)

var marketplaceCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Manage the marketplace catalog and workspace installs",
	Long:  `Browse catalog items and install, enable, or disable them for a workspace.`,
}

var marketplaceItemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List catalog items",
	Long:  `List all marketplace catalog items.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

		items, err := c.ListItems()
		if err != nil {
			return err
		}

		if len(items) == 0 {
			output.Info("No catalog items found")
			return nil
		}

		// Print output based on format
		format := output.Format(GetOutputFormat())
		return output.Print(format, items, func() {
			headers := []string{"ID", "NAME", "APP", "MIN PLATFORM", "PRICE"}
			rows := make([][]string, 0, len(items))

			for _, item := range items {
				appKey := "-"
				if item.AppKey != "" {
					appKey = item.AppKey
				}

				minVersion := "-"
				if item.MinPlatformVersion != "" {
					minVersion = item.MinPlatformVersion
				}

				price := "free"
				if item.PriceCents > 0 {
					price = fmt.Sprintf("$%.2f", float64(item.PriceCents)/100)
				}

				rows = append(rows, []string{
					item.ID,
					item.Name,
					appKey,
					minVersion,
					price,
				})
			}

			output.PrintTable(headers, rows)
		})
	},
}

var marketplaceInstallCmd = &cobra.Command{
	Use:   "install [workspace-id] [item-id]",
	Short: "Install a catalog item into a workspace",
	Long: `Install a catalog item into a workspace.

Reinstalling an already-installed item re-enables it.

Example:
  steadctl marketplace install ws_42 crm`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		workspaceID := args[0]
		itemID := args[1]

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

		install, err := c.Install(workspaceID, itemID)
		if err != nil {
			return err
		}

		output.Success("Item installed successfully")
		fmt.Println()
		fmt.Printf("  Item:      %s\n", install.ItemID)
		fmt.Printf("  Workspace: %s\n", install.WorkspaceID)
		fmt.Printf("  Installed: %s\n", output.FormatTime(install.InstalledAt))

		return nil
	},
}

var marketplaceEnableCmd = &cobra.Command{
	Use:   "enable [workspace-id] [item-id]",
	Short: "Enable an installed item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setInstallEnabled(args[0], args[1], true)
	},
}

var marketplaceDisableCmd = &cobra.Command{
	Use:   "disable [workspace-id] [item-id]",
	Short: "Disable an installed item",
	Long: `Disable an installed item without removing it.

The install record is retained and the item can be re-enabled at any time.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setInstallEnabled(args[0], args[1], false)
	},
}

var marketplaceInstallsCmd = &cobra.Command{
	Use:   "installs [workspace-id]",
	Short: "List installs for a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

		installs, err := c.ListInstalls(args[0])
		if err != nil {
			return err
		}

		if len(installs) == 0 {
			output.Info("No installs found")
			return nil
		}

		// Print output based on format
		format := output.Format(GetOutputFormat())
		return output.Print(format, installs, func() {
			headers := []string{"ITEM", "ENABLED", "INSTALLED", "UPDATED"}
			rows := make([][]string, 0, len(installs))

			for _, in := range installs {
				enabled := "no"
				if in.Enabled {
					enabled = "yes"
				}

				rows = append(rows, []string{
					in.ItemID,
					enabled,
					output.FormatTime(in.InstalledAt),
					output.FormatTime(in.UpdatedAt),
				})
			}

			output.PrintTable(headers, rows)
		})
	},
}

func setInstallEnabled(workspaceID, itemID string, enabled bool) error {
	if err := ValidateConfig(); err != nil {
		return err
	}

	c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

	if err := c.SetEnabled(workspaceID, itemID, enabled); err != nil {
		return err
	}

	if enabled {
		output.Success(fmt.Sprintf("Item %s enabled", itemID))
	} else {
		output.Success(fmt.Sprintf("Item %s disabled", itemID))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(marketplaceCmd)
	marketplaceCmd.AddCommand(marketplaceItemsCmd)
	marketplaceCmd.AddCommand(marketplaceInstallCmd)
	marketplaceCmd.AddCommand(marketplaceEnableCmd)
	marketplaceCmd.AddCommand(marketplaceDisableCmd)
	marketplaceCmd.AddCommand(marketplaceInstallsCmd)
}
