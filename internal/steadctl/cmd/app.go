package cmd

import (
	"fmt"
	"strings"

	"github.com/sitestead/sitestead/internal/steadctl/client"
	"github.com/sitestead/sitestead/internal/steadctl/output"
	"github.com/spf13/cobra"
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Manage add-on apps",
	Long:  `List and inspect registered add-on apps.`,
}

var appListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered apps",
	Long: `List all registered add-on apps.

Example:
  steadctl app list
  steadctl app list --published`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		publishedOnly, _ := cmd.Flags().GetBool("published")

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

		apps, err := c.ListApps(publishedOnly)
		if err != nil {
			return err
		}

		if len(apps) == 0 {
			output.Info("No apps found")
			return nil
		}

		// Print output based on format
		format := output.Format(GetOutputFormat())
		return output.Print(format, apps, func() {
			headers := []string{"KEY", "NAME", "VERSION", "STATUS", "ENTITLEMENT"}
			rows := make([][]string, 0, len(apps))

			for _, app := range apps {
				rows = append(rows, []string{
					app.Key,
					app.Name,
					app.Version,
					string(app.Status),
					app.EntitlementKey,
				})
			}

			output.PrintTable(headers, rows)
		})
	},
}

var appShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Show app details",
	Long:  `Show details for a single app, including its navigation contributions.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

		app, err := c.GetApp(args[0])
		if err != nil {
			return err
		}

		// Print output based on format
		format := output.Format(GetOutputFormat())
		if format == output.FormatJSON || format == output.FormatYAML {
			return output.Print(format, app, nil)
		}

		// Table format
		fmt.Printf("App: %s\n\n", app.Key)
		fmt.Printf("  Name:        %s\n", app.Name)
		fmt.Printf("  Version:     %s\n", app.Version)
		fmt.Printf("  Status:      %s\n", app.Status)
		fmt.Printf("  Entitlement: %s\n", app.EntitlementKey)
		if app.Description != "" {
			fmt.Printf("  Description: %s\n", app.Description)
		}

		if len(app.Nav) > 0 {
			fmt.Println("\nNavigation:")
			for _, item := range app.Nav {
				line := fmt.Sprintf("  %s (%s)", item.Label, item.Path)
				if len(item.Roles) > 0 {
					line += fmt.Sprintf(" [roles: %s]", strings.Join(item.Roles, ", "))
				}
				fmt.Println(line)
			}
		}

		return nil
	},
}

var appResolveCmd = &cobra.Command{
	Use:   "resolve [workspace-id]",
	Short: "Resolve entitled apps for a workspace",
	Long: `Resolve the published apps a workspace is entitled to.

Example:
  steadctl app resolve ws_42
  steadctl app resolve ws_42 --elevated`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		elevated, _ := cmd.Flags().GetBool("elevated")

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey()).WithElevated(elevated)

		apps, err := c.ResolveApps(args[0])
		if err != nil {
			return err
		}

		if len(apps) == 0 {
			output.Info("No entitled apps for workspace")
			return nil
		}

		// Print output based on format
		format := output.Format(GetOutputFormat())
		return output.Print(format, apps, func() {
			headers := []string{"KEY", "NAME", "VERSION", "ENTITLEMENT"}
			rows := make([][]string, 0, len(apps))

			for _, app := range apps {
				rows = append(rows, []string{
					app.Key,
					app.Name,
					app.Version,
					app.EntitlementKey,
				})
			}

			output.PrintTable(headers, rows)
		})
	},
}

func init() {
	rootCmd.AddCommand(appCmd)
	appCmd.AddCommand(appListCmd)
	appCmd.AddCommand(appShowCmd)
	appCmd.AddCommand(appResolveCmd)

	appListCmd.Flags().Bool("published", false, "Only list published apps")
	appResolveCmd.Flags().Bool("elevated", false, "Resolve with elevated access (all published apps)")
}
