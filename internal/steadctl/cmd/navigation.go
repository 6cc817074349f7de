package cmd

import (
	"github.com/sitestead/sitestead/internal/steadctl/client"
	"github.com/sitestead/sitestead/internal/steadctl/output"
	"github.com/spf13/cobra"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Inspect composed navigation",
}

var navPreviewCmd = &cobra.Command{
	Use:   "preview [workspace-id]",
	Short: "Preview the composed navigation for a workspace",
	Long: `Preview the sidebar navigation steadd would compose for a workspace,
given its current entitlements and the registered apps.

Example:
  steadctl nav preview ws_42
  steadctl nav preview ws_42 --path /apps/crm/contacts
  steadctl nav preview ws_42 --elevated`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		currentPath, _ := cmd.Flags().GetString("path")
		elevated, _ := cmd.Flags().GetBool("elevated")

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey()).WithElevated(elevated)

		items, err := c.Navigation(args[0], currentPath)
		if err != nil {
			return err
		}

		// Print output based on format
		format := output.Format(GetOutputFormat())
		return output.Print(format, items, func() {
			headers := []string{"TITLE", "HREF", "ICON", "APP", "ACTIVE"}
			rows := make([][]string, 0, len(items))

			for _, item := range items {
				appKey := "-"
				if item.AppKey != "" {
					appKey = item.AppKey
				}

				active := ""
				if item.Active {
					active = "*"
				}

				rows = append(rows, []string{
					item.Title,
					item.Href,
					item.Icon,
					appKey,
					active,
				})
			}

			output.PrintTable(headers, rows)
		})
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
	navCmd.AddCommand(navPreviewCmd)

	navPreviewCmd.Flags().String("path", "", "Current path used for active-item matching")
	navPreviewCmd.Flags().Bool("elevated", false, "Compose with elevated access (all published apps)")
}
