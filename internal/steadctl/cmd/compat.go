package cmd

import (
	"fmt"

	"github.com/sitestead/sitestead/internal/steadctl/client"
	"github.com/sitestead/sitestead/internal/steadctl/output"
	"github.com/spf13/cobra"
)

var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "Check version compatibility",
}

var compatCheckCmd = &cobra.Command{
	Use:   "check [min-version] [current-version]",
	Short: "Check a minimum version requirement against a platform version",
	Long: `Check whether a platform version satisfies a minimum version requirement.

An empty or unparseable minimum never blocks, matching install behavior.

Example:
  steadctl compat check 1.2.0 1.3.0
  steadctl compat check 2.0.0 1.3.0`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration
		if err := ValidateConfig(); err != nil {
			return err
		}

		// Create API client
		c := client.NewClient(GetSteaddURL(), GetSteaddAPIKey())

		result, err := c.CheckCompat(args[0], args[1])
		if err != nil {
			return err
		}

		// Print output based on format
		format := output.Format(GetOutputFormat())
		if format == output.FormatJSON || format == output.FormatYAML {
			return output.Print(format, result, nil)
		}

		if result.Compatible {
			output.Success(fmt.Sprintf("%s satisfies minimum %s", args[1], args[0]))
			return nil
		}

		output.Error(result.Reason)
		return fmt.Errorf("incompatible")
	},
}

func init() {
	rootCmd.AddCommand(compatCmd)
	compatCmd.AddCommand(compatCheckCmd)
}
