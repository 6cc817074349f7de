package cmd

import (
	"fmt"

	"github.com/sitestead/sitestead/internal/steadd/semver"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Work with semantic versions",
}

var versionBumpCmd = &cobra.Command{
	Use:   "bump [version] [major|minor|patch]",
	Short: "Bump a semantic version",
	Long: `Bump one component of a three-part semantic version.

Bumping minor or major resets the lower components to zero. A version that
does not parse is printed back unchanged.

Example:
  steadctl version bump 1.2.3 minor
  steadctl version bump 1.2.3 major`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind semver.BumpKind
		switch args[1] {
		case "major":
			kind = semver.BumpMajor
		case "minor":
			kind = semver.BumpMinor
		case "patch":
			kind = semver.BumpPatch
		default:
			return fmt.Errorf("unknown bump kind %q (want major, minor, or patch)", args[1])
		}

		fmt.Println(semver.Bump(args[0], kind))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.AddCommand(versionBumpCmd)
}
