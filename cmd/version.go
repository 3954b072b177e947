package cmd

import (
	"errors"
	"fmt"

	"github.com/okarum/beatdeck/internal/release"
	"github.com/spf13/cobra"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("beatdeck", version)

		check, _ := cmd.Flags().GetBool("check")
		if !check {
			return nil
		}

		checker := release.NewChecker()
		res, err := checker.Check(cmd.Context(), &release.CheckInput{Version: version})
		if err != nil {
			if errors.Is(err, release.ErrDevBuild) {
				fmt.Println("development build, skipping update check")
				return nil
			}
			return fmt.Errorf("check latest release: %w", err)
		}

		if res.UpdateAvailable {
			fmt.Printf("update available: %s\n", res.LatestVersion)
		} else {
			fmt.Println("up to date")
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("check", false, "Check for a newer release")
}
