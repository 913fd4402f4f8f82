package cli

import (
	"github.com/spf13/cobra"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the server's tuned worker and chunk settings",
	Long: `Print the worker count and chunk size the server's tuner selected.
When the server cannot be reached the server defaults are shown.`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	rep := NewReporter(cmd.OutOrStdout(), false)
	app.FetchSettings(cmd.Context(), newClient(), rep.Views())
	return nil
}
