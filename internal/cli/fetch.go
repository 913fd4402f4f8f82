package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch SESSION_ID MEMBER",
	Short: "Download one decrypted member",
	Long: `Download a member of a decrypted package by session id and member path,
as listed by "aienc decrypt".

Sessions expire on the server; an expired session is reported as an error.

Example:
  aienc fetch 3f2a9c sub/b.txt -o b.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runFetch,
}

// Fetch flags
var (
	fetchOutput string
	fetchYes    bool
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Output path (default: download dir + server file name)")
	fetchCmd.Flags().BoolVarP(&fetchYes, "yes", "y", false, "Overwrite output file without prompting")
}

func runFetch(cmd *cobra.Command, args []string) error {
	sessionID, member := args[0], args[1]

	arc, err := newClient().Download(cmd.Context(), sessionID, member)
	if err != nil {
		return err
	}

	path := fetchOutput
	if path == "" {
		path = filepath.Join(cfg.DownloadDir, arc.Filename)
	}
	if err := confirmOverwrite(cmd.InOrStdin(), cmd.ErrOrStderr(), path, fetchYes); err != nil {
		return err
	}
	if err := writeOutput(path, arc.Data); err != nil {
		return err
	}

	NewReporter(cmd.ErrOrStderr(), false).PrintSuccess("Saved %s (%s, blake2b %s)",
		path, util.FmtBytes(int64(len(arc.Data))), app.Digest(arc.Data)[:16])
	return nil
}
