package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a package on the server",
	Long: `Upload an encrypted package and list the decrypted members. With
--output, every member is downloaded into the given directory.

If no password is provided, you will be prompted to enter one interactively.

Examples:
  # List members with their download URLs
  aienc decrypt -i encrypted_outputs.zip

  # Download every member into ./restored
  aienc decrypt -i encrypted_outputs.zip -o restored -p "mypassword"`,
	RunE: runDecrypt,
}

// Decrypt flags
var (
	decInput    string
	decOutput   string
	decPassword passwordFlags
	decJobs     int
	decQuiet    bool
	decYes      bool
)

func init() {
	rootCmd.AddCommand(decryptCmd)

	decryptCmd.Flags().StringVarP(&decInput, "input", "i", "", "Encrypted package to decrypt")
	decryptCmd.Flags().StringVarP(&decOutput, "output", "o", "", "Directory to download the decrypted members into")

	decryptCmd.Flags().StringVarP(&decPassword.password, "password", "p", "", "Decryption password")
	decryptCmd.Flags().BoolVarP(&decPassword.stdin, "password-stdin", "P", false, "Read password from stdin")

	decryptCmd.Flags().IntVarP(&decJobs, "jobs", "j", 4, "Parallel downloads with --output")
	decryptCmd.Flags().BoolVarP(&decQuiet, "quiet", "q", false, "Only print errors")
	decryptCmd.Flags().BoolVarP(&decYes, "yes", "y", false, "Overwrite existing files")

	decryptCmd.MarkFlagsMutuallyExclusive("password", "password-stdin")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	if decInput == "" {
		return fmt.Errorf("an input package is required (-i)")
	}

	pkg, err := app.FileFromPath(decInput)
	if err != nil {
		return err
	}

	password, err := decPassword.resolve(cmd.InOrStdin(), cmd.ErrOrStderr(), false)
	if err != nil {
		return err
	}

	s := newSession(cmd, app.WorkflowDecrypt, app.StaticForm{PasswordValue: password}, decQuiet)
	defer s.close()

	if err := s.submit([]app.File{pkg}); err != nil {
		return err
	}
	if decOutput == "" {
		return nil
	}
	return s.downloadMembers(decOutput, decJobs, decYes)
}

// memberPath maps a member name into dir, rejecting names that would
// escape it.
func memberPath(dir, member string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(member))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errors.NewValidationError("member", fmt.Sprintf("%q escapes the output directory", member))
	}
	return filepath.Join(dir, clean), nil
}

// downloadMembers fetches every decrypted member into dir with at most jobs
// requests in flight. The first failure cancels the rest.
func (s *session) downloadMembers(dir string, jobs int, overwrite bool) error {
	links := s.controller().Transcript().Links()
	g, ctx := errgroup.WithContext(s.cmd.Context())
	g.SetLimit(max(jobs, 1))

	var saved atomic.Int32
	for _, l := range links {
		if l.IsArtifact() {
			continue
		}
		g.Go(func() error {
			path, err := memberPath(dir, l.Member)
			if err != nil {
				return err
			}
			// Prompting is impossible with parallel downloads.
			if err := refuseOverwrite(path, overwrite); err != nil {
				return err
			}
			arc, err := s.dash.Runner.Fetch(ctx, l)
			if err != nil {
				return fmt.Errorf("%s: %w", l.Member, err)
			}
			if err := writeOutput(path, arc.Data); err != nil {
				return err
			}
			saved.Add(1)
			log.Debug("member saved", log.String("member", l.Member), log.String("path", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.reporter.PrintError("%v", err)
		return reported(err)
	}

	s.reporter.PrintSuccess("Saved %d file(s) to %s", saved.Load(), dir)
	return nil
}
