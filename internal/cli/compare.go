package cli

import (
	"github.com/spf13/cobra"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare Naive-FIFO and AI-Priority scheduling",
	Long: `Encrypt the same files under both scheduling policies, print the two
timings as a bar chart and save the AI-Priority archive.

Examples:
  aienc compare -i 'dataset/*' -p "mypassword"
  aienc compare -i big.iso -i small.txt --mode ctr -o results.zip`,
	RunE: runCompare,
}

// Compare flags
var (
	cmpInput    []string
	cmpOutput   string
	cmpPassword passwordFlags
	cmpMode     string
	cmpQuiet    bool
	cmpYes      bool
)

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringArrayVarP(&cmpInput, "input", "i", nil, "Input file(s) to compare on (can be specified multiple times)")
	compareCmd.Flags().StringVarP(&cmpOutput, "output", "o", "", "Output archive path (default: download dir + server file name)")

	compareCmd.Flags().StringVarP(&cmpPassword.password, "password", "p", "", "Encryption password")
	compareCmd.Flags().BoolVarP(&cmpPassword.stdin, "password-stdin", "P", false, "Read password from stdin")
	compareCmd.Flags().BoolVarP(&cmpPassword.generate, "generate-password", "g", false, "Generate a random password and print it")

	compareCmd.Flags().StringVarP(&cmpMode, "mode", "m", api.DefaultMode, "Cipher mode: gcm or ctr")

	compareCmd.Flags().BoolVarP(&cmpQuiet, "quiet", "q", false, "Only print errors")
	compareCmd.Flags().BoolVarP(&cmpYes, "yes", "y", false, "Overwrite output file without prompting")

	compareCmd.MarkFlagsMutuallyExclusive("password", "password-stdin", "generate-password")
}

func runCompare(cmd *cobra.Command, args []string) error {
	if len(cmpInput) == 0 {
		return errNoInput
	}
	if err := checkChoice("mode", cmpMode, api.Modes); err != nil {
		return err
	}

	files, err := expandInputs(cmpInput)
	if err != nil {
		return err
	}

	password, err := cmpPassword.resolve(cmd.InOrStdin(), cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}

	s := newSession(cmd, app.WorkflowCompare, app.StaticForm{
		PasswordValue: password,
		ModeValue:     cmpMode,
	}, cmpQuiet)
	defer s.close()

	if err := s.submit(files); err != nil {
		return err
	}
	return s.saveArchives(cmpOutput, cmpYes)
}
