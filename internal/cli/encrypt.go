package cli

import (
	"github.com/spf13/cobra"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt files on the server",
	Long: `Upload one or more files to the server for encryption and save the
returned archive.

If no password is provided, you will be prompted to enter one interactively
(with confirmation). The password is hidden while typing.

Examples:
  # Encrypt interactively (prompts for password)
  aienc encrypt -i report.pdf -i data.csv

  # Pick cipher mode and scheduling policy
  aienc encrypt -i 'logs/*.txt' --mode ctr --policy fifo -p "mypassword"

  # Generate a strong password and print it
  aienc encrypt -i secret.txt --generate-password -o secret.zip

  # Read password from stdin (for scripts)
  echo "mypassword" | aienc encrypt -i secret.txt -P`,
	RunE: runEncrypt,
}

// Encrypt flags
var (
	encInput    []string
	encOutput   string
	encPassword passwordFlags
	encMode     string
	encPolicy   string
	encQuiet    bool
	encYes      bool
)

func init() {
	rootCmd.AddCommand(encryptCmd)

	// Input/Output
	encryptCmd.Flags().StringArrayVarP(&encInput, "input", "i", nil, "Input file(s) to encrypt (can be specified multiple times)")
	encryptCmd.Flags().StringVarP(&encOutput, "output", "o", "", "Output archive path (default: download dir + server file name)")

	// Credentials
	encryptCmd.Flags().StringVarP(&encPassword.password, "password", "p", "", "Encryption password")
	encryptCmd.Flags().BoolVarP(&encPassword.stdin, "password-stdin", "P", false, "Read password from stdin")
	encryptCmd.Flags().BoolVarP(&encPassword.generate, "generate-password", "g", false, "Generate a random password and print it")

	// Server options
	encryptCmd.Flags().StringVarP(&encMode, "mode", "m", api.DefaultMode, "Cipher mode: gcm or ctr")
	encryptCmd.Flags().StringVar(&encPolicy, "policy", api.DefaultPolicy, "Scheduling policy: priority or fifo")

	// Other
	encryptCmd.Flags().BoolVarP(&encQuiet, "quiet", "q", false, "Only print errors")
	encryptCmd.Flags().BoolVarP(&encYes, "yes", "y", false, "Overwrite output file without prompting")

	encryptCmd.MarkFlagsMutuallyExclusive("password", "password-stdin", "generate-password")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	if len(encInput) == 0 {
		return errNoInput
	}
	if err := checkChoice("mode", encMode, api.Modes); err != nil {
		return err
	}
	if err := checkChoice("policy", encPolicy, api.Policies); err != nil {
		return err
	}

	files, err := expandInputs(encInput)
	if err != nil {
		return err
	}

	password, err := encPassword.resolve(cmd.InOrStdin(), cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}

	s := newSession(cmd, app.WorkflowEncrypt, app.StaticForm{
		PasswordValue: password,
		ModeValue:     encMode,
		PolicyValue:   encPolicy,
	}, encQuiet)
	defer s.close()

	if err := s.submit(files); err != nil {
		return err
	}
	return s.saveArchives(encOutput, encYes)
}
