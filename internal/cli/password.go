package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordEmpty    = errors.New("password cannot be empty")
)

// passwordFlags are the credential flags shared by the upload commands.
type passwordFlags struct {
	password string
	stdin    bool
	generate bool
}

// isTerminal returns true if stdin is a terminal (not piped/redirected).
func isTerminal() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

// readLine reads one line, dropping the line ending.
func readLine(r io.Reader) (string, error) {
	pw, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || pw == "") {
		return "", fmt.Errorf("reading password: %w", err)
	}
	pw = strings.TrimSuffix(pw, "\n")
	pw = strings.TrimSuffix(pw, "\r")
	return pw, nil
}

// readPasswordSecure reads a password from stdin without echo.
// Falls back to buffered read if stdin is not a terminal.
func readPasswordSecure(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	if !isTerminal() {
		return readLine(os.Stdin)
	}

	// Terminal mode: disable echo
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(pw), nil
}

// ReadPasswordInteractive prompts for password interactively.
// If confirm is true, asks for confirmation (for encryption).
func ReadPasswordInteractive(confirm bool) (string, error) {
	password, err := readPasswordSecure("Password: ")
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(password) == "" {
		return "", ErrPasswordEmpty
	}

	if confirm {
		again, err := readPasswordSecure("Confirm password: ")
		if err != nil {
			return "", err
		}
		if password != again {
			return "", ErrPasswordMismatch
		}
	}

	return password, nil
}

// resolve picks the password from the flags, generating or prompting as
// needed. A generated password is printed to out so it can be kept.
func (f passwordFlags) resolve(in io.Reader, out io.Writer, confirm bool) (string, error) {
	switch {
	case f.generate:
		pw, err := util.NewPassword(util.DefaultPasswordLength, util.AllChars)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(out, "Generated password: %s\n", pw)
		return pw, nil

	case f.stdin:
		pw, err := readLine(in)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(pw) == "" {
			return "", ErrPasswordEmpty
		}
		return pw, nil

	case f.password != "":
		return f.password, nil

	default:
		pw, err := ReadPasswordInteractive(confirm)
		if err != nil {
			return "", fmt.Errorf("password input: %w", err)
		}
		return pw, nil
	}
}
