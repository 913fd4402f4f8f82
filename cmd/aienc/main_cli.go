//go:build cli

package main

import (
	"fmt"
	"os"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/cli"
)

// run is the CLI-only entry point.
// This build excludes the Fyne window drivers and can run on headless
// systems without graphics hardware.
func run() {
	if !cli.Execute(version) {
		fmt.Fprintf(os.Stderr, "aienc %s (CLI-only build)\n", version)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: aienc <command> [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  encrypt    Encrypt files on the server")
		fmt.Fprintln(os.Stderr, "  compare    Compare Naive-FIFO and AI-Priority scheduling")
		fmt.Fprintln(os.Stderr, "  decrypt    Decrypt a package and list or download its members")
		fmt.Fprintln(os.Stderr, "  fetch      Download one decrypted member")
		fmt.Fprintln(os.Stderr, "  settings   Show the server's tuned settings")
		fmt.Fprintln(os.Stderr, "  config     Inspect or create the configuration file")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Run 'aienc <command> --help' for more information.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: This is a CLI-only build without GUI support.")
		fmt.Fprintln(os.Stderr, "For GUI version, build without the 'cli' tag.")
		os.Exit(0)
	}
}
