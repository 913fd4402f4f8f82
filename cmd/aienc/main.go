// AI Encryptor dashboard
// https://github.com/bobbyrawat1511-art69/Adaptive-file-encryptor
//
// A desktop and command-line client for the AI Encryptor service. The
// server encrypts uploaded files with AES-GCM or AES-CTR, scheduling the
// work either first-in first-out or by an AI cost model; this client
// submits files, compares the two schedulers and fetches decrypted
// packages.
//
// Build modes:
//   - Default build: GUI + CLI (requires graphics libraries)
//   - CLI-only build: go build -tags cli (no graphics dependencies)

package main

// version is the application version displayed in the window title.
const version = "v1.0.0"

func main() {
	run()
}
