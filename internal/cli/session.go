package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

var errNoInput = errors.New("at least one input file is required (-i)")

// session is one command run against the server: a dashboard with a
// single page bound to the terminal.
type session struct {
	cmd      *cobra.Command
	client   *api.Client
	dash     *app.Dashboard
	reporter *Reporter
	workflow app.Workflow
}

func newClient() *api.Client {
	return api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.GetRequestTimeout()))
}

func newSession(cmd *cobra.Command, w app.Workflow, form app.Form, quiet bool) *session {
	rep := NewReporter(cmd.ErrOrStderr(), quiet)
	views := rep.Views()
	client := newClient()
	dash := app.NewDashboard(client, cfg.GetReleaseDelay(), app.Views{
		Status: views,
		Chart:  views,
		Pages:  map[app.Workflow]app.Page{w: {View: views, Form: form}},
	})
	return &session{cmd: cmd, client: client, dash: dash, reporter: rep, workflow: w}
}

func (s *session) controller() *app.Controller {
	return s.dash.Controller(s.workflow)
}

// submit selects files and runs the workflow. Failures have been printed
// by the reporter when it returns.
func (s *session) submit(files []app.File) error {
	c := s.controller()
	c.SetSelection(files)
	return reported(s.dash.Submit(s.cmd.Context(), s.workflow))
}

// saveArchives writes every archive offered by the run. output names the
// file for a single archive; empty means the download directory plus the
// server's file name.
func (s *session) saveArchives(output string, overwrite bool) error {
	for _, l := range s.controller().Transcript().Links() {
		if !l.IsArtifact() {
			continue
		}
		art, data, err := s.dash.Artifacts.Open(l.URL)
		if err != nil {
			return err
		}
		path := output
		if path == "" {
			path = filepath.Join(cfg.DownloadDir, filepath.Base(art.Filename))
		}
		if err := confirmOverwrite(s.cmd.InOrStdin(), s.cmd.ErrOrStderr(), path, overwrite); err != nil {
			return err
		}
		if err := writeOutput(path, data); err != nil {
			return err
		}
		s.reporter.PrintSuccess("Saved %s (%s, blake2b %s)", path, util.FmtBytes(art.Size), art.Digest[:16])
		s.dash.Artifacts.Release(l.URL)
	}
	return nil
}

func (s *session) close() {
	s.dash.Close()
}

// expandInputs resolves glob patterns into files, in argument order.
func expandInputs(inputs []string) ([]app.File, error) {
	var paths []string
	for _, input := range inputs {
		matches, err := filepath.Glob(input)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", input, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("input file not found: %s", input)
		}
		paths = append(paths, matches...)
	}
	return app.FilesFromPaths(paths)
}

// confirmOverwrite asks before an existing file at path is replaced.
func confirmOverwrite(in io.Reader, prompt io.Writer, path string, overwrite bool) error {
	if _, err := os.Stat(path); err != nil || overwrite {
		return nil
	}
	fmt.Fprintf(prompt, "Output file %s already exists. Overwrite? [y/N]: ", path)
	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		return fmt.Errorf("operation cancelled")
	}
	return nil
}

// refuseOverwrite fails when path exists and overwrite is not set.
func refuseOverwrite(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s already exists (use --yes to overwrite)", path)
	}
	return nil
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewFileError("mkdir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewFileError("write", path, err)
	}
	log.Debug("wrote output", log.String("path", path), log.Int("bytes", len(data)))
	return nil
}

// checkChoice validates an enumerated flag value.
func checkChoice(flag, value string, choices []string) error {
	for _, c := range choices {
		if value == c {
			return nil
		}
	}
	return errors.NewValidationError(flag, fmt.Sprintf("%q is not one of %s", value, strings.Join(choices, ", ")))
}
