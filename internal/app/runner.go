package app

import (
	"context"
	"time"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

// Backend is the encryption service as seen by the workflows.
// *api.Client implements it.
type Backend interface {
	Settings(ctx context.Context) (*api.Settings, error)
	Encrypt(ctx context.Context, req api.EncryptRequest) (*api.EncryptResult, error)
	Compare(ctx context.Context, req api.CompareRequest) (*api.CompareResult, error)
	Decrypt(ctx context.Context, req api.DecryptRequest) (*api.DecryptResult, error)
	Download(ctx context.Context, sessionID, name string) (*api.Archive, error)
	DownloadURL(sessionID, name string) string
}

var _ Backend = (*api.Client)(nil)

// Runner executes workflow requests and routes their outcome to the
// transcript, the status line, the chart and the artifact store.
type Runner struct {
	backend   Backend
	status    StatusLine
	artifacts *ArtifactStore
	chart     *Chart
}

// NewRunner creates a runner. status and chart may be nil.
func NewRunner(backend Backend, status StatusLine, artifacts *ArtifactStore, chart *Chart) *Runner {
	return &Runner{
		backend:   backend,
		status:    status,
		artifacts: artifacts,
		chart:     chart,
	}
}

// Artifacts returns the store holding received archives.
func (r *Runner) Artifacts() *ArtifactStore { return r.artifacts }

// Chart returns the comparison chart.
func (r *Runner) Chart() *Chart { return r.chart }

// Backend returns the service the runner talks to.
func (r *Runner) Backend() Backend { return r.backend }

// job describes one workflow run. do receives the selection as it was
// when the run was validated.
type job struct {
	running string
	done    string
	do      func(ctx context.Context, files []File) error
}

// run holds the trigger for the whole job and funnels every failure into
// one error entry plus a matching status line. ErrBusy is returned without
// reporting since the trigger that caused it is already disabled.
func (r *Runner) run(ctx context.Context, c *Controller, j job) error {
	release, err := c.acquire()
	if err != nil {
		return err
	}
	defer release()

	logger := log.GetLogger().WithFields(log.String("workflow", c.workflow.String()))

	files := c.selection.Files()
	if err := checkFiles(c, files); err != nil {
		r.fail(c, logger, err)
		return err
	}

	r.setStatus(j.running, LogInfo)
	start := time.Now()

	if err := j.do(ctx, files); err != nil {
		r.fail(c, logger, err)
		return err
	}

	r.setStatus(j.done, LogSuccess)
	logger.Info("workflow complete",
		log.String("status", j.done),
		log.Duration("elapsed", time.Since(start)))
	return nil
}

func (r *Runner) fail(c *Controller, logger log.Logger, err error) {
	msg := errorMessage(err)
	c.transcript.Error(msg)
	r.setStatus("Error: "+msg, LogError)
	logger.Error("workflow failed", log.Err(err))
}

func (r *Runner) setStatus(text string, kind LogKind) {
	if r.status != nil {
		r.status.SetStatus(text, kind)
	}
}

// errorMessage is the user-facing text of err. Transport failures show the
// underlying cause only.
func errorMessage(err error) string {
	var te *errors.TransportError
	if errors.As(err, &te) && te.Err != nil {
		return te.Err.Error()
	}
	return err.Error()
}

// checkFiles validates the form of c and the files about to be sent.
func checkFiles(c *Controller, files []File) error {
	password := ""
	if c.form != nil {
		password = c.form.Password()
	}
	n := len(files)
	switch {
	case c.workflow == WorkflowDecrypt && n != 1:
		return errors.ErrSingleFile
	case n == 0:
		return errors.ErrNoFiles
	case !hasPassword(password):
		return errors.ErrNoPassword
	}
	return nil
}
