package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

// Encrypt submits c's selection to the encrypt endpoint and offers the
// returned archive as a download.
func (r *Runner) Encrypt(ctx context.Context, c *Controller) error {
	return r.run(ctx, c, job{
		running: "Encrypting...",
		done:    "Encryption complete",
		do: func(ctx context.Context, files []File) error {
			req := api.EncryptRequest{
				Password: c.form.Password(),
				Mode:     c.form.Mode(),
				Policy:   c.form.Policy(),
				Files:    uploads(files),
			}
			c.transcript.Info(fmt.Sprintf("Encrypting %d file(s) (%s) with %s, policy %s",
				len(files), util.FmtBytes(totalSize(files)), strings.ToUpper(req.Mode), req.Policy))

			res, err := r.backend.Encrypt(ctx, req)
			if err != nil {
				return err
			}

			c.transcript.Success("Encryption finished in " + util.FmtSeconds(res.Elapsed))
			r.offer(c, res.Archive)
			return nil
		},
	})
}

// offer stores an archive and appends its download link.
func (r *Runner) offer(c *Controller, arc api.Archive) {
	if r.artifacts == nil {
		return
	}
	a := r.artifacts.Put(arc.Filename, arc.Data)
	c.transcript.AddLink(Link{Label: a.Filename, URL: a.URL})
}
