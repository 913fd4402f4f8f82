package app

import (
	"context"
	"fmt"
	"path"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
)

// Decrypt uploads c's single package and lists one link per decrypted
// member. An empty package is reported, not treated as a failure.
func (r *Runner) Decrypt(ctx context.Context, c *Controller) error {
	return r.run(ctx, c, job{
		running: "Decrypting...",
		done:    "Decryption complete",
		do: func(ctx context.Context, files []File) error {
			pkg := files[0]
			c.transcript.Info("Decrypting " + pkg.Name)

			res, err := r.backend.Decrypt(ctx, api.DecryptRequest{
				Password: c.form.Password(),
				File:     pkg.upload(),
			})
			if err != nil {
				return err
			}

			if len(res.Files) == 0 {
				c.transcript.Info("No files found in package")
				return nil
			}

			c.transcript.Success(fmt.Sprintf("Decrypted %d file(s)", len(res.Files)))
			for _, name := range res.Files {
				c.transcript.AddLink(r.memberLink(res.SessionID, name))
			}
			return nil
		},
	})
}

// memberLink builds the link of one decrypted member. The label drops any
// directory prefix.
func (r *Runner) memberLink(sessionID, name string) Link {
	return Link{
		Label:     path.Base(name),
		URL:       r.backend.DownloadURL(sessionID, name),
		SessionID: sessionID,
		Member:    name,
	}
}

// Fetch retrieves the member addressed by a decrypt link.
func (r *Runner) Fetch(ctx context.Context, l Link) (*api.Archive, error) {
	return r.backend.Download(ctx, l.SessionID, l.Member)
}
