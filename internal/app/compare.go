package app

import (
	"context"
	"fmt"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

// Compare runs both scheduling policies on c's selection, logs the
// verdict, updates the chart and offers the AI-Priority archive.
func (r *Runner) Compare(ctx context.Context, c *Controller) error {
	return r.run(ctx, c, job{
		running: "Comparing...",
		done:    "Comparison complete",
		do: func(ctx context.Context, files []File) error {
			req := api.CompareRequest{
				Password: c.form.Password(),
				Mode:     c.form.Mode(),
				Files:    uploads(files),
			}

			if r.chart != nil {
				r.chart.Reset()
			}
			c.transcript.Info(fmt.Sprintf("Comparing Naive-FIFO and AI-Priority on %d file(s)", len(files)))

			res, err := r.backend.Compare(ctx, req)
			if err != nil {
				return err
			}

			result := ComparisonResult{FIFO: res.FIFO, AI: res.AI}
			c.transcript.Info("Naive-FIFO: " + util.FmtSeconds(result.FIFO))
			c.transcript.Info("AI-Priority: " + util.FmtSeconds(result.AI))
			if result.Faster() {
				c.transcript.Success(result.Verdict())
			} else {
				c.transcript.Info(result.Verdict())
			}

			if r.chart != nil {
				r.chart.Update(result.FIFO, result.AI)
			}
			r.offer(c, res.Archive)
			return nil
		},
	})
}
