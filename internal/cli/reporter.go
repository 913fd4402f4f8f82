// Package cli provides the command-line front end of the dashboard.
package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

const barWidth = 30

// Reporter renders dashboard views as terminal lines. Errors are always
// printed; everything else is suppressed in quiet mode.
type Reporter struct {
	mu    sync.Mutex
	out   io.Writer
	quiet bool
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, quiet bool) *Reporter {
	return &Reporter{out: out, quiet: quiet}
}

// Views returns the reporter as a view binding for the dashboard core.
func (r *Reporter) Views() *app.Reporter {
	return &app.Reporter{
		OnStatus:   r.status,
		OnLog:      r.entry,
		OnFileList: r.fileList,
		OnChart:    r.chart,
		OnSettings: r.settings,
	}
}

func (r *Reporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format, args...)
}

// status prints progress statuses. Error statuses duplicate the error
// entry and are skipped.
func (r *Reporter) status(text string, kind app.LogKind) {
	if r.quiet || kind == app.LogError {
		return
	}
	r.printf("==> %s\n", text)
}

func (r *Reporter) entry(e app.LogEntry) {
	if e.Kind == app.LogError {
		r.printf("%s\n", e.String())
		return
	}
	if r.quiet {
		return
	}
	if e.Link != nil && !e.Link.IsArtifact() {
		r.printf("%s  %s\n", e.String(), e.Link.URL)
		return
	}
	r.printf("%s\n", e.String())
}

func (r *Reporter) fileList(l app.FileList) {
	if r.quiet || !l.SummaryVisible {
		return
	}
	var b strings.Builder
	for _, item := range l.Items {
		fmt.Fprintf(&b, "  %s (%s)\n", item.Name, item.Size)
	}
	fmt.Fprintf(&b, "%s\n", l.Summary)
	r.printf("%s", b.String())
}

// chart draws both bars scaled to the larger value. An all-zero chart is
// the reset before a comparison and is not drawn.
func (r *Reporter) chart(labels [2]string, values [2]float64) {
	if r.quiet || (values[0] <= 0 && values[1] <= 0) {
		return
	}
	r.printf("%s", renderBars(labels, values))
}

func renderBars(labels [2]string, values [2]float64) string {
	peak := max(values[0], values[1])
	width := max(len(labels[0]), len(labels[1]))

	var b strings.Builder
	for i := range labels {
		filled := 0
		if peak > 0 {
			filled = min(int(values[i]/peak*barWidth+0.5), barWidth)
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		fmt.Fprintf(&b, "%-*s [%s] %s\n", width, labels[i], bar, util.FmtSeconds(values[i]))
	}
	return b.String()
}

func (r *Reporter) settings(workers, chunkMB string) {
	r.printf("Workers: %s\nChunk size (MB): %s\n", workers, chunkMB)
}

// PrintError prints an error message.
func (r *Reporter) PrintError(format string, args ...any) {
	r.printf("Error: "+format+"\n", args...)
}

// PrintSuccess prints a success message.
func (r *Reporter) PrintSuccess(format string, args ...any) {
	if r.quiet {
		return
	}
	r.printf(format+"\n", args...)
}
