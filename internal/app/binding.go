package app

import (
	"fyne.io/fyne/v2/data/binding"
)

// BoundStatus provides Fyne data bindings for the global status line and
// the settings labels. Widgets bound to it update without manual
// SetText calls.
type BoundStatus struct {
	// Status line text (e.g. "Encryption complete")
	Status binding.String

	// LogKind of the status, drives the label colour
	Kind binding.Int

	// Server-tuned worker count label
	Workers binding.String

	// Server-tuned chunk size label, in MB
	ChunkMB binding.String
}

var (
	_ StatusLine   = (*BoundStatus)(nil)
	_ SettingsView = (*BoundStatus)(nil)
)

// NewBoundStatus creates a BoundStatus in the "Ready" state.
func NewBoundStatus() *BoundStatus {
	b := &BoundStatus{
		Status:  binding.NewString(),
		Kind:    binding.NewInt(),
		Workers: binding.NewString(),
		ChunkMB: binding.NewString(),
	}
	b.Reset()
	return b
}

// SetStatus implements StatusLine.
func (b *BoundStatus) SetStatus(text string, kind LogKind) {
	_ = b.Kind.Set(int(kind))
	_ = b.Status.Set(text)
}

// SetSettings implements SettingsView.
func (b *BoundStatus) SetSettings(workers, chunkMB string) {
	_ = b.Workers.Set(workers)
	_ = b.ChunkMB.Set(chunkMB)
}

// StatusText returns the current status line.
func (b *BoundStatus) StatusText() string {
	s, _ := b.Status.Get()
	return s
}

// StatusKind returns the kind of the current status line.
func (b *BoundStatus) StatusKind() LogKind {
	k, _ := b.Kind.Get()
	return LogKind(k)
}

// Reset restores the initial values.
func (b *BoundStatus) Reset() {
	_ = b.Kind.Set(int(LogInfo))
	_ = b.Status.Set("Ready")
	_ = b.Workers.Set("...")
	_ = b.ChunkMB.Set("...")
}
