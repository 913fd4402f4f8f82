package app

import "sync"

// Selector accepts a full replacement selection.
type Selector interface {
	SetSelection(files []File)
}

// DropZone feeds drops and picker changes into a Selector and tracks the
// drag-over highlight.
type DropZone struct {
	mu     sync.Mutex
	target DropTarget
	sel    Selector
	over   bool
}

// NewDropZone creates a drop zone. target may be nil.
func NewDropZone(target DropTarget, sel Selector) *DropZone {
	return &DropZone{target: target, sel: sel}
}

// DragEnter turns the highlight on.
func (z *DropZone) DragEnter() { z.setOver(true) }

// DragLeave turns the highlight off.
func (z *DropZone) DragLeave() { z.setOver(false) }

// Drop clears the highlight and replaces the selection.
func (z *DropZone) Drop(files []File) {
	z.setOver(false)
	z.sel.SetSelection(files)
}

// PickerChanged replaces the selection with the picker's result.
func (z *DropZone) PickerChanged(files []File) {
	z.sel.SetSelection(files)
}

// DragOver reports the highlight state.
func (z *DropZone) DragOver() bool {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.over
}

func (z *DropZone) setOver(over bool) {
	z.mu.Lock()
	changed := z.over != over
	z.over = over
	z.mu.Unlock()

	if changed && z.target != nil {
		z.target.SetDragOver(over)
	}
}
