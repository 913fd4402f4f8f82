package app

import (
	"strings"
	"sync/atomic"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

func hasPassword(p string) bool {
	return strings.TrimSpace(p) != ""
}

// Controller owns one tab's selection, transcript and trigger state.
type Controller struct {
	workflow   Workflow
	selection  *Selection
	transcript *Transcript
	view       View
	form       Form
	renderer   FileListRenderer
	busy       atomic.Bool
}

// NewController creates the controller of workflow w. The selection starts
// empty and the trigger disabled.
func NewController(w Workflow, view View, form Form) *Controller {
	c := &Controller{
		workflow:   w,
		selection:  &Selection{},
		transcript: NewTranscript(view),
		view:       view,
		form:       form,
	}
	c.renderer = FileListRenderer{View: view, Reevaluate: c.Reevaluate}
	c.renderer.Render(nil)
	return c
}

// Workflow returns the controlled workflow.
func (c *Controller) Workflow() Workflow { return c.workflow }

// Selection returns the tab's selection.
func (c *Controller) Selection() *Selection { return c.selection }

// Transcript returns the tab's log.
func (c *Controller) Transcript() *Transcript { return c.transcript }

// Form returns the tab's form.
func (c *Controller) Form() Form { return c.form }

// SetSelection replaces the selection, renders it and re-evaluates the
// trigger. Drops and picker changes both land here; the last call wins.
func (c *Controller) SetSelection(files []File) {
	c.selection.Set(files)
	log.Debug("selection replaced",
		log.String("workflow", c.workflow.String()),
		log.Int("files", len(files)))
	c.renderer.Render(c.selection.Files())
}

// CanSubmit reports whether the trigger should be enabled right now.
func (c *Controller) CanSubmit() bool {
	if c.busy.Load() {
		return false
	}
	password := ""
	if c.form != nil {
		password = c.form.Password()
	}
	return CanSubmit(c.workflow, c.selection.Len(), password)
}

// Reevaluate pushes the current enablement to the trigger. Views call it
// whenever the password changes.
func (c *Controller) Reevaluate() {
	if c.view != nil {
		c.view.SetTriggerEnabled(c.CanSubmit())
	}
}

// Busy reports whether a request is in flight.
func (c *Controller) Busy() bool {
	return c.busy.Load()
}

// acquire marks a request in flight and disables the trigger. The returned
// release must run on every exit path.
func (c *Controller) acquire() (release func(), err error) {
	if !c.busy.CompareAndSwap(false, true) {
		return nil, errors.ErrBusy
	}
	if c.view != nil {
		c.view.SetTriggerEnabled(false)
	}
	return func() {
		c.busy.Store(false)
		c.Reevaluate()
	}, nil
}
