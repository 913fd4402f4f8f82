package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

func triggerLabel(w app.Workflow) string {
	switch w {
	case app.WorkflowEncrypt:
		return "Encrypt Files"
	case app.WorkflowDecrypt:
		return "Decrypt Package"
	default:
		return "Run Comparison"
	}
}

// page is the widget set of one workflow tab. It is the tab's app.View,
// app.Form and app.DropTarget. View methods may be called from request
// goroutines and marshal onto the UI goroutine with fyne.Do.
type page struct {
	a        *App
	workflow app.Workflow
	ctrl     *app.Controller
	zone     *app.DropZone

	// Form values, written by widget callbacks and read at submit time
	mu       sync.RWMutex
	password string
	mode     string
	policy   string

	drop          *dropArea
	files         *fyne.Container
	summary       *widget.Label
	passwordEntry *widget.Entry
	strength      *StrengthMeter // nil on the decrypt tab
	trigger       *widget.Button
	logBox        *fyne.Container
	logScroll     *container.Scroll

	content fyne.CanvasObject // main area
	panel   fyne.CanvasObject // settings panel in the sidebar
}

var (
	_ app.View       = (*page)(nil)
	_ app.Form       = (*page)(nil)
	_ app.DropTarget = (*page)(nil)
)

func newPage(a *App, w app.Workflow) *page {
	p := &page{a: a, workflow: w, mode: api.DefaultMode, policy: api.DefaultPolicy}

	p.drop = newDropArea(dropHint(w), p.pick)
	p.files = container.NewVBox()
	p.summary = widget.NewLabel("")
	p.summary.TextStyle = fyne.TextStyle{Bold: true}
	p.summary.Hide()

	// The password entry carries its own reveal toggle.
	p.passwordEntry = widget.NewPasswordEntry()
	p.passwordEntry.SetPlaceHolder("Password")
	p.passwordEntry.OnChanged = p.passwordChanged

	var passwordRow []fyne.CanvasObject
	if w != app.WorkflowDecrypt {
		p.strength = NewStrengthMeter()
		generate := NewTooltipButton("Generate", "Generate a random password", func() {
			a.showPassgenDialog(p.passwordEntry.SetText)
		})
		passwordRow = append(passwordRow, p.strength, generate)
	}

	p.trigger = widget.NewButton(triggerLabel(w), p.submit)
	p.trigger.Importance = widget.HighImportance
	p.trigger.Disable()

	p.logBox = container.NewVBox()
	p.logScroll = container.NewVScroll(p.logBox)
	p.logScroll.SetMinSize(fyne.NewSize(0, 160))

	top := container.NewVBox(
		p.drop,
		p.files,
		p.summary,
		container.NewBorder(nil, nil, nil, container.NewHBox(passwordRow...), p.passwordEntry),
		p.trigger,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	var center fyne.CanvasObject = p.logScroll
	if w == app.WorkflowCompare {
		center = container.NewGridWithColumns(2, p.logScroll, a.chart)
	}
	p.content = container.NewBorder(top, nil, nil, nil, center)
	p.panel = p.newPanel()
	return p
}

func dropHint(w app.Workflow) string {
	if w == app.WorkflowDecrypt {
		return "Drop an encrypted package here or click to browse"
	}
	return "Drop files here or click to browse"
}

// newPanel builds the tab's sidebar controls.
func (p *page) newPanel() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(p.workflow.String()+" Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	if p.workflow == app.WorkflowDecrypt {
		return container.NewVBox(title,
			widget.NewLabel("Mode and keys are read\nfrom the package header."))
	}

	mode := widget.NewSelect(api.Modes, func(s string) {
		p.mu.Lock()
		p.mode = s
		p.mu.Unlock()
	})
	mode.SetSelected(api.DefaultMode)
	items := []*widget.FormItem{widget.NewFormItem("Mode", mode)}

	if p.workflow == app.WorkflowEncrypt {
		policy := widget.NewSelect(api.Policies, func(s string) {
			p.mu.Lock()
			p.policy = s
			p.mu.Unlock()
		})
		policy.SetSelected(api.DefaultPolicy)
		items = append(items, widget.NewFormItem("Policy", policy))
	}
	return container.NewVBox(title, widget.NewForm(items...))
}

// bind attaches the page to its controller once the dashboard exists.
func (p *page) bind(c *app.Controller) {
	p.ctrl = c
	p.zone = app.NewDropZone(p, c)
	p.drop.zone = p.zone
}

func (p *page) passwordChanged(s string) {
	p.mu.Lock()
	p.password = s
	p.mu.Unlock()

	if p.strength != nil {
		p.strength.SetPassword(s)
	}
	if p.ctrl != nil {
		p.ctrl.Reevaluate()
	}
}

// submit disables the trigger at once and runs the workflow off the UI
// goroutine. The controller re-enables it when the request settles.
func (p *page) submit() {
	p.trigger.Disable()
	go func() {
		if err := p.a.dash.Submit(p.a.ctx, p.workflow); err != nil {
			log.Debug("submit finished with error",
				log.String("workflow", p.workflow.String()),
				log.Err(err))
		}
	}()
}

// pick opens the file picker and replaces the selection with its result.
func (p *page) pick() {
	p.a.showOpenDialog(func(path string) {
		f, err := app.FileFromPath(path)
		if err != nil {
			p.ctrl.Transcript().Error(err.Error())
			return
		}
		p.zone.PickerChanged([]app.File{f})
	})
}

// dropped handles window drops routed to this tab.
func (p *page) dropped(paths []string) {
	files, err := app.FilesFromPaths(paths)
	if err != nil {
		p.zone.DragLeave()
		p.ctrl.Transcript().Error(err.Error())
		return
	}
	p.zone.Drop(files)
}

// Password implements app.Form.
func (p *page) Password() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.password
}

// Mode implements app.Form.
func (p *page) Mode() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode
}

// Policy implements app.Form.
func (p *page) Policy() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.policy
}

// ShowFileList implements app.FileListView.
func (p *page) ShowFileList(l app.FileList) {
	fyne.Do(func() {
		p.files.RemoveAll()
		for _, item := range l.Items {
			p.files.Add(container.NewHBox(
				widget.NewLabel(item.Name),
				layout.NewSpacer(),
				widget.NewLabel(item.Size),
			))
		}
		p.summary.SetText(l.Summary)
		if l.SummaryVisible {
			p.summary.Show()
		} else {
			p.summary.Hide()
		}
	})
}

// AppendLog implements app.LogView.
func (p *page) AppendLog(e app.LogEntry) {
	fyne.Do(func() {
		p.logBox.Add(p.a.logRow(e))
		p.logScroll.ScrollToBottom()
	})
}

// SetTriggerEnabled implements app.TriggerView.
func (p *page) SetTriggerEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			p.trigger.Enable()
		} else {
			p.trigger.Disable()
		}
	})
}

// SetDragOver implements app.DropTarget.
func (p *page) SetDragOver(over bool) {
	fyne.Do(func() {
		p.drop.SetHighlight(over)
	})
}
