package app

// Workflow identifies one dashboard tab and its request contract.
type Workflow int

const (
	WorkflowEncrypt Workflow = iota
	WorkflowDecrypt
	WorkflowCompare
)

// Workflows lists every workflow in tab order.
var Workflows = []Workflow{WorkflowEncrypt, WorkflowDecrypt, WorkflowCompare}

func (w Workflow) String() string {
	switch w {
	case WorkflowEncrypt:
		return "Encrypt"
	case WorkflowDecrypt:
		return "Decrypt"
	case WorkflowCompare:
		return "Compare"
	default:
		return "Unknown"
	}
}

// CanSubmit reports whether a workflow's trigger may be enabled for n
// selected files and the given password. Decrypt takes exactly one package.
func CanSubmit(w Workflow, n int, password string) bool {
	if !hasPassword(password) {
		return false
	}
	if w == WorkflowDecrypt {
		return n == 1
	}
	return n > 0
}

// The interfaces below are the only way the core touches widgets. The
// fyne dashboard and the terminal front end implement them; tests use fakes.

// StatusLine is the single global status display.
type StatusLine interface {
	SetStatus(text string, kind LogKind)
}

// LogView receives transcript entries for one tab.
type LogView interface {
	AppendLog(e LogEntry)
}

// FileListView shows a rendered selection.
type FileListView interface {
	ShowFileList(l FileList)
}

// TriggerView controls a workflow's submit button.
type TriggerView interface {
	SetTriggerEnabled(enabled bool)
}

// View is everything a workflow controller drives on its tab.
type View interface {
	FileListView
	LogView
	TriggerView
}

// Form is read at submit time and never cached.
type Form interface {
	Password() string
	Mode() string
	Policy() string
}

// DropTarget shows the drag-over highlight of a drop zone.
type DropTarget interface {
	SetDragOver(over bool)
}

// ChartView draws the two-bar comparison.
type ChartView interface {
	DrawBars(labels [2]string, values [2]float64)
}

// SettingsView shows the server's tuned defaults.
type SettingsView interface {
	SetSettings(workers, chunkMB string)
}

// Pane is one element toggled by the tab controller: a tab button, a
// page or a settings panel.
type Pane interface {
	SetActive(active bool)
}

// StaticForm is a Form with fixed values, used by the command line.
type StaticForm struct {
	PasswordValue string
	ModeValue     string
	PolicyValue   string
}

func (f StaticForm) Password() string { return f.PasswordValue }
func (f StaticForm) Mode() string     { return f.ModeValue }
func (f StaticForm) Policy() string   { return f.PolicyValue }
