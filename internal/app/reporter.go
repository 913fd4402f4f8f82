package app

// Reporter adapts plain callbacks to the view interfaces. Nil callbacks
// are ignored. The terminal front end builds its output on it.
type Reporter struct {
	OnStatus   func(text string, kind LogKind)
	OnLog      func(e LogEntry)
	OnFileList func(l FileList)
	OnTrigger  func(enabled bool)
	OnDragOver func(over bool)
	OnChart    func(labels [2]string, values [2]float64)
	OnSettings func(workers, chunkMB string)
}

var (
	_ View         = (*Reporter)(nil)
	_ StatusLine   = (*Reporter)(nil)
	_ DropTarget   = (*Reporter)(nil)
	_ ChartView    = (*Reporter)(nil)
	_ SettingsView = (*Reporter)(nil)
)

// SetStatus implements StatusLine.
func (r *Reporter) SetStatus(text string, kind LogKind) {
	if r.OnStatus != nil {
		r.OnStatus(text, kind)
	}
}

// AppendLog implements LogView.
func (r *Reporter) AppendLog(e LogEntry) {
	if r.OnLog != nil {
		r.OnLog(e)
	}
}

// ShowFileList implements FileListView.
func (r *Reporter) ShowFileList(l FileList) {
	if r.OnFileList != nil {
		r.OnFileList(l)
	}
}

// SetTriggerEnabled implements TriggerView.
func (r *Reporter) SetTriggerEnabled(enabled bool) {
	if r.OnTrigger != nil {
		r.OnTrigger(enabled)
	}
}

// SetDragOver implements DropTarget.
func (r *Reporter) SetDragOver(over bool) {
	if r.OnDragOver != nil {
		r.OnDragOver(over)
	}
}

// DrawBars implements ChartView.
func (r *Reporter) DrawBars(labels [2]string, values [2]float64) {
	if r.OnChart != nil {
		r.OnChart(labels, values)
	}
}

// SetSettings implements SettingsView.
func (r *Reporter) SetSettings(workers, chunkMB string) {
	if r.OnSettings != nil {
		r.OnSettings(workers, chunkMB)
	}
}
