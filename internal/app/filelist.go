package app

import (
	"fmt"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

// FileItem is one rendered row of a file list.
type FileItem struct {
	Name string
	Size string
}

// FileList is the rendered form of a selection.
type FileList struct {
	Items          []FileItem
	Summary        string
	SummaryVisible bool
}

// RenderFileList projects files into rows and a size summary. The summary
// is hidden for an empty selection.
func RenderFileList(files []File) FileList {
	l := FileList{Items: make([]FileItem, len(files))}
	for i, f := range files {
		l.Items[i] = FileItem{Name: f.Name, Size: util.FmtBytes(f.Size)}
	}
	if len(files) > 0 {
		l.Summary = fmt.Sprintf("%d file(s) — Total size: %s", len(files), util.FmtBytes(totalSize(files)))
		l.SummaryVisible = true
	}
	return l
}

// FileListRenderer pushes rendered lists to a view and then re-evaluates
// the owning workflow's enablement exactly once.
type FileListRenderer struct {
	View       FileListView
	Reevaluate func()
}

// Render renders files.
func (r FileListRenderer) Render(files []File) {
	if r.View != nil {
		r.View.ShowFileList(RenderFileList(files))
	}
	if r.Reevaluate != nil {
		r.Reevaluate()
	}
}
