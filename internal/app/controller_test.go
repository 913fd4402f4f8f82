package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
)

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name     string
		workflow Workflow
		files    int
		password string
		want     bool
	}{
		{"encrypt ready", WorkflowEncrypt, 2, "pw", true},
		{"encrypt no files", WorkflowEncrypt, 0, "pw", false},
		{"encrypt empty password", WorkflowEncrypt, 1, "", false},
		{"encrypt blank password", WorkflowEncrypt, 1, " \t\n", false},
		{"encrypt padded password", WorkflowEncrypt, 1, "  pw  ", true},
		{"compare ready", WorkflowCompare, 5, "pw", true},
		{"compare no files", WorkflowCompare, 0, "pw", false},
		{"compare blank password", WorkflowCompare, 3, "   ", false},
		{"decrypt one file", WorkflowDecrypt, 1, "pw", true},
		{"decrypt two files", WorkflowDecrypt, 2, "pw", false},
		{"decrypt no file", WorkflowDecrypt, 0, "pw", false},
		{"decrypt blank password", WorkflowDecrypt, 1, " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanSubmit(tt.workflow, tt.files, tt.password); got != tt.want {
				t.Errorf("CanSubmit(%v, %d, %q) = %v; want %v", tt.workflow, tt.files, tt.password, got, tt.want)
			}
		})
	}
}

func TestNewControllerStartsDisabled(t *testing.T) {
	view := &fakeView{}
	c := NewController(WorkflowEncrypt, view, &fakeForm{password: "pw"})

	if c.Selection().Len() != 0 {
		t.Errorf("Selection().Len() = %d; want 0", c.Selection().Len())
	}
	if view.lastList().SummaryVisible {
		t.Error("summary should be hidden for an empty selection")
	}
	if view.triggerEnabled() {
		t.Error("trigger should start disabled")
	}
}

func TestSetSelectionRendersAndEnables(t *testing.T) {
	view := &fakeView{}
	c := NewController(WorkflowEncrypt, view, &fakeForm{password: "pw"})

	c.SetSelection([]File{MemFile("a.txt", make([]byte, 1024)), MemFile("b.txt", make([]byte, 512))})

	want := FileList{
		Items: []FileItem{
			{Name: "a.txt", Size: "1.0 KB"},
			{Name: "b.txt", Size: "512 B"},
		},
		Summary:        "2 file(s) — Total size: 1.5 KB",
		SummaryVisible: true,
	}
	if diff := cmp.Diff(want, view.lastList()); diff != "" {
		t.Errorf("rendered list mismatch (-want +got):\n%s", diff)
	}
	if !view.triggerEnabled() {
		t.Error("trigger should be enabled with files and a password")
	}
}

func TestEmptyReplacementHidesSummaryAndDisables(t *testing.T) {
	for _, w := range Workflows {
		t.Run(w.String(), func(t *testing.T) {
			view := &fakeView{}
			c := NewController(w, view, &fakeForm{password: "pw"})

			c.SetSelection([]File{MemFile("pkg.zip", []byte("x"))})
			if !view.triggerEnabled() {
				t.Fatal("trigger should be enabled before the empty replacement")
			}

			c.SetSelection(nil)
			if view.lastList().SummaryVisible {
				t.Error("summary should be hidden after an empty replacement")
			}
			if view.triggerEnabled() {
				t.Error("trigger should be disabled after an empty replacement")
			}
		})
	}
}

func TestRenderCallsReevaluateOnce(t *testing.T) {
	view := &fakeView{}
	calls := 0
	r := FileListRenderer{View: view, Reevaluate: func() { calls++ }}

	r.Render([]File{MemFile("a", nil)})
	if calls != 1 {
		t.Errorf("Reevaluate called %d times; want 1", calls)
	}
	if len(view.lists) != 1 {
		t.Errorf("ShowFileList called %d times; want 1", len(view.lists))
	}
}

func TestReevaluateFollowsPassword(t *testing.T) {
	view := &fakeView{}
	form := &fakeForm{}
	c := NewController(WorkflowCompare, view, form)
	c.SetSelection([]File{MemFile("a", nil)})

	if view.triggerEnabled() {
		t.Error("trigger should be disabled without a password")
	}
	form.setPassword("pw")
	c.Reevaluate()
	if !view.triggerEnabled() {
		t.Error("trigger should be enabled once a password is typed")
	}
}

func TestSelectionIsCopied(t *testing.T) {
	c := NewController(WorkflowEncrypt, nil, nil)
	files := []File{MemFile("a", nil), MemFile("b", nil)}
	c.SetSelection(files)

	files[0].Name = "mutated"
	if got := c.Selection().Files()[0].Name; got != "a" {
		t.Errorf("selection aliased caller slice: got %q", got)
	}
}

func TestAcquireIsExclusive(t *testing.T) {
	view := &fakeView{}
	c := NewController(WorkflowEncrypt, view, &fakeForm{password: "pw"})
	c.SetSelection([]File{MemFile("a", nil)})

	release, err := c.acquire()
	if err != nil {
		t.Fatalf("acquire() error = %v", err)
	}
	if view.triggerEnabled() {
		t.Error("trigger should be disabled while busy")
	}

	if _, err := c.acquire(); !errors.Is(err, errors.ErrBusy) {
		t.Errorf("second acquire() error = %v; want ErrBusy", err)
	}

	c.Reevaluate()
	if view.triggerEnabled() {
		t.Error("Reevaluate must not enable a busy trigger")
	}

	release()
	if c.Busy() {
		t.Error("controller should be idle after release")
	}
	if !view.triggerEnabled() {
		t.Error("trigger should be re-enabled after release")
	}
}
