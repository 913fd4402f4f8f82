package ui

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/config"
)

// newTestServer serves the settings and encrypt endpoints.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"workers": 6, "chunk_mb": 16}`))
	})
	mux.HandleFunc("/api/encrypt", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("X-Time-Elapsed", "0.5000")
		w.Header().Set("Content-Disposition", `attachment; filename="encrypted_outputs.zip"`)
		_, _ = w.Write([]byte("zipdata"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func createTestApp(t *testing.T) *App {
	t.Helper()
	srv := newTestServer(t)
	cfg := config.DefaultConfig()
	cfg.ServerURL = srv.URL

	a := newApp(test.NewApp(), "v0.1.0", cfg)
	t.Cleanup(func() {
		a.cancel()
		a.dash.Close()
		test.NewApp()
	})
	return a
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAppStartsOnEncryptTab(t *testing.T) {
	a := createTestApp(t)
	a.start()

	w, ok := a.dash.Tabs.Active()
	if !ok || w != app.WorkflowEncrypt {
		t.Fatalf("Expected Encrypt tab active, got %v (started %v)", w, ok)
	}
	for _, wf := range app.Workflows {
		p := a.pages[wf]
		want := wf == app.WorkflowEncrypt
		if p.content.Visible() != want || p.panel.Visible() != want {
			t.Errorf("%v: expected visible=%v, got page=%v panel=%v",
				wf, want, p.content.Visible(), p.panel.Visible())
		}
		wantImportance := widget.MediumImportance
		if want {
			wantImportance = widget.HighImportance
		}
		if a.tabs[wf].Importance != wantImportance {
			t.Errorf("%v: unexpected tab importance %v", wf, a.tabs[wf].Importance)
		}
	}
	if !a.dash.Chart.Initialized() {
		t.Error("Expected chart to be drawn on start")
	}
}

func TestAppLoadsSettings(t *testing.T) {
	a := createTestApp(t)
	a.start()

	waitFor(t, "settings", func() bool {
		w, _ := a.status.Workers.Get()
		return w == "6"
	})
	chunk, _ := a.status.ChunkMB.Get()
	if chunk != "16" {
		t.Errorf("Expected chunk 16, got %q", chunk)
	}
}

func TestAppTabSwitching(t *testing.T) {
	a := createTestApp(t)
	a.start()

	test.Tap(a.tabs[app.WorkflowCompare])
	if w, _ := a.dash.Tabs.Active(); w != app.WorkflowCompare {
		t.Fatalf("Expected Compare tab, got %v", w)
	}
	if !a.pages[app.WorkflowCompare].content.Visible() {
		t.Error("Expected compare page visible")
	}
	if a.pages[app.WorkflowEncrypt].content.Visible() {
		t.Error("Expected encrypt page hidden")
	}

	test.Tap(a.tabs[app.WorkflowEncrypt])
	if !a.pages[app.WorkflowEncrypt].content.Visible() {
		t.Error("Expected encrypt page visible after switching back")
	}
}

func TestPageTriggerEnablement(t *testing.T) {
	a := createTestApp(t)
	a.start()
	p := a.pages[app.WorkflowEncrypt]

	if !p.trigger.Disabled() {
		t.Fatal("Expected trigger disabled with empty selection")
	}

	p.dropped([]string{writeTempFile(t, "a.txt", "hello")})
	if !p.trigger.Disabled() {
		t.Error("Expected trigger disabled without a password")
	}
	if !p.summary.Visible() || p.summary.Text != "1 file(s) — Total size: 5 B" {
		t.Errorf("Unexpected summary %q (visible %v)", p.summary.Text, p.summary.Visible())
	}

	p.passwordEntry.SetText("secret")
	if p.trigger.Disabled() {
		t.Error("Expected trigger enabled with files and password")
	}
	if p.strength.lit() == 0 {
		t.Error("Expected strength meter lit")
	}

	p.passwordEntry.SetText("   ")
	if !p.trigger.Disabled() {
		t.Error("Expected whitespace password to disable the trigger")
	}
}

func TestPageDecryptNeedsOneFile(t *testing.T) {
	a := createTestApp(t)
	a.start()
	p := a.pages[app.WorkflowDecrypt]

	if p.strength != nil {
		t.Error("Decrypt page should not show a strength indicator")
	}

	p.passwordEntry.SetText("secret")
	p.dropped([]string{writeTempFile(t, "a.enc", "x"), writeTempFile(t, "b.enc", "y")})
	if !p.trigger.Disabled() {
		t.Error("Expected trigger disabled for two packages")
	}
	p.dropped([]string{writeTempFile(t, "c.enc", "z")})
	if p.trigger.Disabled() {
		t.Error("Expected trigger enabled for one package")
	}
}

func TestDropRoutesToActiveTab(t *testing.T) {
	a := createTestApp(t)
	a.start()
	test.Tap(a.tabs[app.WorkflowCompare])

	path := writeTempFile(t, "a.txt", "hello")
	a.onDropped(fyne.NewPos(0, 0), []fyne.URI{storage.NewFileURI(path)})

	if n := a.dash.Controller(app.WorkflowCompare).Selection().Len(); n != 1 {
		t.Errorf("Expected compare selection of 1, got %d", n)
	}
	if n := a.dash.Controller(app.WorkflowEncrypt).Selection().Len(); n != 0 {
		t.Errorf("Expected encrypt selection untouched, got %d", n)
	}
}

func TestDropDirectoryReportsError(t *testing.T) {
	a := createTestApp(t)
	a.start()
	p := a.pages[app.WorkflowEncrypt]

	p.dropped([]string{t.TempDir()})

	c := a.dash.Controller(app.WorkflowEncrypt)
	if c.Selection().Len() != 0 {
		t.Error("Expected selection to stay empty")
	}
	entries := c.Transcript().Entries()
	if len(entries) != 1 || entries[0].Kind != app.LogError {
		t.Fatalf("Expected one error entry, got %+v", entries)
	}
	if p.drop.Highlighted() {
		t.Error("Expected highlight cleared after a failed drop")
	}
}

func TestDropAreaHover(t *testing.T) {
	a := createTestApp(t)
	a.start()
	p := a.pages[app.WorkflowEncrypt]

	p.drop.MouseIn(nil)
	if !p.drop.Highlighted() {
		t.Error("Expected highlight on hover")
	}
	p.drop.MouseOut()
	if p.drop.Highlighted() {
		t.Error("Expected highlight cleared")
	}
}

func TestFormReadsSelections(t *testing.T) {
	a := createTestApp(t)
	p := a.pages[app.WorkflowEncrypt]

	if p.Mode() != "gcm" || p.Policy() != "priority" {
		t.Errorf("Unexpected defaults %q %q", p.Mode(), p.Policy())
	}
	p.passwordEntry.SetText("pw")
	if p.Password() != "pw" {
		t.Errorf("Expected password pw, got %q", p.Password())
	}
}

func TestEncryptEndToEnd(t *testing.T) {
	a := createTestApp(t)
	a.start()
	p := a.pages[app.WorkflowEncrypt]
	c := a.dash.Controller(app.WorkflowEncrypt)

	p.dropped([]string{writeTempFile(t, "a.txt", "hello")})
	p.passwordEntry.SetText("secret")
	test.Tap(p.trigger)

	waitFor(t, "archive link", func() bool {
		return !c.Busy() && len(c.Transcript().Links()) == 1
	})

	link := c.Transcript().Links()[0]
	if !link.IsArtifact() || link.Label != "encrypted_outputs.zip" {
		t.Errorf("Unexpected link %+v", link)
	}
	if a.dash.Artifacts.Len() != 1 {
		t.Errorf("Expected one held artifact, got %d", a.dash.Artifacts.Len())
	}
	if got := a.status.StatusText(); got != "Encryption complete" {
		t.Errorf("Expected status 'Encryption complete', got %q", got)
	}
	waitFor(t, "trigger re-enabled", func() bool { return !p.trigger.Disabled() })
}

func TestLogRow(t *testing.T) {
	a := createTestApp(t)

	row := a.logRow(app.LogEntry{Kind: app.LogError, Text: "boom"})
	l, ok := row.(*widget.Label)
	if !ok {
		t.Fatalf("Expected label, got %T", row)
	}
	if l.Importance != widget.DangerImportance {
		t.Error("Expected danger importance for errors")
	}

	art := a.dash.Artifacts.Put("out.zip", []byte("x"))
	row = a.logRow(app.LogEntry{Kind: app.LogLink, Link: &app.Link{Label: "out.zip", URL: art.URL}})
	if b, ok := row.(*widget.Button); !ok || b.Text != "Download: out.zip" {
		t.Errorf("Expected download button, got %T", row)
	}
}
