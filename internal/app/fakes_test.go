package app

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
)

// fakeView records everything a controller pushes to its tab.
type fakeView struct {
	mu       sync.Mutex
	lists    []FileList
	logs     []LogEntry
	triggers []bool
}

func (v *fakeView) ShowFileList(l FileList) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lists = append(v.lists, l)
}

func (v *fakeView) AppendLog(e LogEntry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.logs = append(v.logs, e)
}

func (v *fakeView) SetTriggerEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.triggers = append(v.triggers, enabled)
}

func (v *fakeView) lastList() FileList {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lists[len(v.lists)-1]
}

func (v *fakeView) triggerEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.triggers[len(v.triggers)-1]
}

func (v *fakeView) logLines() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	lines := make([]string, len(v.logs))
	for i, e := range v.logs {
		lines[i] = e.String()
	}
	return lines
}

// fakeForm is a mutable Form.
type fakeForm struct {
	mu                     sync.Mutex
	password, mode, policy string
}

func (f *fakeForm) Password() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.password
}

func (f *fakeForm) Mode() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *fakeForm) Policy() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.policy
}

func (f *fakeForm) setPassword(p string) {
	f.mu.Lock()
	f.password = p
	f.mu.Unlock()
}

type statusUpdate struct {
	text string
	kind LogKind
}

type fakeStatus struct {
	mu      sync.Mutex
	updates []statusUpdate
	// onStatus runs after each update, outside the lock.
	onStatus func(text string)
}

func (s *fakeStatus) SetStatus(text string, kind LogKind) {
	s.mu.Lock()
	s.updates = append(s.updates, statusUpdate{text, kind})
	hook := s.onStatus
	s.mu.Unlock()
	if hook != nil {
		hook(text)
	}
}

func (s *fakeStatus) texts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.updates))
	for i, u := range s.updates {
		out[i] = u.text
	}
	return out
}

type fakeChart struct {
	mu    sync.Mutex
	draws [][2]float64
}

func (c *fakeChart) DrawBars(labels [2]string, values [2]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draws = append(c.draws, values)
}

// fakeBackend answers with canned results. A non-nil block channel holds
// every workflow call until it is closed.
type fakeBackend struct {
	mu sync.Mutex

	settings   *api.Settings
	encrypt    *api.EncryptResult
	compare    *api.CompareResult
	decrypt    *api.DecryptResult
	download   *api.Archive
	err        error
	block      chan struct{}
	entered    chan struct{}
	encryptReq api.EncryptRequest
	compareReq api.CompareRequest
	decryptReq api.DecryptRequest
	calls      int
}

func (b *fakeBackend) wait(ctx context.Context) error {
	b.mu.Lock()
	b.calls++
	block, entered := b.block, b.entered
	b.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return b.err
}

func (b *fakeBackend) Settings(ctx context.Context) (*api.Settings, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.settings, nil
}

func (b *fakeBackend) Encrypt(ctx context.Context, req api.EncryptRequest) (*api.EncryptResult, error) {
	b.mu.Lock()
	b.encryptReq = req
	b.mu.Unlock()
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.encrypt, nil
}

func (b *fakeBackend) Compare(ctx context.Context, req api.CompareRequest) (*api.CompareResult, error) {
	b.mu.Lock()
	b.compareReq = req
	b.mu.Unlock()
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.compare, nil
}

func (b *fakeBackend) Decrypt(ctx context.Context, req api.DecryptRequest) (*api.DecryptResult, error) {
	b.mu.Lock()
	b.decryptReq = req
	b.mu.Unlock()
	if err := b.wait(ctx); err != nil {
		return nil, err
	}
	return b.decrypt, nil
}

func (b *fakeBackend) Download(ctx context.Context, sessionID, name string) (*api.Archive, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.download, nil
}

func (b *fakeBackend) DownloadURL(sessionID, name string) string {
	return "http://svc/api/download_decrypted/" + url.PathEscape(sessionID) + "/" + url.PathEscape(name)
}

type fakePane struct {
	mu     sync.Mutex
	active bool
	calls  int
}

func (p *fakePane) SetActive(active bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.active = active
	p.calls++
}

func (p *fakePane) isActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// harness wires a dashboard to fakes.
type harness struct {
	backend *fakeBackend
	status  *fakeStatus
	chart   *fakeChart
	views   map[Workflow]*fakeView
	forms   map[Workflow]*fakeForm
	dash    *Dashboard
}

func newHarness(b *fakeBackend) *harness {
	h := &harness{
		backend: b,
		status:  &fakeStatus{},
		chart:   &fakeChart{},
		views:   make(map[Workflow]*fakeView),
		forms:   make(map[Workflow]*fakeForm),
	}
	pages := make(map[Workflow]Page)
	for _, w := range Workflows {
		h.views[w] = &fakeView{}
		h.forms[w] = &fakeForm{password: "secret", mode: "gcm", policy: "priority"}
		pages[w] = Page{View: h.views[w], Form: h.forms[w]}
	}
	h.dash = NewDashboard(b, time.Minute, Views{Status: h.status, Chart: h.chart, Pages: pages})
	return h
}
