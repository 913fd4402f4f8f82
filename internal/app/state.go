// Package app is the front-end independent core of the dashboard.
//
// It owns everything the desktop and terminal front ends share:
//
//  1. Per-tab state (controller.go, selection.go):
//     each workflow tab has a Controller holding its Selection, its
//     Transcript and its trigger enablement. Selections are replaced
//     wholesale through Controller.SetSelection.
//
//  2. Workflows (runner.go, encrypt.go, compare.go, decrypt.go):
//     the Runner issues one request per trigger against a Backend and
//     routes the result to the transcript, the status line, the chart and
//     the artifact store.
//
//  3. View binding (view.go, reporter.go, binding.go):
//     widgets are reached only through small interfaces so that the
//     workflows can run against fakes in tests.
//
// Dashboard wires all of it together.
package app

import (
	"context"
	"sync"
	"time"
)

// Page binds one workflow tab to its widgets.
type Page struct {
	View View
	Form Form
}

// Views is the full view binding of a dashboard. Any member may be nil.
type Views struct {
	Status StatusLine
	Chart  ChartView
	Pages  map[Workflow]Page
}

// Dashboard holds the application state shared by all tabs.
type Dashboard struct {
	Runner    *Runner
	Tabs      *TabController
	Artifacts *ArtifactStore
	Chart     *Chart

	mu          sync.RWMutex
	controllers map[Workflow]*Controller
}

// NewDashboard creates a dashboard talking to backend. Received archives
// are released releaseDelay after they arrive.
func NewDashboard(backend Backend, releaseDelay time.Duration, v Views) *Dashboard {
	d := &Dashboard{
		Tabs:        NewTabController(),
		Artifacts:   NewArtifactStore(releaseDelay),
		Chart:       NewChart(v.Chart),
		controllers: make(map[Workflow]*Controller),
	}
	d.Runner = NewRunner(backend, v.Status, d.Artifacts, d.Chart)

	for _, w := range Workflows {
		p := v.Pages[w]
		d.controllers[w] = NewController(w, p.View, p.Form)
	}
	return d
}

// Controller returns the controller of workflow w.
func (d *Dashboard) Controller(w Workflow) *Controller {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.controllers[w]
}

// Submit runs workflow w to completion. Failures are already reported to
// the views when it returns.
func (d *Dashboard) Submit(ctx context.Context, w Workflow) error {
	c := d.Controller(w)
	switch w {
	case WorkflowEncrypt:
		return d.Runner.Encrypt(ctx, c)
	case WorkflowCompare:
		return d.Runner.Compare(ctx, c)
	default:
		return d.Runner.Decrypt(ctx, c)
	}
}

// Start draws the empty chart and selects the Encrypt tab.
func (d *Dashboard) Start() {
	d.Chart.Init()
	d.Tabs.Start()
}

// LoadSettings fetches the server settings into views. It blocks for the
// duration of the request.
func (d *Dashboard) LoadSettings(ctx context.Context, views ...SettingsView) (workers, chunkMB string) {
	return FetchSettings(ctx, d.Runner.backend, views...)
}

// Close releases every held artifact.
func (d *Dashboard) Close() {
	d.Artifacts.Close()
}
