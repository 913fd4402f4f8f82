// Package ui provides the AI Encryptor desktop dashboard using Fyne.
//
// The window has one tab per workflow:
//
//   - Encrypt: upload files, pick cipher mode and scheduling policy
//   - Decrypt: upload one package and fetch its members
//   - Compare: run Naive-FIFO against AI-Priority and chart the timings
//
// All state lives in internal/app. This package only implements its view
// interfaces with widgets and forwards user input to the dashboard.
// Requests run in goroutines; widget updates go through fyne.Do.
package ui

import (
	"context"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/api"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/config"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
)

const appID = "io.github.aienc.dashboard"

// App represents the main UI application.
type App struct {
	fyneApp fyne.App
	Window  fyne.Window
	Version string

	cfg    *config.Config
	client *api.Client
	dash   *app.Dashboard
	status *app.BoundStatus
	chart  *BarChart
	pages  map[app.Workflow]*page
	tabs   map[app.Workflow]*widget.Button

	passgen passgenOptions

	// Cancelled when the window closes; aborts in-flight requests
	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the dashboard for cfg.
func NewApp(version string, cfg *config.Config) *App {
	return newApp(fyneapp.NewWithID(appID), version, cfg)
}

func newApp(fa fyne.App, version string, cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		fyneApp: fa,
		Version: version,
		cfg:     cfg,
		client:  api.NewClient(cfg.ServerURL, api.WithTimeout(cfg.GetRequestTimeout())),
		status:  app.NewBoundStatus(),
		chart:   NewBarChart(),
		pages:   make(map[app.Workflow]*page),
		tabs:    make(map[app.Workflow]*widget.Button),
		passgen: defaultPassgenOptions(),
		ctx:     ctx,
		cancel:  cancel,
	}
	fa.Settings().SetTheme(NewDashboardTheme(cfg.UI.Theme))

	views := app.Views{
		Status: a.status,
		Chart:  a.chart,
		Pages:  make(map[app.Workflow]app.Page),
	}
	for _, w := range app.Workflows {
		p := newPage(a, w)
		a.pages[w] = p
		views.Pages[w] = app.Page{View: p, Form: p}
	}
	a.dash = app.NewDashboard(a.client, cfg.GetReleaseDelay(), views)

	a.Window = fa.NewWindow("AI Encryptor " + version)
	a.Window.SetContent(a.layout())
	a.Window.Resize(fyne.NewSize(980, 680))
	a.Window.SetOnDropped(a.onDropped)
	a.Window.SetCloseIntercept(a.onClose)
	return a
}

// layout binds the pages to their controllers and assembles the window.
func (a *App) layout() fyne.CanvasObject {
	header := container.NewGridWithColumns(len(app.Workflows))
	pages := container.NewStack()
	panels := container.NewStack()

	for _, w := range app.Workflows {
		p := a.pages[w]
		p.bind(a.dash.Controller(w))

		btn := widget.NewButton(w.String(), func() { a.dash.Tabs.Select(w) })
		a.tabs[w] = btn
		header.Add(btn)
		pages.Add(p.content)
		panels.Add(p.panel)
		p.content.Hide()
		p.panel.Hide()

		a.dash.Tabs.Register(w, tabButton{btn}, paneToggle{p.content}, paneToggle{p.panel})
	}

	server := widget.NewForm(
		widget.NewFormItem("Server", widget.NewLabel(a.client.BaseURL())),
		widget.NewFormItem("Workers", widget.NewLabelWithData(a.status.Workers)),
		widget.NewFormItem("Chunk size (MB)", widget.NewLabelWithData(a.status.ChunkMB)),
	)
	sidebar := container.NewVBox(
		panels,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Server Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		server,
	)

	statusBar := container.NewHBox(
		NewStatusLabel(a.status),
		layout.NewSpacer(),
		widget.NewLabel(a.Version),
	)

	return container.NewBorder(header, statusBar, nil, sidebar, container.NewPadded(pages))
}

// start enters the Encrypt tab and fetches the server settings in the
// background.
func (a *App) start() {
	a.dash.Start()
	go a.dash.LoadSettings(a.ctx, a.status)
}

// Run starts the UI application and blocks until the window closes.
func (a *App) Run() {
	log.Info("starting dashboard",
		log.String("version", a.Version),
		log.String("server", a.client.BaseURL()))
	a.start()
	a.Window.ShowAndRun()
}

// onDropped routes window drops to the active tab.
func (a *App) onDropped(_ fyne.Position, uris []fyne.URI) {
	w, ok := a.dash.Tabs.Active()
	if !ok {
		return
	}
	paths := make([]string, 0, len(uris))
	for _, u := range uris {
		paths = append(paths, u.Path())
	}
	log.Debug("files dropped",
		log.String("workflow", w.String()),
		log.Int("count", len(paths)))
	a.pages[w].dropped(paths)
}

func (a *App) busy() bool {
	for _, w := range app.Workflows {
		if a.dash.Controller(w).Busy() {
			return true
		}
	}
	return false
}

// onClose asks before abandoning in-flight requests.
func (a *App) onClose() {
	if !a.busy() {
		a.shutdown()
		return
	}
	dialog.ShowConfirm("Quit", "A request is still running. Quit anyway?", func(quit bool) {
		if quit {
			a.shutdown()
		}
	}, a.Window)
}

func (a *App) shutdown() {
	a.cancel()
	a.dash.Close()
	a.Window.Close()
}
