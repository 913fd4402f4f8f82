package app

import "sync"

// TabController keeps exactly one workflow tab active. Each tab owns a
// button, a page and a settings panel.
type TabController struct {
	mu       sync.Mutex
	panes    map[Workflow][]Pane
	active   Workflow
	started  bool
	onSelect func(Workflow)
}

// NewTabController creates an empty controller.
func NewTabController() *TabController {
	return &TabController{panes: make(map[Workflow][]Pane)}
}

// Register attaches panes to workflow w.
func (t *TabController) Register(w Workflow, panes ...Pane) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.panes[w] = append(t.panes[w], panes...)
}

// OnSelect installs a callback run after every switch.
func (t *TabController) OnSelect(fn func(Workflow)) {
	t.mu.Lock()
	t.onSelect = fn
	t.mu.Unlock()
}

// Select deactivates every pane, then activates the panes of w.
func (t *TabController) Select(w Workflow) {
	t.mu.Lock()
	for _, panes := range t.panes {
		for _, p := range panes {
			p.SetActive(false)
		}
	}
	for _, p := range t.panes[w] {
		p.SetActive(true)
	}
	t.active = w
	t.started = true
	fn := t.onSelect
	t.mu.Unlock()

	if fn != nil {
		fn(w)
	}
}

// Start enters the initial Encrypt state.
func (t *TabController) Start() {
	t.Select(WorkflowEncrypt)
}

// Active returns the active workflow and whether Start or Select ran.
func (t *TabController) Active() (Workflow, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active, t.started
}
