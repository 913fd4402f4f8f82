package app

import "sync"

// ChartLabels are the fixed bar labels of the comparison chart.
var ChartLabels = [2]string{"FIFO (Naive)", "AI-Priority"}

// Chart is the two-bar elapsed-time comparison. Each update overwrites
// the previous run.
type Chart struct {
	mu          sync.Mutex
	view        ChartView
	initialized bool
	values      [2]float64
}

// NewChart creates a chart drawing into view. Nothing is drawn until Init
// or the first Update.
func NewChart(view ChartView) *Chart {
	return &Chart{view: view}
}

// Init draws the empty chart once. Later calls do nothing.
func (c *Chart) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return
	}
	c.initialized = true
	c.values = [2]float64{}
	c.draw()
}

// Update replaces both bar heights and redraws, initialising first if
// needed.
func (c *Chart) Update(fifo, ai float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = true
	c.values = [2]float64{fifo, ai}
	c.draw()
}

// Reset zeroes both bars.
func (c *Chart) Reset() {
	c.Update(0, 0)
}

// Values returns the current bar heights.
func (c *Chart) Values() (fifo, ai float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[0], c.values[1]
}

// Initialized reports whether the chart has been drawn.
func (c *Chart) Initialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

func (c *Chart) draw() {
	if c.view != nil {
		c.view.DrawBars(ChartLabels, c.values)
	}
}
