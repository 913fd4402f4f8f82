package ui

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

var barColors = [2]color.Color{
	color.RGBA{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff}, // FIFO
	util.GREEN, // AI-Priority
}

// BarChart draws two labelled bars scaled to the larger value.
type BarChart struct {
	widget.BaseWidget

	mu     sync.Mutex
	labels [2]string
	values [2]float64
}

var _ app.ChartView = (*BarChart)(nil)

// NewBarChart creates an empty chart.
func NewBarChart() *BarChart {
	c := &BarChart{}
	c.ExtendBaseWidget(c)
	return c
}

// DrawBars implements app.ChartView. Safe to call from any goroutine.
func (c *BarChart) DrawBars(labels [2]string, values [2]float64) {
	c.mu.Lock()
	c.labels = labels
	c.values = values
	c.mu.Unlock()
	fyne.Do(c.Refresh)
}

// Bars returns the drawn labels and values.
func (c *BarChart) Bars() ([2]string, [2]float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.labels, c.values
}

// MinSize returns the minimum size of the chart.
func (c *BarChart) MinSize() fyne.Size {
	return fyne.NewSize(220, 160)
}

// CreateRenderer creates the renderer for the chart.
func (c *BarChart) CreateRenderer() fyne.WidgetRenderer {
	r := &barChartRenderer{chart: c, axis: canvas.NewLine(theme.Color(theme.ColorNameForeground))}
	for i := range r.bars {
		r.bars[i] = canvas.NewRectangle(barColors[i])
		r.names[i] = canvas.NewText("", theme.Color(theme.ColorNameForeground))
		r.names[i].Alignment = fyne.TextAlignCenter
		r.names[i].TextSize = theme.CaptionTextSize()
		r.values[i] = canvas.NewText("", theme.Color(theme.ColorNameForeground))
		r.values[i].Alignment = fyne.TextAlignCenter
		r.values[i].TextSize = theme.CaptionTextSize()
	}
	r.Refresh()
	return r
}

type barChartRenderer struct {
	chart  *BarChart
	axis   *canvas.Line
	bars   [2]*canvas.Rectangle
	names  [2]*canvas.Text
	values [2]*canvas.Text
}

func (r *barChartRenderer) Layout(size fyne.Size) {
	_, values := r.chart.Bars()
	pad := theme.Padding()
	textH := fyne.MeasureText("0", theme.CaptionTextSize(), fyne.TextStyle{}).Height

	plotTop := textH + pad
	plotBottom := size.Height - textH - pad
	plotH := max(plotBottom-plotTop, 0)
	slot := size.Width / 2
	barW := slot / 2

	r.axis.Position1 = fyne.NewPos(0, plotBottom)
	r.axis.Position2 = fyne.NewPos(size.Width, plotBottom)

	peak := max(values[0], values[1])
	for i := range r.bars {
		h := float32(0)
		if peak > 0 {
			h = plotH * float32(values[i]/peak)
		}
		x := slot*float32(i) + (slot-barW)/2
		r.bars[i].Move(fyne.NewPos(x, plotBottom-h))
		r.bars[i].Resize(fyne.NewSize(barW, h))

		r.values[i].Move(fyne.NewPos(slot*float32(i), plotBottom-h-textH))
		r.values[i].Resize(fyne.NewSize(slot, textH))
		r.names[i].Move(fyne.NewPos(slot*float32(i), plotBottom+pad))
		r.names[i].Resize(fyne.NewSize(slot, textH))
	}
}

func (r *barChartRenderer) MinSize() fyne.Size {
	return r.chart.MinSize()
}

func (r *barChartRenderer) Refresh() {
	labels, values := r.chart.Bars()
	for i := range r.bars {
		r.names[i].Text = labels[i]
		r.values[i].Text = util.FmtSeconds(values[i])
		r.names[i].Refresh()
		r.values[i].Refresh()
	}
	r.Layout(r.chart.Size())
	canvas.Refresh(r.chart)
}

func (r *barChartRenderer) Destroy() {}

func (r *barChartRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{
		r.axis,
		r.bars[0], r.bars[1],
		r.names[0], r.names[1],
		r.values[0], r.values[1],
	}
}
