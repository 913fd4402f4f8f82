package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
)

// dropArea is the visible drop zone of a tab. Files dropped anywhere on
// the window reach the active tab through Window.SetOnDropped; the area
// itself shows the highlight and opens the picker when tapped.
//
// Fyne reports no drag-enter events, so pointer hover stands in for
// drag-over: the OS delivers the pointer to the window while a drag is
// in progress.
type dropArea struct {
	widget.BaseWidget

	zone        *app.DropZone
	onTapped    func()
	hint        string
	highlighted bool
}

var (
	_ desktop.Hoverable = (*dropArea)(nil)
	_ fyne.Tappable     = (*dropArea)(nil)
)

func newDropArea(hint string, onTapped func()) *dropArea {
	d := &dropArea{hint: hint, onTapped: onTapped}
	d.ExtendBaseWidget(d)
	return d
}

// SetHighlight toggles the drag-over styling.
func (d *dropArea) SetHighlight(on bool) {
	d.highlighted = on
	d.Refresh()
}

// Highlighted reports the drag-over styling.
func (d *dropArea) Highlighted() bool {
	return d.highlighted
}

// Tapped opens the picker.
func (d *dropArea) Tapped(*fyne.PointEvent) {
	if d.onTapped != nil {
		d.onTapped()
	}
}

// MouseIn enters the drag-over state.
func (d *dropArea) MouseIn(*desktop.MouseEvent) {
	if d.zone != nil {
		d.zone.DragEnter()
	}
}

// MouseMoved is required by desktop.Hoverable.
func (d *dropArea) MouseMoved(*desktop.MouseEvent) {}

// MouseOut leaves the drag-over state.
func (d *dropArea) MouseOut() {
	if d.zone != nil {
		d.zone.DragLeave()
	}
}

// MinSize returns the minimum size of the drop area.
func (d *dropArea) MinSize() fyne.Size {
	return fyne.NewSize(320, 90)
}

// CreateRenderer creates the renderer for the drop area.
func (d *dropArea) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent)
	bg.StrokeWidth = 2
	bg.CornerRadius = theme.InputRadiusSize()
	text := canvas.NewText(d.hint, theme.Color(theme.ColorNamePlaceHolder))
	text.Alignment = fyne.TextAlignCenter
	r := &dropAreaRenderer{area: d, bg: bg, text: text}
	r.Refresh()
	return r
}

type dropAreaRenderer struct {
	area *dropArea
	bg   *canvas.Rectangle
	text *canvas.Text
}

func (r *dropAreaRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	textSize := r.text.MinSize()
	r.text.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
	r.text.Resize(fyne.NewSize(size.Width, textSize.Height))
}

func (r *dropAreaRenderer) MinSize() fyne.Size {
	return r.area.MinSize()
}

func (r *dropAreaRenderer) Refresh() {
	if r.area.highlighted {
		r.bg.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.bg.FillColor = theme.Color(theme.ColorNameHover)
		r.text.Color = theme.Color(theme.ColorNameForeground)
	} else {
		r.bg.StrokeColor = theme.Color(theme.ColorNameInputBorder)
		r.bg.FillColor = color.Transparent
		r.text.Color = theme.Color(theme.ColorNamePlaceHolder)
	}
	r.bg.Refresh()
	r.text.Refresh()
}

func (r *dropAreaRenderer) Destroy() {}

func (r *dropAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text}
}
