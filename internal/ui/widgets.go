package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

const meterSegments = 4

// StrengthMeter shows the zxcvbn score of the typed password as a row of
// segments. Nothing is lit while the password is empty.
type StrengthMeter struct {
	widget.BaseWidget
	score int // -1 when empty
}

func NewStrengthMeter() *StrengthMeter {
	m := &StrengthMeter{score: -1}
	m.ExtendBaseWidget(m)
	return m
}

// SetPassword rescores the meter for password.
func (m *StrengthMeter) SetPassword(password string) {
	if password == "" {
		m.score = -1
	} else {
		m.score = min(max(util.PasswordScore(password), 0), meterSegments)
	}
	m.Refresh()
}

// lit is the number of highlighted segments: one per score point, at
// least one once anything is typed.
func (m *StrengthMeter) lit() int {
	if m.score < 0 {
		return 0
	}
	return max(m.score, 1)
}

func (m *StrengthMeter) CreateRenderer() fyne.WidgetRenderer {
	r := &strengthMeterRenderer{meter: m}
	for i := range r.segments {
		r.segments[i] = canvas.NewRectangle(color.Transparent)
		r.segments[i].CornerRadius = 2
	}
	r.Refresh()
	return r
}

type strengthMeterRenderer struct {
	meter    *StrengthMeter
	segments [meterSegments]*canvas.Rectangle
}

func (r *strengthMeterRenderer) Layout(size fyne.Size) {
	gap := float32(3)
	w := (size.Width - gap*(meterSegments-1)) / meterSegments
	h := float32(6)
	y := (size.Height - h) / 2
	for i, s := range r.segments {
		s.Move(fyne.NewPos(float32(i)*(w+gap), y))
		s.Resize(fyne.NewSize(w, h))
	}
}

func (r *strengthMeterRenderer) MinSize() fyne.Size {
	return fyne.NewSize(64, 16)
}

func (r *strengthMeterRenderer) Refresh() {
	lit := r.meter.lit()
	off := theme.Color(theme.ColorNameInputBorder)
	for i, s := range r.segments {
		if i < lit {
			s.FillColor = strengthColor(r.meter.score)
		} else {
			s.FillColor = off
		}
		s.Refresh()
	}
}

func (r *strengthMeterRenderer) Destroy() {}

func (r *strengthMeterRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, len(r.segments))
	for i, s := range r.segments {
		objs[i] = s
	}
	return objs
}

// strengthColor blends from red at score 0 to green at score 4.
func strengthColor(score int) color.RGBA {
	return color.RGBA{
		R: uint8(0xc8 - 31*score),
		G: uint8(0x4c + 31*score),
		B: 0x4b,
		A: 0xff,
	}
}

// TooltipButton is a button that explains itself on hover.
type TooltipButton struct {
	widget.Button
	tooltip string
	popup   *widget.PopUp
}

var _ desktop.Hoverable = (*TooltipButton)(nil)

func NewTooltipButton(label, tooltip string, onTapped func()) *TooltipButton {
	b := &TooltipButton{tooltip: tooltip}
	b.Text = label
	b.OnTapped = onTapped
	b.ExtendBaseWidget(b)
	return b
}

func (b *TooltipButton) MouseIn(e *desktop.MouseEvent) {
	b.Button.MouseIn(e)
	if b.tooltip == "" || b.Disabled() {
		return
	}
	c := fyne.CurrentApp().Driver().CanvasForObject(b)
	if c == nil {
		return
	}
	text := canvas.NewText(b.tooltip, theme.Color(theme.ColorNameForeground))
	text.TextSize = theme.CaptionTextSize()
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	b.popup = widget.NewPopUp(container.NewStack(bg, container.NewPadded(text)), c)
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(b)
	b.popup.ShowAtPosition(fyne.NewPos(pos.X, pos.Y+b.Size().Height+2))
}

func (b *TooltipButton) MouseOut() {
	b.Button.MouseOut()
	if b.popup != nil {
		b.popup.Hide()
		b.popup = nil
	}
}

// StatusLabel is the global status line. Its colour follows the kind of
// the last update: red for errors, green for success.
type StatusLabel struct {
	widget.BaseWidget
	status *app.BoundStatus
}

// NewStatusLabel creates a label that redraws whenever s changes.
func NewStatusLabel(s *app.BoundStatus) *StatusLabel {
	l := &StatusLabel{status: s}
	l.ExtendBaseWidget(l)
	// SetStatus writes the kind before the text, so the text listener
	// always sees a matching kind.
	s.Status.AddListener(binding.NewDataListener(l.Refresh))
	return l
}

func (l *StatusLabel) CreateRenderer() fyne.WidgetRenderer {
	text := canvas.NewText("", nil)
	text.TextSize = theme.TextSize()
	r := &statusLabelRenderer{label: l, text: text}
	r.Refresh()
	return r
}

type statusLabelRenderer struct {
	label *StatusLabel
	text  *canvas.Text
}

func (r *statusLabelRenderer) Layout(fyne.Size) {
	r.text.Move(fyne.NewPos(0, 0))
}

func (r *statusLabelRenderer) MinSize() fyne.Size {
	return r.text.MinSize()
}

func (r *statusLabelRenderer) Refresh() {
	r.text.Text = r.label.status.StatusText()
	r.text.Color = kindColor(r.label.status.StatusKind())
	r.text.Refresh()
}

func (r *statusLabelRenderer) Destroy() {}

func (r *statusLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.text}
}
