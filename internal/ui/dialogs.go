package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/app"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/errors"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/log"
	"github.com/bobbyrawat1511-art69/Adaptive-file-encryptor/internal/util"
)

// passgenOptions are the generator settings, kept across dialog openings.
type passgenOptions struct {
	length  int
	charset util.Charset
	copy    bool
}

func defaultPassgenOptions() passgenOptions {
	return passgenOptions{length: util.DefaultPasswordLength, charset: util.AllChars}
}

// charsetCheck binds a checkbox to one bit of a Charset.
func charsetCheck(label string, bit util.Charset, set *util.Charset) *widget.Check {
	c := widget.NewCheck(label, func(checked bool) {
		if checked {
			*set |= bit
		} else {
			*set &^= bit
		}
	})
	c.SetChecked(*set&bit != 0)
	return c
}

// showPassgenDialog asks for generator settings and hands the result to
// apply. Nothing happens when every character class is unchecked.
func (a *App) showPassgenDialog(apply func(password string)) {
	opts := &a.passgen

	lengthLabel := widget.NewLabel(fmt.Sprintf("Length: %d", opts.length))
	lengthSlider := widget.NewSlider(12, 64)
	lengthSlider.Step = 1
	lengthSlider.Value = float64(opts.length)
	lengthSlider.OnChanged = func(v float64) {
		opts.length = int(v)
		lengthLabel.SetText(fmt.Sprintf("Length: %d", opts.length))
	}

	copyCheck := widget.NewCheck("Copy to clipboard", func(checked bool) {
		opts.copy = checked
	})
	copyCheck.SetChecked(opts.copy)

	content := container.NewVBox(
		lengthLabel,
		lengthSlider,
		charsetCheck("Uppercase", util.Upper, &opts.charset),
		charsetCheck("Lowercase", util.Lower, &opts.charset),
		charsetCheck("Numbers", util.Digits, &opts.charset),
		charsetCheck("Symbols", util.Symbols, &opts.charset),
		copyCheck,
	)

	d := dialog.NewCustomConfirm("Generate password:", "Generate", "Cancel", content, func(generate bool) {
		if !generate || opts.charset == 0 {
			return
		}
		password, err := util.NewPassword(opts.length, opts.charset)
		if err != nil {
			dialog.ShowError(err, a.Window)
			return
		}
		if opts.copy {
			a.fyneApp.Clipboard().SetContent(password)
		}
		apply(password)
	}, a.Window)
	d.Show()
}

// showSaveDialog asks where to store data, suggesting filename.
func (a *App) showSaveDialog(filename string, data []byte) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.Window)
			return
		}
		if w == nil {
			return // cancelled
		}
		defer w.Close()

		if _, err := w.Write(data); err != nil {
			dialog.ShowError(&errors.FileError{Op: "write", Path: w.URI().Path(), Err: err}, a.Window)
			return
		}
		log.Info("saved download",
			log.String("path", w.URI().Path()),
			log.String("size", util.FmtBytes(int64(len(data)))),
			log.String("blake2b", app.Digest(data)))
	}, a.Window)
	d.SetFileName(filename)
	d.Show()
}

// showOpenDialog lets the user pick one file for workflow selection.
func (a *App) showOpenDialog(onPicked func(path string)) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.Window)
			return
		}
		if r == nil {
			return
		}
		path := r.URI().Path()
		_ = r.Close()
		onPicked(path)
	}, a.Window)
	d.Show()
}
