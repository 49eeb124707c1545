// Package none is the backend for targets without any reachable dialog
// toolkit. Every call returns the negative result.
package none

import (
	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
)

// Backend declines every dialog.
type Backend struct {
	name string
}

var _ dialog.Backend = Backend{}

// New returns a Backend reporting name, usually the GOOS.
func New(name string) Backend {
	return Backend{name: name}
}

func (b Backend) Name() string { return b.name }

func (b Backend) unsupported(kind string) {
	logger.Debugf("%s dialogs are not available on %s", kind, b.name)
}

func (b Backend) MessageOk(dialog.Message) { b.unsupported("message") }

func (b Backend) MessageOkCancel(dialog.Message, dialog.OkCancel) dialog.OkCancel {
	b.unsupported("message")
	return dialog.Cancel
}

func (b Backend) MessageYesNo(dialog.Message, dialog.YesNo) dialog.YesNo {
	b.unsupported("message")
	return dialog.No
}

func (b Backend) MessageYesNoCancel(dialog.Message, dialog.YesNoCancel) dialog.YesNoCancel {
	b.unsupported("message")
	return dialog.YesNoCancelCancel
}

func (b Backend) Input(dialog.Input) (string, bool) {
	b.unsupported("input")
	return "", false
}

func (b Backend) SaveFile(dialog.FileDialog) (string, bool) {
	b.unsupported("file")
	return "", false
}

func (b Backend) OpenFile(dialog.FileDialog) ([]string, bool) {
	b.unsupported("file")
	return nil, false
}

func (b Backend) SelectFolder(dialog.FileDialog) (string, bool) {
	b.unsupported("folder")
	return "", false
}

func (b Backend) ChooseColor(dialog.ColorChooser) (dialog.Color, bool) {
	b.unsupported("color")
	return dialog.Color{}, false
}

func (b Backend) Notify(dialog.Notification) bool {
	b.unsupported("notification")
	return false
}
