package tfd

import (
	"strings"

	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
)

// optional carries a (value, ok) result through dispatch.
type optional[T any] struct {
	value T
	ok    bool
}

func some[T any](v T, ok bool) optional[T] { return optional[T]{v, ok} }

// MessageBoxBuilder configures a message box.
type MessageBoxBuilder struct {
	m dialog.Message
}

// NewMessageBox starts a message box with an info icon.
func NewMessageBox(title, message string) *MessageBoxBuilder {
	return &MessageBoxBuilder{m: dialog.Message{Dialog: dialog.Dialog{Title: title, Message: message}}}
}

// Icon sets the icon.
func (b *MessageBoxBuilder) Icon(icon Icon) *MessageBoxBuilder {
	b.m.Icon = icon
	return b
}

var okLayout = dialog.NewLayout([]string{"OK"}, []OkCancel{Ok})

// checkBox lays m out with def and enforces the box invariants before
// dispatch. A default the layout does not offer is dropped; a box without
// buttons is not shown.
func checkBox[T comparable](op string, l dialog.Layout[T], m dialog.Message, def T) bool {
	box := l.Box(m, def)
	if !box.Validate() {
		logger.Warnf("%s: message box has no buttons; not shown", op)
		return false
	}
	if !box.HasDefault() {
		logger.Warnf("%s: default button %d is not offered; showing no default", op, any(def))
	}
	return true
}

// RunOk shows the box with an OK button.
func (b *MessageBoxBuilder) RunOk() {
	if !checkBox("message_ok", okLayout, b.m, Ok) {
		return
	}
	dispatch("message_ok", struct{}{}, func(be Backend) struct{} {
		be.MessageOk(b.m)
		return struct{}{}
	})
}

// RunOkCancel shows OK and Cancel; def is the default button.
func (b *MessageBoxBuilder) RunOkCancel(def OkCancel) OkCancel {
	if !checkBox("message_ok_cancel", dialog.OkCancelLayout, b.m, def) {
		return Cancel
	}
	return dispatch("message_ok_cancel", Cancel, func(be Backend) OkCancel {
		return be.MessageOkCancel(b.m, def)
	})
}

// RunYesNo shows Yes and No; def is the default button.
func (b *MessageBoxBuilder) RunYesNo(def YesNo) YesNo {
	if !checkBox("message_yes_no", dialog.YesNoLayout, b.m, def) {
		return No
	}
	return dispatch("message_yes_no", No, func(be Backend) YesNo {
		return be.MessageYesNo(b.m, def)
	})
}

// RunYesNoCancel shows Yes, No and Cancel; def is the default button.
func (b *MessageBoxBuilder) RunYesNoCancel(def YesNoCancel) YesNoCancel {
	if !checkBox("message_yes_no_cancel", dialog.YesNoCancelLayout, b.m, def) {
		return YesNoCancelCancel
	}
	return dispatch("message_yes_no_cancel", YesNoCancelCancel, func(be Backend) YesNoCancel {
		return be.MessageYesNoCancel(b.m, def)
	})
}

// InputBuilder configures a text or password prompt.
type InputBuilder struct {
	in dialog.Input
}

// NewInput starts a text prompt without a default.
func NewInput(title, message string) *InputBuilder {
	return &InputBuilder{in: dialog.Input{Dialog: dialog.Dialog{Title: title, Message: message}}}
}

// Default prefills the prompt.
func (b *InputBuilder) Default(def string) *InputBuilder {
	b.in.Default = def
	b.in.HasDefault = true
	return b
}

// Password hides the typed text and drops any default.
func (b *InputBuilder) Password() *InputBuilder {
	b.in.Password = true
	b.in.Default = ""
	b.in.HasDefault = false
	return b
}

// Run shows the prompt.
func (b *InputBuilder) Run() (string, bool) {
	op := "input"
	if b.in.Password {
		op = "password"
	}
	r := dispatch(op, optional[string]{}, func(be Backend) optional[string] {
		return some[string](be.Input(b.in))
	})
	return r.value, r.ok
}

// FileDialogBuilder configures a save, open or folder dialog.
type FileDialogBuilder struct {
	fd dialog.FileDialog
}

// NewFileDialog starts a file dialog showing all files.
func NewFileDialog(title string) *FileDialogBuilder {
	return &FileDialogBuilder{fd: dialog.FileDialog{Dialog: dialog.Dialog{Title: title}}}
}

// Path sets the starting directory or proposed file. A trailing separator
// marks a directory.
func (b *FileDialogBuilder) Path(p string) *FileDialogBuilder {
	b.fd.Path = strings.TrimSpace(p)
	return b
}

// Filter restricts the dialog to glob patterns such as "*.png". Blank
// patterns are dropped; none at all means no filter.
func (b *FileDialogBuilder) Filter(patterns []string, description string) *FileDialogBuilder {
	b.fd.Filters = normalizeFilters(patterns)
	b.fd.FilterDescription = strings.TrimSpace(description)
	return b
}

// RunSave asks for a path to save to.
func (b *FileDialogBuilder) RunSave() (string, bool) {
	fd := b.fd
	fd.Multiple = false
	r := dispatch("save_file", optional[string]{}, func(be Backend) optional[string] {
		return some[string](be.SaveFile(fd))
	})
	return r.value, r.ok
}

// RunOpen asks for one existing file.
func (b *FileDialogBuilder) RunOpen() (string, bool) {
	fd := b.fd
	fd.Multiple = false
	paths, ok := b.open(fd)
	if !ok || len(paths) == 0 {
		return "", false
	}
	return paths[0], true
}

// RunOpenMulti asks for one or more existing files.
func (b *FileDialogBuilder) RunOpenMulti() ([]string, bool) {
	fd := b.fd
	fd.Multiple = true
	return b.open(fd)
}

func (b *FileDialogBuilder) open(fd dialog.FileDialog) ([]string, bool) {
	r := dispatch("open_file", optional[[]string]{}, func(be Backend) optional[[]string] {
		return some[[]string](be.OpenFile(fd))
	})
	if !r.ok || len(r.value) == 0 {
		return nil, false
	}
	return r.value, true
}

// RunSelectFolder asks for a directory. Filters are ignored.
func (b *FileDialogBuilder) RunSelectFolder() (string, bool) {
	fd := b.fd
	fd.Filters = nil
	fd.FilterDescription = ""
	fd.Multiple = false
	r := dispatch("select_folder", optional[string]{}, func(be Backend) optional[string] {
		return some[string](be.SelectFolder(fd))
	})
	return r.value, r.ok
}

// ColorChooserBuilder configures a color chooser.
type ColorChooserBuilder struct {
	cc dialog.ColorChooser
}

// NewColorChooser starts a color chooser seeded with black.
func NewColorChooser(title string) *ColorChooserBuilder {
	return &ColorChooserBuilder{cc: dialog.ColorChooser{Dialog: dialog.Dialog{Title: title}}}
}

// Default seeds the chooser.
func (b *ColorChooserBuilder) Default(v ColorValue) *ColorChooserBuilder {
	b.cc.Default = v
	return b
}

// Run shows the chooser.
func (b *ColorChooserBuilder) Run() (Color, bool) {
	r := dispatch("color_chooser", optional[Color]{}, func(be Backend) optional[Color] {
		return some[Color](be.ChooseColor(b.cc))
	})
	return r.value, r.ok
}

// NotificationBuilder configures a desktop notification.
type NotificationBuilder struct {
	n dialog.Notification
}

// NewNotification starts a notification.
func NewNotification(title, message string) *NotificationBuilder {
	return &NotificationBuilder{n: dialog.Notification{Title: title, Message: message}}
}

// Subtitle adds a second heading line where the platform has one.
func (b *NotificationBuilder) Subtitle(s string) *NotificationBuilder {
	b.n.Subtitle = s
	return b
}

// Sound names a notification sound, for example "Glass" on macOS or
// "message-new-instant" on freedesktop desktops.
func (b *NotificationBuilder) Sound(name string) *NotificationBuilder {
	b.n.Sound = name
	return b
}

// Run sends the notification and reports whether it was delivered.
func (b *NotificationBuilder) Run() bool {
	return dispatch("notify", false, func(be Backend) bool {
		return be.Notify(b.n)
	})
}
