package tfd

import (
	"sync"

	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
	"github.com/1broseidon/tfd/internal/platform"
)

type (
	// Icon selects the icon of a message box.
	Icon = dialog.Icon
	// OkCancel is the result of an OK/Cancel message box.
	OkCancel = dialog.OkCancel
	// YesNo is the result of a Yes/No message box.
	YesNo = dialog.YesNo
	// YesNoCancel is the result of a Yes/No/Cancel message box.
	YesNoCancel = dialog.YesNoCancel
	// Color is a chosen color as "#rrggbb" and as an RGB triple.
	Color = dialog.Color
	// ColorValue seeds a color chooser; build one with HexColor or RGBColor.
	ColorValue = dialog.ColorValue
	// Backend is the platform dialog implementation.
	Backend = dialog.Backend
)

const (
	IconInfo     = dialog.IconInfo
	IconWarning  = dialog.IconWarning
	IconError    = dialog.IconError
	IconQuestion = dialog.IconQuestion

	Cancel = dialog.Cancel
	Ok     = dialog.Ok

	No  = dialog.No
	Yes = dialog.Yes

	YesNoCancelCancel = dialog.YesNoCancelCancel
	YesNoCancelYes    = dialog.YesNoCancelYes
	YesNoCancelNo     = dialog.YesNoCancelNo
)

// ParseIcon maps "info", "warning" (or "warn"), "error" and "question" to an
// Icon. Anything else is IconInfo.
func ParseIcon(name string) Icon { return dialog.ParseIcon(name) }

// HexColor seeds a color chooser with "#rrggbb" or "rrggbb".
func HexColor(hex string) ColorValue { return dialog.HexColor(hex) }

// RGBColor seeds a color chooser with an RGB triple.
func RGBColor(rgb [3]uint8) ColorValue { return dialog.RGBColor(rgb) }

// RGBToHex formats rgb as lowercase "#rrggbb".
func RGBToHex(rgb [3]uint8) string { return dialog.RGBToHex(rgb) }

// HexToRGB parses "#rrggbb" leniently: a malformed or missing channel is 0.
func HexToRGB(hex string) [3]uint8 { return dialog.HexToRGB(hex) }

var (
	mu      sync.Mutex
	current Backend
)

// loadBackend reads the config, applies its log settings and links the
// platform backend. A broken config file is logged and defaults are used.
func loadBackend() Backend {
	cfg, err := config.Load()
	if err != nil {
		logger.Warnf("using default dialog config: %v", err)
		cfg = config.DefaultConfig()
	}
	if cfg.Log.Level != "" {
		logger.SetLevel(cfg.Log.Level)
	}
	if cfg.Log.File != "" {
		if err := logger.SetOutputFile(cfg.Log.File); err != nil {
			logger.Warnf("log file: %v", err)
		}
	}
	return platform.New(cfg)
}

// backend returns the active backend, linking the platform one on first use.
func backend() Backend {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = loadBackend()
	}
	return current
}

// SetBackend replaces the backend every call dispatches to and returns the
// previous one. A nil b restores the platform backend on next use.
func SetBackend(b Backend) Backend {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = b
	return prev
}

// BackendName reports the active backend, for example "zenity", "console",
// "osascript" or "win32".
func BackendName() string {
	return dispatch("name", "", func(b Backend) string { return b.Name() })
}

// dispatch runs one backend call. A panicking backend yields neg.
func dispatch[T any](op string, neg T, call func(Backend) T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warnf("%s: dialog backend panicked: %v", op, r)
			out = neg
		}
	}()
	return call(backend())
}

// normalizeFilters trims patterns and drops the empty ones.
func normalizeFilters(patterns []string) []string {
	return dialog.FileDialog{Filters: patterns}.Patterns()
}

// MessageBoxOk shows a message with a single OK button.
func MessageBoxOk(title, message string, icon Icon) {
	NewMessageBox(title, message).Icon(icon).RunOk()
}

// MessageBoxOkCancel asks OK or Cancel with def as the default button.
func MessageBoxOkCancel(title, message string, icon Icon, def OkCancel) OkCancel {
	return NewMessageBox(title, message).Icon(icon).RunOkCancel(def)
}

// MessageBoxYesNo asks Yes or No with def as the default button.
func MessageBoxYesNo(title, message string, icon Icon, def YesNo) YesNo {
	return NewMessageBox(title, message).Icon(icon).RunYesNo(def)
}

// MessageBoxYesNoCancel asks Yes, No or Cancel with def as the default
// button.
func MessageBoxYesNoCancel(title, message string, icon Icon, def YesNoCancel) YesNoCancel {
	return NewMessageBox(title, message).Icon(icon).RunYesNoCancel(def)
}

// InputBox prompts for a line of text prefilled with def.
func InputBox(title, message, def string) (string, bool) {
	return NewInput(title, message).Default(def).Run()
}

// PasswordBox prompts for a secret without echoing it.
func PasswordBox(title, message string) (string, bool) {
	return NewInput(title, message).Password().Run()
}

// SaveFileDialog asks for a path to save to, starting at path.
func SaveFileDialog(title, path string) (string, bool) {
	return NewFileDialog(title).Path(path).RunSave()
}

// SaveFileDialogWithFilter is SaveFileDialog restricted to glob patterns
// such as "*.txt", labelled description.
func SaveFileDialogWithFilter(title, path string, patterns []string, description string) (string, bool) {
	return NewFileDialog(title).Path(path).Filter(patterns, description).RunSave()
}

// OpenFileDialog asks for one existing file. Nil patterns show all files.
func OpenFileDialog(title, path string, patterns []string, description string) (string, bool) {
	return NewFileDialog(title).Path(path).Filter(patterns, description).RunOpen()
}

// OpenFileDialogMulti asks for one or more existing files.
func OpenFileDialogMulti(title, path string, patterns []string, description string) ([]string, bool) {
	return NewFileDialog(title).Path(path).Filter(patterns, description).RunOpenMulti()
}

// SelectFolderDialog asks for a directory.
func SelectFolderDialog(title, path string) (string, bool) {
	return NewFileDialog(title).Path(path).RunSelectFolder()
}

// ColorChooserDialog asks for a color seeded with def.
func ColorChooserDialog(title string, def ColorValue) (Color, bool) {
	return NewColorChooser(title).Default(def).Run()
}

// Notify shows a desktop notification and reports whether it was
// delivered.
func Notify(title, message string) bool {
	return NewNotification(title, message).Run()
}
