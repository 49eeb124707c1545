// Package dialog holds the backend-independent request and result types shared
// by the facade and every platform backend.
package dialog

import "strings"

// Icon selects the icon (and on some toolkits the dialog style) of a message box.
type Icon int

const (
	IconInfo Icon = iota
	IconWarning
	IconError
	IconQuestion
)

func (i Icon) String() string {
	switch i {
	case IconWarning:
		return "warning"
	case IconError:
		return "error"
	case IconQuestion:
		return "question"
	default:
		return "info"
	}
}

// ParseIcon maps a name to an Icon. Unknown names fall back to IconInfo.
func ParseIcon(name string) Icon {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "warning", "warn":
		return IconWarning
	case "error":
		return IconError
	case "question":
		return IconQuestion
	default:
		return IconInfo
	}
}

// OkCancel is the canonical result of an OK/Cancel message box.
type OkCancel int

const (
	Cancel OkCancel = 0
	Ok     OkCancel = 1
)

func (r OkCancel) String() string {
	if r == Ok {
		return "ok"
	}
	return "cancel"
}

// YesNo is the canonical result of a Yes/No message box.
type YesNo int

const (
	No  YesNo = 0
	Yes YesNo = 1
)

func (r YesNo) String() string {
	if r == Yes {
		return "yes"
	}
	return "no"
}

// YesNoCancel is the canonical result of a Yes/No/Cancel message box.
type YesNoCancel int

const (
	YesNoCancelCancel YesNoCancel = 0
	YesNoCancelYes    YesNoCancel = 1
	YesNoCancelNo     YesNoCancel = 2
)

func (r YesNoCancel) String() string {
	switch r {
	case YesNoCancelYes:
		return "yes"
	case YesNoCancelNo:
		return "no"
	default:
		return "cancel"
	}
}

// Dialog is the part every request shares.
type Dialog struct {
	Title   string
	Message string
}

// NoDefault marks a message box without a default button.
const NoDefault = -1

// Message is a message box request before a backend lays out its buttons.
type Message struct {
	Dialog
	Icon Icon
}

// MessageBox is a message box with a concrete, ordered button layout.
type MessageBox struct {
	Message
	Buttons       []string
	DefaultButton int
}

// Validate reports whether the box can be dispatched. An out-of-range
// default button is reset to NoDefault rather than rejected.
func (m *MessageBox) Validate() bool {
	if len(m.Buttons) == 0 {
		return false
	}
	if m.DefaultButton < 0 || m.DefaultButton >= len(m.Buttons) {
		m.DefaultButton = NoDefault
	}
	return true
}

// HasDefault reports whether a default button is set.
func (m MessageBox) HasDefault() bool {
	return m.DefaultButton >= 0 && m.DefaultButton < len(m.Buttons)
}

// Input is a text or password prompt.
type Input struct {
	Dialog
	Default    string
	HasDefault bool
	Password   bool
}

// FileDialog is a save/open/folder request.
type FileDialog struct {
	Dialog
	Path              string
	Filters           []string
	FilterDescription string
	Multiple          bool
}

// HasFilter reports whether any glob pattern was supplied. No patterns means
// all files are shown.
func (f FileDialog) HasFilter() bool {
	for _, p := range f.Filters {
		if strings.TrimSpace(p) != "" {
			return true
		}
	}
	return false
}

// Patterns returns the non-empty filter patterns.
func (f FileDialog) Patterns() []string {
	out := make([]string, 0, len(f.Filters))
	for _, p := range f.Filters {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ColorChooser asks for a color seeded with Default.
type ColorChooser struct {
	Dialog
	Default ColorValue
}

// Notification is a fire-and-forget desktop notification.
type Notification struct {
	Title    string
	Message  string
	Subtitle string
	Sound    string
}

// Backend is implemented once per platform family. Every method blocks until
// the user dismisses the dialog and reports declines, failures and missing
// capabilities the same way: the negative result.
type Backend interface {
	Name() string
	MessageOk(m Message)
	MessageOkCancel(m Message, def OkCancel) OkCancel
	MessageYesNo(m Message, def YesNo) YesNo
	MessageYesNoCancel(m Message, def YesNoCancel) YesNoCancel
	Input(in Input) (string, bool)
	SaveFile(fd FileDialog) (string, bool)
	OpenFile(fd FileDialog) ([]string, bool)
	SelectFolder(fd FileDialog) (string, bool)
	ChooseColor(cc ColorChooser) (Color, bool)
	Notify(n Notification) bool
}
