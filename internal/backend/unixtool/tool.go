// Package unixtool drives the dialog programs found on Unix desktops
// (zenity, kdialog, Xdialog, dialog) and falls back to a line-oriented
// console prompt when none is installed.
package unixtool

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
)

type toolKind int

const (
	kindZenity toolKind = iota
	kindKdialog
	kindXdialog
	kindDialog
)

// cliTool is one probed dialog program. Argument builders and response
// parsers switch on kind; everything else is shared.
type cliTool struct {
	command string
	kind    toolKind
}

func newTool(name string) (*cliTool, error) {
	switch name {
	case "zenity":
		return &cliTool{command: "zenity", kind: kindZenity}, nil
	case "kdialog":
		return &cliTool{command: "kdialog", kind: kindKdialog}, nil
	case "Xdialog":
		return &cliTool{command: "Xdialog", kind: kindXdialog}, nil
	case "dialog":
		return &cliTool{command: "dialog", kind: kindDialog}, nil
	default:
		return nil, fmt.Errorf("unknown dialog tool: %q (expected: %s)", name, strings.Join(config.KnownUnixTools, ", "))
	}
}

// ErrNoTool is returned by probing when no dialog program is installed.
var ErrNoTool = errors.New("no dialog tool found in PATH")

// LookPathFunc reports where a program lives; exec.LookPath in production.
type LookPathFunc func(file string) (string, error)

// detect returns the first tool in order that lookPath finds. "console"
// short-circuits to the stdin fallback and is reported as a nil tool.
func detect(order []string, lookPath LookPathFunc) (*cliTool, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, name := range order {
		if name == config.ConsoleTool {
			return nil, nil
		}
		tool, err := newTool(name)
		if err != nil {
			return nil, err
		}
		if _, err := lookPath(tool.command); err == nil {
			return tool, nil
		}
	}
	return nil, fmt.Errorf("%w (looked for: %s)", ErrNoTool, strings.Join(order, ", "))
}

// okCancelLayout and friends are the layouts the CLI tools present. Only the
// list-based yes/no/cancel variants care about order; the rest decode from
// exit codes.
var (
	okCancelLayout    = dialog.OkCancelLayout
	yesNoLayout       = dialog.YesNoLayout
	yesNoCancelLayout = dialog.YesNoCancelLayout
)

func (t *cliTool) messageOkArgs(m dialog.Message, attach string) []string {
	switch t.kind {
	case kindZenity:
		verb := "--info"
		switch m.Icon {
		case dialog.IconWarning:
			verb = "--warning"
		case dialog.IconError:
			verb = "--error"
		}
		args := []string{verb, "--title=" + m.Title, "--text=" + m.Message, "--no-markup"}
		if m.Icon == dialog.IconQuestion {
			args = append(args, "--icon-name="+freedesktopIcon(m.Icon))
		}
		return zenityAttach(args, attach)
	case kindKdialog:
		verb := "--msgbox"
		switch m.Icon {
		case dialog.IconWarning:
			verb = "--sorry"
		case dialog.IconError:
			verb = "--error"
		}
		args := []string{verb, m.Message, "--title", m.Title, "--icon", freedesktopIcon(m.Icon)}
		return kdialogAttach(args, attach)
	default:
		return cursesArgs(m.Title, "--msgbox", m.Message)
	}
}

func (t *cliTool) questionArgs(box dialog.MessageBox, labelled bool, attach string) []string {
	defaultNo := box.HasDefault() && box.DefaultButton != 0
	switch t.kind {
	case kindZenity:
		args := []string{"--question", "--title=" + box.Title, "--text=" + box.Dialog.Message, "--no-markup",
			"--icon-name=" + freedesktopIcon(box.Icon)}
		if labelled {
			args = append(args, "--ok-label="+box.Buttons[0], "--cancel-label="+box.Buttons[1])
		}
		if defaultNo {
			args = append(args, "--default-cancel")
		}
		return zenityAttach(args, attach)
	case kindKdialog:
		verb := "--yesno"
		if box.Icon == dialog.IconWarning || box.Icon == dialog.IconError {
			verb = "--warningyesno"
		}
		args := []string{verb, box.Dialog.Message, "--title", box.Title}
		if labelled {
			args = append(args, "--yes-label", box.Buttons[0], "--no-label", box.Buttons[1])
		}
		return kdialogAttach(args, attach)
	case kindXdialog:
		var opts []string
		if defaultNo {
			opts = append(opts, "--default-no")
		}
		return cursesArgs(box.Title, "--yesno", box.Dialog.Message, opts...)
	default:
		var opts []string
		if labelled {
			opts = append(opts, "--yes-label", box.Buttons[0], "--no-label", box.Buttons[1])
		}
		if defaultNo {
			opts = append(opts, "--defaultno")
		}
		return cursesArgs(box.Title, "--yesno", box.Dialog.Message, opts...)
	}
}

// yesNoCancelArgs renders the three-way question. zenity and the curses
// tools show a list whose rows follow box.Buttons; kdialog has a native
// three-button box decoded from its exit code.
func (t *cliTool) yesNoCancelArgs(box dialog.MessageBox, attach string) []string {
	switch t.kind {
	case kindZenity:
		args := []string{"--list", "--radiolist", "--title=" + box.Title, "--text=" + box.Dialog.Message,
			"--hide-header", "--column=", "--column=Response"}
		for i, label := range box.Buttons {
			mark := "FALSE"
			if i == box.DefaultButton {
				mark = "TRUE"
			}
			args = append(args, mark, label)
		}
		return zenityAttach(args, attach)
	case kindKdialog:
		verb := "--yesnocancel"
		if box.Icon == dialog.IconWarning || box.Icon == dialog.IconError {
			verb = "--warningyesnocancel"
		}
		return kdialogAttach([]string{verb, box.Dialog.Message, "--title", box.Title}, attach)
	default:
		var opts []string
		if t.kind == kindDialog && box.HasDefault() {
			opts = append(opts, "--default-item", box.Buttons[box.DefaultButton])
		}
		items := []string{box.Dialog.Message, "0", "0", fmt.Sprint(len(box.Buttons))}
		for _, label := range box.Buttons {
			items = append(items, label, "")
		}
		args := append([]string{"--stdout", "--title", box.Title}, opts...)
		return append(args, append([]string{"--menu"}, items...)...)
	}
}

// decodeYesNoCancel maps a finished three-way question to a result.
func (t *cliTool) decodeYesNoCancel(exitCode int, output string) dialog.YesNoCancel {
	if t.kind == kindKdialog {
		switch exitCode {
		case 0:
			return dialog.YesNoCancelYes
		case 1:
			return dialog.YesNoCancelNo
		default:
			return dialog.YesNoCancelCancel
		}
	}
	if exitCode != 0 {
		return dialog.YesNoCancelCancel
	}
	if r, ok := yesNoCancelLayout.Lookup(output); ok {
		return r
	}
	return dialog.YesNoCancelCancel
}

func (t *cliTool) inputArgs(in dialog.Input, attach string) []string {
	switch t.kind {
	case kindZenity:
		args := []string{"--entry", "--title=" + in.Title, "--text=" + in.Message}
		if in.Password {
			args = append(args, "--hide-text")
		} else if in.HasDefault && in.Default != "" {
			args = append(args, "--entry-text="+in.Default)
		}
		return zenityAttach(args, attach)
	case kindKdialog:
		if in.Password {
			return kdialogAttach([]string{"--password", in.Message, "--title", in.Title}, attach)
		}
		return kdialogAttach([]string{"--inputbox", in.Message, in.Default, "--title", in.Title}, attach)
	case kindXdialog:
		if in.Password {
			return cursesArgs(in.Title, "--inputbox", in.Message, "--password")
		}
		args := cursesArgs(in.Title, "--inputbox", in.Message)
		if in.HasDefault {
			args = append(args, in.Default)
		}
		return args
	default:
		if in.Password {
			return cursesArgs(in.Title, "--passwordbox", in.Message)
		}
		args := cursesArgs(in.Title, "--inputbox", in.Message)
		if in.HasDefault {
			args = append(args, in.Default)
		}
		return args
	}
}

type fileMode int

const (
	modeSave fileMode = iota
	modeOpen
	modeFolder
)

func (t *cliTool) fileArgs(fd dialog.FileDialog, mode fileMode, attach string) []string {
	seed := seedPath(fd.Path)
	switch t.kind {
	case kindZenity:
		args := []string{"--file-selection", "--title=" + fd.Title}
		switch mode {
		case modeSave:
			args = append(args, "--save", "--confirm-overwrite")
		case modeFolder:
			args = append(args, "--directory")
		case modeOpen:
			if fd.Multiple {
				args = append(args, "--multiple", "--separator=|")
			}
		}
		if seed != "" {
			args = append(args, "--filename="+seed)
		}
		if mode != modeFolder && fd.HasFilter() {
			desc := fd.FilterDescription
			if desc == "" {
				desc = strings.Join(fd.Patterns(), " ")
			}
			args = append(args, "--file-filter="+desc+" | "+strings.Join(fd.Patterns(), " "))
		}
		return zenityAttach(args, attach)
	case kindKdialog:
		var args []string
		switch mode {
		case modeSave:
			args = []string{"--getsavefilename", seed}
		case modeOpen:
			args = []string{"--getopenfilename", seed}
		case modeFolder:
			args = []string{"--getexistingdirectory", seed}
		}
		if mode != modeFolder && fd.HasFilter() {
			args = append(args, kdialogFilter(fd))
		}
		if mode == modeOpen && fd.Multiple {
			args = append(args, "--multiple", "--separate-output")
		}
		args = append(args, "--title", fd.Title)
		return kdialogAttach(args, attach)
	default:
		verb := "--fselect"
		if mode == modeFolder {
			verb = "--dselect"
		}
		if seed == "" {
			seed = "./"
		}
		return cursesArgs(fd.Title, verb, seed)
	}
}

// parsePaths splits a file selection. Only multi-select output is split:
// zenity joins with "|" and kdialog prints one path per line. A single
// path is returned whole.
func (t *cliTool) parsePaths(output string, multiple bool) []string {
	output = strings.TrimRight(output, "\r\n")
	if output == "" {
		return nil
	}
	parts := []string{output}
	if multiple {
		switch t.kind {
		case kindZenity:
			parts = strings.Split(output, "|")
		case kindKdialog:
			parts = strings.Split(output, "\n")
		}
	}
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimRight(p, "\r"); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	return paths
}

func (t *cliTool) colorArgs(cc dialog.ColorChooser, attach string) []string {
	hex := cc.Default.Hex()
	switch t.kind {
	case kindZenity:
		return zenityAttach([]string{"--color-selection", "--title=" + cc.Title, "--color=" + hex}, attach)
	case kindKdialog:
		return kdialogAttach([]string{"--getcolor", "--default", hex, "--title", cc.Title}, attach)
	default:
		msg := cc.Message
		if msg == "" {
			msg = "Color (#rrggbb)"
		}
		return append(cursesArgs(cc.Title, "--inputbox", msg), hex)
	}
}

// parseColorOutput accepts "#rrggbb", "#rrrrggggbbbb", "rgb()" and "rgba()".
// The curses tools return whatever was typed, so a bare "rrggbb" is also
// accepted there.
func (t *cliTool) parseColorOutput(output string) (dialog.Color, bool) {
	output = strings.TrimSpace(output)
	if rgb, ok := dialog.ParseColor(output); ok {
		return dialog.NewColor(rgb), true
	}
	if (t.kind == kindXdialog || t.kind == kindDialog) && isHexDigits(output, 6) {
		return dialog.NewColor(dialog.HexToRGB(output)), true
	}
	return dialog.Color{}, false
}

func (t *cliTool) notifyArgs(n dialog.Notification) ([]string, bool) {
	body := notificationBody(n)
	switch t.kind {
	case kindZenity:
		return []string{"--notification", "--text=" + strings.TrimSpace(n.Title+"\n"+body)}, true
	case kindKdialog:
		return []string{"--passivepopup", body, "5", "--title", n.Title}, true
	case kindXdialog:
		return append(cursesArgs(n.Title, "--infobox", body), "5000"), true
	default:
		return nil, false
	}
}

// cursesArgs builds the Xdialog/dialog argument order: common options, then
// the box option with its text and auto-size, then box-specific trailers.
func cursesArgs(title, box, text string, opts ...string) []string {
	args := []string{"--stdout", "--title", title}
	args = append(args, opts...)
	return append(args, box, text, "0", "0")
}

func zenityAttach(args []string, attach string) []string {
	if attach == "" {
		return args
	}
	return append(args, "--attach="+attach)
}

func kdialogAttach(args []string, attach string) []string {
	if attach == "" {
		return args
	}
	return append(args, "--attach", attach)
}

func kdialogFilter(fd dialog.FileDialog) string {
	patterns := strings.Join(fd.Patterns(), " ")
	if fd.FilterDescription == "" {
		return patterns
	}
	return fd.FilterDescription + " (" + patterns + ")"
}

func freedesktopIcon(icon dialog.Icon) string {
	switch icon {
	case dialog.IconWarning:
		return "dialog-warning"
	case dialog.IconError:
		return "dialog-error"
	case dialog.IconQuestion:
		return "dialog-question"
	default:
		return "dialog-information"
	}
}

// seedPath turns a user-supplied seed into what the pickers expect: an
// absolute path, with a trailing slash when it names a directory.
func seedPath(p string) string {
	dir, file := dialog.SplitSeed(p)
	if dir == "" {
		return ""
	}
	dir = strings.TrimSuffix(dir, "/") + "/"
	return dir + file
}

func notificationBody(n dialog.Notification) string {
	if n.Subtitle == "" {
		return n.Message
	}
	return n.Subtitle + "\n" + n.Message
}

func isHexDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}
