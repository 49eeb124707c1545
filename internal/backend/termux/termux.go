// Package termux implements dialogs on Android through the Termux:API
// commands termux-dialog and termux-notification.
package termux

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
	"github.com/1broseidon/tfd/internal/runner"
)

const (
	dialogCommand = "termux-dialog"
	notifyCommand = "termux-notification"
)

// termux-dialog result codes.
const (
	codeOK     = -1
	codeCancel = -2
)

// response is the JSON object termux-dialog prints.
type response struct {
	Code  int    `json:"code"`
	Text  string `json:"text"`
	Index *int   `json:"index,omitempty"`
}

func parseResponse(out string) (response, error) {
	var r response
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &r); err != nil {
		return response{}, fmt.Errorf("invalid %s output: %w", dialogCommand, err)
	}
	return r, nil
}

// Backend runs termux-dialog once per call. File and folder pickers are not
// available because the Termux storage sandbox hides them.
type Backend struct {
	run runner.Runner
}

var _ dialog.Backend = (*Backend)(nil)

// New returns a Backend. A nil runner uses os/exec.
func New(r runner.Runner) *Backend {
	if r == nil {
		r = runner.Exec{}
	}
	return &Backend{run: r}
}

func (b *Backend) Name() string { return "termux" }

// ask runs termux-dialog with widget and args. ok is false unless the user
// confirmed the dialog.
func (b *Backend) ask(widget string, args ...string) (response, bool) {
	log := logger.Tool(dialogCommand)
	full := append([]string{widget}, args...)
	log.Debug().Strs("args", full).Msg("spawning dialog")

	res, err := b.run.Run(dialogCommand, full...)
	if err != nil {
		log.Warn().Err(err).Msg("termux-dialog failed to start")
		return response{}, false
	}
	if !res.Success() {
		log.Debug().Int("exit", res.ExitCode).Str("stderr", res.Stderr).Msg("dialog failed")
		return response{}, false
	}
	r, err := parseResponse(res.Stdout)
	if err != nil {
		log.Warn().Err(err).Msg("unreadable dialog result")
		return response{}, false
	}
	return r, r.Code == codeOK
}

// titleArgs returns -t and -i for the dialog title and message hint.
func titleArgs(d dialog.Dialog) []string {
	var args []string
	if d.Title != "" {
		args = append(args, "-t", d.Title)
	}
	if d.Message != "" {
		args = append(args, "-i", d.Message)
	}
	return args
}

// confirm shows a yes/no confirmation and reports a "yes" answer.
func (b *Backend) confirm(m dialog.Message) bool {
	r, ok := b.ask("confirm", titleArgs(m.Dialog)...)
	return ok && strings.EqualFold(strings.TrimSpace(r.Text), "yes")
}

func (b *Backend) MessageOk(m dialog.Message) {
	b.confirm(m)
}

func (b *Backend) MessageOkCancel(m dialog.Message, _ dialog.OkCancel) dialog.OkCancel {
	if b.confirm(m) {
		return dialog.Ok
	}
	return dialog.Cancel
}

func (b *Backend) MessageYesNo(m dialog.Message, _ dialog.YesNo) dialog.YesNo {
	if b.confirm(m) {
		return dialog.Yes
	}
	return dialog.No
}

// MessageYesNoCancel offers the three answers as a radio list. Dismissing
// the list is Cancel.
func (b *Backend) MessageYesNoCancel(m dialog.Message, _ dialog.YesNoCancel) dialog.YesNoCancel {
	layout := dialog.YesNoCancelLayout
	args := append(titleArgs(m.Dialog), "-v", strings.Join(layout.Labels, ","))
	r, ok := b.ask("radio", args...)
	if !ok {
		return dialog.YesNoCancelCancel
	}
	if r.Index != nil {
		if v, found := layout.At(*r.Index); found {
			return v
		}
	}
	if v, found := layout.Lookup(r.Text); found {
		return v
	}
	return dialog.YesNoCancelCancel
}

// Input shows a text prompt. termux-dialog has no prefilled value, so an
// empty answer yields the default when one was given.
func (b *Backend) Input(in dialog.Input) (string, bool) {
	args := titleArgs(in.Dialog)
	if in.Password {
		args = append(args, "-p")
	}
	r, ok := b.ask("text", args...)
	if !ok {
		return "", false
	}
	if r.Text == "" && in.HasDefault {
		return in.Default, true
	}
	return r.Text, true
}

func (b *Backend) SaveFile(fd dialog.FileDialog) (string, bool) {
	logger.Debug("termux: save dialog unavailable")
	return "", false
}

func (b *Backend) OpenFile(fd dialog.FileDialog) ([]string, bool) {
	logger.Debug("termux: open dialog unavailable")
	return nil, false
}

func (b *Backend) SelectFolder(fd dialog.FileDialog) (string, bool) {
	logger.Debug("termux: folder dialog unavailable")
	return "", false
}

// ChooseColor asks for a color as text. An empty answer keeps the default.
func (b *Backend) ChooseColor(cc dialog.ColorChooser) (dialog.Color, bool) {
	def := cc.Default.RGB()
	d := cc.Dialog
	hint := "Color (" + dialog.RGBToHex(def) + ")"
	if d.Message != "" {
		hint = d.Message + " " + hint
	}
	d.Message = hint

	r, ok := b.ask("text", titleArgs(d)...)
	if !ok {
		return dialog.Color{}, false
	}
	text := strings.TrimSpace(r.Text)
	if text == "" {
		return dialog.NewColor(def), true
	}
	if rgb, parsed := dialog.ParseColor(text); parsed {
		return dialog.NewColor(rgb), true
	}
	return dialog.NewColor(dialog.HexToRGB(text)), true
}

func notificationArgs(n dialog.Notification) []string {
	content := n.Message
	if n.Subtitle != "" {
		content = n.Subtitle + "\n" + n.Message
	}
	args := []string{"--title", n.Title, "--content", content}
	if n.Sound != "" {
		args = append(args, "--sound")
	}
	return args
}

func (b *Backend) Notify(n dialog.Notification) bool {
	log := logger.Tool(notifyCommand)
	res, err := b.run.Run(notifyCommand, notificationArgs(n)...)
	if err != nil {
		log.Warn().Err(err).Msg("termux-notification failed to start")
		return false
	}
	return res.Success()
}
