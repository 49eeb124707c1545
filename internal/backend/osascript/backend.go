package osascript

import (
	"os"

	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
	"github.com/1broseidon/tfd/internal/runner"
)

const command = "osascript"

// Backend runs every dialog as an osascript process.
type Backend struct {
	run       runner.Runner
	dirExists func(string) bool
}

var _ dialog.Backend = (*Backend)(nil)

// New returns a Backend. A nil runner uses os/exec.
func New(r runner.Runner) *Backend {
	if r == nil {
		r = runner.Exec{}
	}
	return &Backend{run: r, dirExists: isDir}
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func (b *Backend) Name() string { return command }

// script runs lines and returns stdout. ok is false when osascript could not
// start or exited non-zero, which is also how a pressed Cancel button is
// reported.
func (b *Backend) script(lines []string) (string, bool) {
	log := logger.Tool(command)
	res, err := b.run.Run(command, scriptArgs(lines)...)
	if err != nil {
		log.Warn().Err(err).Msg("osascript failed to start")
		return "", false
	}
	if !res.Success() {
		log.Debug().Int("exit", res.ExitCode).Str("stderr", res.Stderr).Msg("script declined")
		return "", false
	}
	return res.Output(), true
}

func (b *Backend) MessageOk(m dialog.Message) {
	b.script(messageScript(dialog.MessageBox{Message: m, Buttons: []string{"OK"}, DefaultButton: 0}))
}

func (b *Backend) MessageOkCancel(m dialog.Message, def dialog.OkCancel) dialog.OkCancel {
	out, ok := b.script(messageScript(okCancelLayout.Box(m, def)))
	if !ok {
		return dialog.Cancel
	}
	if label, found := buttonReturned(out); found {
		if r, known := okCancelLayout.Lookup(label); known {
			return r
		}
	}
	return dialog.Cancel
}

func (b *Backend) MessageYesNo(m dialog.Message, def dialog.YesNo) dialog.YesNo {
	out, ok := b.script(messageScript(yesNoLayout.Box(m, def)))
	if !ok {
		return dialog.No
	}
	if label, found := buttonReturned(out); found {
		if r, known := yesNoLayout.Lookup(label); known {
			return r
		}
	}
	return dialog.No
}

func (b *Backend) MessageYesNoCancel(m dialog.Message, def dialog.YesNoCancel) dialog.YesNoCancel {
	out, ok := b.script(messageScript(yesNoCancelLayout.Box(m, def)))
	if !ok {
		return dialog.YesNoCancelCancel
	}
	if label, found := buttonReturned(out); found {
		if r, known := yesNoCancelLayout.Lookup(label); known {
			return r
		}
	}
	return dialog.YesNoCancelCancel
}

func (b *Backend) Input(in dialog.Input) (string, bool) {
	out, ok := b.script(inputScript(in))
	if !ok {
		return "", false
	}
	return textReturned(out)
}

func (b *Backend) SaveFile(fd dialog.FileDialog) (string, bool) {
	out, ok := b.script(saveScript(fd, b.dirExists))
	return out, ok && out != ""
}

func (b *Backend) OpenFile(fd dialog.FileDialog) ([]string, bool) {
	out, ok := b.script(openScript(fd, b.dirExists))
	if !ok {
		return nil, false
	}
	paths := splitLines(out)
	return paths, len(paths) > 0
}

func (b *Backend) SelectFolder(fd dialog.FileDialog) (string, bool) {
	out, ok := b.script(folderScript(fd, b.dirExists))
	return out, ok && out != ""
}

func (b *Backend) ChooseColor(cc dialog.ColorChooser) (dialog.Color, bool) {
	out, ok := b.script(colorScript(cc))
	if !ok {
		return dialog.Color{}, false
	}
	return parseColor(out)
}

func (b *Backend) Notify(n dialog.Notification) bool {
	_, ok := b.script(notifyScript(n))
	return ok
}
