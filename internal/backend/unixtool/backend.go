package unixtool

import (
	"fmt"
	"os/exec"
	"strconv"
	"sync"

	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
	"github.com/1broseidon/tfd/internal/runner"
)

// Backend implements dialog.Backend on top of the first dialog program found
// in PATH. The probe runs once per Backend.
type Backend struct {
	order        []string
	lookPath     LookPathFunc
	run          runner.Runner
	console      *Console
	activeWindow func() (uint32, error)

	appName   string
	useDBus   bool
	timeoutMS int32
	busNotify busNotifier

	once  sync.Once
	tool  *cliTool
	probe error
}

var _ dialog.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithOrder sets the probe order. "console" entries stop the probe there.
func WithOrder(names []string) Option {
	return func(b *Backend) { b.order = append([]string(nil), names...) }
}

// WithLookPath replaces exec.LookPath for the probe.
func WithLookPath(f LookPathFunc) Option {
	return func(b *Backend) { b.lookPath = f }
}

// WithRunner replaces the process runner.
func WithRunner(r runner.Runner) Option {
	return func(b *Backend) { b.run = r }
}

// WithConsole replaces the stdin/stdout fallback.
func WithConsole(c *Console) Option {
	return func(b *Backend) { b.console = c }
}

// WithActiveWindow makes zenity and kdialog dialogs transient for the
// window f reports.
func WithActiveWindow(f func() (uint32, error)) Option {
	return func(b *Backend) { b.activeWindow = f }
}

// WithNotifications configures the notification sender.
func WithNotifications(cfg config.NotificationConfig) Option {
	return func(b *Backend) {
		b.appName = cfg.AppName
		b.useDBus = cfg.UseDBus()
		b.timeoutMS = int32(cfg.TimeoutMS)
	}
}

// withBusNotifier replaces the D-Bus call in tests.
func withBusNotifier(f busNotifier) Option {
	return func(b *Backend) { b.busNotify = f }
}

// New returns a Backend with the default probe order, exec runner and
// terminal console.
func New(opts ...Option) *Backend {
	b := &Backend{
		order:     append([]string(nil), config.KnownUnixTools...),
		lookPath:  exec.LookPath,
		run:       runner.Exec{},
		appName:   config.DefaultAppName,
		useDBus:   true,
		timeoutMS: -1,
		busNotify: sessionBusNotify,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.console == nil {
		b.console = StdConsole()
	}
	return b
}

// FromConfig builds a Backend from the unix and notification sections.
func FromConfig(cfg *config.Config, opts ...Option) *Backend {
	base := []Option{
		WithOrder(cfg.Unix.ProbeOrder()),
		WithNotifications(cfg.Notification),
	}
	return New(append(base, opts...)...)
}

// selected returns the memoized tool, nil meaning the console.
func (b *Backend) selected() *cliTool {
	b.once.Do(func() {
		b.tool, b.probe = detect(b.order, b.lookPath)
		switch {
		case b.probe != nil:
			logger.Warnf("%v; using console prompts", b.probe)
		case b.tool == nil:
			logger.Debug("console dialogs forced")
		default:
			logger.Debugf("using dialog tool %s", b.tool.command)
		}
	})
	return b.tool
}

// Name reports the selected tool, or "console".
func (b *Backend) Name() string {
	if t := b.selected(); t != nil {
		return t.command
	}
	return config.ConsoleTool
}

// attach returns the window id argument, or "" when attachment is off or
// unavailable.
func (b *Backend) attach(t *cliTool) string {
	if b.activeWindow == nil || (t.kind != kindZenity && t.kind != kindKdialog) {
		return ""
	}
	win, err := b.activeWindow()
	if err != nil || win == 0 {
		if err != nil {
			logger.Debugf("no active window to attach to: %v", err)
		}
		return ""
	}
	return strconv.FormatUint(uint64(win), 10)
}

// exec runs the tool. ok is false when the program could not be started.
func (b *Backend) exec(t *cliTool, args []string) (runner.Result, bool) {
	log := logger.Tool(t.command)
	log.Debug().Strs("args", args).Msg("spawning dialog")
	res, err := b.run.Run(t.command, args...)
	if err != nil {
		log.Warn().Err(err).Msg("dialog tool failed to start")
		return res, false
	}
	log.Debug().Int("exit", res.ExitCode).Msg("dialog closed")
	return res, true
}

func (b *Backend) MessageOk(m dialog.Message) {
	t := b.selected()
	if t == nil {
		b.console.MessageOk(m)
		return
	}
	b.exec(t, t.messageOkArgs(m, b.attach(t)))
}

func (b *Backend) MessageOkCancel(m dialog.Message, def dialog.OkCancel) dialog.OkCancel {
	t := b.selected()
	if t == nil {
		return b.console.MessageOkCancel(m)
	}
	box := okCancelLayout.Box(m, def)
	res, ok := b.exec(t, t.questionArgs(box, true, b.attach(t)))
	if ok && res.Success() {
		return dialog.Ok
	}
	return dialog.Cancel
}

func (b *Backend) MessageYesNo(m dialog.Message, def dialog.YesNo) dialog.YesNo {
	t := b.selected()
	if t == nil {
		return b.console.MessageYesNo(m)
	}
	box := yesNoLayout.Box(m, def)
	res, ok := b.exec(t, t.questionArgs(box, false, b.attach(t)))
	if ok && res.Success() {
		return dialog.Yes
	}
	return dialog.No
}

func (b *Backend) MessageYesNoCancel(m dialog.Message, def dialog.YesNoCancel) dialog.YesNoCancel {
	t := b.selected()
	if t == nil {
		return b.console.MessageYesNoCancel(m)
	}
	box := yesNoCancelLayout.Box(m, def)
	res, ok := b.exec(t, t.yesNoCancelArgs(box, b.attach(t)))
	if !ok {
		return dialog.YesNoCancelCancel
	}
	return t.decodeYesNoCancel(res.ExitCode, res.Output())
}

func (b *Backend) Input(in dialog.Input) (string, bool) {
	t := b.selected()
	if t == nil {
		return b.console.Input(in)
	}
	res, ok := b.exec(t, t.inputArgs(in, b.attach(t)))
	if !ok || !res.Success() {
		return "", false
	}
	return res.Output(), true
}

func (b *Backend) SaveFile(fd dialog.FileDialog) (string, bool) {
	t := b.selected()
	if t == nil {
		return b.console.SaveFile(fd)
	}
	return b.singlePath(t, fd, modeSave)
}

func (b *Backend) OpenFile(fd dialog.FileDialog) ([]string, bool) {
	t := b.selected()
	if t == nil {
		return b.console.OpenFile(fd)
	}
	res, ok := b.exec(t, t.fileArgs(fd, modeOpen, b.attach(t)))
	if !ok || !res.Success() {
		return nil, false
	}
	paths := t.parsePaths(res.Output(), fd.Multiple)
	if !fd.Multiple && len(paths) > 1 {
		paths = paths[:1]
	}
	return paths, len(paths) > 0
}

func (b *Backend) SelectFolder(fd dialog.FileDialog) (string, bool) {
	t := b.selected()
	if t == nil {
		return b.console.SelectFolder(fd)
	}
	return b.singlePath(t, fd, modeFolder)
}

func (b *Backend) singlePath(t *cliTool, fd dialog.FileDialog, mode fileMode) (string, bool) {
	res, ok := b.exec(t, t.fileArgs(fd, mode, b.attach(t)))
	if !ok || !res.Success() {
		return "", false
	}
	out := res.Output()
	return out, out != ""
}

func (b *Backend) ChooseColor(cc dialog.ColorChooser) (dialog.Color, bool) {
	t := b.selected()
	if t == nil {
		return b.console.ChooseColor(cc)
	}
	res, ok := b.exec(t, t.colorArgs(cc, b.attach(t)))
	if !ok || !res.Success() {
		return dialog.Color{}, false
	}
	return t.parseColorOutput(res.Output())
}

// Notify tries the session bus, then notify-send, then the selected tool and
// finally prints to the console.
func (b *Backend) Notify(n dialog.Notification) bool {
	if b.useDBus && b.busNotify != nil {
		id, err := b.busNotify(b.appName, n, b.timeoutMS)
		if err == nil {
			logger.Debugf("notification %d sent over D-Bus", id)
			return true
		}
		logger.Debugf("D-Bus notification failed: %v", err)
	}

	if _, err := b.lookPath("notify-send"); err == nil {
		res, err := b.run.Run("notify-send", notifySendArgs(b.appName, n, b.timeoutMS)...)
		if err == nil && res.Success() {
			return true
		}
		logger.Debugf("notify-send failed: %v", describeFailure(res, err))
	}

	if t := b.selected(); t != nil {
		if args, ok := t.notifyArgs(n); ok {
			if res, ok := b.exec(t, args); ok && res.Success() {
				return true
			}
		}
	}
	return b.console.Notify(n)
}

func describeFailure(res runner.Result, err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("exit status %d", res.ExitCode)
}
