package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/1broseidon/tfd"
	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
)

// scriptedBackend answers every dialog from its fields.
type scriptedBackend struct {
	okCancel    dialog.OkCancel
	yesNo       dialog.YesNo
	yesNoCancel dialog.YesNoCancel
	text        string
	paths       []string
	ok          bool

	message dialog.Message
	ynDef   dialog.YesNo
	input   dialog.Input
	file    dialog.FileDialog
	color   dialog.ColorChooser
	note    dialog.Notification
}

func (b *scriptedBackend) Name() string { return "scripted" }

func (b *scriptedBackend) MessageOk(m dialog.Message) { b.message = m }

func (b *scriptedBackend) MessageOkCancel(m dialog.Message, _ dialog.OkCancel) dialog.OkCancel {
	b.message = m
	return b.okCancel
}

func (b *scriptedBackend) MessageYesNo(m dialog.Message, def dialog.YesNo) dialog.YesNo {
	b.message, b.ynDef = m, def
	return b.yesNo
}

func (b *scriptedBackend) MessageYesNoCancel(m dialog.Message, _ dialog.YesNoCancel) dialog.YesNoCancel {
	b.message = m
	return b.yesNoCancel
}

func (b *scriptedBackend) Input(in dialog.Input) (string, bool) {
	b.input = in
	return b.text, b.ok
}

func (b *scriptedBackend) SaveFile(fd dialog.FileDialog) (string, bool) {
	b.file = fd
	return b.text, b.ok
}

func (b *scriptedBackend) OpenFile(fd dialog.FileDialog) ([]string, bool) {
	b.file = fd
	return b.paths, b.ok
}

func (b *scriptedBackend) SelectFolder(fd dialog.FileDialog) (string, bool) {
	b.file = fd
	return b.text, b.ok
}

func (b *scriptedBackend) ChooseColor(cc dialog.ColorChooser) (dialog.Color, bool) {
	b.color = cc
	return dialog.NewColor([3]uint8{0x12, 0x34, 0x56}), b.ok
}

func (b *scriptedBackend) Notify(n dialog.Notification) bool {
	b.note = n
	return b.ok
}

// capture swaps in b and buffers for stdout and stderr.
func capture(t *testing.T, b *scriptedBackend) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	oldOut, oldErr, oldNoColor := stdout, stderr, color.NoColor
	stdout, stderr, color.NoColor = out, errOut, true
	prev := tfd.SetBackend(b)
	t.Cleanup(func() {
		stdout, stderr, color.NoColor = oldOut, oldErr, oldNoColor
		tfd.SetBackend(prev)
	})
	return out, errOut
}

func TestRunMsgboxExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		b    scriptedBackend
		rc   int
		want string
	}{
		{"ok", []string{"hello"}, scriptedBackend{}, 0, "ok"},
		{"okcancel ok", []string{"--type", "okcancel", "go?"}, scriptedBackend{okCancel: dialog.Ok}, 0, "ok"},
		{"okcancel cancel", []string{"--type", "okcancel", "go?"}, scriptedBackend{okCancel: dialog.Cancel}, 1, "cancel"},
		{"yesno no", []string{"--type", "yes_no", "go?"}, scriptedBackend{yesNo: dialog.No}, 1, "no"},
		{"yesnocancel yes", []string{"--type", "yesnocancel", "go?"}, scriptedBackend{yesNoCancel: dialog.YesNoCancelYes}, 0, "yes"},
		{"yesnocancel no", []string{"--type", "yesnocancel", "go?"}, scriptedBackend{yesNoCancel: dialog.YesNoCancelNo}, 1, "no"},
		{"yesnocancel cancel", []string{"--type", "yesnocancel", "go?"}, scriptedBackend{yesNoCancel: dialog.YesNoCancelCancel}, 2, "cancel"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.b
			out, _ := capture(t, &b)
			if rc := run("msgbox", tt.args); rc != tt.rc {
				t.Fatalf("rc=%d, want %d", rc, tt.rc)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Fatalf("stdout=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunMsgboxPassesOptions(t *testing.T) {
	b := &scriptedBackend{yesNo: dialog.Yes}
	capture(t, b)

	if rc := run("msgbox", []string{"--title", "Build", "--icon", "warning", "--type", "yesno", "--default", "no", "Deploy", "now?"}); rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	if b.message.Title != "Build" || b.message.Message != "Deploy now?" || b.message.Icon != dialog.IconWarning {
		t.Fatalf("message=%+v", b.message)
	}
	if b.ynDef != dialog.No {
		t.Fatalf("default=%v, want no", b.ynDef)
	}
}

func TestRunMsgboxRejectsUnknownType(t *testing.T) {
	capture(t, &scriptedBackend{})
	if rc := run("msgbox", []string{"--type", "maybe", "x"}); rc != 2 {
		t.Fatalf("rc=%d, want 2", rc)
	}
}

func TestRunInput(t *testing.T) {
	b := &scriptedBackend{text: "alice", ok: true}
	out, _ := capture(t, b)

	if rc := run("input", []string{"--default", "", "Name?"}); rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	if out.String() != "alice\n" {
		t.Fatalf("stdout=%q", out.String())
	}
	if !b.input.HasDefault || b.input.Message != "Name?" {
		t.Fatalf("input=%+v", b.input)
	}

	if rc := run("input", []string{"Name?"}); rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	if b.input.HasDefault {
		t.Fatalf("input without --default has a default: %+v", b.input)
	}
}

func TestRunPasswordCancelled(t *testing.T) {
	b := &scriptedBackend{}
	out, errOut := capture(t, b)

	if rc := run("password", []string{"Secret"}); rc != 1 {
		t.Fatalf("rc=%d, want 1", rc)
	}
	if !b.input.Password {
		t.Fatalf("input=%+v, want password", b.input)
	}
	if out.Len() != 0 {
		t.Fatalf("stdout=%q, want empty", out.String())
	}
	if !strings.Contains(errOut.String(), "password cancelled") {
		t.Fatalf("stderr=%q", errOut.String())
	}
}

func TestRunOpenMultiple(t *testing.T) {
	b := &scriptedBackend{paths: []string{"/tmp/a.png", "/tmp/b.png"}, ok: true}
	out, _ := capture(t, b)

	rc := run("open", []string{"--multiple", "--filter", "*.png", "--filter", "*.jpg, ", "--description", "Images", "--path", " /tmp/ "})
	if rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	if out.String() != "/tmp/a.png\n/tmp/b.png\n" {
		t.Fatalf("stdout=%q", out.String())
	}
	if !b.file.Multiple || b.file.Path != "/tmp/" || b.file.FilterDescription != "Images" {
		t.Fatalf("request=%+v", b.file)
	}
	if !reflect.DeepEqual(b.file.Filters, []string{"*.png", "*.jpg"}) {
		t.Fatalf("filters=%v", b.file.Filters)
	}
}

func TestRunSaveAndFolder(t *testing.T) {
	b := &scriptedBackend{text: "/home/me/out.txt", ok: true}
	out, _ := capture(t, b)

	if rc := run("save", []string{"--filter", "*.txt"}); rc != 0 {
		t.Fatalf("save rc=%d, want 0", rc)
	}
	if rc := run("folder", []string{"--title", "Pick"}); rc != 0 {
		t.Fatalf("folder rc=%d, want 0", rc)
	}
	if b.file.HasFilter() || b.file.Title != "Pick" {
		t.Fatalf("folder request=%+v", b.file)
	}
	if out.String() != "/home/me/out.txt\n/home/me/out.txt\n" {
		t.Fatalf("stdout=%q", out.String())
	}

	b.ok = false
	if rc := run("save", nil); rc != 1 {
		t.Fatalf("cancelled save rc=%d, want 1", rc)
	}
}

func TestRunColor(t *testing.T) {
	b := &scriptedBackend{ok: true}
	out, _ := capture(t, b)

	if rc := run("color", []string{"--default", "#ff8000"}); rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	if b.color.Default.RGB() != [3]uint8{255, 128, 0} {
		t.Fatalf("seed=%v", b.color.Default.RGB())
	}
	if rc := run("color", []string{"--rgb"}); rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	if out.String() != "#123456\n18,52,86\n" {
		t.Fatalf("stdout=%q", out.String())
	}
}

func TestRunNotify(t *testing.T) {
	b := &scriptedBackend{ok: true}
	capture(t, b)

	if rc := run("notify", []string{"--subtitle", "CI", "--sound", "Glass", "Build", "finished", "ok"}); rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	want := dialog.Notification{Title: "Build", Message: "finished ok", Subtitle: "CI", Sound: "Glass"}
	if b.note != want {
		t.Fatalf("note=%+v, want %+v", b.note, want)
	}

	if rc := run("notify", nil); rc != 2 {
		t.Fatalf("rc without title=%d, want 2", rc)
	}
}

func TestRunProbe(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfig, "")
	out, _ := capture(t, &scriptedBackend{})

	if rc := run("probe", nil); rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	if !strings.Contains(out.String(), "backend: scripted") {
		t.Fatalf("stdout=%q", out.String())
	}
	if !strings.Contains(out.String(), "config:  defaults") {
		t.Fatalf("stdout=%q", out.String())
	}
}

func TestRunConfigValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("unix:\n  tools: [zenity, kdialog]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("unix:\n  force: gtkdialog\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(config.EnvBackend, "")
	out, errOut := capture(t, &scriptedBackend{})

	if rc := run("config", []string{"validate", "--path", good}); rc != 0 {
		t.Fatalf("good rc=%d, want 0 (stderr %q)", rc, errOut.String())
	}
	if !strings.Contains(out.String(), "config: ok") {
		t.Fatalf("stdout=%q", out.String())
	}
	if rc := run("config", []string{"validate", "--path", bad}); rc != 1 {
		t.Fatalf("bad rc=%d, want 1", rc)
	}
	if !strings.Contains(errOut.String(), "unix.force") {
		t.Fatalf("stderr=%q, want unix.force", errOut.String())
	}
}

func TestRunConfigPrintDefaults(t *testing.T) {
	out, _ := capture(t, &scriptedBackend{})

	if rc := run("config", []string{"print", "--defaults"}); rc != 0 {
		t.Fatalf("rc=%d, want 0", rc)
	}
	cfg, err := config.Parse(out.Bytes())
	if err != nil {
		t.Fatalf("printed config does not parse: %v\n%s", err, out.String())
	}
	if cfg.Notification.AppName != config.DefaultAppName {
		t.Fatalf("app_name=%q, want %q", cfg.Notification.AppName, config.DefaultAppName)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	_, errOut := capture(t, &scriptedBackend{})
	if rc := run("frobnicate", nil); rc != 2 {
		t.Fatalf("rc=%d, want 2", rc)
	}
	if !strings.Contains(errOut.String(), "Unknown command: frobnicate") {
		t.Fatalf("stderr=%q", errOut.String())
	}
}
