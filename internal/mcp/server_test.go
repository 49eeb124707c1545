package mcp

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/1broseidon/tfd/internal/dialog"
)

// stubBackend records requests and answers with canned values.
type stubBackend struct {
	message  dialog.Message
	okDef    dialog.OkCancel
	ynDef    dialog.YesNo
	yncDef   dialog.YesNoCancel
	answer   int
	input    dialog.Input
	file     dialog.FileDialog
	fileKind string
	color    dialog.ColorChooser
	note     dialog.Notification

	text  string
	paths []string
	ok    bool
}

func (b *stubBackend) Name() string { return "stub" }

func (b *stubBackend) MessageOk(m dialog.Message) { b.message = m }

func (b *stubBackend) MessageOkCancel(m dialog.Message, def dialog.OkCancel) dialog.OkCancel {
	b.message, b.okDef = m, def
	return dialog.OkCancel(b.answer)
}

func (b *stubBackend) MessageYesNo(m dialog.Message, def dialog.YesNo) dialog.YesNo {
	b.message, b.ynDef = m, def
	return dialog.YesNo(b.answer)
}

func (b *stubBackend) MessageYesNoCancel(m dialog.Message, def dialog.YesNoCancel) dialog.YesNoCancel {
	b.message, b.yncDef = m, def
	return dialog.YesNoCancel(b.answer)
}

func (b *stubBackend) Input(in dialog.Input) (string, bool) {
	b.input = in
	return b.text, b.ok
}

func (b *stubBackend) SaveFile(fd dialog.FileDialog) (string, bool) {
	b.file, b.fileKind = fd, "save"
	return b.text, b.ok
}

func (b *stubBackend) OpenFile(fd dialog.FileDialog) ([]string, bool) {
	b.file, b.fileKind = fd, "open"
	return b.paths, b.ok
}

func (b *stubBackend) SelectFolder(fd dialog.FileDialog) (string, bool) {
	b.file, b.fileKind = fd, "folder"
	return b.text, b.ok
}

func (b *stubBackend) ChooseColor(cc dialog.ColorChooser) (dialog.Color, bool) {
	b.color = cc
	return dialog.NewColor([3]uint8{10, 20, 30}), b.ok
}

func (b *stubBackend) Notify(n dialog.Notification) bool {
	b.note = n
	return b.ok
}

func TestNewServerRegistersTools(t *testing.T) {
	if s := NewServer(&stubBackend{}); s.mcpServer == nil {
		t.Fatal("NewServer() did not create the MCP server")
	}
}

func TestHandleMessageBox(t *testing.T) {
	tests := []struct {
		name   string
		args   MessageBoxInput
		answer int
		want   string
	}{
		{"ok", MessageBoxInput{Message: "hi"}, 0, "ok"},
		{"ok_cancel pressed ok", MessageBoxInput{Kind: "ok_cancel"}, int(dialog.Ok), "ok"},
		{"ok_cancel dismissed", MessageBoxInput{Kind: "OK-Cancel"}, int(dialog.Cancel), "cancel"},
		{"yes_no", MessageBoxInput{Kind: "yes_no", Default: "no"}, int(dialog.Yes), "yes"},
		{"yes_no_cancel", MessageBoxInput{Kind: "yes no cancel", Default: "cancel"}, int(dialog.YesNoCancelNo), "no"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &stubBackend{answer: tt.answer}
			s := NewServer(b)
			_, out, err := s.handleMessageBox(context.Background(), nil, tt.args)
			if err != nil {
				t.Fatalf("handleMessageBox: %v", err)
			}
			if out.Result != tt.want {
				t.Fatalf("Result = %q, want %q", out.Result, tt.want)
			}
		})
	}
}

func TestHandleMessageBoxPassesDefaultAndIcon(t *testing.T) {
	b := &stubBackend{}
	s := NewServer(b)
	if _, _, err := s.handleMessageBox(context.Background(), nil, MessageBoxInput{
		Title: "T", Message: "M", Kind: "yes_no_cancel", Icon: "warning", Default: "no",
	}); err != nil {
		t.Fatalf("handleMessageBox: %v", err)
	}
	if b.yncDef != dialog.YesNoCancelNo {
		t.Fatalf("default = %v, want no", b.yncDef)
	}
	if b.message.Icon != dialog.IconWarning || b.message.Title != "T" || b.message.Message != "M" {
		t.Fatalf("message = %+v", b.message)
	}
}

func TestHandleMessageBoxRejectsBadArguments(t *testing.T) {
	s := NewServer(&stubBackend{})
	for _, args := range []MessageBoxInput{
		{Kind: "maybe"},
		{Kind: "ok_cancel", Default: "yes"},
		{Kind: "yes_no", Default: "cancel"},
		{Icon: "skull"},
	} {
		if _, _, err := s.handleMessageBox(context.Background(), nil, args); err == nil {
			t.Errorf("%+v: expected an error", args)
		}
	}
}

func TestHandleInputBox(t *testing.T) {
	b := &stubBackend{text: "alice", ok: true}
	s := NewServer(b)
	def := "guest"

	_, out, err := s.handleInputBox(context.Background(), nil, InputBoxInput{Message: "Name", Default: &def})
	if err != nil || out.Text != "alice" || !out.OK {
		t.Fatalf("handleInputBox = %+v, %v", out, err)
	}
	if !b.input.HasDefault || b.input.Default != "guest" {
		t.Fatalf("input = %+v", b.input)
	}

	if _, _, err := s.handleInputBox(context.Background(), nil, InputBoxInput{Password: true, Default: &def}); err != nil {
		t.Fatal(err)
	}
	if !b.input.Password || b.input.HasDefault {
		t.Fatalf("password input = %+v", b.input)
	}
}

func TestHandleFileDialog(t *testing.T) {
	b := &stubBackend{paths: []string{"/a", "/b"}, text: "/dir", ok: true}
	s := NewServer(b)
	ctx := context.Background()

	_, out, err := s.handleFileDialog(ctx, nil, FileDialogInput{Mode: "open_multi", Filters: []string{" *.go ", ""}, Description: "Go"})
	if err != nil || !out.OK || !reflect.DeepEqual(out.Paths, []string{"/a", "/b"}) {
		t.Fatalf("open_multi = %+v, %v", out, err)
	}
	if !b.file.Multiple || !reflect.DeepEqual(b.file.Filters, []string{"*.go"}) {
		t.Fatalf("request = %+v", b.file)
	}

	_, out, _ = s.handleFileDialog(ctx, nil, FileDialogInput{Mode: "open"})
	if !reflect.DeepEqual(out.Paths, []string{"/a"}) || b.file.Multiple {
		t.Fatalf("open = %+v (request %+v)", out, b.file)
	}

	_, out, _ = s.handleFileDialog(ctx, nil, FileDialogInput{Mode: "folder", Filters: []string{"*.go"}})
	if b.fileKind != "folder" || b.file.HasFilter() || !reflect.DeepEqual(out.Paths, []string{"/dir"}) {
		t.Fatalf("folder = %+v (request %+v)", out, b.file)
	}

	b.ok = false
	_, out, _ = s.handleFileDialog(ctx, nil, FileDialogInput{Mode: "save"})
	if out.OK || out.Paths == nil || len(out.Paths) != 0 {
		t.Fatalf("cancelled save = %+v", out)
	}

	if _, _, err := s.handleFileDialog(ctx, nil, FileDialogInput{Mode: "delete"}); err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Fatalf("bad mode error = %v", err)
	}
}

func TestHandleColorChooser(t *testing.T) {
	b := &stubBackend{ok: true}
	s := NewServer(b)

	_, out, err := s.handleColorChooser(context.Background(), nil, ColorChooserInput{Default: "rgb(255, 128, 0)"})
	if err != nil || !out.OK || out.Hex != "#0a141e" || !reflect.DeepEqual(out.RGB, []int{10, 20, 30}) {
		t.Fatalf("handleColorChooser = %+v, %v", out, err)
	}
	if b.color.Default.RGB() != [3]uint8{255, 128, 0} {
		t.Fatalf("seed = %v", b.color.Default.RGB())
	}

	if _, _, err := s.handleColorChooser(context.Background(), nil, ColorChooserInput{Default: "orange"}); err == nil {
		t.Fatal("expected an error for a named color")
	}
}

func TestParseColorArg(t *testing.T) {
	tests := []struct {
		in   string
		want [3]uint8
	}{
		{"", [3]uint8{}},
		{"#ff8000", [3]uint8{255, 128, 0}},
		{"ff8000", [3]uint8{255, 128, 0}},
		{"rgba(1, 2, 3, 0.5)", [3]uint8{1, 2, 3}},
	}
	for _, tt := range tests {
		v, err := parseColorArg(tt.in)
		if err != nil || v.RGB() != tt.want {
			t.Errorf("parseColorArg(%q) = %v, %v; want %v", tt.in, v.RGB(), err, tt.want)
		}
	}
}

func TestHandleNotifyAndBackendInfo(t *testing.T) {
	b := &stubBackend{ok: true}
	s := NewServer(b)

	_, out, err := s.handleNotify(context.Background(), nil, NotifyInput{Title: "Build", Message: "done", Sound: "Glass"})
	if err != nil || !out.Delivered {
		t.Fatalf("handleNotify = %+v, %v", out, err)
	}
	if b.note.Sound != "Glass" || b.note.Title != "Build" {
		t.Fatalf("notification = %+v", b.note)
	}

	_, info, _ := s.handleBackendInfo(context.Background(), nil, BackendInput{})
	if info.Backend != "stub" {
		t.Fatalf("backend = %q", info.Backend)
	}
}

func TestParseColorArgRejectsNonHex(t *testing.T) {
	for _, in := range []string{"orange", "#zzzzzz", "12345", "rgb(1,2)"} {
		if _, err := parseColorArg(in); err == nil {
			t.Errorf("parseColorArg(%q): expected an error", in)
		}
	}
}

// panickingBackend fails every dialog call.
type panickingBackend struct{ stubBackend }

func (panickingBackend) MessageYesNoCancel(dialog.Message, dialog.YesNoCancel) dialog.YesNoCancel {
	panic("display went away")
}

func (panickingBackend) Input(dialog.Input) (string, bool) { panic("display went away") }

func (panickingBackend) OpenFile(dialog.FileDialog) ([]string, bool) { panic("display went away") }

func (panickingBackend) ChooseColor(dialog.ColorChooser) (dialog.Color, bool) {
	panic("display went away")
}

func (panickingBackend) Notify(dialog.Notification) bool { panic("display went away") }

func TestHandlersSurviveBackendPanic(t *testing.T) {
	s := NewServer(&panickingBackend{})
	ctx := context.Background()

	_, mb, err := s.handleMessageBox(ctx, nil, MessageBoxInput{Kind: "yes_no_cancel"})
	if err != nil || mb.Result != "cancel" {
		t.Fatalf("message_box = %+v, %v; want cancel", mb, err)
	}
	_, in, err := s.handleInputBox(ctx, nil, InputBoxInput{})
	if err != nil || in.OK || in.Text != "" {
		t.Fatalf("input_box = %+v, %v", in, err)
	}
	_, fd, err := s.handleFileDialog(ctx, nil, FileDialogInput{Mode: "open_multi"})
	if err != nil || fd.OK || fd.Paths == nil || len(fd.Paths) != 0 {
		t.Fatalf("file_dialog = %+v, %v", fd, err)
	}
	_, cc, err := s.handleColorChooser(ctx, nil, ColorChooserInput{})
	if err != nil || cc.OK {
		t.Fatalf("color_chooser = %+v, %v", cc, err)
	}
	_, n, err := s.handleNotify(ctx, nil, NotifyInput{Title: "x"})
	if err != nil || n.Delivered {
		t.Fatalf("notify = %+v, %v", n, err)
	}

	// The lock is released after a panic.
	if _, _, err := s.handleInputBox(ctx, nil, InputBoxInput{}); err != nil {
		t.Fatal(err)
	}
}
