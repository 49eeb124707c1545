package none

import (
	"bytes"
	"strings"
	"testing"

	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
)

func TestEveryCallIsNegative(t *testing.T) {
	b := New("ios")
	if b.Name() != "ios" {
		t.Fatalf("Name() = %q", b.Name())
	}
	m := dialog.Message{Dialog: dialog.Dialog{Title: "t", Message: "m"}}

	b.MessageOk(m)
	if got := b.MessageOkCancel(m, dialog.Ok); got != dialog.Cancel {
		t.Errorf("MessageOkCancel() = %v", got)
	}
	if got := b.MessageYesNo(m, dialog.Yes); got != dialog.No {
		t.Errorf("MessageYesNo() = %v", got)
	}
	if got := b.MessageYesNoCancel(m, dialog.YesNoCancelYes); got != dialog.YesNoCancelCancel {
		t.Errorf("MessageYesNoCancel() = %v", got)
	}
	if _, ok := b.Input(dialog.Input{Default: "x", HasDefault: true}); ok {
		t.Error("Input() succeeded")
	}
	if _, ok := b.SaveFile(dialog.FileDialog{}); ok {
		t.Error("SaveFile() succeeded")
	}
	if paths, ok := b.OpenFile(dialog.FileDialog{}); ok || paths != nil {
		t.Errorf("OpenFile() = %v, %v", paths, ok)
	}
	if _, ok := b.SelectFolder(dialog.FileDialog{}); ok {
		t.Error("SelectFolder() succeeded")
	}
	if _, ok := b.ChooseColor(dialog.ColorChooser{}); ok {
		t.Error("ChooseColor() succeeded")
	}
	if b.Notify(dialog.Notification{}) {
		t.Error("Notify() succeeded")
	}
}

func TestLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	prev := logger.Level()
	logger.SetLevel("debug")
	t.Cleanup(func() {
		logger.SetLevel(prev)
		logger.SetOutput(nil)
	})

	New("plan9").Input(dialog.Input{})
	if !strings.Contains(buf.String(), "input dialogs are not available on plan9") {
		t.Fatalf("log output %q", buf.String())
	}
}
