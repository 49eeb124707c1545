package termux

import (
	"errors"
	"reflect"
	"testing"

	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/runner"
)

type call struct {
	name string
	args []string
}

// scripted answers every run with stdout and records the calls.
func scripted(stdout string, calls *[]call) runner.Func {
	return func(name string, args ...string) (runner.Result, error) {
		*calls = append(*calls, call{name, args})
		return runner.Result{Stdout: stdout}, nil
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name   string
		stdout string
		want   dialog.YesNo
	}{
		{"yes", `{"code":-1,"text":"yes"}`, dialog.Yes},
		{"no", `{"code":-1,"text":"no"}`, dialog.No},
		{"dismissed", `{"code":-2,"text":""}`, dialog.No},
		{"garbage", `not json`, dialog.No},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []call
			b := New(scripted(tt.stdout, &calls))
			got := b.MessageYesNo(dialog.Message{Dialog: dialog.Dialog{Title: "T", Message: "M"}}, dialog.Yes)
			if got != tt.want {
				t.Fatalf("MessageYesNo() = %v, want %v", got, tt.want)
			}
			want := []string{"confirm", "-t", "T", "-i", "M"}
			if calls[0].name != dialogCommand || !reflect.DeepEqual(calls[0].args, want) {
				t.Fatalf("ran %s %q, want %q", calls[0].name, calls[0].args, want)
			}
		})
	}
}

func TestYesNoCancelRadio(t *testing.T) {
	tests := []struct {
		stdout string
		want   dialog.YesNoCancel
	}{
		{`{"code":-1,"text":"No","index":1}`, dialog.YesNoCancelNo},
		{`{"code":-1,"text":"Yes"}`, dialog.YesNoCancelYes},
		{`{"code":-1,"text":"Cancel","index":2}`, dialog.YesNoCancelCancel},
		{`{"code":-2,"text":""}`, dialog.YesNoCancelCancel},
	}
	for _, tt := range tests {
		var calls []call
		b := New(scripted(tt.stdout, &calls))
		if got := b.MessageYesNoCancel(dialog.Message{}, dialog.YesNoCancelYes); got != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.stdout, got, tt.want)
		}
		if want := []string{"radio", "-v", "Yes,No,Cancel"}; !reflect.DeepEqual(calls[0].args, want) {
			t.Fatalf("args = %q, want %q", calls[0].args, want)
		}
	}
}

func TestInput(t *testing.T) {
	var calls []call
	b := New(scripted(`{"code":-1,"text":""}`, &calls))
	got, ok := b.Input(dialog.Input{Default: "guest", HasDefault: true, Password: true})
	if !ok || got != "guest" {
		t.Fatalf("empty answer: Input() = %q, %v", got, ok)
	}
	if want := []string{"text", "-p"}; !reflect.DeepEqual(calls[0].args, want) {
		t.Fatalf("args = %q, want %q", calls[0].args, want)
	}

	b = New(scripted(`{"code":-1,"text":"alice"}`, &calls))
	if got, ok := b.Input(dialog.Input{Default: "guest", HasDefault: true}); !ok || got != "alice" {
		t.Fatalf("typed answer: Input() = %q, %v", got, ok)
	}

	b = New(scripted(`{"code":-2,"text":""}`, &calls))
	if _, ok := b.Input(dialog.Input{Default: "guest", HasDefault: true}); ok {
		t.Fatal("cancelled prompt must decline")
	}
}

func TestSpawnFailureDeclines(t *testing.T) {
	b := New(runner.Func(func(string, ...string) (runner.Result, error) {
		return runner.Result{}, errors.New("not found")
	}))
	if got := b.MessageOkCancel(dialog.Message{}, dialog.Ok); got != dialog.Cancel {
		t.Fatalf("MessageOkCancel() = %v", got)
	}
	if _, ok := b.ChooseColor(dialog.ColorChooser{}); ok {
		t.Fatal("ChooseColor() must decline")
	}
	if b.Notify(dialog.Notification{Title: "x"}) {
		t.Fatal("Notify() must report failure")
	}
}

func TestFileDialogsUnavailable(t *testing.T) {
	var calls []call
	b := New(scripted(`{"code":-1,"text":"/sdcard/x"}`, &calls))
	if _, ok := b.SaveFile(dialog.FileDialog{}); ok {
		t.Fatal("SaveFile() must decline")
	}
	if paths, ok := b.OpenFile(dialog.FileDialog{Multiple: true}); ok || paths != nil {
		t.Fatalf("OpenFile() = %v, %v", paths, ok)
	}
	if _, ok := b.SelectFolder(dialog.FileDialog{}); ok {
		t.Fatal("SelectFolder() must decline")
	}
	if len(calls) != 0 {
		t.Fatalf("file dialogs spawned %d processes", len(calls))
	}
}

func TestChooseColor(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"", "#336699"},
		{"#ff0000", "#ff0000"},
		{"rgb(0, 255, 0)", "#00ff00"},
		{"0000ff", "#0000ff"},
	}
	for _, tt := range tests {
		var calls []call
		b := New(scripted(`{"code":-1,"text":"`+tt.text+`"}`, &calls))
		c, ok := b.ChooseColor(dialog.ColorChooser{Default: dialog.HexColor("#336699")})
		if !ok || c.Hex != tt.want {
			t.Fatalf("answer %q: ChooseColor() = %+v, %v; want %s", tt.text, c, ok, tt.want)
		}
	}
}

func TestNotificationArgs(t *testing.T) {
	got := notificationArgs(dialog.Notification{Title: "Build", Message: "done", Subtitle: "ci", Sound: "default"})
	want := []string{"--title", "Build", "--content", "ci\ndone", "--sound"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("notificationArgs() = %q, want %q", got, want)
	}
}
