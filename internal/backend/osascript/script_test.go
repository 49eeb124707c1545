package osascript

import (
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/runner"
)

// hasUnescapedQuote reports a '"' not preceded by an odd run of backslashes.
func hasUnescapedQuote(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		n := 0
		for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
			n++
		}
		if n%2 == 0 {
			return true
		}
	}
	return false
}

func TestEscape_NoUnescapedQuotes(t *testing.T) {
	inputs := []string{
		`plain`,
		`say "hi"`,
		"back`tick` $(rm -rf ~)",
		`trailing backslash \`,
		`\"already escaped\"`,
		`"; do shell script "touch /tmp/pwned`,
		"multi\nline\r\ntext\r",
	}
	for _, in := range inputs {
		got := Escape(in)
		if hasUnescapedQuote(got) {
			t.Fatalf("Escape(%q) = %q contains an unescaped quote", in, got)
		}
		if strings.ContainsAny(got, "\r\n") {
			t.Fatalf("Escape(%q) = %q contains a raw line break", in, got)
		}
	}
	if got := Escape(`a"b\c`); got != `a\"b\\c` {
		t.Fatalf("Escape() = %q", got)
	}
}

func TestMessageScript_InjectionStaysInsideLiteral(t *testing.T) {
	box := okCancelLayout.Box(dialog.Message{Dialog: dialog.Dialog{
		Title:   "t\" & (do shell script \"id\") & \"",
		Message: "`id`",
	}}, dialog.Ok)
	script := messageScript(box)[0]
	if !strings.HasPrefix(script, `display dialog "`+"`id`"+`" with title "t\" & (do shell script \"id\") & \""`) {
		t.Fatalf("unexpected script %q", script)
	}
}

func TestMessageScript_DefaultButtonFollowsNativeOrder(t *testing.T) {
	tests := []struct {
		def  dialog.YesNoCancel
		want string
	}{
		{dialog.YesNoCancelCancel, "default button 1"},
		{dialog.YesNoCancelNo, "default button 2"},
		{dialog.YesNoCancelYes, "default button 3"},
	}
	for _, tt := range tests {
		script := messageScript(yesNoCancelLayout.Box(dialog.Message{}, tt.def))[0]
		if !strings.Contains(script, `buttons {"Cancel", "No", "Yes"}`) || !strings.Contains(script, tt.want) {
			t.Fatalf("default %v: script %q, want %q", tt.def, script, tt.want)
		}
	}
	box := dialog.MessageBox{Buttons: []string{"OK"}, DefaultButton: dialog.NoDefault}
	if strings.Contains(messageScript(box)[0], "default button") {
		t.Fatal("NoDefault must not emit a default button clause")
	}
}

func TestBackend_YesNoCancelDecodesPressedButton(t *testing.T) {
	for _, want := range []dialog.YesNoCancel{dialog.YesNoCancelYes, dialog.YesNoCancelNo} {
		label := yesNoCancelLayout.Label(want)
		var gotArgs []string
		b := New(runner.Func(func(name string, args ...string) (runner.Result, error) {
			gotArgs = args
			return runner.Result{Stdout: "button returned:" + label + "\n"}, nil
		}))
		if got := b.MessageYesNoCancel(dialog.Message{}, want); got != want {
			t.Fatalf("pressed %q decoded to %v", label, got)
		}
		idx, _ := yesNoCancelLayout.Index(want)
		if !strings.Contains(gotArgs[1], "default button "+strconv.Itoa(idx+1)) {
			t.Fatalf("default %v not at index %d: %q", want, idx, gotArgs[1])
		}
	}

	// Cancel is reported by osascript as error -128.
	b := New(runner.Func(func(string, ...string) (runner.Result, error) {
		return runner.Result{Stderr: "execution error: User canceled. (-128)", ExitCode: 1}, nil
	}))
	if got := b.MessageYesNoCancel(dialog.Message{}, dialog.YesNoCancelYes); got != dialog.YesNoCancelCancel {
		t.Fatalf("cancel exit decoded to %v", got)
	}
}

func TestBackend_OkCancelAndYesNo(t *testing.T) {
	b := New(runner.Func(func(string, ...string) (runner.Result, error) {
		return runner.Result{Stdout: "button returned:OK\n"}, nil
	}))
	if got := b.MessageOkCancel(dialog.Message{}, dialog.Cancel); got != dialog.Ok {
		t.Fatalf("MessageOkCancel() = %v", got)
	}
	b = New(runner.Func(func(string, ...string) (runner.Result, error) {
		return runner.Result{Stdout: "button returned:No\n"}, nil
	}))
	if got := b.MessageYesNo(dialog.Message{}, dialog.Yes); got != dialog.No {
		t.Fatalf("MessageYesNo() = %v", got)
	}
}

func TestBackend_InputParsesTextReturned(t *testing.T) {
	var script string
	b := New(runner.Func(func(_ string, args ...string) (runner.Result, error) {
		script = args[1]
		return runner.Result{Stdout: "button returned:OK, text returned:a, b, c\n"}, nil
	}))
	got, ok := b.Input(dialog.Input{Dialog: dialog.Dialog{Message: "Name"}, Default: "x", HasDefault: true, Password: true})
	if !ok || got != "a, b, c" {
		t.Fatalf("Input() = %q, %v", got, ok)
	}
	if !strings.Contains(script, `default answer "x" with hidden answer`) {
		t.Fatalf("unexpected script %q", script)
	}
}

func TestBackend_OpenMultiple(t *testing.T) {
	var args []string
	b := New(runner.Func(func(_ string, a ...string) (runner.Result, error) {
		args = a
		return runner.Result{Stdout: "/Users/me/a.txt\n/Users/me/b c.txt\n"}, nil
	}))
	paths, ok := b.OpenFile(dialog.FileDialog{Dialog: dialog.Dialog{Title: "Pick"}, Filters: []string{"*.txt", "*.*"}, Multiple: true})
	if !ok || !reflect.DeepEqual(paths, []string{"/Users/me/a.txt", "/Users/me/b c.txt"}) {
		t.Fatalf("OpenFile() = %v, %v", paths, ok)
	}
	if len(args) != 12 || args[0] != "-e" {
		t.Fatalf("expected six -e lines, got %q", args)
	}
	if !strings.Contains(args[1], `of type {"txt"}`) || !strings.Contains(args[1], "with multiple selections allowed") {
		t.Fatalf("unexpected chooser line %q", args[1])
	}

	b = New(runner.Func(func(string, ...string) (runner.Result, error) {
		return runner.Result{Stdout: "\n"}, nil
	}))
	if paths, ok := b.OpenFile(dialog.FileDialog{Multiple: true}); ok || paths != nil {
		t.Fatalf("empty selection: OpenFile() = %v, %v", paths, ok)
	}
}

func TestLocationClauses(t *testing.T) {
	dir := t.TempDir()
	got := locationClauses(dir+"/report.pdf", true, isDir)
	want := ` default location (POSIX file "` + dir + `") default name "report.pdf"`
	if got != want {
		t.Fatalf("locationClauses() = %q, want %q", got, want)
	}
	if got := locationClauses("/definitely/missing/dir/x.txt", true, isDir); got != ` default name "x.txt"` {
		t.Fatalf("missing dir should be skipped, got %q", got)
	}
	if got := locationClauses("", true, isDir); got != "" {
		t.Fatalf("empty seed: %q", got)
	}
}

func TestColor(t *testing.T) {
	script := colorScript(dialog.ColorChooser{Default: dialog.HexColor("#ff8000")})[0]
	if script != "choose color default color {65535, 32896, 0}" {
		t.Fatalf("colorScript() = %q", script)
	}

	tests := []struct {
		out  string
		want string
		ok   bool
	}{
		{"65535, 32896, 0\n", "#ff8000", true},
		{"{0, 0, 65535}", "#0000ff", true},
		{"garbage", "", false},
		{"1, 2", "", false},
	}
	for _, tt := range tests {
		c, ok := parseColor(tt.out)
		if ok != tt.ok || c.Hex != tt.want {
			t.Fatalf("parseColor(%q) = %+v, %v; want %s, %v", tt.out, c, ok, tt.want, tt.ok)
		}
	}
}

func TestNotifyScript(t *testing.T) {
	got := notifyScript(dialog.Notification{Title: "Build", Message: "done", Subtitle: "ci", Sound: "Glass"})[0]
	want := `display notification "done" with title "Build" subtitle "ci" sound name "Glass"`
	if got != want {
		t.Fatalf("notifyScript() = %q, want %q", got, want)
	}
}
