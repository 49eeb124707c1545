// Package osascript implements dialogs on macOS by running AppleScript
// through /usr/bin/osascript. Script text is built here; every interpolated
// string goes through Quote.
package osascript

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/tfd/internal/dialog"
)

// Escape makes s safe inside an AppleScript string literal.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// Quote returns s as a double-quoted AppleScript literal.
func Quote(s string) string {
	return `"` + Escape(s) + `"`
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = Quote(it)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

// Native button orders. AppleScript lays buttons out left to right, so the
// affirmative button comes last.
var (
	okCancelLayout    = dialog.NewLayout([]string{"Cancel", "OK"}, []dialog.OkCancel{dialog.Cancel, dialog.Ok})
	yesNoLayout       = dialog.NewLayout([]string{"No", "Yes"}, []dialog.YesNo{dialog.No, dialog.Yes})
	yesNoCancelLayout = dialog.NewLayout([]string{"Cancel", "No", "Yes"},
		[]dialog.YesNoCancel{dialog.YesNoCancelCancel, dialog.YesNoCancelNo, dialog.YesNoCancelYes})
)

func iconClause(icon dialog.Icon) string {
	switch icon {
	case dialog.IconWarning:
		return "with icon caution"
	case dialog.IconError:
		return "with icon stop"
	default:
		return "with icon note"
	}
}

// messageScript renders a display dialog with the box's buttons. Defaults
// are 1-based in AppleScript.
func messageScript(box dialog.MessageBox) []string {
	var b strings.Builder
	fmt.Fprintf(&b, "display dialog %s with title %s buttons %s",
		Quote(box.Dialog.Message), Quote(box.Title), quoteList(box.Buttons))
	if box.HasDefault() {
		fmt.Fprintf(&b, " default button %d", box.DefaultButton+1)
	}
	b.WriteString(" " + iconClause(box.Icon))
	return []string{b.String()}
}

func inputScript(in dialog.Input) []string {
	def := ""
	if in.HasDefault {
		def = in.Default
	}
	var b strings.Builder
	fmt.Fprintf(&b, "display dialog %s with title %s default answer %s",
		Quote(in.Message), Quote(in.Title), Quote(def))
	if in.Password {
		b.WriteString(" with hidden answer")
	}
	fmt.Fprintf(&b, " buttons %s default button %d", quoteList(okCancelLayout.Labels), len(okCancelLayout.Labels))
	return []string{b.String()}
}

// locationClauses seeds a chooser. dirExists guards against AppleScript
// failing outright on a missing default location.
func locationClauses(path string, withName bool, dirExists func(string) bool) string {
	dir, file := dialog.SplitSeed(path)
	var b strings.Builder
	if dir != "" && dirExists(dir) {
		fmt.Fprintf(&b, " default location (POSIX file %s)", Quote(dir))
	}
	if withName && file != "" {
		fmt.Fprintf(&b, " default name %s", Quote(file))
	}
	return b.String()
}

func saveScript(fd dialog.FileDialog, dirExists func(string) bool) []string {
	return []string{fmt.Sprintf("POSIX path of (choose file name with prompt %s%s)",
		Quote(fd.Title), locationClauses(fd.Path, true, dirExists))}
}

// openScript prints one POSIX path per line.
func openScript(fd dialog.FileDialog, dirExists func(string) bool) []string {
	choose := "choose file with prompt " + Quote(fd.Title)
	if exts := dialog.Extensions(fd.Patterns()); len(exts) > 0 {
		choose += " of type " + quoteList(exts)
	}
	choose += locationClauses(fd.Path, false, dirExists)
	if !fd.Multiple {
		return []string{"POSIX path of (" + choose + ")"}
	}
	return []string{
		"set picked to (" + choose + " with multiple selections allowed)",
		`set out to ""`,
		"repeat with f in picked",
		"set out to out & POSIX path of f & linefeed",
		"end repeat",
		"return out",
	}
}

func folderScript(fd dialog.FileDialog, dirExists func(string) bool) []string {
	return []string{fmt.Sprintf("POSIX path of (choose folder with prompt %s%s)",
		Quote(fd.Title), locationClauses(fd.Path, false, dirExists))}
}

// colorScript seeds choose color with 16-bit channels.
func colorScript(cc dialog.ColorChooser) []string {
	rgb := cc.Default.RGB()
	return []string{fmt.Sprintf("choose color default color {%d, %d, %d}",
		int(rgb[0])*257, int(rgb[1])*257, int(rgb[2])*257)}
}

func notifyScript(n dialog.Notification) []string {
	var b strings.Builder
	fmt.Fprintf(&b, "display notification %s with title %s", Quote(n.Message), Quote(n.Title))
	if n.Subtitle != "" {
		fmt.Fprintf(&b, " subtitle %s", Quote(n.Subtitle))
	}
	if n.Sound != "" {
		fmt.Fprintf(&b, " sound name %s", Quote(n.Sound))
	}
	return []string{b.String()}
}

// scriptArgs passes each script line as its own -e argument.
func scriptArgs(lines []string) []string {
	args := make([]string, 0, len(lines)*2)
	for _, l := range lines {
		args = append(args, "-e", l)
	}
	return args
}

// buttonReturned extracts the label from "button returned:X[, ...]".
func buttonReturned(output string) (string, bool) {
	const key = "button returned:"
	i := strings.Index(output, key)
	if i < 0 {
		return "", false
	}
	rest := output[i+len(key):]
	if j := strings.Index(rest, ", "); j >= 0 {
		rest = rest[:j]
	}
	return strings.TrimRight(rest, "\r\n"), true
}

// textReturned extracts everything after "text returned:".
func textReturned(output string) (string, bool) {
	const key = "text returned:"
	i := strings.Index(output, key)
	if i < 0 {
		return "", false
	}
	return strings.TrimRight(output[i+len(key):], "\r\n"), true
}

// parseColor reads the "r, g, b" list choose color prints, 16 bits per
// channel.
func parseColor(output string) (dialog.Color, bool) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(output), "{}"), ",")
	if len(parts) != 3 {
		return dialog.Color{}, false
	}
	var rgb [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 65535 {
			return dialog.Color{}, false
		}
		rgb[i] = uint8((v + 128) / 257)
	}
	return dialog.NewColor(rgb), true
}

func splitLines(output string) []string {
	var paths []string
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}
