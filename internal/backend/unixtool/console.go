package unixtool

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/1broseidon/tfd/internal/dialog"
)

// Console is the fallback used when no dialog program is installed. It
// prompts on Out and reads one line per question from In.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// readPassword reads a line without echo. Nil, or a non-terminal stdin,
	// means passwords are read like any other line.
	readPassword func() (string, error)

	title  lipgloss.Style
	prompt lipgloss.Style
	hint   lipgloss.Style
}

// NewConsole builds a console prompt over in/out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		title:  r.NewStyle().Bold(true),
		prompt: r.NewStyle().Foreground(lipgloss.Color("6")),
		hint:   r.NewStyle().Faint(true),
	}
}

// StdConsole prompts on stdout and reads stdin, hiding passwords when stdin
// is a terminal.
func StdConsole() *Console {
	c := NewConsole(os.Stdin, os.Stdout)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		c.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(c.out)
			return string(b), err
		}
	}
	return c
}

func (c *Console) header(d dialog.Dialog) {
	switch {
	case d.Title != "" && d.Message != "":
		fmt.Fprintf(c.out, "%s: %s\n", c.title.Render(d.Title), d.Message)
	case d.Title != "":
		fmt.Fprintln(c.out, c.title.Render(d.Title))
	case d.Message != "":
		fmt.Fprintln(c.out, d.Message)
	}
}

// readLine returns the next line without its line break. ok is false only
// on EOF (or a read error) with nothing typed.
func (c *Console) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (c *Console) ask(d dialog.Dialog, choices string) (string, bool) {
	c.header(d)
	fmt.Fprintf(c.out, "%s ", c.prompt.Render(choices))
	line, ok := c.readLine()
	if !ok {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(line)), true
}

func (c *Console) MessageOk(m dialog.Message) {
	c.header(m.Dialog)
}

// MessageOkCancel answers Ok only for a "y" line.
func (c *Console) MessageOkCancel(m dialog.Message) dialog.OkCancel {
	if line, ok := c.ask(m.Dialog, "(y/n)"); ok && line == "y" {
		return dialog.Ok
	}
	return dialog.Cancel
}

func (c *Console) MessageYesNo(m dialog.Message) dialog.YesNo {
	if line, ok := c.ask(m.Dialog, "(y/n)"); ok && line == "y" {
		return dialog.Yes
	}
	return dialog.No
}

func (c *Console) MessageYesNoCancel(m dialog.Message) dialog.YesNoCancel {
	line, _ := c.ask(m.Dialog, "(y/n/c)")
	switch line {
	case "y":
		return dialog.YesNoCancelYes
	case "n":
		return dialog.YesNoCancelNo
	default:
		return dialog.YesNoCancelCancel
	}
}

// Input returns the typed line. An empty line selects the default when one
// was given.
func (c *Console) Input(in dialog.Input) (string, bool) {
	c.header(in.Dialog)
	label := ">"
	if in.HasDefault && in.Default != "" && !in.Password {
		label = fmt.Sprintf("[%s] >", in.Default)
	}
	fmt.Fprintf(c.out, "%s ", c.prompt.Render(label))

	if in.Password && c.readPassword != nil {
		line, err := c.readPassword()
		if err != nil {
			return "", false
		}
		return line, true
	}

	line, ok := c.readLine()
	if !ok {
		return "", false
	}
	if line == "" && in.HasDefault {
		return in.Default, true
	}
	return line, true
}

// pathPrompt reads a path; an empty line yields def, which may be empty.
func (c *Console) pathPrompt(d dialog.Dialog, verb, def string) (string, bool) {
	c.header(d)
	if def != "" {
		fmt.Fprintln(c.out, c.hint.Render(fmt.Sprintf("%s (default: %s)", verb, def)))
	} else {
		fmt.Fprintln(c.out, c.hint.Render(verb))
	}
	fmt.Fprintf(c.out, "%s ", c.prompt.Render(">"))
	line, ok := c.readLine()
	if !ok {
		return "", false
	}
	if line = strings.TrimSpace(line); line == "" {
		return def, def != ""
	}
	return line, true
}

func (c *Console) SaveFile(fd dialog.FileDialog) (string, bool) {
	return c.pathPrompt(fd.Dialog, "Save file", fd.Path)
}

// OpenFile has no default to fall back to: an empty line declines.
func (c *Console) OpenFile(fd dialog.FileDialog) ([]string, bool) {
	verb := "Open file"
	if fd.Multiple {
		verb = "Open files (separate with |)"
	}
	line, ok := c.pathPrompt(fd.Dialog, verb, "")
	if !ok {
		return nil, false
	}
	if !fd.Multiple {
		return []string{line}, true
	}
	var paths []string
	for _, p := range strings.Split(line, "|") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths, len(paths) > 0
}

func (c *Console) SelectFolder(fd dialog.FileDialog) (string, bool) {
	return c.pathPrompt(fd.Dialog, "Select folder", fd.Path)
}

// ChooseColor accepts "#rrggbb" or "rrggbb"; an empty line keeps the default.
func (c *Console) ChooseColor(cc dialog.ColorChooser) (dialog.Color, bool) {
	def := cc.Default.Hex()
	c.header(cc.Dialog)
	fmt.Fprintln(c.out, c.hint.Render(fmt.Sprintf("Choose color (default: %s)", def)))
	fmt.Fprintf(c.out, "%s ", c.prompt.Render(">"))
	line, ok := c.readLine()
	if !ok {
		return dialog.Color{}, false
	}
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return dialog.NewColor(cc.Default.RGB()), true
	case isHexDigits(strings.TrimPrefix(line, "#"), 6):
		return dialog.NewColor(dialog.HexToRGB(line)), true
	}
	return dialog.Color{}, false
}

func (c *Console) Notify(n dialog.Notification) bool {
	title := n.Title
	if n.Subtitle != "" {
		title = strings.TrimSpace(title + " - " + n.Subtitle)
	}
	c.header(dialog.Dialog{Title: title, Message: n.Message})
	return true
}
