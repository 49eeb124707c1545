package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/1broseidon/tfd"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*s = append(*s, part)
		}
	}
	return nil
}

// Exit statuses of msgbox.
const (
	exitAffirmative = 0
	exitNegative    = 1
	exitCancel      = 2
)

func runMsgbox(args []string) int {
	fs := newFlagSet("msgbox", "msgbox [options] <message>")
	title := fs.String("title", "", "Window title")
	icon := fs.String("icon", "info", "Icon: info, warning, error, question")
	kind := fs.String("type", "ok", "Buttons: ok, okcancel, yesno, yesnocancel")
	def := fs.String("default", "", "Default button: ok, cancel, yes, no")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	message := strings.Join(fs.Args(), " ")
	box := tfd.NewMessageBox(*title, message).Icon(tfd.ParseIcon(*icon))
	d := strings.ToLower(strings.TrimSpace(*def))

	switch strings.ToLower(strings.ReplaceAll(*kind, "_", "")) {
	case "ok":
		box.RunOk()
		fmt.Fprintln(stdout, tfd.Ok)
		return exitAffirmative

	case "okcancel":
		defButton := tfd.Ok
		if d == "cancel" {
			defButton = tfd.Cancel
		}
		r := box.RunOkCancel(defButton)
		fmt.Fprintln(stdout, r)
		if r == tfd.Ok {
			return exitAffirmative
		}
		return exitNegative

	case "yesno":
		defButton := tfd.Yes
		if d == "no" {
			defButton = tfd.No
		}
		r := box.RunYesNo(defButton)
		fmt.Fprintln(stdout, r)
		if r == tfd.Yes {
			return exitAffirmative
		}
		return exitNegative

	case "yesnocancel":
		defButton := tfd.YesNoCancelYes
		switch d {
		case "no":
			defButton = tfd.YesNoCancelNo
		case "cancel":
			defButton = tfd.YesNoCancelCancel
		}
		r := box.RunYesNoCancel(defButton)
		fmt.Fprintln(stdout, r)
		switch r {
		case tfd.YesNoCancelYes:
			return exitAffirmative
		case tfd.YesNoCancelNo:
			return exitNegative
		}
		return exitCancel

	default:
		fmt.Fprintf(stderr, "unknown message box type %q\n", *kind)
		return 2
	}
}

func runInput(args []string, password bool) int {
	name := "input"
	if password {
		name = "password"
	}
	fs := newFlagSet(name, name+" [options] <message>")
	title := fs.String("title", "", "Window title")
	var def *string
	if !password {
		def = fs.String("default", "", "Prefilled text")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	in := tfd.NewInput(*title, strings.Join(fs.Args(), " "))
	if password {
		in.Password()
	} else if isFlagSet(fs, "default") {
		in.Default(*def)
	}
	text, ok := in.Run()
	if !ok {
		return declined(name)
	}
	fmt.Fprintln(stdout, text)
	return 0
}

// isFlagSet reports whether the named flag was given on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func runFile(args []string, mode string) int {
	fs := newFlagSet(mode, mode+" [options]")
	title := fs.String("title", "", "Window title")
	path := fs.String("path", "", "Starting directory or proposed file name")
	var filters stringList
	var description *string
	var multiple *bool
	if mode != "folder" {
		fs.Var(&filters, "filter", "Glob pattern such as *.png (repeatable)")
		description = fs.String("description", "", "Label for the filter patterns")
	}
	if mode == "open" {
		multiple = fs.Bool("multiple", false, "Allow selecting several files")
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	d := tfd.NewFileDialog(*title).Path(*path)
	if description != nil {
		d.Filter(filters, *description)
	}

	var paths []string
	var ok bool
	switch {
	case mode == "save":
		var p string
		if p, ok = d.RunSave(); ok {
			paths = []string{p}
		}
	case mode == "folder":
		var p string
		if p, ok = d.RunSelectFolder(); ok {
			paths = []string{p}
		}
	case *multiple:
		paths, ok = d.RunOpenMulti()
	default:
		var p string
		if p, ok = d.RunOpen(); ok {
			paths = []string{p}
		}
	}
	if !ok {
		return declined(mode)
	}
	for _, p := range paths {
		fmt.Fprintln(stdout, p)
	}
	return 0
}

func runColor(args []string) int {
	fs := newFlagSet("color", "color [options]")
	title := fs.String("title", "", "Window title")
	def := fs.String("default", "#000000", "Initial color as #rrggbb")
	rgb := fs.Bool("rgb", false, "Print r,g,b instead of #rrggbb")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}

	c, ok := tfd.ColorChooserDialog(*title, tfd.HexColor(*def))
	if !ok {
		return declined("color")
	}
	if *rgb {
		fmt.Fprintf(stdout, "%d,%d,%d\n", c.RGB[0], c.RGB[1], c.RGB[2])
		return 0
	}
	fmt.Fprintln(stdout, c.Hex)
	return 0
}

func runNotify(args []string) int {
	fs := newFlagSet("notify", "notify [options] <title> [message]")
	subtitle := fs.String("subtitle", "", "Second heading line")
	sound := fs.String("sound", "", "Sound name")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	title := fs.Arg(0)
	message := strings.Join(fs.Args()[1:], " ")
	if !tfd.NewNotification(title, message).Subtitle(*subtitle).Sound(*sound).Run() {
		return declined("notification")
	}
	return 0
}
