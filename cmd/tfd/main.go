package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/1broseidon/tfd"
	"github.com/1broseidon/tfd/internal/config"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(stdout)
		os.Exit(0)
	}
	os.Exit(run(os.Args[1], os.Args[2:]))
}

func run(cmd string, args []string) int {
	switch cmd {
	case "msgbox":
		return runMsgbox(args)
	case "input":
		return runInput(args, false)
	case "password":
		return runInput(args, true)
	case "save":
		return runFile(args, "save")
	case "open":
		return runFile(args, "open")
	case "folder":
		return runFile(args, "folder")
	case "color":
		return runColor(args)
	case "notify":
		return runNotify(args)
	case "probe":
		return runProbe(args)
	case "config":
		return runConfig(args)
	case "mcp":
		return runMCP(args)
	case "help", "-h", "--help":
		printMainUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", cmd)
		printMainUsage(stderr)
		return 2
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tfd <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  msgbox              Show a message box")
	fmt.Fprintln(w, "  input               Ask for a line of text")
	fmt.Fprintln(w, "  password            Ask for a password")
	fmt.Fprintln(w, "  save                Ask for a file to save to")
	fmt.Fprintln(w, "  open                Ask for one or more files to open")
	fmt.Fprintln(w, "  folder              Ask for a directory")
	fmt.Fprintln(w, "  color               Ask for a color")
	fmt.Fprintln(w, "  notify              Show a desktop notification")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  probe               Show which dialog backend is used")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Dialog commands print the answer on stdout and exit 1 when the user")
	fmt.Fprintln(w, "cancels. Run 'tfd <command> --help' for command-specific options.")
}

// newFlagSet returns a flag set that reports errors on stderr.
func newFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tfd %s\n\nOptions:\n", usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args; code is the exit status to return when ok is
// false.
func parseFlags(fs *flag.FlagSet, args []string) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0, false
		}
		return 2, false
	}
	return 0, true
}

// declined reports a cancelled dialog on stderr.
func declined(what string) int {
	color.New(color.FgYellow).Fprintf(stderr, "%s cancelled\n", what)
	return 1
}

func runProbe(args []string) int {
	fs := newFlagSet("probe", "probe")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	res, err := config.LoadWithSource()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	bold := color.New(color.Bold)
	bold.Fprint(stdout, "backend: ")
	color.New(color.FgGreen).Fprintln(stdout, tfd.BackendName())
	source := res.File
	if source == "" {
		source = "defaults"
	}
	bold.Fprint(stdout, "config:  ")
	fmt.Fprintln(stdout, source)
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(stderr, "Usage:")
		fmt.Fprintln(stderr, "  tfd config validate [--path PATH]")
		fmt.Fprintln(stderr, "  tfd config print [--path PATH] [--defaults]")
		return 2
	}

	load := func(path string) (*config.LoadResult, error) {
		if path == "" {
			return config.LoadWithSource()
		}
		return config.LoadFromPath(path)
	}

	switch args[0] {
	case "validate":
		fs := newFlagSet("validate", "config validate [--path PATH]")
		path := fs.String("path", "", "Config file path (default: ~/.config/tfd/config.yaml)")
		if code, ok := parseFlags(fs, args[1:]); !ok {
			return code
		}
		if _, err := load(*path); err != nil {
			color.New(color.FgRed).Fprintln(stderr, err)
			return 1
		}
		color.New(color.FgGreen).Fprintln(stdout, "config: ok")
		return 0

	case "print":
		fs := newFlagSet("print", "config print [--path PATH] [--defaults]")
		path := fs.String("path", "", "Config file path (default: ~/.config/tfd/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if code, ok := parseFlags(fs, args[1:]); !ok {
			return code
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := load(*path)
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			if res.File != "" {
				fmt.Fprintf(stdout, "# source: %s\n", res.File)
			}
			cfg = res.Config
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		stdout.Write(data)
		return 0

	default:
		fmt.Fprintf(stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}
