//go:build (linux && !android) || freebsd || netbsd || openbsd || dragonfly || solaris

package platform

import (
	"os"
	"strings"

	"github.com/1broseidon/tfd/internal/backend/unixtool"
	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/runner"
	"github.com/1broseidon/tfd/internal/x11"
)

func newBackend(cfg *config.Config, headless bool) dialog.Backend {
	var opts []unixtool.Option
	if cfg.Unix.AttachActiveWindow {
		opts = append(opts, unixtool.WithActiveWindow(x11.ActiveWindowStandalone))
	}
	if headless {
		opts = append(opts,
			unixtool.WithOrder(graphicalTools(cfg.Unix.ProbeOrder())),
			unixtool.WithRunner(runner.Exec{Stdin: strings.NewReader("")}),
			unixtool.WithConsole(unixtool.NewConsole(strings.NewReader(""), os.Stderr)),
		)
	}
	return unixtool.FromConfig(cfg, opts...)
}

// graphicalTools drops the entries that need a terminal.
func graphicalTools(order []string) []string {
	var out []string
	for _, name := range order {
		if name == "dialog" || name == config.ConsoleTool {
			continue
		}
		out = append(out, name)
	}
	return out
}
