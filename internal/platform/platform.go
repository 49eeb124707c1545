// Package platform links exactly one dialog backend per build target.
package platform

import (
	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
)

// New returns the backend for the running target configured by cfg. A nil
// cfg means defaults. Backends probe lazily, so New never blocks.
func New(cfg *config.Config) dialog.Backend {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return newBackend(cfg, false)
}

// NewHeadless is New for processes whose stdin and stdout are not a
// terminal, such as the MCP server. Dialog programs get an empty stdin,
// terminal-only tools are skipped and console prompts decline.
func NewHeadless(cfg *config.Config) dialog.Backend {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return newBackend(cfg, true)
}
