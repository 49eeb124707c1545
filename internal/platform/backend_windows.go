//go:build windows

package platform

import (
	"github.com/1broseidon/tfd/internal/backend/win32"
	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
)

func newBackend(cfg *config.Config, _ bool) dialog.Backend {
	return win32.New(cfg.Notification.AppName)
}
