//go:build android

package platform

import (
	"github.com/1broseidon/tfd/internal/backend/termux"
	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
)

func newBackend(*config.Config, bool) dialog.Backend {
	return termux.New(nil)
}
