//go:build darwin && !ios

package platform

import (
	"github.com/1broseidon/tfd/internal/backend/osascript"
	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
)

func newBackend(*config.Config, bool) dialog.Backend {
	return osascript.New(nil)
}
