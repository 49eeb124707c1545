//go:build !((linux && !android) || freebsd || netbsd || openbsd || dragonfly || solaris || (darwin && !ios) || windows || android)

package platform

import (
	"runtime"

	"github.com/1broseidon/tfd/internal/backend/none"
	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/dialog"
)

func newBackend(*config.Config, bool) dialog.Backend {
	return none.New(runtime.GOOS)
}
