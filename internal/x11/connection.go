// Package x11 answers the one question dialogs need from the X server: which
// window is active, so a dialog can be made transient for it.
package x11

import (
	"errors"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// ErrNoDisplay is returned when DISPLAY is unset (Wayland-only sessions,
// SSH without forwarding, consoles).
var ErrNoDisplay = errors.New("x11: DISPLAY is not set")

// Connection wraps an xgbutil connection and the root window.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection connects to the X server named by $DISPLAY.
func NewConnection() (*Connection, error) {
	if os.Getenv("DISPLAY") == "" {
		return nil, ErrNoDisplay
	}
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	// EWMH helpers need no extension setup.
	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
