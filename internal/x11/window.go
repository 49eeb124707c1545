package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}
	return isNormalType(types)
}

func isNormalType(types []string) bool {
	for _, t := range types {
		switch t {
		case "_NET_WM_WINDOW_TYPE_NORMAL", "_NET_WM_WINDOW_TYPE_DIALOG":
			return true
		case "_NET_WM_WINDOW_TYPE_DESKTOP",
			"_NET_WM_WINDOW_TYPE_DOCK",
			"_NET_WM_WINDOW_TYPE_SPLASH",
			"_NET_WM_WINDOW_TYPE_NOTIFICATION":
			return false
		}
	}
	// If no specific type is set, assume it's normal
	return len(types) == 0
}

// ActiveWindow returns _NET_ACTIVE_WINDOW when it is an application window.
// The desktop and docks are not worth attaching a dialog to.
func (c *Connection) ActiveWindow() (uint32, error) {
	win, err := ewmh.ActiveWindowGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to read active window: %w", err)
	}
	if win == 0 || win == c.Root {
		return 0, fmt.Errorf("no active window")
	}
	if !c.IsNormalWindow(win) {
		return 0, fmt.Errorf("active window 0x%x is not an application window", uint32(win))
	}
	return uint32(win), nil
}

// ActiveWindowStandalone returns the active window using a new temporary X11
// connection. Dialogs are infrequent, so nothing is kept open between calls.
func ActiveWindowStandalone() (uint32, error) {
	conn, err := NewConnection()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to X11: %w", err)
	}
	defer conn.Close()

	return conn.ActiveWindow()
}
