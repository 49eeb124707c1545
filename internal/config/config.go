package config

import (
	"fmt"
	"strings"
)

// KnownUnixTools lists the dialog tools the Unix backend can drive, in the
// default probe order.
var KnownUnixTools = []string{"zenity", "kdialog", "Xdialog", "dialog"}

// ConsoleTool forces the line-oriented stdin/stdout fallback.
const ConsoleTool = "console"

// DefaultAppName is used for notification sender names and the Windows AUMID.
const DefaultAppName = "tfd"

// UnixConfig controls tool selection on Unix-like systems.
type UnixConfig struct {
	// Tools is the probe order. Empty means KnownUnixTools.
	Tools []string `yaml:"tools,omitempty"`
	// Force skips probing and always uses this tool ("console" for stdin).
	Force string `yaml:"force,omitempty"`
	// AttachActiveWindow makes zenity/kdialog dialogs transient for the
	// active X11 window.
	AttachActiveWindow bool `yaml:"attach_active_window"`
}

// NotificationConfig controls desktop notifications.
type NotificationConfig struct {
	AppName string `yaml:"app_name,omitempty"`
	// DBus enables the org.freedesktop.Notifications call before falling back
	// to notify-send. Default: true.
	DBus *bool `yaml:"dbus,omitempty"`
	// TimeoutMS is the expiry passed to the notification server; -1 lets the
	// server decide.
	TimeoutMS int `yaml:"timeout_ms,omitempty"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	// Level: debug, info, warn, error, off.
	Level string `yaml:"level,omitempty"`
	// File appends logs to this path instead of stderr.
	File string `yaml:"file,omitempty"`
}

// Config is the effective tfd configuration.
type Config struct {
	Unix         UnixConfig         `yaml:"unix"`
	Notification NotificationConfig `yaml:"notification"`
	Log          LogConfig          `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Unix: UnixConfig{
			Tools: append([]string(nil), KnownUnixTools...),
		},
		Notification: NotificationConfig{
			AppName:   DefaultAppName,
			TimeoutMS: -1,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// UseDBus returns the effective D-Bus setting, defaulting to true.
func (n NotificationConfig) UseDBus() bool {
	if n.DBus == nil {
		return true
	}
	return *n.DBus
}

// ProbeOrder returns the tools to probe, honoring Force.
func (u UnixConfig) ProbeOrder() []string {
	if u.Force != "" {
		return []string{u.Force}
	}
	if len(u.Tools) == 0 {
		return append([]string(nil), KnownUnixTools...)
	}
	return append([]string(nil), u.Tools...)
}

// ValidationError points at the offending key and, when known, its position
// in the config file.
type ValidationError struct {
	Path   string
	File   string
	Line   int
	Column int
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.File, e.Line, e.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate normalizes tool names to their canonical spelling and rejects
// unknown values.
func (c *Config) Validate() error {
	for i, name := range c.Unix.Tools {
		canon, ok := canonicalTool(name)
		if !ok {
			return &ValidationError{
				Path: fmt.Sprintf("unix.tools[%d]", i),
				Err:  fmt.Errorf("unknown tool %q (expected one of: %s)", name, strings.Join(KnownUnixTools, ", ")),
			}
		}
		c.Unix.Tools[i] = canon
	}
	if c.Unix.Force != "" {
		if strings.EqualFold(c.Unix.Force, ConsoleTool) {
			c.Unix.Force = ConsoleTool
		} else if canon, ok := canonicalTool(c.Unix.Force); ok {
			c.Unix.Force = canon
		} else {
			return &ValidationError{
				Path: "unix.force",
				Err:  fmt.Errorf("unknown tool %q (expected console or one of: %s)", c.Unix.Force, strings.Join(KnownUnixTools, ", ")),
			}
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error", "off":
	default:
		return &ValidationError{Path: "log.level", Err: fmt.Errorf("log.level must be one of: debug, info, warn, error, off")}
	}
	if c.Notification.TimeoutMS < -1 {
		return &ValidationError{Path: "notification.timeout_ms", Err: fmt.Errorf("notification.timeout_ms must be >= -1")}
	}
	if strings.TrimSpace(c.Notification.AppName) == "" {
		c.Notification.AppName = DefaultAppName
	}
	return nil
}

func canonicalTool(name string) (string, bool) {
	for _, known := range KnownUnixTools {
		if strings.EqualFold(strings.TrimSpace(name), known) {
			return known, true
		}
	}
	return "", false
}
