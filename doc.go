// Package tfd shows native dialogs: message boxes, input and password
// prompts, file and folder pickers, a color chooser and desktop
// notifications.
//
// Each target links exactly one backend. Linux and the BSDs drive zenity,
// kdialog, Xdialog or dialog and fall back to prompts on the terminal. macOS
// runs AppleScript through osascript. Windows calls the Win32 common
// dialogs. Android uses Termux:API, and every other target returns the
// negative result.
//
// Every call blocks until the user dismisses the dialog. No call returns an
// error: a cancelled dialog, a missing dialog program and a native failure
// all produce the same negative result (Cancel, No, or ok == false).
//
// The Unix backend reads ~/.config/tfd/config.yaml (or $TFD_CONFIG) on first
// use to pick the probe order, notification settings and log level.
package tfd
