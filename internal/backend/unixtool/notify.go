package unixtool

import (
	"fmt"
	"strconv"

	"github.com/godbus/dbus/v5"

	"github.com/1broseidon/tfd/internal/dialog"
)

const (
	notificationsService   = "org.freedesktop.Notifications"
	notificationsPath      = "/org/freedesktop/Notifications"
	notificationsInterface = "org.freedesktop.Notifications"
)

// busNotifier sends a notification over the session bus and returns the
// server-assigned id.
type busNotifier func(appName string, n dialog.Notification, timeoutMS int32) (uint32, error)

// sessionBusNotify calls org.freedesktop.Notifications.Notify.
func sessionBusNotify(appName string, n dialog.Notification, timeoutMS int32) (uint32, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return 0, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	hints := map[string]dbus.Variant{}
	if n.Sound != "" {
		hints["sound-name"] = dbus.MakeVariant(n.Sound)
	}

	obj := conn.Object(notificationsService, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notificationsInterface+".Notify", 0,
		appName,
		uint32(0),
		"",
		n.Title,
		notificationBody(n),
		[]string{},
		hints,
		timeoutMS,
	)
	if call.Err != nil {
		return 0, fmt.Errorf("notify call failed: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("failed to decode notification id: %w", err)
	}
	return id, nil
}

// notifySendArgs renders the notify-send command line.
func notifySendArgs(appName string, n dialog.Notification, timeoutMS int32) []string {
	args := []string{"--app-name=" + appName}
	if timeoutMS >= 0 {
		args = append(args, "--expire-time="+strconv.Itoa(int(timeoutMS)))
	}
	if n.Sound != "" {
		args = append(args, "--hint=string:sound-name:"+n.Sound)
	}
	return append(args, "--", n.Title, notificationBody(n))
}
