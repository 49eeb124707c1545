package x11

import (
	"errors"
	"testing"
)

func TestIsNormalType(t *testing.T) {
	tests := []struct {
		types []string
		want  bool
	}{
		{nil, true},
		{[]string{"_NET_WM_WINDOW_TYPE_NORMAL"}, true},
		{[]string{"_NET_WM_WINDOW_TYPE_DIALOG"}, true},
		{[]string{"_NET_WM_WINDOW_TYPE_DOCK"}, false},
		{[]string{"_NET_WM_WINDOW_TYPE_DESKTOP"}, false},
		{[]string{"_KDE_NET_WM_WINDOW_TYPE_OVERRIDE"}, false},
	}
	for _, tt := range tests {
		if got := isNormalType(tt.types); got != tt.want {
			t.Fatalf("isNormalType(%v) = %v, want %v", tt.types, got, tt.want)
		}
	}
}

func TestActiveWindowStandalone_NoDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	_, err := ActiveWindowStandalone()
	if !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("ActiveWindowStandalone() error = %v, want ErrNoDisplay", err)
	}
}
