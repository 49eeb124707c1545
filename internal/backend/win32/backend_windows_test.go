//go:build windows

package win32

import "testing"

func TestProcsResolve(t *testing.T) {
	for _, p := range []interface{ Find() error }{
		procGetOpenFileNameW,
		procGetSaveFileNameW,
		procChooseColorW,
		procSHBrowseForFolderW,
		procSHGetPathFromIDListW,
		procCoTaskMemFree,
	} {
		if err := p.Find(); err != nil {
			t.Fatalf("Find: %v", err)
		}
	}
}
