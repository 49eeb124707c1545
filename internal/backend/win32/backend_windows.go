//go:build windows

package win32

import (
	"unsafe"

	"github.com/gen2brain/beeep"
	"golang.org/x/sys/windows"

	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
	"github.com/1broseidon/tfd/internal/uithread"
)

var (
	comdlg32 = windows.NewLazySystemDLL("comdlg32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	ole32    = windows.NewLazySystemDLL("ole32.dll")

	procGetOpenFileNameW     = comdlg32.NewProc("GetOpenFileNameW")
	procGetSaveFileNameW     = comdlg32.NewProc("GetSaveFileNameW")
	procChooseColorW         = comdlg32.NewProc("ChooseColorW")
	procCommDlgExtendedError = comdlg32.NewProc("CommDlgExtendedError")
	procSHBrowseForFolderW   = shell32.NewProc("SHBrowseForFolderW")
	procSHGetPathFromIDListW = shell32.NewProc("SHGetPathFromIDListW")
	procCoTaskMemFree        = ole32.NewProc("CoTaskMemFree")
)

const (
	ofnOverwritePrompt  = 0x00000002
	ofnNoChangeDir      = 0x00000008
	ofnAllowMultiSelect = 0x00000200
	ofnPathMustExist    = 0x00000800
	ofnFileMustExist    = 0x00001000
	ofnExplorer         = 0x00080000

	bifReturnOnlyFSDirs = 0x00000001
	bifNewDialogStyle   = 0x00000040

	ccRGBInit  = 0x00000001
	ccFullOpen = 0x00000002
	ccAnyColor = 0x00000100
)

type openFileNameW struct {
	lStructSize       uint32
	hwndOwner         uintptr
	hInstance         uintptr
	lpstrFilter       *uint16
	lpstrCustomFilter *uint16
	nMaxCustFilter    uint32
	nFilterIndex      uint32
	lpstrFile         *uint16
	nMaxFile          uint32
	lpstrFileTitle    *uint16
	nMaxFileTitle     uint32
	lpstrInitialDir   *uint16
	lpstrTitle        *uint16
	flags             uint32
	nFileOffset       uint16
	nFileExtension    uint16
	lpstrDefExt       *uint16
	lCustData         uintptr
	lpfnHook          uintptr
	lpTemplateName    *uint16
	pvReserved        uintptr
	dwReserved        uint32
	flagsEx           uint32
}

type browseInfoW struct {
	hwndOwner      uintptr
	pidlRoot       uintptr
	pszDisplayName *uint16
	lpszTitle      *uint16
	ulFlags        uint32
	lpfn           uintptr
	lParam         uintptr
	iImage         int32
}

type chooseColorW struct {
	lStructSize    uint32
	hwndOwner      uintptr
	hInstance      uintptr
	rgbResult      uint32
	lpCustColors   *[16]uint32
	flags          uint32
	lCustData      uintptr
	lpfnHook       uintptr
	lpTemplateName *uint16
}

// Backend calls the Win32 dialogs from one locked UI thread.
type Backend struct {
	ui      *uithread.Thread
	appName string
}

var _ dialog.Backend = (*Backend)(nil)

// New returns a Backend. appName is the toast notification AUMID.
func New(appName string) *Backend {
	return &Backend{
		ui: uithread.New(func() {
			// SHBrowseForFolderW with BIF_NEWDIALOGSTYLE needs an STA.
			if err := windows.CoInitializeEx(0, windows.COINIT_APARTMENTTHREADED); err != nil {
				logger.Debugf("CoInitializeEx: %v", err)
			}
		}),
		appName: appName,
	}
}

func (b *Backend) Name() string { return "win32" }

func messageBox(title, text string, style uint32) int32 {
	t := utf16z(title)
	m := utf16z(text)
	ret, err := windows.MessageBox(0, &m[0], &t[0], style)
	if ret == 0 {
		logger.Warnf("MessageBoxW failed: %v", err)
	}
	return ret
}

func (b *Backend) MessageOk(m dialog.Message) {
	box := dialog.MessageBox{Message: m, Buttons: []string{"OK"}, DefaultButton: 0}
	b.ui.Call(func() { messageBox(m.Title, m.Message, boxStyle(mbOK, box)) })
}

func (b *Backend) MessageOkCancel(m dialog.Message, def dialog.OkCancel) dialog.OkCancel {
	box := okCancelLayout.Box(m, def)
	ret := uithread.Do(b.ui, func() int32 { return messageBox(m.Title, m.Message, boxStyle(mbOKCancel, box)) })
	if r, ok := decodeID(okCancelLayout, okCancelIDs, ret); ok {
		return r
	}
	return dialog.Cancel
}

func (b *Backend) MessageYesNo(m dialog.Message, def dialog.YesNo) dialog.YesNo {
	box := yesNoLayout.Box(m, def)
	ret := uithread.Do(b.ui, func() int32 { return messageBox(m.Title, m.Message, boxStyle(mbYesNo, box)) })
	if r, ok := decodeID(yesNoLayout, yesNoIDs, ret); ok {
		return r
	}
	return dialog.No
}

func (b *Backend) MessageYesNoCancel(m dialog.Message, def dialog.YesNoCancel) dialog.YesNoCancel {
	box := yesNoCancelLayout.Box(m, def)
	ret := uithread.Do(b.ui, func() int32 { return messageBox(m.Title, m.Message, boxStyle(mbYesNoCancel, box)) })
	if r, ok := decodeID(yesNoCancelLayout, yesNoCancelIDs, ret); ok {
		return r
	}
	return dialog.YesNoCancelCancel
}

// Input cannot prompt for text: Win32 has no stock input dialog. It shows
// an OK/Cancel box and returns the caller's default on OK.
func (b *Backend) Input(in dialog.Input) (string, bool) {
	title, text := inputPrompt(in)
	ret := uithread.Do(b.ui, func() int32 {
		return messageBox(title, text, mbOKCancel|mbIconQuestion|mbSetForeground)
	})
	if ret != idOK {
		return "", false
	}
	return in.Default, true
}

type fileResult struct {
	paths []string
	ok    bool
}

func (b *Backend) fileDialog(fd dialog.FileDialog, save bool) fileResult {
	return uithread.Do(b.ui, func() fileResult {
		dir, name := seed(fd.Path)
		size := maxPath
		if !save && fd.Multiple {
			size = maxMultiPath
		}
		buf := fileBuffer(size, name)
		title := utf16z(fd.Title)

		ofn := openFileNameW{
			lpstrFile:  &buf[0],
			nMaxFile:   uint32(len(buf)),
			lpstrTitle: &title[0],
			flags:      ofnPathMustExist | ofnNoChangeDir | ofnExplorer,
		}
		ofn.lStructSize = uint32(unsafe.Sizeof(ofn))
		if f := filterString(fd); f != "" {
			filter := utf16z(f)
			ofn.lpstrFilter = &filter[0]
		}
		if dir != "" {
			initial := utf16z(dir)
			ofn.lpstrInitialDir = &initial[0]
		}

		proc := procGetOpenFileNameW
		if save {
			proc = procGetSaveFileNameW
			ofn.flags |= ofnOverwritePrompt
		} else {
			ofn.flags |= ofnFileMustExist
			if fd.Multiple {
				ofn.flags |= ofnAllowMultiSelect
			}
		}

		ret, _, _ := proc.Call(uintptr(unsafe.Pointer(&ofn)))
		if ret == 0 {
			if code, _, _ := procCommDlgExtendedError.Call(); code != 0 {
				logger.Warnf("%s failed: CommDlgExtendedError 0x%x", proc.Name, code)
			}
			return fileResult{}
		}
		if !save && fd.Multiple {
			paths := splitMultiSelect(buf)
			return fileResult{paths: paths, ok: len(paths) > 0}
		}
		path := utf16String(buf)
		return fileResult{paths: []string{path}, ok: path != ""}
	})
}

func (b *Backend) SaveFile(fd dialog.FileDialog) (string, bool) {
	res := b.fileDialog(fd, true)
	if !res.ok {
		return "", false
	}
	return res.paths[0], true
}

func (b *Backend) OpenFile(fd dialog.FileDialog) ([]string, bool) {
	res := b.fileDialog(fd, false)
	return res.paths, res.ok
}

func (b *Backend) SelectFolder(fd dialog.FileDialog) (string, bool) {
	res := uithread.Do(b.ui, func() fileResult {
		title := utf16z(fd.Title)
		display := make([]uint16, maxPath)
		bi := browseInfoW{
			pszDisplayName: &display[0],
			lpszTitle:      &title[0],
			ulFlags:        bifReturnOnlyFSDirs | bifNewDialogStyle,
		}
		pidl, _, _ := procSHBrowseForFolderW.Call(uintptr(unsafe.Pointer(&bi)))
		if pidl == 0 {
			return fileResult{}
		}
		defer procCoTaskMemFree.Call(pidl)

		buf := make([]uint16, maxPath)
		ok, _, _ := procSHGetPathFromIDListW.Call(pidl, uintptr(unsafe.Pointer(&buf[0])))
		if ok == 0 {
			return fileResult{}
		}
		path := utf16String(buf)
		return fileResult{paths: []string{path}, ok: path != ""}
	})
	if !res.ok {
		return "", false
	}
	return res.paths[0], true
}

func (b *Backend) ChooseColor(cc dialog.ColorChooser) (dialog.Color, bool) {
	type colorResult struct {
		rgb [3]uint8
		ok  bool
	}
	res := uithread.Do(b.ui, func() colorResult {
		var custom [16]uint32
		c := chooseColorW{
			rgbResult:    colorRef(cc.Default.RGB()),
			lpCustColors: &custom,
			flags:        ccRGBInit | ccFullOpen | ccAnyColor,
		}
		c.lStructSize = uint32(unsafe.Sizeof(c))
		ret, _, _ := procChooseColorW.Call(uintptr(unsafe.Pointer(&c)))
		if ret == 0 {
			return colorResult{}
		}
		return colorResult{rgb: fromColorRef(c.rgbResult), ok: true}
	})
	if !res.ok {
		return dialog.Color{}, false
	}
	return dialog.NewColor(res.rgb), true
}

// Notify shows a toast under the configured AUMID and falls back to a
// message box when toasts are unavailable.
func (b *Backend) Notify(n dialog.Notification) bool {
	body := n.Message
	if n.Subtitle != "" {
		body = n.Subtitle + "\n" + n.Message
	}
	beeep.AppName = b.appName
	err := beeep.Notify(n.Title, body, "")
	if err == nil {
		return true
	}
	logger.Debugf("toast notification failed: %v", err)
	ret := uithread.Do(b.ui, func() int32 {
		return messageBox(n.Title, body, mbOK|mbIconInformation|mbSetForeground)
	})
	return ret == idOK
}
