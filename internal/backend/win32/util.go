// Package win32 implements dialogs with the Win32 common dialogs
// (user32, comdlg32, shell32). Everything in this file is plain data
// marshaling and builds on every platform so it can be tested anywhere.
package win32

import (
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/1broseidon/tfd/internal/dialog"
)

// Buffer sizes in UTF-16 code units.
const (
	maxPath      = 260
	maxMultiPath = 32768
)

// MessageBoxW styles and return values.
const (
	mbOK              = 0x00000000
	mbOKCancel        = 0x00000001
	mbYesNoCancel     = 0x00000003
	mbYesNo           = 0x00000004
	mbIconError       = 0x00000010
	mbIconQuestion    = 0x00000020
	mbIconWarning     = 0x00000030
	mbIconInformation = 0x00000040
	mbDefButton1      = 0x00000000
	mbDefButton2      = 0x00000100
	mbDefButton3      = 0x00000200
	mbSetForeground   = 0x00010000

	idOK     = 1
	idCancel = 2
	idYes    = 6
	idNo     = 7
)

// Native button orders with the command id each button returns.
var (
	okCancelLayout    = dialog.OkCancelLayout
	yesNoLayout       = dialog.YesNoLayout
	yesNoCancelLayout = dialog.YesNoCancelLayout

	okCancelIDs    = []int32{idOK, idCancel}
	yesNoIDs       = []int32{idYes, idNo}
	yesNoCancelIDs = []int32{idYes, idNo, idCancel}
)

func iconStyle(icon dialog.Icon) uint32 {
	switch icon {
	case dialog.IconWarning:
		return mbIconWarning
	case dialog.IconError:
		return mbIconError
	case dialog.IconQuestion:
		return mbIconQuestion
	default:
		return mbIconInformation
	}
}

// defaultButtonStyle maps a button index to MB_DEFBUTTONn.
func defaultButtonStyle(idx int) uint32 {
	switch idx {
	case 1:
		return mbDefButton2
	case 2:
		return mbDefButton3
	default:
		return mbDefButton1
	}
}

// boxStyle combines the button set, icon and default button of box.
func boxStyle(buttons uint32, box dialog.MessageBox) uint32 {
	return buttons | iconStyle(box.Icon) | defaultButtonStyle(box.DefaultButton) | mbSetForeground
}

// decodeID finds the button a MessageBoxW return value belongs to.
func decodeID[T comparable](l dialog.Layout[T], ids []int32, ret int32) (T, bool) {
	for i, id := range ids {
		if id == ret {
			return l.At(i)
		}
	}
	var zero T
	return zero, false
}

// filterString builds the double-NUL-terminated lpstrFilter value. An empty
// result means no filter.
func filterString(fd dialog.FileDialog) string {
	patterns := fd.Patterns()
	if len(patterns) == 0 {
		return ""
	}
	desc := fd.FilterDescription
	if desc == "" {
		desc = strings.Join(patterns, ", ")
	}
	return desc + "\x00" + strings.Join(patterns, ";") + "\x00All Files\x00*.*\x00\x00"
}

// utf16z encodes s as NUL-terminated UTF-16. Embedded NULs are kept, which
// filter strings rely on.
func utf16z(s string) []uint16 {
	return append(utf16.Encode([]rune(s)), 0)
}

// utf16String decodes buf up to its first NUL.
func utf16String(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			return string(utf16.Decode(buf[:i]))
		}
	}
	return string(utf16.Decode(buf))
}

// fileBuffer allocates the lpstrFile buffer, seeded with name.
func fileBuffer(size int, name string) []uint16 {
	buf := make([]uint16, size)
	seed := utf16.Encode([]rune(name))
	if len(seed) >= size {
		seed = seed[:size-1]
	}
	copy(buf, seed)
	return buf
}

// splitMultiSelect decodes an OFN_ALLOWMULTISELECT|OFN_EXPLORER buffer: a
// lone full path, or the directory followed by NUL-separated file names and
// a final double NUL.
func splitMultiSelect(buf []uint16) []string {
	var parts []string
	start := 0
	for i := 0; i < len(buf); i++ {
		if buf[i] != 0 {
			continue
		}
		if i == start {
			break
		}
		parts = append(parts, string(utf16.Decode(buf[start:i])))
		start = i + 1
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts
	}
	dir := parts[0]
	paths := make([]string, 0, len(parts)-1)
	for _, name := range parts[1:] {
		paths = append(paths, joinWindowsPath(dir, name))
	}
	return paths
}

func joinWindowsPath(dir, name string) string {
	if strings.HasSuffix(dir, `\`) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + `\` + name
}

// colorRef packs rgb into a COLORREF (0x00bbggrr).
func colorRef(rgb [3]uint8) uint32 {
	return uint32(rgb[0]) | uint32(rgb[1])<<8 | uint32(rgb[2])<<16
}

func fromColorRef(c uint32) [3]uint8 {
	return [3]uint8{uint8(c), uint8(c >> 8), uint8(c >> 16)}
}

// inputPrompt renders the message box shown in place of a real input
// dialog, which Win32 does not provide.
func inputPrompt(in dialog.Input) (title, text string) {
	kind := "Input"
	if in.Password {
		kind = "Password"
	}
	title = kind
	if in.Title != "" {
		title = in.Title + " - " + kind
	}
	text = in.Message
	if in.HasDefault && !in.Password {
		text += "\n\n[Default: " + in.Default + "]"
	}
	return title, text
}

// seed splits a seed path for lpstrInitialDir and the initial file name.
func seed(p string) (dir, file string) {
	dir, file = dialog.SplitSeed(p)
	return filepath.FromSlash(dir), file
}
