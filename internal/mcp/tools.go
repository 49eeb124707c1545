package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/tfd/internal/dialog"
	"github.com/1broseidon/tfd/internal/logger"
)

// normalizeChoice lowercases s and folds "-" and spaces to "_".
func normalizeChoice(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

func parseIcon(name string) (dialog.Icon, error) {
	switch normalizeChoice(name) {
	case "", "info", "warning", "warn", "error", "question":
		return dialog.ParseIcon(name), nil
	}
	return dialog.IconInfo, fmt.Errorf("unknown icon %q (expected info, warning, error or question)", name)
}

// guarded runs one backend call with the server lock held. A panicking
// backend yields neg, the same answer as a declined dialog.
func guarded[T any](s *Server, tool string, neg T, call func(dialog.Backend) T) (out T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			logger.Warnf("%s: dialog backend panicked: %v", tool, r)
			out = neg
		}
	}()
	return call(s.backend)
}

func (s *Server) handleMessageBox(_ context.Context, _ *mcpsdk.CallToolRequest, args MessageBoxInput) (*mcpsdk.CallToolResult, MessageBoxOutput, error) {
	icon, err := parseIcon(args.Icon)
	if err != nil {
		return nil, MessageBoxOutput{}, err
	}
	m := dialog.Message{Dialog: dialog.Dialog{Title: args.Title, Message: args.Message}, Icon: icon}
	def := normalizeChoice(args.Default)

	var result fmt.Stringer
	switch normalizeChoice(args.Kind) {
	case "", "ok":
		guarded(s, "message_box", struct{}{}, func(b dialog.Backend) struct{} {
			b.MessageOk(m)
			return struct{}{}
		})
		result = dialog.Ok
	case "ok_cancel":
		d := dialog.Ok
		switch def {
		case "", "ok":
		case "cancel":
			d = dialog.Cancel
		default:
			return nil, MessageBoxOutput{}, fmt.Errorf("default %q is not a button of ok_cancel", args.Default)
		}
		result = guarded(s, "message_box", dialog.Cancel, func(b dialog.Backend) dialog.OkCancel {
			return b.MessageOkCancel(m, d)
		})
	case "yes_no":
		d := dialog.Yes
		switch def {
		case "", "yes":
		case "no":
			d = dialog.No
		default:
			return nil, MessageBoxOutput{}, fmt.Errorf("default %q is not a button of yes_no", args.Default)
		}
		result = guarded(s, "message_box", dialog.No, func(b dialog.Backend) dialog.YesNo {
			return b.MessageYesNo(m, d)
		})
	case "yes_no_cancel":
		d := dialog.YesNoCancelYes
		switch def {
		case "", "yes":
		case "no":
			d = dialog.YesNoCancelNo
		case "cancel":
			d = dialog.YesNoCancelCancel
		default:
			return nil, MessageBoxOutput{}, fmt.Errorf("default %q is not a button of yes_no_cancel", args.Default)
		}
		result = guarded(s, "message_box", dialog.YesNoCancelCancel, func(b dialog.Backend) dialog.YesNoCancel {
			return b.MessageYesNoCancel(m, d)
		})
	default:
		return nil, MessageBoxOutput{}, fmt.Errorf("unknown kind %q (expected ok, ok_cancel, yes_no or yes_no_cancel)", args.Kind)
	}

	logger.Debugf("message_box %s answered %s", normalizeChoice(args.Kind), result)
	return nil, MessageBoxOutput{Result: result.String()}, nil
}

func (s *Server) handleInputBox(_ context.Context, _ *mcpsdk.CallToolRequest, args InputBoxInput) (*mcpsdk.CallToolResult, InputBoxOutput, error) {
	in := dialog.Input{
		Dialog:   dialog.Dialog{Title: args.Title, Message: args.Message},
		Password: args.Password,
	}
	if args.Default != nil && !args.Password {
		in.Default = *args.Default
		in.HasDefault = true
	}

	out := guarded(s, "input_box", InputBoxOutput{}, func(b dialog.Backend) InputBoxOutput {
		text, ok := b.Input(in)
		return InputBoxOutput{Text: text, OK: ok}
	})
	if !out.OK {
		out.Text = ""
	}
	return nil, out, nil
}

func (s *Server) handleFileDialog(_ context.Context, _ *mcpsdk.CallToolRequest, args FileDialogInput) (*mcpsdk.CallToolResult, FileDialogOutput, error) {
	fd := dialog.FileDialog{
		Dialog:            dialog.Dialog{Title: args.Title},
		Path:              strings.TrimSpace(args.Path),
		Filters:           dialog.FileDialog{Filters: args.Filters}.Patterns(),
		FilterDescription: strings.TrimSpace(args.Description),
	}

	var call func(dialog.Backend) []string
	switch normalizeChoice(args.Mode) {
	case "save":
		call = func(b dialog.Backend) []string { return single(b.SaveFile(fd)) }
	case "open":
		call = func(b dialog.Backend) []string {
			paths, ok := b.OpenFile(fd)
			if !ok || len(paths) == 0 {
				return nil
			}
			return paths[:1]
		}
	case "open_multi":
		fd.Multiple = true
		call = func(b dialog.Backend) []string {
			if paths, ok := b.OpenFile(fd); ok {
				return paths
			}
			return nil
		}
	case "folder":
		fd.Filters, fd.FilterDescription = nil, ""
		call = func(b dialog.Backend) []string { return single(b.SelectFolder(fd)) }
	default:
		return nil, FileDialogOutput{}, fmt.Errorf("unknown mode %q (expected save, open, open_multi or folder)", args.Mode)
	}

	paths := guarded[[]string](s, "file_dialog", nil, call)
	if len(paths) == 0 {
		return nil, FileDialogOutput{Paths: []string{}}, nil
	}
	return nil, FileDialogOutput{Paths: paths, OK: true}, nil
}

// single wraps a one-path answer; a decline is nil.
func single(p string, ok bool) []string {
	if !ok {
		return nil
	}
	return []string{p}
}

// parseColorArg accepts "#rrggbb", "rrggbb", "rgb(...)" and "rgba(...)".
func parseColorArg(s string) (dialog.ColorValue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return dialog.RGBColor([3]uint8{}), nil
	}
	if rgb, ok := dialog.ParseColor(s); ok {
		return dialog.RGBColor(rgb), nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 6 && strings.Trim(hex, "0123456789abcdefABCDEF") == "" {
		return dialog.HexColor(hex), nil
	}
	return dialog.ColorValue{}, fmt.Errorf("invalid color %q (expected #rrggbb or rgb(r,g,b))", s)
}

func (s *Server) handleColorChooser(_ context.Context, _ *mcpsdk.CallToolRequest, args ColorChooserInput) (*mcpsdk.CallToolResult, ColorChooserOutput, error) {
	def, err := parseColorArg(args.Default)
	if err != nil {
		return nil, ColorChooserOutput{}, err
	}

	cc := dialog.ColorChooser{Dialog: dialog.Dialog{Title: args.Title}, Default: def}
	var c dialog.Color
	ok := guarded(s, "color_chooser", false, func(b dialog.Backend) bool {
		var picked bool
		c, picked = b.ChooseColor(cc)
		return picked
	})
	if !ok {
		return nil, ColorChooserOutput{RGB: []int{}}, nil
	}
	return nil, ColorChooserOutput{
		Hex: c.Hex,
		RGB: []int{int(c.RGB[0]), int(c.RGB[1]), int(c.RGB[2])},
		OK:  true,
	}, nil
}

func (s *Server) handleNotify(_ context.Context, _ *mcpsdk.CallToolRequest, args NotifyInput) (*mcpsdk.CallToolResult, NotifyOutput, error) {
	n := dialog.Notification{
		Title:    args.Title,
		Message:  args.Message,
		Subtitle: args.Subtitle,
		Sound:    args.Sound,
	}
	delivered := guarded(s, "notify", false, func(b dialog.Backend) bool { return b.Notify(n) })
	return nil, NotifyOutput{Delivered: delivered}, nil
}

func (s *Server) handleBackendInfo(_ context.Context, _ *mcpsdk.CallToolRequest, _ BackendInput) (*mcpsdk.CallToolResult, BackendOutput, error) {
	return nil, BackendOutput{Backend: s.backend.Name()}, nil
}
