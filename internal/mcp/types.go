package mcp

// MessageBoxInput is the input for the message_box tool.
type MessageBoxInput struct {
	Title   string `json:"title,omitempty" jsonschema:"Dialog window title"`
	Message string `json:"message" jsonschema:"Text shown in the dialog"`
	Kind    string `json:"kind,omitempty" jsonschema:"Button set: ok, ok_cancel, yes_no or yes_no_cancel (default: ok)"`
	Icon    string `json:"icon,omitempty" jsonschema:"Icon: info, warning, error or question (default: info)"`
	Default string `json:"default,omitempty" jsonschema:"Default button: ok, cancel, yes or no (default: ok for ok_cancel, yes otherwise)"`
}

// MessageBoxOutput is the output for the message_box tool.
type MessageBoxOutput struct {
	Result string `json:"result" jsonschema:"The pressed button: ok, cancel, yes or no. Closing the dialog counts as cancel (or no for yes_no)."`
}

// InputBoxInput is the input for the input_box tool.
type InputBoxInput struct {
	Title    string  `json:"title,omitempty" jsonschema:"Dialog window title"`
	Message  string  `json:"message" jsonschema:"Prompt text"`
	Default  *string `json:"default,omitempty" jsonschema:"Prefilled text. Ignored for passwords."`
	Password bool    `json:"password,omitempty" jsonschema:"When true, hide the typed text"`
}

// InputBoxOutput is the output for the input_box tool.
type InputBoxOutput struct {
	Text string `json:"text"`
	OK   bool   `json:"ok" jsonschema:"False when the user cancelled"`
}

// FileDialogInput is the input for the file_dialog tool.
type FileDialogInput struct {
	Mode        string   `json:"mode" jsonschema:"One of save, open, open_multi or folder"`
	Title       string   `json:"title,omitempty" jsonschema:"Dialog window title"`
	Path        string   `json:"path,omitempty" jsonschema:"Starting directory or proposed file name. End with / to mark a directory."`
	Filters     []string `json:"filters,omitempty" jsonschema:"Glob patterns such as *.png. Ignored for folder mode."`
	Description string   `json:"description,omitempty" jsonschema:"Label for the filter patterns"`
}

// FileDialogOutput is the output for the file_dialog tool.
type FileDialogOutput struct {
	Paths []string `json:"paths"`
	OK    bool     `json:"ok" jsonschema:"False when the user cancelled or picked nothing"`
}

// ColorChooserInput is the input for the color_chooser tool.
type ColorChooserInput struct {
	Title   string `json:"title,omitempty" jsonschema:"Dialog window title"`
	Default string `json:"default,omitempty" jsonschema:"Initial color as #rrggbb or rgb(r,g,b) (default: #000000)"`
}

// ColorChooserOutput is the output for the color_chooser tool.
type ColorChooserOutput struct {
	Hex string `json:"hex"`
	RGB []int  `json:"rgb"`
	OK  bool   `json:"ok" jsonschema:"False when the user cancelled"`
}

// NotifyInput is the input for the notify tool.
type NotifyInput struct {
	Title    string `json:"title" jsonschema:"Notification heading"`
	Message  string `json:"message" jsonschema:"Notification body"`
	Subtitle string `json:"subtitle,omitempty" jsonschema:"Second heading line where supported"`
	Sound    string `json:"sound,omitempty" jsonschema:"Sound name where supported"`
}

// NotifyOutput is the output for the notify tool.
type NotifyOutput struct {
	Delivered bool `json:"delivered"`
}

// BackendInput is the input for the backend_info tool.
type BackendInput struct{}

// BackendOutput is the output for the backend_info tool.
type BackendOutput struct {
	Backend string `json:"backend" jsonschema:"Dialog implementation in use, e.g. zenity, kdialog, console, osascript, win32"`
}
