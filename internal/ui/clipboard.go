package ui

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// clipboardCommand is an external program that reads clipboard text on stdin.
type clipboardCommand struct {
	name string
	args []string
}

var clipboardCommands = map[string][]clipboardCommand{
	"darwin": {{name: "pbcopy"}},
	"linux": {
		{name: "wl-copy"},
		{name: "xclip", args: []string{"-selection", "clipboard"}},
		{name: "xsel", args: []string{"--clipboard", "--input"}},
	},
	"windows": {{name: "clip"}},
}

// ClipboardWriter copies text to the system clipboard through the first
// available platform tool.
type ClipboardWriter struct {
	cmd    *clipboardCommand
	errMsg string
}

// NewClipboardWriter looks up a clipboard tool for the running platform.
func NewClipboardWriter() *ClipboardWriter {
	return newClipboardWriter(runtime.GOOS, exec.LookPath)
}

func newClipboardWriter(goos string, lookPath func(string) (string, error)) *ClipboardWriter {
	candidates, ok := clipboardCommands[goos]
	if !ok {
		return &ClipboardWriter{errMsg: fmt.Sprintf("unsupported platform: %s", goos)}
	}
	names := make([]string, 0, len(candidates))
	for i := range candidates {
		if _, err := lookPath(candidates[i].name); err == nil {
			return &ClipboardWriter{cmd: &candidates[i]}
		}
		names = append(names, candidates[i].name)
	}
	return &ClipboardWriter{errMsg: "clipboard tool not found (install " + strings.Join(names, ", ") + ")"}
}

// IsAvailable returns whether clipboard operations are supported.
func (cw *ClipboardWriter) IsAvailable() bool {
	return cw.cmd != nil
}

// Error returns the reason the clipboard is unavailable.
func (cw *ClipboardWriter) Error() string {
	return cw.errMsg
}

// Write copies text to the system clipboard.
func (cw *ClipboardWriter) Write(text string) error {
	if cw.cmd == nil {
		return errors.New("clipboard unavailable: " + cw.errMsg)
	}
	cmd := exec.Command(cw.cmd.name, cw.cmd.args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to copy with %s: %w", cw.cmd.name, err)
	}
	return nil
}
