package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestNewClipboardWriter(t *testing.T) {
	tests := []struct {
		name      string
		goos      string
		installed []string
		wantCmd   string
		wantErr   string
	}{
		{"darwin pbcopy", "darwin", []string{"pbcopy"}, "pbcopy", ""},
		{"linux prefers wayland", "linux", []string{"xclip", "wl-copy"}, "wl-copy", ""},
		{"linux xsel fallback", "linux", []string{"xsel"}, "xsel", ""},
		{"linux none", "linux", nil, "", "install wl-copy, xclip, xsel"},
		{"plan9", "plan9", nil, "", "unsupported platform"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookPath := func(name string) (string, error) {
				for _, n := range tt.installed {
					if n == name {
						return "/usr/bin/" + name, nil
					}
				}
				return "", errors.New("not found")
			}
			cw := newClipboardWriter(tt.goos, lookPath)
			if tt.wantCmd == "" {
				if cw.IsAvailable() {
					t.Fatalf("IsAvailable() = true, want false")
				}
				if !strings.Contains(cw.Error(), tt.wantErr) {
					t.Errorf("Error() = %q, want it to contain %q", cw.Error(), tt.wantErr)
				}
				if err := cw.Write("x"); err == nil {
					t.Error("Write() on unavailable clipboard returned nil error")
				}
				return
			}
			if !cw.IsAvailable() {
				t.Fatalf("IsAvailable() = false: %s", cw.Error())
			}
			if cw.cmd.name != tt.wantCmd {
				t.Errorf("command = %q, want %q", cw.cmd.name, tt.wantCmd)
			}
		})
	}
}
