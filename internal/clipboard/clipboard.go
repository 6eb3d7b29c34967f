// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// command picks the platform clipboard-write tool, trying the common Linux
// tools in order.
func command() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("pbcopy"), nil
	case "windows":
		return exec.Command("cmd", "/c", "clip"), nil
	default:
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
		return nil, errors.New("no clipboard tool found (install xclip or xsel)")
	}
}

// Write copies text to the system clipboard.
func Write(text string) error {
	cmd, err := command()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
