package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

// DefaultBufferName is the paste buffer passwords are mirrored into.
const DefaultBufferName = "passgen"

// runner executes the tmux binary. Swapped out in tests.
var runner = func(args ...string) ([]byte, error) {
	return exec.Command("tmux", args...).CombinedOutput()
}

// Buffer writes text into a named tmux paste buffer.
type Buffer struct {
	socketPath string
	name       string
}

// NewBuffer returns a Buffer bound to the tmux server at socketPath. An empty
// name selects DefaultBufferName.
func NewBuffer(socketPath, name string) *Buffer {
	if strings.TrimSpace(name) == "" {
		name = DefaultBufferName
	}
	return &Buffer{socketPath: socketPath, name: name}
}

// Name returns the paste buffer name.
func (b *Buffer) Name() string {
	return b.name
}

// Set replaces the buffer contents with text.
func (b *Buffer) Set(text string) error {
	args := append(baseArgs(b.socketPath), "set-buffer", "-b", b.name, "--", text)
	if out, err := runner(args...); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("tmux set-buffer: %w: %s", err, msg)
		}
		return fmt.Errorf("tmux set-buffer: %w", err)
	}
	return nil
}

// ResolveSocketPath picks the tmux server socket: explicit value first, then
// the popup override, then the socket of the enclosing session, then the
// default per-user socket.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("PASSGEN_POPUP_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func baseArgs(socketPath string) []string {
	if strings.TrimSpace(socketPath) == "" {
		return []string{}
	}
	return []string{"-S", socketPath}
}
