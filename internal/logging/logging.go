// Package logging builds the game's structured logger.
//
// The TUI owns the terminal, so log output goes to a file under the XDG
// state directory instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Prefix tags every log line.
const Prefix = "frogger"

// Options controls where and how verbosely the game logs.
type Options struct {
	Level string // debug, info, warn, error; empty means info
	Path  string // log file; empty means the XDG state file
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
}

// ParseLevel parses a level name. An empty name means info.
func ParseLevel(name string) (log.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("logging: %w", err)
	}
	return lvl, nil
}

// Open creates the log file and returns a logger on it. The returned close
// function flushes and closes the file.
func Open(opts Options) (*log.Logger, func() error, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	path, err := Path(opts.Path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	return New(f, lvl), f.Close, nil
}

// Path resolves the log file location and creates its parent directory.
// Priority: custom path > XDG state file.
func Path(custom string) (string, error) {
	if custom != "" {
		if strings.HasPrefix(custom, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				custom = filepath.Join(home, custom[2:])
			}
		}
		if err := os.MkdirAll(filepath.Dir(custom), 0o755); err != nil {
			return "", fmt.Errorf("logging: cannot create directory for %s: %w", custom, err)
		}
		return custom, nil
	}

	path, err := xdg.StateFile("frogger/frogger.log")
	if err != nil {
		return "", fmt.Errorf("logging: cannot resolve state file: %w", err)
	}
	return path, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return New(io.Discard, log.FatalLevel)
}
