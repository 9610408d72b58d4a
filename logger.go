package main

import (
	"fmt"
	"io"
	"os"
	"path"

	c "git.cmcode.dev/cmcode/finance-calendar-tui/constants"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setupLogger creates the application logger. The terminal UI owns the
// screen, so unless toStderr is set the logs are appended to a file in the
// xdg state directory. The returned closer must be called on exit.
func setupLogger(level string, toStderr bool) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: !toStderr,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	log.SetLevel(lvl)

	if toStderr {
		log.SetOutput(os.Stderr)

		return log, nopCloser{}, nil
	}

	p, err := xdg.StateFile(path.Join(c.DefaultConfigParentDir, c.DefaultLogFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve log file path: %w", err)
	}

	//nolint:gosec
	file, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %v: %w", p, err)
	}

	log.SetOutput(file)

	return log, file, nil
}
