package scratch

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Dir is a short-lived directory holding binaries downloaded during one
// message-processing pass. It is never shared across passes and must be
// released on every exit path.
type Dir struct {
	path   string
	logger zerolog.Logger
}

// New creates a fresh scratch directory
func New(logger zerolog.Logger) (*Dir, error) {
	path, err := os.MkdirTemp("", "unfurler-*")
	if err != nil {
		return nil, err
	}

	return &Dir{
		path:   path,
		logger: logger.With().Str("module", "Scratch").Logger(),
	}, nil
}

// Path returns the scratch directory path
func (d *Dir) Path() string {
	return d.path
}

// FilePath returns the path for a named file inside the scratch directory
func (d *Dir) FilePath(name string) string {
	return filepath.Join(d.path, name)
}

// Cleanup removes the scratch directory and everything in it. Safe to call
// from a defer; removal failure is logged, not returned.
func (d *Dir) Cleanup() {
	if err := os.RemoveAll(d.path); err != nil {
		d.logger.Warn().Err(err).Str("path", d.path).Msg("Failed to remove scratch directory")
		return
	}
	d.logger.Debug().Str("path", d.path).Msg("Scratch directory removed")
}
