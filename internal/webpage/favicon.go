package webpage

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aleister1102/unfurler/internal/errorwrapper"
)

// Converter turns a downloaded .ico file into a displayable PNG by
// invoking an external tool. The tool reads the icon path on stdin and
// prints the converted file path on stdout.
type Converter struct {
	command string
	logger  zerolog.Logger
}

// NewConverter creates a favicon converter using the given command
func NewConverter(command string, logger zerolog.Logger) *Converter {
	return &Converter{
		command: command,
		logger:  logger.With().Str("module", "FaviconConverter").Logger(),
	}
}

// ConvertToPNG converts the icon at icoPath and returns the PNG path.
// Any failure means "no thumbnail available", never a pipeline failure.
func (c *Converter) ConvertToPNG(ctx context.Context, icoPath string) (string, error) {
	cmd := exec.CommandContext(ctx, c.command)
	cmd.Stdin = bytes.NewReader([]byte(icoPath))

	output, err := cmd.Output()
	if err != nil {
		c.logger.Debug().Err(err).Str("command", c.command).Msg("Favicon conversion failed")
		return "", errorwrapper.WrapError(err, "favicon conversion failed")
	}

	pngPath := strings.TrimSpace(string(output))
	if pngPath == "" {
		return "", errorwrapper.NewError("favicon converter produced no output path")
	}

	return pngPath, nil
}
