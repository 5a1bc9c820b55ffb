package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// StdinPath names standard input wherever a path is accepted.
const StdinPath = "-"

// DefaultMaxInputSize caps how much of one input is read. Diffing cost grows
// with the product of both inputs' token counts.
const DefaultMaxInputSize int64 = 4 << 20

// InputReader reads reference and candidate outputs from files or stdin
type InputReader struct {
	logger  zerolog.Logger
	stdin   io.Reader
	maxSize int64
}

// NewInputReader creates a new InputReader instance
func NewInputReader(logger zerolog.Logger, stdin io.Reader, maxSize int64) *InputReader {
	if maxSize <= 0 {
		maxSize = DefaultMaxInputSize
	}
	return &InputReader{
		logger:  logger.With().Str("component", "InputReader").Logger(),
		stdin:   stdin,
		maxSize: maxSize,
	}
}

// Read returns the content at path. Inputs larger than the size cap are rejected
// rather than truncated.
func (ir *InputReader) Read(path string) (string, error) {
	if path == StdinPath {
		return ir.readLimited(ir.stdin, "stdin")
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", WrapErrorf(ErrNotFound, "input %s", path)
	}
	if err != nil {
		return "", WrapError(err, fmt.Sprintf("failed to stat input: %s", path))
	}
	if info.IsDir() {
		return "", NewValidationError("path", path, "is a directory")
	}
	if info.Size() > ir.maxSize {
		return "", NewValidationError("path", path, fmt.Sprintf("exceeds %d bytes", ir.maxSize))
	}

	file, err := os.Open(path)
	if err != nil {
		return "", WrapError(err, fmt.Sprintf("failed to open input: %s", path))
	}
	defer func() {
		if err := file.Close(); err != nil {
			ir.logger.Error().Err(err).Str("path", path).Msg("Failed to close input.")
		}
	}()

	return ir.readLimited(file, path)
}

// CandidateName derives a display name from an input path.
func CandidateName(path string) string {
	if path == StdinPath {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (ir *InputReader) readLimited(r io.Reader, source string) (string, error) {
	if r == nil {
		return "", NewValidationError("source", source, "no reader available")
	}
	content, err := io.ReadAll(io.LimitReader(r, ir.maxSize+1))
	if err != nil {
		return "", WrapError(err, fmt.Sprintf("failed to read input: %s", source))
	}
	if int64(len(content)) > ir.maxSize {
		return "", NewValidationError("source", source, fmt.Sprintf("exceeds %d bytes", ir.maxSize))
	}
	ir.logger.Debug().Str("source", source).Int("bytes", len(content)).Msg("Input read")
	return string(content), nil
}
