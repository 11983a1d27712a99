package cliutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CheckOutputPath cleans an output file path and returns it in absolute form.
// It refuses symlinks and refuses to overwrite inputPath; inputPath may be
// empty or StdinPath when there is no input file.
func CheckOutputPath(outputPath, inputPath string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(outputPath))
	if err != nil {
		return "", fmt.Errorf("invalid output path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("refusing to write to symlink: %s", outputPath)
		}
	case os.IsNotExist(err):
	default:
		return "", fmt.Errorf("checking output path: %w", err)
	}

	if inputPath != "" && inputPath != StdinPath {
		absIn, err := filepath.Abs(inputPath)
		if err != nil {
			return "", fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absIn == abs {
			return "", fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}
	return abs, nil
}

// WriteOutput writes text to path, or to stdout when path is empty or "-".
// A trailing newline is added when text does not already end with one.
func WriteOutput(path, text string, stdout io.Writer) error {
	if len(text) == 0 || text[len(text)-1] != '\n' {
		text += "\n"
	}
	if path == "" || path == StdinPath {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil { //nolint:gosec // G306: converted documents are not secrets
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
