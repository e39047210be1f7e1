package input

import (
	"fmt"
	"io"
	"os"
)

type FileReader interface {
	ReadFile(path string) ([]byte, error)
	PathExists(path string) bool
}

// OSFileReader reads inputs from the local file system
type OSFileReader struct{}

func (OSFileReader) ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return data, nil
}

func (OSFileReader) PathExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}

// ReadAll reads a whole input from r, typically a piped stdin.
func ReadAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return string(data), nil
}
