package main

import (
	"io"
	"os"
)

// puzzleStdin returns os.Stdin when a puzzle input is piped in, or nil when
// stdin is a terminal so the input directory is used instead.
func puzzleStdin() io.Reader {
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return nil
	}
	return os.Stdin
}
