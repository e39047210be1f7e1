package puzzle

import (
	"strconv"
	"strings"
)

// Lines splits input into lines. Carriage returns and trailing blank lines
// are dropped; blank lines in the middle are kept.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input on blank lines.
func Blocks(input string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range Lines(input) {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// Ints parses whitespace separated integers.
func Ints(s string) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, Malformedf("%q is not an integer", field)
		}
		out = append(out, n)
	}
	return out, nil
}

// Labeled splits "label: rest" and returns both halves trimmed.
func Labeled(line string) (string, string, error) {
	label, rest, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", Malformedf("missing ':' in %q", line)
	}
	return strings.TrimSpace(label), strings.TrimSpace(rest), nil
}
