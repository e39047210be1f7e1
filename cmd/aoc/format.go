package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/multimediallc/aoc2023/internal/app"
	"github.com/multimediallc/aoc2023/internal/puzzle"
)

type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatOneLine OutputFormat = "one-line"
	FormatJSON    OutputFormat = "json"
)

var allowedFormats = []string{string(FormatDefault), string(FormatOneLine), string(FormatJSON)}

func validateFormat(format string) (OutputFormat, error) {
	if !slices.Contains(allowedFormats, format) {
		return "", fmt.Errorf("invalid format %s. Must be one of %s", format, strings.Join(allowedFormats, ", "))
	}
	return OutputFormat(format), nil
}

// groupByDay splits results into runs of the same day, keeping their order.
func groupByDay(results []puzzle.Result) [][]puzzle.Result {
	var groups [][]puzzle.Result
	for _, r := range results {
		if n := len(groups); n > 0 && groups[n-1][0].Day == r.Day {
			groups[n-1] = append(groups[n-1], r)
			continue
		}
		groups = append(groups, []puzzle.Result{r})
	}
	return groups
}

func title(day int) string {
	d, err := puzzle.Lookup(day)
	if err != nil {
		return ""
	}
	return d.Title
}

func writeResults(w io.Writer, results []puzzle.Result, format OutputFormat, timing bool) error {
	switch format {
	case FormatJSON:
		if !timing {
			results = slices.Clone(results)
			for i := range results {
				results[i].Elapsed = 0
			}
		}
		if results == nil {
			results = []puzzle.Result{}
		}
		jsonString, err := json.Marshal(results)
		if err != nil {
			return fmt.Errorf("error encoding results: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonString))
		return err
	case FormatOneLine:
		for _, group := range groupByDay(results) {
			answers := make([]string, 0, len(group))
			for _, r := range group {
				answers = append(answers, fmt.Sprint(r.Answer))
			}
			if _, err := fmt.Fprintf(w, "day%02d %s\n", group[0].Day, strings.Join(answers, " ")); err != nil {
				return err
			}
		}
		return nil
	}

	first := true
	for _, group := range groupByDay(results) {
		if !first {
			_, _ = fmt.Fprintln(w)
		}
		first = false
		_, _ = fmt.Fprintf(w, "Day %d: %s\n", group[0].Day, title(group[0].Day))
		for _, r := range group {
			line := r.String()
			if !timing {
				line = fmt.Sprintf("Part %d: %d", r.Part, r.Answer)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeListings(w io.Writer, listings []app.Listing, format OutputFormat) error {
	if format == FormatJSON {
		jsonString, err := json.Marshal(listings)
		if err != nil {
			return fmt.Errorf("error encoding listings: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonString))
		return err
	}
	for _, l := range listings {
		in := l.Input
		if in == "" {
			in = "(no input)"
		}
		var err error
		if format == FormatOneLine {
			_, err = fmt.Fprintf(w, "day%02d %s\n", l.Day, in)
		} else {
			_, err = fmt.Fprintf(w, "Day %d: %s\n  %s\n", l.Day, l.Title, in)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
