package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/boyter/gocodewalker"
)

var ErrNotFound = errors.New("input not found")

var dayDigits = regexp.MustCompile(`\d+`)

// DayOf extracts the day number from a file name such as day05.txt or
// 2023/day5.txt. Only the base name is considered.
func DayOf(path string) (int, bool) {
	base := filepath.Base(path)
	m := dayDigits.FindAllString(base, -1)
	if len(m) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(m[len(m)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// File is an input file found under the input directory.
type File struct {
	Day  int
	Path string
}

// Locator finds puzzle inputs under Dir matching the doublestar pattern Glob.
type Locator struct {
	Dir  string
	Glob string
}

func NewLocator(dir, glob string) *Locator {
	return &Locator{Dir: dir, Glob: glob}
}

// Find returns the path of the input for day.
func (l *Locator) Find(day int) (string, error) {
	if _, err := os.Stat(l.Dir); err != nil {
		return "", fmt.Errorf("%w: day %d: input dir %s: %v", ErrNotFound, day, l.Dir, err)
	}
	matches, err := doublestar.Glob(os.DirFS(l.Dir), l.Glob, doublestar.WithFilesOnly())
	if err != nil {
		return "", fmt.Errorf("bad input glob %q: %w", l.Glob, err)
	}
	slices.Sort(matches)
	for _, match := range matches {
		if n, ok := DayOf(match); ok && n == day {
			return filepath.Join(l.Dir, filepath.FromSlash(match)), nil
		}
	}
	return "", fmt.Errorf("%w: day %d under %s matching %s", ErrNotFound, day, l.Dir, l.Glob)
}

// Discover walks Dir and returns every file matching Glob that names a day,
// sorted by day then path. Inputs are usually gitignored, so ignore files
// are not honoured.
func (l *Locator) Discover() ([]File, error) {
	if stat, err := os.Stat(l.Dir); err != nil || !stat.IsDir() {
		return nil, fmt.Errorf("input dir is not a directory: %s", l.Dir)
	}
	if !doublestar.ValidatePattern(l.Glob) {
		return nil, fmt.Errorf("bad input glob %q", l.Glob)
	}

	fileListQueue := make(chan *gocodewalker.File, 100)

	walker := gocodewalker.NewFileWalker(l.Dir, fileListQueue)
	walker.IncludeHidden = true
	walker.IgnoreGitIgnore = true
	walker.IgnoreIgnoreFile = true
	walker.ExcludeDirectory = []string{".git"}

	errChan := make(chan error, 1)

	go func() {
		errChan <- walker.Start()
		close(errChan)
	}()

	var files []File
	for f := range fileListQueue {
		rel, err := filepath.Rel(l.Dir, f.Location)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if ok, _ := doublestar.Match(l.Glob, rel); !ok {
			continue
		}
		day, ok := DayOf(rel)
		if !ok {
			continue
		}
		files = append(files, File{Day: day, Path: f.Location})
	}

	if err := <-errChan; err != nil {
		return nil, fmt.Errorf("error walking %s: %w", l.Dir, err)
	}

	slices.SortFunc(files, func(a, b File) int {
		if a.Day != b.Day {
			return a.Day - b.Day
		}
		return strings.Compare(a.Path, b.Path)
	})
	return files, nil
}
