package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupInputDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"day01.txt":         "1abc2\n",
		"day5.txt":          "seeds: 1 2\n",
		"2023/day07.txt":    "32T3K 765\n",
		"notes.md":          "not an input",
		"day08.txt.bak":     "stale",
		".hidden/day03.txt": "467..114..\n",
		".gitignore":        "*.txt\n",
	}
	for path, content := range files {
		fullPath := filepath.Join(dir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", filepath.Dir(fullPath), err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", fullPath, err)
		}
	}
	return dir
}

func TestDayOf(t *testing.T) {
	tt := []struct {
		path string
		want int
		ok   bool
	}{
		{"day05.txt", 5, true},
		{"day5.txt", 5, true},
		{"2023/day12.txt", 12, true},
		{"inputs/2023-day-3.txt", 3, true},
		{"notes.md", 0, false},
	}
	for _, tc := range tt {
		got, ok := DayOf(tc.path)
		if got != tc.want || ok != tc.ok {
			t.Errorf("DayOf(%q) = %d, %v; want %d, %v", tc.path, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFind(t *testing.T) {
	dir := setupInputDir(t)
	l := NewLocator(dir, "**/day*.txt")

	tt := []struct {
		day  int
		want string
	}{
		{1, "day01.txt"},
		{5, "day5.txt"},
		{7, "2023/day07.txt"},
		{3, ".hidden/day03.txt"},
	}
	for _, tc := range tt {
		got, err := l.Find(tc.day)
		if err != nil {
			t.Errorf("Find(%d) unexpected error: %v", tc.day, err)
			continue
		}
		if got != filepath.Join(dir, filepath.FromSlash(tc.want)) {
			t.Errorf("Find(%d) = %s, want %s", tc.day, got, tc.want)
		}
	}

	if _, err := l.Find(8); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(8) expected ErrNotFound, got %v", err)
	}
}

func TestFindRestrictedGlob(t *testing.T) {
	dir := setupInputDir(t)
	l := NewLocator(dir, "day*.txt")
	if _, err := l.Find(7); !errors.Is(err, ErrNotFound) {
		t.Errorf("nested input should not match a flat glob, got %v", err)
	}
}

func TestFindMissingDir(t *testing.T) {
	l := NewLocator(filepath.Join(t.TempDir(), "missing"), "**/day*.txt")
	if _, err := l.Find(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDiscover(t *testing.T) {
	dir := setupInputDir(t)
	files, err := NewLocator(dir, "**/day*.txt").Discover()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []File{
		{Day: 1, Path: filepath.Join(dir, "day01.txt")},
		{Day: 3, Path: filepath.Join(dir, ".hidden", "day03.txt")},
		{Day: 5, Path: filepath.Join(dir, "day5.txt")},
		{Day: 7, Path: filepath.Join(dir, "2023", "day07.txt")},
	}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d: %+v", len(want), len(files), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("file %d: expected %+v, got %+v", i, want[i], files[i])
		}
	}
}

func TestDiscoverErrors(t *testing.T) {
	if _, err := NewLocator(filepath.Join(t.TempDir(), "missing"), "*.txt").Discover(); err == nil {
		t.Error("expected error for a missing input dir")
	}
	if _, err := NewLocator(t.TempDir(), "[").Discover(); err == nil {
		t.Error("expected error for a bad glob")
	}
}

func TestReaders(t *testing.T) {
	dir := setupInputDir(t)
	r := OSFileReader{}
	path := filepath.Join(dir, "day01.txt")
	if !r.PathExists(path) {
		t.Error("PathExists should be true for an existing file")
	}
	if r.PathExists(dir) {
		t.Error("PathExists should be false for a directory")
	}
	data, err := r.ReadFile(path)
	if err != nil || string(data) != "1abc2\n" {
		t.Errorf("ReadFile = %q, %v", data, err)
	}
	if _, err := r.ReadFile(filepath.Join(dir, "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}

	got, err := ReadAll(strings.NewReader("seeds: 79 14\n"))
	if err != nil || got != "seeds: 79 14\n" {
		t.Errorf("ReadAll = %q, %v", got, err)
	}
}
