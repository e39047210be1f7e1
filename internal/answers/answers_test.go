package answers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/multimediallc/aoc2023/internal/puzzle"
)

func ptr(v int64) *int64 { return &v }

func TestParseAnswers(t *testing.T) {
	data := []byte(`
[day05]
part1 = 35
part2 = 46

[day8]
part1 = 2
`)
	got, err := ParseAnswers(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	if p := got[5].Part(2); p == nil || *p != 46 {
		t.Errorf("day 5 part 2 = %v, want 46", p)
	}
	if got[8].Part(2) != nil {
		t.Error("day 8 part 2 should be unknown")
	}

	for _, bad := range []string{`[seeds]` + "\npart1 = 1", `[day05]` + "\npart1 = \"x\"", `[day`} {
		if _, err := ParseAnswers([]byte(bad)); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestReadAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.toml")
	if err := os.WriteFile(path, []byte("[day01]\npart1 = 142\n"), 0644); err != nil {
		t.Fatalf("failed to write answers: %v", err)
	}
	got, err := ReadAnswers(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p := got[1].Part1; p == nil || *p != 142 {
		t.Errorf("day 1 part 1 = %v, want 142", p)
	}
	if _, err := ReadAnswers(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCompare(t *testing.T) {
	expected := Answers{
		5: {Part1: ptr(35), Part2: ptr(46)},
		6: {Part1: ptr(288)},
	}
	results := []puzzle.Result{
		{Day: 6, Part: 2, Answer: 71503},
		{Day: 5, Part: 2, Answer: 45},
		{Day: 5, Part: 1, Answer: 35},
		{Day: 6, Part: 1, Answer: 288},
	}
	r := Compare(expected, results)

	tt := []struct {
		day, part int
		status    Status
	}{
		{5, 1, StatusOK},
		{5, 2, StatusMismatch},
		{6, 1, StatusOK},
		{6, 2, StatusUnknown},
	}
	if len(r.Checks) != len(tt) {
		t.Fatalf("expected %d checks, got %d", len(tt), len(r.Checks))
	}
	for i, tc := range tt {
		c := r.Checks[i]
		if c.Day != tc.day || c.Part != tc.part || c.Status != tc.status {
			t.Errorf("check %d = day %d part %d %s, want day %d part %d %s", i, c.Day, c.Part, c.Status, tc.day, tc.part, tc.status)
		}
	}
	if r.OK() {
		t.Error("report with a mismatch should not be OK")
	}
	if got, want := r.Summary(), "2 ok, 1 mismatched, 1 unknown"; got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestReportDiff(t *testing.T) {
	clean := Compare(Answers{5: {Part1: ptr(35)}}, []puzzle.Result{{Day: 5, Part: 1, Answer: 35}})
	out, err := clean.Diff()
	if err != nil || out != nil {
		t.Errorf("Diff() on a clean report = %q, %v; want nil", out, err)
	}

	r := Compare(Answers{5: {Part1: ptr(35), Part2: ptr(46)}}, []puzzle.Result{
		{Day: 5, Part: 1, Answer: 35},
		{Day: 5, Part: 2, Answer: 45},
	})
	out, err = r.Diff()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	for _, want := range []string{
		"--- expected\n",
		"+++ actual\n",
		"@@ -1,2 +1,2 @@",
		" day05 part 1: 35\n",
		"-day05 part 2: 46\n",
		"+day05 part 2: 45\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("diff missing %q:\n%s", want, got)
		}
	}
}
