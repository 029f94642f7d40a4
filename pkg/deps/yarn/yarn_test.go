package yarn

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/matzehuels/pubdate/pkg/errors"
)

// fakeYarn writes an executable shell script named yarn into a temp dir.
func fakeYarn(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "yarn")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandList(t *testing.T) {
	bin := fakeYarn(t, `[ "$1 $2 $3" = "list --silent --depth=0" ] || exit 9
printf '├─ @babel/core@7.24.0\n└─ lodash@4.17.21\n'
`)

	lines, err := NewCommand(bin, "").List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	want := []string{"├─ @babel/core@7.24.0", "└─ lodash@4.17.21", ""}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestCommandList_RunsInDir(t *testing.T) {
	bin := fakeYarn(t, `pwd`)
	dir := t.TempDir()

	lines, err := NewCommand(bin, dir).List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}

	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(lines[0])
	if got != want {
		t.Errorf("ran in %q, want %q", got, want)
	}
}

func TestCommandList_NonZeroExit(t *testing.T) {
	bin := fakeYarn(t, "echo 'error Couldn'\\''t find a package.json file' >&2\nexit 1\n")

	_, err := NewCommand(bin, "").List(context.Background())
	if err == nil {
		t.Fatal("List() should fail on non-zero exit")
	}
	if !errors.Is(err, errors.ErrCodeSubprocess) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeSubprocess)
	}
	if !strings.Contains(err.Error(), "package.json") {
		t.Errorf("error should include stderr, got %v", err)
	}
}

func TestCommandList_MissingBinary(t *testing.T) {
	_, err := NewCommand(filepath.Join(t.TempDir(), "no-such-yarn"), "").List(context.Background())
	if !errors.Is(err, errors.ErrCodeSubprocess) {
		t.Errorf("List() error = %v, want %v", err, errors.ErrCodeSubprocess)
	}
}

func TestCommandString(t *testing.T) {
	if got := (&Command{}).String(); got != "yarn list --silent --depth=0" {
		t.Errorf("String() = %q", got)
	}
}

func TestStatic(t *testing.T) {
	fixture := Static{"", "foo@1.0.0", "@bar/baz@2.0.0"}
	lines, err := fixture.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	lines[1] = "mutated"
	if fixture[1] != "foo@1.0.0" {
		t.Error("List() must return a copy")
	}
}

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.txt")
	if err := os.WriteFile(path, []byte("├─ foo@1.0.0\r\n└─ bar@2.0.0\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := File(path).List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if lines[0] != "├─ foo@1.0.0" || lines[1] != "└─ bar@2.0.0" {
		t.Errorf("lines = %q", lines)
	}
}

func TestFile_Missing(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "missing.txt")).List(context.Background())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("List() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b", ""}},
	}
	for _, tt := range tests {
		got := SplitLines(tt.in)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
