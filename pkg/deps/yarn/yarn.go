// Package yarn obtains the dependency listing of a yarn (v1) project.
//
// [Command] runs `yarn list --silent --depth=0` and returns its standard
// output split into lines; [Static] and [File] serve a fixed listing instead,
// which is how tests and saved listings bypass the external process.
package yarn

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/matzehuels/pubdate/pkg/errors"
)

// DefaultBinary is the executable looked up on PATH when none is configured.
const DefaultBinary = "yarn"

// ListArgs silence yarn's banner and progress output and cap the tree at
// direct dependencies so each one is listed once.
var ListArgs = []string{"list", "--silent", "--depth=0"}

// Lister produces the raw lines of a dependency listing.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// Command lists dependencies by running yarn in a project directory.
type Command struct {
	Binary string // Executable name or path (default: "yarn")
	Dir    string // Project directory (default: current directory)
}

// NewCommand creates a Command for the project in dir.
func NewCommand(binary, dir string) *Command {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Command{Binary: binary, Dir: dir}
}

// List runs the listing command and returns stdout as lines. A missing
// executable or a non-zero exit status is returned as an
// errors.ErrCodeSubprocess error that includes yarn's stderr.
func (c *Command) List(ctx context.Context) ([]string, error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSubprocess, err, "%s not found", binary)
	}

	cmd := exec.CommandContext(ctx, path, ListArgs...)
	cmd.Dir = c.Dir

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := c.String()
		if stderr := strings.TrimSpace(errBuf.String()); stderr != "" {
			msg = fmt.Sprintf("%s: %s", msg, stderr)
		}
		return nil, errors.Wrap(errors.ErrCodeSubprocess, err, "%s", msg)
	}
	return SplitLines(out.String()), nil
}

// String returns the command line that List runs.
func (c *Command) String() string {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	return binary + " " + strings.Join(ListArgs, " ")
}

// Static is a Lister over a fixed listing.
type Static []string

// List returns a copy of the fixed lines.
func (s Static) List(context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}

// File is a Lister that reads a listing previously saved with
// `yarn list --silent --depth=0 > file`.
type File string

// List reads and splits the file.
func (f File) List(context.Context) ([]string, error) {
	data, err := os.ReadFile(string(f))
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "listing %s", string(f))
	}
	if err != nil {
		return nil, fmt.Errorf("reading listing %s: %w", string(f), err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits listing output on newlines, trimming a trailing carriage
// return from each line. Empty lines are kept; the parser discards them.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

var (
	_ Lister = (*Command)(nil)
	_ Lister = Static(nil)
	_ Lister = File("")
)
