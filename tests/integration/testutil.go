// Package integration provides shared helpers for CLI integration tests.
package integration

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	daybookBin string
	buildErr   error
)

// SetDaybookBin records the binary path built by TestMain.
func SetDaybookBin(path string) { daybookBin = path }

// SetBuildErr records a build failure so tests can report it.
func SetBuildErr(err error) { buildErr = err }

// BuildError wraps a compile failure with its output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed: %v\n%s", e.Err, e.Output)
}

// FindProjectRoot walks up from the working directory to the module root.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// Result holds the output of one CLI invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TestEnv is an isolated config and data directory pair for one test.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates an isolated environment under t.TempDir().
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatal(buildErr)
	}
	root := t.TempDir()
	return &TestEnv{
		t:         t,
		ConfigDir: filepath.Join(root, "config"),
		DataDir:   filepath.Join(root, "data"),
	}
}

// RunDaybook invokes the binary with the environment's directories.
func (e *TestEnv) RunDaybook(args ...string) Result {
	e.t.Helper()
	full := append([]string{
		"--config-dir", e.ConfigDir,
		"--data-dir", e.DataDir,
	}, args...)

	cmd := exec.Command(daybookBin, full...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("run daybook %v: %v", args, err)
	}
	return Result{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// MustRunDaybook invokes the binary and fails the test on a nonzero exit.
func (e *TestEnv) MustRunDaybook(args ...string) Result {
	e.t.Helper()
	res := e.RunDaybook(args...)
	if res.ExitCode != 0 {
		e.t.Fatalf("daybook %v exited %d\nstdout: %s\nstderr: %s",
			args, res.ExitCode, res.Stdout, res.Stderr)
	}
	return res
}

// ParseJSON decodes CLI JSON output into T.
func ParseJSON[T any](t *testing.T, raw string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("parse JSON output: %v\n%s", err, raw)
	}
	return v
}
