// Package dispatch re-executes toolkit binaries out of a pinned version
// root. The child inherits the parent environment with the version root
// prepended to the search path, so build tools that launch haxe or
// haxelib transitively resolve the same pinned version instead of a
// globally installed one.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"mask/internal/store"
)

// Target selects which toolkit binary to dispatch to.
type Target string

const (
	// TargetCompiler is the Haxe compiler.
	TargetCompiler Target = "haxe"
	// TargetLib is the haxelib companion tool.
	TargetLib Target = "haxelib"
)

// ErrSpawn reports a version directory that lacks the target binary, or a
// binary that could not be started.
var ErrSpawn = errors.New("cannot launch toolkit binary")

// SignaledError reports a child process terminated by a signal rather
// than a normal exit. State records the cause.
type SignaledError struct {
	Binary string
	State  string
}

func (e *SignaledError) Error() string {
	return fmt.Sprintf("%s terminated abnormally: %s", e.Binary, e.State)
}

// BinaryName returns the platform file name for the target.
func (t Target) BinaryName() string {
	name := string(t)
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return name
}

// Dispatcher launches toolkit binaries from a version store. Std streams
// default to the parent's when left nil; Environ defaults to os.Environ.
type Dispatcher struct {
	Store   store.Store
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Environ func() []string
}

// Run launches the target binary of version with args forwarded verbatim
// and blocks until the child exits, returning its exit code. The version
// must carry its standard library (ErrNotInstalled otherwise) and the
// binary must be present (ErrSpawn otherwise). Signals delivered during
// the wait are forwarded to the child; no timeout is imposed.
func (d Dispatcher) Run(ctx context.Context, version string, target Target, args []string) (int, error) {
	root, err := d.Store.RootOf(version)
	if err != nil {
		return 0, err
	}

	// A version directory without its standard library is not a usable
	// installation.
	stdDir := d.Store.StdDir(version)
	if info, statErr := os.Stat(stdDir); statErr != nil || !info.IsDir() {
		return 0, fmt.Errorf("haxe version %s has no standard library at %s: %w", version, stdDir, store.ErrNotInstalled)
	}

	binary := filepath.Join(root, target.BinaryName())
	if _, statErr := os.Stat(binary); statErr != nil {
		return 0, fmt.Errorf("%w: %s not found at %s", ErrSpawn, target.BinaryName(), binary)
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = envWithSearchPath(d.environ(), root)
	cmd.Stdin = d.stdin()
	cmd.Stdout = d.stdout()
	cmd.Stderr = d.stderr()

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("%w: start %s: %v", ErrSpawn, binary, err)
	}

	// Forward termination signals so an interrupt during a long compile
	// reaches the child instead of being swallowed here.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		for sig := range sigCh {
			_ = cmd.Process.Signal(sig)
		}
	}()

	waitErr := cmd.Wait()
	if waitErr == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 0, &SignaledError{Binary: binary, State: exitErr.ProcessState.String()}
	}

	return 0, fmt.Errorf("%w: wait for %s: %v", ErrSpawn, binary, waitErr)
}

// envWithSearchPath copies env with root prepended to the search-path
// variable, adding the variable when the parent has none.
func envWithSearchPath(env []string, root string) []string {
	const pathVar = "PATH"

	out := make([]string, 0, len(env)+1)
	replaced := false
	for _, kv := range env {
		key, value, ok := strings.Cut(kv, "=")
		// Windows spells the variable Path; compare case-insensitively.
		if !ok || !strings.EqualFold(key, pathVar) {
			out = append(out, kv)
			continue
		}
		out = append(out, key+"="+root+string(os.PathListSeparator)+value)
		replaced = true
	}
	if !replaced {
		out = append(out, pathVar+"="+root)
	}

	return out
}

func (d Dispatcher) environ() []string {
	if d.Environ != nil {
		return d.Environ()
	}
	return os.Environ()
}

func (d Dispatcher) stdin() io.Reader {
	if d.Stdin != nil {
		return d.Stdin
	}
	return os.Stdin
}

func (d Dispatcher) stdout() io.Writer {
	if d.Stdout != nil {
		return d.Stdout
	}
	return os.Stdout
}

func (d Dispatcher) stderr() io.Writer {
	if d.Stderr != nil {
		return d.Stderr
	}
	return os.Stderr
}
