package cli

import (
	"errors"
	"fmt"

	"mask/internal/dispatch"
	"mask/internal/maskfile"
	"mask/internal/resolver"
	"mask/internal/store"
)

// Exit codes. Each error class in the taxonomy gets a distinct code; a
// child process's own nonzero exit code is forwarded verbatim instead.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitUnresolved    = 2
	ExitNotInstalled  = 3
	ExitConfigIO      = 4
	ExitSpawnFailure  = 5
	ExitChildSignaled = 6
	ExitUsage         = 22
)

// childExitError carries a child's own exit code through the command tree
// unchanged. The child already reported its failure on its own streams.
type childExitError struct {
	code int
}

func (e *childExitError) Error() string {
	return fmt.Sprintf("child exited with code %d", e.code)
}

type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// ChildExit reports whether err only forwards a child's exit code, in
// which case no additional diagnostic should be printed.
func ChildExit(err error) bool {
	var child *childExitError
	return errors.As(err, &child)
}

// ExitCode maps an error from the command tree to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var child *childExitError
	if errors.As(err, &child) {
		return child.code
	}

	var usage *usageError
	if errors.As(err, &usage) {
		return ExitUsage
	}

	var maskIO *maskfile.IOError
	if errors.As(err, &maskIO) {
		return ExitConfigIO
	}

	var signaled *dispatch.SignaledError
	if errors.As(err, &signaled) {
		return ExitChildSignaled
	}

	switch {
	case errors.Is(err, resolver.ErrUnresolved):
		return ExitUnresolved
	case errors.Is(err, store.ErrNotInstalled):
		return ExitNotInstalled
	case errors.Is(err, dispatch.ErrSpawn):
		return ExitSpawnFailure
	}

	return ExitFailure
}
