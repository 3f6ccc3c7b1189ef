package app

import (
	"context"
	"fmt"

	"mask/internal/dispatch"
	"mask/internal/maskfile"
	"mask/internal/resolver"
	"mask/internal/store"
)

// Service composes the store, resolver, mask file and dispatcher for the
// command surface. The system is stateless between runs; every call reads
// the filesystem fresh.
type Service struct {
	Store    store.Store
	Dispatch dispatch.Dispatcher
}

func NewService() (*Service, error) {
	st, err := store.Default()
	if err != nil {
		return nil, err
	}
	return &Service{
		Store:    st,
		Dispatch: dispatch.Dispatcher{Store: st},
	}, nil
}

// Switch records version in the mask file after confirming the version
// directory exists. A failed switch leaves any existing mask file
// untouched.
func (s *Service) Switch(version string, maskfilePath string) error {
	if maskfilePath == "" {
		maskfilePath = maskfile.DefaultName
	}
	if !s.Store.Exists(version) {
		return fmt.Errorf("haxe version %s: %w", version, store.ErrNotInstalled)
	}
	return maskfile.Write(maskfilePath, version)
}

// Current resolves the version this invocation would use.
func (s *Service) Current(rctx resolver.Context) (resolver.Resolved, error) {
	return rctx.Resolve()
}

// Check reports every resolution mechanism independently.
func (s *Service) Check(rctx resolver.Context) ([]resolver.Report, error) {
	return rctx.Inspect(s.Store)
}

// List enumerates installed versions, newest first.
func (s *Service) List() ([]string, error) {
	return s.Store.List()
}

// Exec resolves a version and runs the target binary with args forwarded
// verbatim, returning the child's exit code.
func (s *Service) Exec(ctx context.Context, rctx resolver.Context, target dispatch.Target, args []string) (int, error) {
	resolved, err := rctx.Resolve()
	if err != nil {
		return 0, err
	}
	return s.Dispatch.Run(ctx, resolved.Version, target, args)
}
