package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mask/internal/maskfile"
	"mask/internal/store"
)

func envWith(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func writeMaskFile(t *testing.T, ref string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), maskfile.DefaultName)
	if err := maskfile.Write(path, ref); err != nil {
		t.Fatalf("write mask file: %v", err)
	}
	return path
}

func missingMaskFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), maskfile.DefaultName)
}

func TestResolve_PrecedenceOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		explicit   string
		env        map[string]string
		fileRef    string
		wantRef    string
		wantSource string
		wantErr    error
	}{
		{
			name:       "explicit wins over everything",
			explicit:   "4.2.5",
			env:        map[string]string{EnvVersion: "4.0.0"},
			fileRef:    "3.4.7",
			wantRef:    "4.2.5",
			wantSource: "explicit flag",
		},
		{
			name:       "env wins over mask file",
			env:        map[string]string{EnvVersion: "4.0.0"},
			fileRef:    "3.4.7",
			wantRef:    "4.0.0",
			wantSource: EnvVersion + " environment",
		},
		{
			name:       "mask file is the last resort",
			env:        map[string]string{},
			fileRef:    "3.4.7",
			wantRef:    "3.4.7",
			wantSource: "mask file",
		},
		{
			name:     "empty env value is not a hit",
			env:      map[string]string{EnvVersion: ""},
			fileRef:  "3.4.7",
			wantRef:  "3.4.7",
			wantSource: "mask file",
		},
		{
			name:       "explicit alone",
			explicit:   "4.2.5",
			env:        map[string]string{},
			wantRef:    "4.2.5",
			wantSource: "explicit flag",
		},
		{
			name:    "nothing set fails unresolved",
			env:     map[string]string{},
			wantErr: ErrUnresolved,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var path string
			if tc.fileRef != "" {
				path = writeMaskFile(t, tc.fileRef)
			} else {
				path = missingMaskFile(t)
			}

			ctx := Context{
				Explicit:     tc.explicit,
				MaskfilePath: path,
				LookupEnv:    envWith(tc.env),
			}

			resolved, err := ctx.Resolve()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if resolved.Version != tc.wantRef {
				t.Fatalf("expected version %s, got %s", tc.wantRef, resolved.Version)
			}
			if !strings.HasPrefix(resolved.Source, tc.wantSource) {
				t.Fatalf("expected source %q, got %q", tc.wantSource, resolved.Source)
			}
		})
	}
}

func TestResolve_ExplicitIsNotValidatedEagerly(t *testing.T) {
	t.Parallel()

	ctx := Context{
		Explicit:     "9.9.9",
		MaskfilePath: missingMaskFile(t),
		LookupEnv:    envWith(nil),
	}

	resolved, err := ctx.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Version != "9.9.9" {
		t.Fatalf("expected explicit reference returned unchecked, got %s", resolved.Version)
	}
}

func TestResolve_EmptyMaskFileIsNotAHit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), maskfile.DefaultName)
	if err := os.WriteFile(path, []byte("\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx := Context{MaskfilePath: path, LookupEnv: envWith(nil)}
	if _, err := ctx.Resolve(); !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved for empty mask file, got %v", err)
	}
}

func TestResolve_UnreadableMaskFileIsIOError(t *testing.T) {
	t.Parallel()

	// A directory where the mask file should be forces a read failure
	// that is not absence.
	dir := t.TempDir()
	path := filepath.Join(dir, maskfile.DefaultName)
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	ctx := Context{MaskfilePath: path, LookupEnv: envWith(nil)}
	_, err := ctx.Resolve()

	var ioErr *maskfile.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected maskfile.IOError, got %v", err)
	}
}

func TestInspect_ReportsMechanismsIndependently(t *testing.T) {
	t.Parallel()

	storeRoot := t.TempDir()
	st := store.Store{Root: storeRoot}
	if err := os.MkdirAll(filepath.Join(storeRoot, "4.0.0"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	ctx := Context{
		Explicit:     "4.2.5",
		MaskfilePath: writeMaskFile(t, "3.4.7"),
		LookupEnv:    envWith(map[string]string{EnvVersion: "4.0.0"}),
	}

	reports, err := ctx.Inspect(st)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}

	// No precedence: every mechanism reports its own value.
	if !reports[0].Set || reports[0].Value != "4.2.5" || reports[0].Installed {
		t.Fatalf("unexpected explicit report: %+v", reports[0])
	}
	if !reports[1].Set || reports[1].Value != "4.0.0" || !reports[1].Installed {
		t.Fatalf("unexpected env report: %+v", reports[1])
	}
	if !reports[2].Set || reports[2].Value != "3.4.7" || reports[2].Installed {
		t.Fatalf("unexpected mask file report: %+v", reports[2])
	}
}

func TestInspect_MissingMechanismsAreNotErrors(t *testing.T) {
	t.Parallel()

	st := store.Store{Root: t.TempDir()}
	ctx := Context{MaskfilePath: missingMaskFile(t), LookupEnv: envWith(nil)}

	reports, err := ctx.Inspect(st)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	for _, report := range reports {
		if report.Set {
			t.Fatalf("expected no mechanism set, got %+v", report)
		}
	}
}
