package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	loaded, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Output != OutputNormal {
		t.Fatalf("expected normal output by default, got %s", loaded.Output)
	}
}

func TestLoad_ReadsOutputLevel(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("output: quiet\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Output != OutputQuiet {
		t.Fatalf("expected quiet, got %s", loaded.Output)
	}
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, FileName), []byte("output: [\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(root); err == nil {
		t.Fatalf("expected error for malformed settings")
	}
}

func TestParseOutputLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want OutputLevel
	}{
		{"", OutputNormal},
		{"normal", OutputNormal},
		{"quiet", OutputQuiet},
		{"Verbose", OutputVerbose},
		{"  quiet  ", OutputQuiet},
	}

	for _, tc := range cases {
		got, err := ParseOutputLevel(tc.raw)
		if err != nil {
			t.Fatalf("ParseOutputLevel(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseOutputLevel(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}

	if _, err := ParseOutputLevel("loud"); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}
