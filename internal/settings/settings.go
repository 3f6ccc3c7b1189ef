// Package settings loads ambient preferences from an optional YAML file
// under the store root. Command-line flags override anything read here.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the optional settings file under the store root.
const FileName = "mask.yaml"

// OutputLevel controls how much informational chatter commands print.
// Diagnostics on stderr are unaffected.
type OutputLevel int

const (
	OutputQuiet OutputLevel = iota
	OutputNormal
	OutputVerbose
)

func (l OutputLevel) String() string {
	switch l {
	case OutputQuiet:
		return "quiet"
	case OutputVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// ParseOutputLevel maps quiet/normal/verbose to an OutputLevel. The empty
// string is the default level.
func ParseOutputLevel(raw string) (OutputLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "normal":
		return OutputNormal, nil
	case "quiet":
		return OutputQuiet, nil
	case "verbose":
		return OutputVerbose, nil
	default:
		return OutputNormal, fmt.Errorf("invalid output level %q", raw)
	}
}

// Settings are the ambient preferences.
type Settings struct {
	Output OutputLevel
}

type fileSettings struct {
	Output string `yaml:"output"`
}

// Load reads the settings file under root. A missing file yields
// defaults; a malformed one is an error.
func Load(root string) (Settings, error) {
	path := filepath.Join(root, FileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Settings{Output: OutputNormal}, nil
		}
		return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
	}

	var fs fileSettings
	if err := yaml.Unmarshal(raw, &fs); err != nil {
		return Settings{}, fmt.Errorf("decode settings %s: %w", path, err)
	}

	output, err := ParseOutputLevel(fs.Output)
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}

	return Settings{Output: output}, nil
}
