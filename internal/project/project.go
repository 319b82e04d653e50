package project

import (
	"crypto/sha256"
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file that marks a project root.
const ManifestName = "citrine.toml"

// Digest is a sha256 content hash.
type Digest [32]byte

// HashBytes hashes raw content.
func HashBytes(b []byte) Digest {
	return sha256.Sum256(b)
}

// Config is the parsed project manifest. Zero value is a usable default
// for projects without a manifest.
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Output OutputConfig `toml:"output"`
}

type CheckConfig struct {
	// MaxDiagnostics caps reported diagnostics per file, 0 means unlimited.
	MaxDiagnostics int `toml:"max-diagnostics"`
	// Jobs limits parallel file processing, 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
	// Cache enables the on-disk result cache.
	Cache bool `toml:"cache"`
}

type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
}

// DefaultConfig returns the configuration used without a manifest.
func DefaultConfig() Config {
	return Config{
		Check:  CheckConfig{MaxDiagnostics: 100, Cache: true},
		Output: OutputConfig{Color: "auto"},
	}
}

// FindRoot walks up from dir looking for the manifest. Returns the
// directory containing it, or an empty string if none is found.
func FindRoot(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ManifestName)); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadConfig reads the manifest in root. A missing manifest yields the
// defaults without an error.
func LoadConfig(root string) (Config, error) {
	cfg := DefaultConfig()
	if root == "" {
		return cfg, nil
	}
	path := filepath.Join(root, ManifestName)
	// Unknown keys are tolerated so old binaries keep reading newer
	// manifests.
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return cfg, err
	}
	return cfg, nil
}
