package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up from the working directory upwards.
const FileName = "nbayes.toml"

// Config is the on-disk run configuration. Every field has a usable default.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Model  ModelConfig  `toml:"model"`
	Split  SplitConfig  `toml:"split"`
	Report ReportConfig `toml:"report"`
}

type DataConfig struct {
	Train   string   `toml:"train"`
	Test    string   `toml:"test"`
	Impute  bool     `toml:"impute"`
	Missing []string `toml:"missing"`
}

type ModelConfig struct {
	Smoothing        string `toml:"smoothing"`
	Workers          int    `toml:"workers"`
	ExtendVocabulary bool   `toml:"extend_vocabulary"`
}

type SplitConfig struct {
	Ratio float64 `toml:"ratio"`
	Seed  int64   `toml:"seed"`
}

type ReportConfig struct {
	Output    string `toml:"output"`
	Plot      string `toml:"plot"`
	Instances bool   `toml:"instances"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Data:   DataConfig{Missing: []string{"", "?", "NA", "NaN"}},
		Model:  ModelConfig{Smoothing: "laplace"},
		Split:  SplitConfig{Ratio: 0.3, Seed: 1},
		Report: ReportConfig{Instances: true},
	}
}

// Find walks from startDir to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over Default and validates the result. Relative data paths
// are resolved against the directory holding the file.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("data", "missing") && len(cfg.Data.Missing) == 0 {
		return Config{}, fmt.Errorf("%s: [data].missing must not be empty", path)
	}
	root := filepath.Dir(path)
	cfg.Data.Train = resolve(root, cfg.Data.Train)
	cfg.Data.Test = resolve(root, cfg.Data.Test)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path if set, otherwise searches upward from the working
// directory and falls back to Default.
func LoadOrDefault(path string) (Config, error) {
	if path != "" {
		return Load(path)
	}
	found, ok, err := Find(".")
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(found)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Model.Smoothing)) {
	case "", "laplace", "add-one", "mle", "none":
	default:
		return fmt.Errorf("[model].smoothing: unknown policy %q", c.Model.Smoothing)
	}
	if c.Split.Ratio <= 0 || c.Split.Ratio >= 1 {
		return fmt.Errorf("[split].ratio must be in (0, 1), got %v", c.Split.Ratio)
	}
	return nil
}

func resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, filepath.FromSlash(p))
}
