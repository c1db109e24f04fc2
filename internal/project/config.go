package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"cxxdoc/internal/source"
)

// Config is the content of cxxdoc.toml.
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Run      RunConfig      `toml:"run"`
	Cache    CacheConfig    `toml:"cache"`
}

type AnalysisConfig struct {
	HeaderSuffixes   []string `toml:"header_suffixes"`
	IncludeProtected bool     `toml:"include_protected"`
	Encoding         string   `toml:"encoding"`
	Exclude          []string `toml:"exclude"`
}

type RunConfig struct {
	Jobs           int `toml:"jobs"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// DefaultHeaderSuffixes are the file suffixes treated as headers.
var DefaultHeaderSuffixes = []string{".h", ".hh", ".hpp", ".H"}

// Default returns the configuration used without a manifest.
func Default() Config {
	return Config{
		Analysis: AnalysisConfig{
			HeaderSuffixes:   append([]string(nil), DefaultHeaderSuffixes...),
			IncludeProtected: true,
			Encoding:         "utf-8",
		},
		Run: RunConfig{
			MaxDiagnostics: 100,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
	}
}

// Manifest is a loaded configuration and where it came from.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// LoadConfig decodes path over the defaults. Keys missing from the file keep
// their default values; unknown keys are errors.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("analysis", "header_suffixes") && len(cfg.Analysis.HeaderSuffixes) == 0 {
		return Config{}, fmt.Errorf("%s: [analysis].header_suffixes must not be empty", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	for _, s := range c.Analysis.HeaderSuffixes {
		if !strings.HasPrefix(s, ".") || len(s) < 2 {
			return fmt.Errorf("[analysis].header_suffixes: %q must start with '.'", s)
		}
	}
	if _, _, err := source.DecodeToUTF8(nil, c.Analysis.Encoding); err != nil {
		return fmt.Errorf("[analysis].encoding: %w", err)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("[run].jobs must be >= 0, got %d", c.Run.Jobs)
	}
	if c.Run.MaxDiagnostics < 0 {
		return fmt.Errorf("[run].max_diagnostics must be >= 0, got %d", c.Run.MaxDiagnostics)
	}
	return nil
}

// LoadManifest finds cxxdoc.toml above startDir and loads it. ok is false
// when no manifest exists; the returned manifest then carries the defaults.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return &Manifest{Config: Default()}, false, nil
	}
	return LoadManifestFile(path)
}

// LoadManifestFile loads an explicit manifest path.
func LoadManifestFile(path string) (*Manifest, bool, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}
