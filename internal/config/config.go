package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/standardbeagle/strsim/internal/debug"
	"github.com/standardbeagle/strsim/internal/normalize"
	"github.com/standardbeagle/strsim/pkg/strsim"
)

// Config file names looked up in a directory, in priority order
const (
	KDLFileName  = ".strsim.kdl"
	TOMLFileName = ".strsim.toml"
)

// Defaults shared by config parsing and the CLI
const (
	DefaultAlgorithm     = strsim.AlgorithmJaroWinkler
	DefaultThreshold     = 0.8
	DefaultMaxResults    = 10
	DefaultStemMinLength = normalize.DefaultStemMinLength
	DefaultPhoneticCache = 1024
)

type Config struct {
	Version   int       `toml:"version"`
	Matcher   Matcher   `toml:"matcher"`
	Normalize Normalize `toml:"normalize"`
	Cache     Cache     `toml:"cache"`

	// Source is the file the config was read from, empty for defaults
	Source string `toml:"-"`
}

type Matcher struct {
	Algorithm  string  `toml:"algorithm"`   // One of strsim.Algorithms()
	Threshold  float64 `toml:"threshold"`   // Minimum score for a match (0-1)
	Canonical  bool    `toml:"canonical"`   // Use textbook Levenshtein/Jaro-Winkler
	MaxResults int     `toml:"max_results"` // 0 = unlimited
}

type Normalize struct {
	TrimSpace     bool     `toml:"trim_space"`
	SplitWords    bool     `toml:"split_words"`
	FoldCase      bool     `toml:"fold_case"`
	Stem          bool     `toml:"stem"`
	StemMinLength int      `toml:"stem_min_length"`
	Exclusions    []string `toml:"exclusions"`
}

type Cache struct {
	PhoneticCodes int `toml:"phonetic_codes"` // Cached phonetic codes, 0 disables
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Version: 1,
		Matcher: Matcher{
			Algorithm:  string(DefaultAlgorithm),
			Threshold:  DefaultThreshold,
			Canonical:  false,
			MaxResults: DefaultMaxResults,
		},
		Normalize: Normalize{
			TrimSpace:     true,
			FoldCase:      false,
			Stem:          false,
			StemMinLength: DefaultStemMinLength,
		},
		Cache: Cache{
			PhoneticCodes: DefaultPhoneticCache,
		},
	}
}

// Load reads the config for dir, falling back to the user's home directory
// and then to defaults.
func Load(dir string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return LoadWithHome(dir, home)
}

// LoadWithHome is Load with an explicit home directory
func LoadWithHome(dir, home string) (*Config, error) {
	if dir == "" {
		dir = "."
	}

	candidates := []string{dir}
	if home != "" {
		candidates = append(candidates, home)
	}

	for _, d := range candidates {
		path, ok := findConfigFile(d)
		if !ok {
			continue
		}
		return LoadFile(path)
	}

	debug.LogConfig("no config file found in %v, using defaults\n", candidates)
	return Default(), nil
}

// LoadFile reads a config file, choosing the parser by extension. A
// directory is searched like Load without the home fallback.
func LoadFile(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
	}
	if info.IsDir() {
		return LoadWithHome(path, "")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg *Config
	switch filepath.Ext(path) {
	case ".kdl":
		cfg, err = parseKDL(string(content))
	case ".toml":
		cfg, err = parseTOML(content)
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .kdl or .toml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.Source = path
	debug.LogConfig("loaded %s\n", path)
	return cfg, nil
}

func findConfigFile(dir string) (string, bool) {
	for _, name := range []string{KDLFileName, TOMLFileName} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}
