/*
Package config manages TOML config for the ashgen site generator.
*/
package config

import (
	"fmt"
	"os"

	"github.com/ashfoss/ashgen/internal/utils"
	"github.com/ashfoss/ashgen/pkg/related"
	"github.com/charmbracelet/log"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "config.toml"

// Config holds the entire config structure.
type Config struct {
	Site    SiteConfig      `toml:"site"`
	Data    DataConfig      `toml:"data"`
	Build   BuildConfig     `toml:"build"`
	Related related.Options `toml:"related"`
}

// SiteConfig has site identity options used for sitemap and page data.
type SiteConfig struct {
	Title    string `toml:"title"`
	URL      string `toml:"url"`
	BasePath string `toml:"base_path"`
}

// DataConfig locates the awesome-selfhosted dataset files.
type DataConfig struct {
	Dir                 string `toml:"dir"`
	SoftwareGlob        string `toml:"software_glob"`
	TagsGlob            string `toml:"tags_glob"`
	PlatformsGlob       string `toml:"platforms_glob"`
	LicensesFile        string `toml:"licenses_file"`
	LicensesNonfreeFile string `toml:"licenses_nonfree_file"`
}

// BuildConfig holds output locations.
type BuildConfig struct {
	OutputDir string `toml:"output_dir"`
	StaticDir string `toml:"static_dir"`
	CacheDir  string `toml:"cache_dir"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "Awesome Self-Hosted",
			URL:   "https://example.org",
		},
		Data: DataConfig{
			Dir:                 "data/awesome-selfhosted-data",
			SoftwareGlob:        "software/*.yml",
			TagsGlob:            "tags/*.yml",
			PlatformsGlob:       "platforms/*.yml",
			LicensesFile:        "licenses.yml",
			LicensesNonfreeFile: "licenses-nonfree.yml",
		},
		Build: BuildConfig{
			OutputDir: "output",
			StaticDir: "static",
			CacheDir:  "data/cache",
		},
		Related: related.DefaultOptions(),
	}
}

// LoadConfig loads from a TOML file on top of the defaults, so absent keys
// keep their default values. Decode errors fail hard: a config with a
// non-numeric score knob should stop the build before any scoring runs.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(path, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag (missing file is an error)
// 2. Default path: ./config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customPath string) (*Config, string, error) {
	if customPath != "" {
		config, err := LoadConfig(customPath)
		if err != nil {
			return nil, "", err
		}
		log.Debugf("loaded config from %s", customPath)
		return config, customPath, nil
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		config, err := LoadConfig(DefaultPath)
		if err != nil {
			return nil, "", err
		}
		log.Debugf("loaded config from default path %s", DefaultPath)
		return config, DefaultPath, nil
	}
	log.Debug("no config file found, using builtin defaults")
	return DefaultConfig(), "", nil
}

// Validate checks values whose failure modes would otherwise show up
// mid-build.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("config: data.dir must not be empty")
	}
	if c.Build.OutputDir == "" {
		return fmt.Errorf("config: build.output_dir must not be empty")
	}
	return c.Related.Validate()
}

// Save writes the config to a TOML file.
func (c *Config) Save(path string) error {
	return utils.SaveTOMLFile(path, c)
}
