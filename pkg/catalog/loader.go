package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoaderOptions locates the dataset files relative to the data directory.
// Zero-value fields fall back to the upstream repository layout.
type LoaderOptions struct {
	SoftwareGlob        string
	TagsGlob            string
	PlatformsGlob       string
	LicensesFile        string
	LicensesNonfreeFile string
}

func (o *LoaderOptions) withDefaults() LoaderOptions {
	opts := *o
	if opts.SoftwareGlob == "" {
		opts.SoftwareGlob = "software/*.yml"
	}
	if opts.TagsGlob == "" {
		opts.TagsGlob = "tags/*.yml"
	}
	if opts.PlatformsGlob == "" {
		opts.PlatformsGlob = "platforms/*.yml"
	}
	if opts.LicensesFile == "" {
		opts.LicensesFile = "licenses.yml"
	}
	if opts.LicensesNonfreeFile == "" {
		opts.LicensesNonfreeFile = "licenses-nonfree.yml"
	}
	return opts
}

// Load reads the full dataset from dataDir. Individual unreadable or
// malformed record files are skipped with a warning; a missing data
// directory is an error.
func Load(dataDir string, opts LoaderOptions) (*Catalog, error) {
	if _, err := os.Stat(dataDir); err != nil {
		return nil, fmt.Errorf("data directory %s: %w", dataDir, err)
	}
	o := opts.withDefaults()

	apps, err := loadApplications(dataDir, o.SoftwareGlob)
	if err != nil {
		return nil, err
	}
	tags, err := loadTags(dataDir, o.TagsGlob)
	if err != nil {
		return nil, err
	}
	platforms, err := loadPlatforms(dataDir, o.PlatformsGlob)
	if err != nil {
		return nil, err
	}
	licenses := loadLicenses(
		filepath.Join(dataDir, o.LicensesFile),
		filepath.Join(dataDir, o.LicensesNonfreeFile),
	)

	log.Infof("loaded %d applications, %d tags, %d platforms, %d licenses",
		len(apps), len(tags), len(platforms), len(licenses))

	return &Catalog{
		Apps:      apps,
		Tags:      tags,
		Platforms: platforms,
		Licenses:  licenses,
	}, nil
}

// globFiles resolves a glob under dataDir to a sorted list of paths so load
// order, and therefore catalog order, is deterministic.
func globFiles(dataDir, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(dataDir, pattern))
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// fileStem returns the filename without directory or extension, used as the
// stable record id.
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func loadApplications(dataDir, glob string) ([]*Application, error) {
	files, err := globFiles(dataDir, glob)
	if err != nil {
		return nil, err
	}
	log.Debugf("loading %d software files", len(files))

	apps := make([]*Application, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Warnf("skipping %s: %v", file, err)
			continue
		}
		var app Application
		if err := yaml.Unmarshal(data, &app); err != nil {
			log.Warnf("skipping %s: %v", file, err)
			continue
		}
		if app.Name == "" {
			continue
		}
		app.ID = fileStem(file)
		ParseMarkers(&app)
		apps = append(apps, &app)
	}
	return apps, nil
}

func loadTags(dataDir, glob string) (map[string]Tag, error) {
	files, err := globFiles(dataDir, glob)
	if err != nil {
		return nil, err
	}
	tags := make(map[string]Tag, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Warnf("skipping %s: %v", file, err)
			continue
		}
		var tag Tag
		if err := yaml.Unmarshal(data, &tag); err != nil {
			log.Warnf("skipping %s: %v", file, err)
			continue
		}
		tag.ID = fileStem(file)
		if tag.Name == "" {
			tag.Name = tag.ID
		}
		tags[tag.ID] = tag
	}
	return tags, nil
}

func loadPlatforms(dataDir, glob string) (map[string]Platform, error) {
	files, err := globFiles(dataDir, glob)
	if err != nil {
		return nil, err
	}
	platforms := make(map[string]Platform, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			log.Warnf("skipping %s: %v", file, err)
			continue
		}
		var platform Platform
		if err := yaml.Unmarshal(data, &platform); err != nil {
			log.Warnf("skipping %s: %v", file, err)
			continue
		}
		platform.ID = fileStem(file)
		if platform.Name == "" {
			platform.Name = platform.ID
		}
		platforms[platform.ID] = platform
	}
	return platforms, nil
}

// loadLicenses reads the free and non-free license lists into one registry.
// Either file may be absent; the related engine treats unknown identifiers
// as free.
func loadLicenses(freePath, nonfreePath string) Registry {
	registry := make(Registry)
	readInto(registry, freePath, true)
	readInto(registry, nonfreePath, false)
	return registry
}

func readInto(registry Registry, path string, free bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debugf("license file %s not loaded: %v", path, err)
		return
	}
	var entries []LicenseInfo
	if err := yaml.Unmarshal(data, &entries); err != nil {
		log.Warnf("skipping %s: %v", path, err)
		return
	}
	for _, entry := range entries {
		if entry.ID == "" {
			continue
		}
		entry.Free = free
		if entry.Name == "" {
			entry.Name = entry.ID
		}
		registry[entry.ID] = entry
	}
}
