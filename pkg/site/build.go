/*
Package site turns a loaded catalog into the static data files a frontend
consumes: search index, statistics, related-apps data, alternatives groups,
sitemap and robots directives.
*/
package site

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/ashfoss/ashgen/internal/logger"
	"github.com/ashfoss/ashgen/internal/utils"
	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/ashfoss/ashgen/pkg/config"
	"github.com/ashfoss/ashgen/pkg/related"
	"github.com/charmbracelet/log"
)

// Builder generates all site data for one catalog. It owns the Finder (and
// therefore the phrase cache) for the whole build.
type Builder struct {
	cfg    *config.Config
	cat    *catalog.Catalog
	finder *related.Finder
	log    *log.Logger
}

// Report summarizes one build run.
type Report struct {
	Apps        int
	Files       int
	OutputBytes int64
	Duration    time.Duration
}

// NewBuilder wires a builder for the given config and catalog.
func NewBuilder(cfg *config.Config, cat *catalog.Catalog) *Builder {
	return &Builder{
		cfg:    cfg,
		cat:    cat,
		finder: related.NewFinder(cfg.Related, cat.Licenses),
		log:    logger.New("build"),
	}
}

// Build writes every output file. Related rankings are recomputed from
// scratch; only the phrase cache inside the Finder is reused across apps.
func (b *Builder) Build() (*Report, error) {
	start := time.Now()
	outputDir := b.cfg.Build.OutputDir
	dataDir := filepath.Join(outputDir, "static", "data")

	// drop stale data files from previous runs
	if err := utils.CleanDir(dataDir); err != nil {
		return nil, fmt.Errorf("preparing output dirs: %w", err)
	}

	categories := catalog.BuildCategoryHierarchy(b.cat.Apps, b.cat.Tags)
	stats := catalog.BuildStatistics(b.cat.Apps, categories)

	b.log.Infof("computing related apps for %d applications", len(b.cat.Apps))
	corpus := related.NewCorpus(b.cat.Apps)
	relatedIDs := make(map[string][]string, len(b.cat.Apps))
	for _, app := range b.cat.Apps {
		matches := b.finder.FindRelated(app, corpus)
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID
		}
		relatedIDs[app.ID] = ids
	}

	files := 0
	writes := []struct {
		name string
		data any
	}{
		{"search.json", b.searchData()},
		{"statistics.json", stats},
		{"categories.json", categories},
		{"related.json", relatedIDs},
		{"alternatives.json", b.alternativesData()},
	}
	for _, w := range writes {
		if err := writeJSON(filepath.Join(dataDir, w.name), w.data); err != nil {
			return nil, err
		}
		files++
	}

	if err := writeText(filepath.Join(outputDir, "sitemap.xml"), b.sitemap()); err != nil {
		return nil, err
	}
	files++
	if err := writeText(filepath.Join(outputDir, "robots.txt"), b.robots()); err != nil {
		return nil, err
	}
	files++

	if utils.FileExists(b.cfg.Build.StaticDir) {
		if err := utils.CopyDir(b.cfg.Build.StaticDir, filepath.Join(outputDir, "static")); err != nil {
			return nil, fmt.Errorf("copying static assets: %w", err)
		}
	}

	report := &Report{
		Apps:        len(b.cat.Apps),
		Files:       files,
		OutputBytes: utils.DirSize(outputDir),
		Duration:    time.Since(start),
	}
	b.log.Infof("build done: %d apps, %d data files, %s in %s",
		report.Apps, report.Files, utils.FormatBytes(report.OutputBytes), report.Duration.Round(time.Millisecond))
	return report, nil
}

// FindRelated exposes the builder's finder for the related CLI command so
// ad-hoc queries share the build configuration.
func (b *Builder) FindRelated(app *catalog.Application, corpus *related.Corpus) []*catalog.Application {
	return b.finder.FindRelated(app, corpus)
}

type searchEntry struct {
	*catalog.Application
	IsNonFree bool `json:"is_nonfree"`
}

type searchData struct {
	Apps            []searchEntry `json:"apps"`
	Total           int           `json:"total"`
	NonfreeLicenses []string      `json:"nonfree_licenses"`
}

// searchData assembles the client-side search payload, including which
// license identifiers the frontend should badge as non-free.
func (b *Builder) searchData() searchData {
	entries := make([]searchEntry, len(b.cat.Apps))
	for i, app := range b.cat.Apps {
		entries[i] = searchEntry{Application: app, IsNonFree: b.finder.IsNonFree(app)}
	}
	var nonfree []string
	for id, info := range b.cat.Licenses {
		if !info.Free {
			nonfree = append(nonfree, id)
		}
	}
	return searchData{Apps: entries, Total: len(entries), NonfreeLicenses: nonfree}
}

// alternativesData groups app ids by replaced proprietary product, keeping
// only products with at least two self-hosted alternatives.
func (b *Builder) alternativesData() map[string][]string {
	index := catalog.BuildAlternativesIndex(b.cat.Apps)
	out := make(map[string][]string)
	for name, apps := range index {
		if len(apps) < 2 {
			continue
		}
		ids := make([]string, len(apps))
		for i, app := range apps {
			ids[i] = app.ID
		}
		out[name] = ids
	}
	return out
}

// sitemap renders a minimal URL-set sitemap for the homepage and every app
// detail page.
func (b *Builder) sitemap() string {
	base := strings.TrimRight(b.cfg.Site.URL, "/") + b.cfg.Site.BasePath
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString("<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n")
	sb.WriteString("  <url><loc>" + base + "/</loc></url>\n")
	for _, app := range b.cat.Apps {
		sb.WriteString("  <url><loc>" + base + "/apps/" + app.ID + "/</loc></url>\n")
	}
	sb.WriteString("</urlset>\n")
	return sb.String()
}

func (b *Builder) robots() string {
	base := strings.TrimRight(b.cfg.Site.URL, "/") + b.cfg.Site.BasePath
	return "User-agent: *\nAllow: /\nSitemap: " + base + "/sitemap.xml\n"
}
