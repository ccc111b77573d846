package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/ashfoss/ashgen/pkg/config"
)

func intp(n int) *int { return &n }

func buildFixture(t *testing.T) (*config.Config, *catalog.Catalog) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Site.URL = "https://apps.example.org"
	cfg.Build.OutputDir = filepath.Join(t.TempDir(), "output")
	cfg.Build.StaticDir = filepath.Join(t.TempDir(), "no-static")

	cat := &catalog.Catalog{
		Apps: []*catalog.Application{
			{
				ID: "jellyfin", Name: "Jellyfin",
				Description:   "Media streaming server for movies and shows",
				Categories:    []string{"Media Streaming"},
				Licenses:      []string{"GPL-2.0"},
				Stars:         intp(30000),
				AlternativeTo: []string{"Plex"},
			},
			{
				ID: "navidrome", Name: "Navidrome",
				Description:   "Music streaming server",
				Categories:    []string{"Media Streaming"},
				Licenses:      []string{"GPL-3.0"},
				Stars:         intp(11000),
				AlternativeTo: []string{"Plex"},
			},
			{
				ID: "gitea", Name: "Gitea",
				Description: "Git hosting service",
				Categories:  []string{"Software Development"},
				Licenses:    []string{"MIT"},
				Stars:       intp(40000),
			},
		},
		Tags: map[string]catalog.Tag{
			"media-streaming": {ID: "media-streaming", Name: "Media Streaming"},
		},
		Licenses: catalog.Registry{
			"GPL-2.0": {ID: "GPL-2.0", Free: true},
			"GPL-3.0": {ID: "GPL-3.0", Free: true},
			"MIT":     {ID: "MIT", Free: true},
		},
	}
	return cfg, cat
}

func TestBuildWritesAllOutputs(t *testing.T) {
	cfg, cat := buildFixture(t)
	builder := NewBuilder(cfg, cat)

	report, err := builder.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if report.Apps != 3 {
		t.Errorf("report apps = %d, want 3", report.Apps)
	}
	if report.Files != 7 {
		t.Errorf("report files = %d, want 7", report.Files)
	}
	if report.OutputBytes == 0 {
		t.Error("report should account for output size")
	}

	dataDir := filepath.Join(cfg.Build.OutputDir, "static", "data")
	for _, name := range []string{
		"search.json", "statistics.json", "categories.json", "related.json", "alternatives.json",
	} {
		if _, err := os.Stat(filepath.Join(dataDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dataDir, "related.json"))
	if err != nil {
		t.Fatal(err)
	}
	var relatedIDs map[string][]string
	if err := json.Unmarshal(data, &relatedIDs); err != nil {
		t.Fatalf("decoding related.json: %v", err)
	}
	if len(relatedIDs) != 3 {
		t.Errorf("related entries = %d, want one per app", len(relatedIDs))
	}
	found := false
	for _, id := range relatedIDs["jellyfin"] {
		if id == "navidrome" {
			found = true
		}
		if id == "jellyfin" {
			t.Error("an app must not relate to itself")
		}
	}
	if !found {
		t.Errorf("jellyfin related = %v, want navidrome included", relatedIDs["jellyfin"])
	}
}

func TestBuildSitemapAndRobots(t *testing.T) {
	cfg, cat := buildFixture(t)
	builder := NewBuilder(cfg, cat)

	if _, err := builder.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	sitemap, err := os.ReadFile(filepath.Join(cfg.Build.OutputDir, "sitemap.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(sitemap), "https://apps.example.org/apps/jellyfin/") {
		t.Error("sitemap should list app detail pages")
	}

	robots, err := os.ReadFile(filepath.Join(cfg.Build.OutputDir, "robots.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(robots), "Sitemap: https://apps.example.org/sitemap.xml") {
		t.Error("robots.txt should point at the sitemap")
	}
}

func TestAlternativesDataDropsSingletons(t *testing.T) {
	cfg, cat := buildFixture(t)
	cat.Apps[2].AlternativeTo = []string{"GitHub"}
	builder := NewBuilder(cfg, cat)

	alts := builder.alternativesData()
	if _, ok := alts["github"]; ok {
		t.Error("products with a single alternative should be dropped")
	}
	if got := alts["plex"]; len(got) != 2 {
		t.Errorf("plex group = %v, want both media apps", got)
	}
}

func TestSearchDataFlagsNonFree(t *testing.T) {
	cfg, cat := buildFixture(t)
	cat.Apps[0].Licenses = []string{"Elastic-2.0"}
	cat.Licenses["Elastic-2.0"] = catalog.LicenseInfo{ID: "Elastic-2.0", Free: false}
	builder := NewBuilder(cfg, cat)

	data := builder.searchData()
	if data.Total != 3 {
		t.Fatalf("total = %d, want 3", data.Total)
	}
	if !data.Apps[0].IsNonFree {
		t.Error("jellyfin should be flagged non-free")
	}
	if data.Apps[1].IsNonFree {
		t.Error("navidrome should stay free")
	}
	if len(data.NonfreeLicenses) != 1 || data.NonfreeLicenses[0] != "Elastic-2.0" {
		t.Errorf("nonfree licenses = %v", data.NonfreeLicenses)
	}
}
