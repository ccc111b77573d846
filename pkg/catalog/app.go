/*
Package catalog loads and models the self-hosted software dataset: one YAML
record per application plus tag, platform and license registries. Records
are fixed-shape; optional fields are nullable rather than absent.
*/
package catalog

// Application is a single catalog entry. The ID is derived from the source
// filename stem and is stable across runs. ForkOf and AlternativeTo are
// extracted from description markers by ParseMarkers, after which the
// description holds prose only.
type Application struct {
	ID              string   `yaml:"-" msgpack:"id" json:"id"`
	Name            string   `yaml:"name" msgpack:"name" json:"name"`
	Description     string   `yaml:"description" msgpack:"description" json:"description"`
	WebsiteURL      string   `yaml:"website_url" msgpack:"website_url" json:"url"`
	SourceCodeURL   string   `yaml:"source_code_url" msgpack:"source_code_url" json:"repo_url,omitempty"`
	DemoURL         string   `yaml:"demo_url" msgpack:"demo_url" json:"demo_url,omitempty"`
	Categories      []string `yaml:"tags" msgpack:"categories" json:"categories"`
	Licenses        []string `yaml:"licenses" msgpack:"licenses" json:"license"`
	Platforms       []string `yaml:"platforms" msgpack:"platforms" json:"platforms"`
	Stars           *int     `yaml:"stargazers_count" msgpack:"stars" json:"stars,omitempty"`
	LastUpdated     string   `yaml:"updated_at" msgpack:"last_updated" json:"last_updated,omitempty"`
	Depends3rdParty bool     `yaml:"depends_3rdparty" msgpack:"depends_3rdparty" json:"depends_3rdparty"`
	ForkOf          string   `yaml:"-" msgpack:"fork_of" json:"fork_of,omitempty"`
	AlternativeTo   []string `yaml:"-" msgpack:"alternative_to" json:"alternative_to,omitempty"`
}

// StarCount returns the star count, treating a missing value as 0.
func (a *Application) StarCount() int {
	if a.Stars == nil {
		return 0
	}
	return *a.Stars
}

// LicenseInfo is one entry of the license registry.
type LicenseInfo struct {
	ID   string `yaml:"identifier" msgpack:"id" json:"id"`
	Name string `yaml:"name" msgpack:"name" json:"name"`
	URL  string `yaml:"url" msgpack:"url" json:"url,omitempty"`
	Free bool   `yaml:"-" msgpack:"free" json:"free"`
}

// Registry maps license identifiers to their registry entries. Lookups are
// literal; identifiers absent from the registry are treated as free.
type Registry map[string]LicenseInfo

// Tag is a category record loaded from the tags directory.
type Tag struct {
	ID            string   `yaml:"-" msgpack:"id"`
	Name          string   `yaml:"name" msgpack:"name"`
	Description   string   `yaml:"description" msgpack:"description"`
	ExternalLinks []string `yaml:"external_links" msgpack:"external_links"`
}

// Platform is a platform/technology record loaded from the platforms
// directory.
type Platform struct {
	ID          string `yaml:"-" msgpack:"id"`
	Name        string `yaml:"name" msgpack:"name"`
	Description string `yaml:"description" msgpack:"description"`
}

// Catalog is the fully materialized dataset handed to the related-apps
// engine and the site builder.
type Catalog struct {
	Apps      []*Application
	Tags      map[string]Tag
	Platforms map[string]Platform
	Licenses  Registry
}
