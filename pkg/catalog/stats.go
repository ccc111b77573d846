package catalog

import (
	"sort"
	"strings"

	"github.com/ashfoss/ashgen/internal/utils"
)

// NameCount pairs a label with how often it occurs across the catalog.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Statistics holds aggregate counts for the statistics page data.
type Statistics struct {
	TotalApps         int         `json:"total_apps"`
	CategoriesCount   int         `json:"categories_count"`
	TopPlatforms      []NameCount `json:"top_platforms"`
	TopLicenses       []NameCount `json:"top_licenses"`
	AppsWithStars     int         `json:"apps_with_github"`
	TotalStars        int         `json:"total_stars"`
	MultiLicenseApps  int         `json:"apps_with_multiple_licenses"`
	MultiPlatformApps int         `json:"apps_with_multiple_platforms"`
}

// Category is one node of the category hierarchy with its app count.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// BuildStatistics computes catalog-wide aggregates.
func BuildStatistics(apps []*Application, categories map[string]Category) *Statistics {
	platformCounts := make(map[string]int)
	licenseCounts := make(map[string]int)
	stats := &Statistics{TotalApps: len(apps)}

	for _, app := range apps {
		for _, platform := range app.Platforms {
			if platform != "" {
				platformCounts[platform]++
			}
		}
		for _, lic := range app.Licenses {
			if lic != "" {
				licenseCounts[lic]++
			}
		}
		if app.Stars != nil {
			stats.AppsWithStars++
			stats.TotalStars += *app.Stars
		}
		if len(app.Licenses) > 1 {
			stats.MultiLicenseApps++
		}
		if len(app.Platforms) > 1 {
			stats.MultiPlatformApps++
		}
	}

	for _, cat := range categories {
		if cat.Count > 0 {
			stats.CategoriesCount++
		}
	}

	stats.TopPlatforms = topCounts(platformCounts, 10)
	stats.TopLicenses = topCounts(licenseCounts, 10)
	return stats
}

// topCounts returns the n highest counts, descending, names ascending on
// ties so output is stable between runs.
func topCounts(counts map[string]int, n int) []NameCount {
	out := make([]NameCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// BuildCategoryHierarchy maps category ids to nodes with per-category app
// counts. Counts are tallied under both the raw category label and its
// slugified key; tag records missing a dedicated file still get a node.
func BuildCategoryHierarchy(apps []*Application, tags map[string]Tag) map[string]Category {
	counts := make(map[string]int)
	for _, app := range apps {
		for _, category := range app.Categories {
			counts[utils.Slugify(category)]++
			counts[category]++
		}
	}

	categories := make(map[string]Category, len(tags))
	for id, tag := range tags {
		count := counts[id]
		if count == 0 {
			count = counts[tag.Name]
		}
		categories[id] = Category{
			ID:          id,
			Name:        tag.Name,
			Description: tag.Description,
			Count:       count,
		}
	}

	for _, app := range apps {
		for _, category := range app.Categories {
			key := utils.Slugify(category)
			if _, ok := categories[key]; ok {
				continue
			}
			categories[key] = Category{
				ID:          key,
				Name:        category,
				Description: "Applications tagged with " + category,
				Count:       counts[category],
			}
		}
	}
	return categories
}

// BuildAlternativesIndex groups applications by the proprietary product
// they claim to replace. Keys are the lowercased product names.
func BuildAlternativesIndex(apps []*Application) map[string][]*Application {
	index := make(map[string][]*Application)
	for _, app := range apps {
		for _, alt := range app.AlternativeTo {
			key := strings.ToLower(strings.TrimSpace(alt))
			if key == "" {
				continue
			}
			index[key] = append(index[key], app)
		}
	}
	for _, group := range index {
		sort.Slice(group, func(i, j int) bool {
			if group[i].StarCount() != group[j].StarCount() {
				return group[i].StarCount() > group[j].StarCount()
			}
			return strings.ToLower(group[i].Name) < strings.ToLower(group[j].Name)
		})
	}
	return index
}
