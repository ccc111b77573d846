/*
Package search provides prefix completion over application names, backing
the search CLI command and the exported client-side search data.
*/
package search

import (
	"sort"
	"strings"

	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Match is one completion result, ranked by stars.
type Match struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stars int    `json:"stars"`
}

// Index is a Patricia-trie over lowercased application names. It is built
// once per catalog and read-only afterwards.
type Index struct {
	trie  *patricia.Trie
	total int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{trie: patricia.NewTrie()}
}

// FromApps builds an index over the whole catalog.
func FromApps(apps []*catalog.Application) *Index {
	ix := NewIndex()
	for _, app := range apps {
		ix.Add(app)
	}
	log.Debugf("search index built with %d names", ix.total)
	return ix
}

// Add inserts one application. Distinct apps sharing a lowercased name are
// kept together under one key.
func (ix *Index) Add(app *catalog.Application) {
	if app == nil || app.Name == "" {
		return
	}
	key := patricia.Prefix(strings.ToLower(app.Name))
	match := Match{ID: app.ID, Name: app.Name, Stars: app.StarCount()}

	if item := ix.trie.Get(key); item != nil {
		ix.trie.Set(key, append(item.([]Match), match))
	} else {
		ix.trie.Insert(key, []Match{match})
	}
	ix.total++
}

// Len returns the number of indexed applications.
func (ix *Index) Len() int {
	return ix.total
}

// Complete returns up to limit applications whose name starts with prefix,
// most-starred first, names ascending on ties. The empty prefix matches
// everything.
func (ix *Index) Complete(prefix string, limit int) []Match {
	var matches []Match

	err := ix.trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		matches = append(matches, item.([]Match)...)
		return nil
	})
	if err != nil {
		log.Errorf("error visiting search trie: %v", err)
		return nil
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Stars != matches[j].Stars {
			return matches[i].Stars > matches[j].Stars
		}
		return strings.ToLower(matches[i].Name) < strings.ToLower(matches[j].Name)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
