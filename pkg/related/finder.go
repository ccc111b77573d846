package related

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/ashfoss/ashgen/pkg/catalog"
	"github.com/charmbracelet/log"
)

var corpusIDs atomic.Uint64

// Corpus wraps a candidate list in an identity handle. The handle, not the
// list contents, keys the Finder's phrase cache: two corpora built from
// structurally identical slices are distinct cache keys.
type Corpus struct {
	apps []*catalog.Application
	id   uint64
}

// NewCorpus assigns a process-unique identity to the given candidate list.
func NewCorpus(apps []*catalog.Application) *Corpus {
	return &Corpus{apps: apps, id: corpusIDs.Add(1)}
}

// Apps returns the underlying candidate list.
func (c *Corpus) Apps() []*catalog.Application {
	return c.apps
}

// Len returns the number of candidates.
func (c *Corpus) Len() int {
	return len(c.apps)
}

// Finder scores and ranks related applications. It owns a phrase cache
// keyed by corpus identity; the mutex guards it when detail pages are
// generated from multiple goroutines sharing one Finder.
type Finder struct {
	opts     Options
	licenses catalog.Registry

	mu             sync.Mutex
	cachedPhrases  map[string]map[string]bool
	cachedCorpusID uint64
}

// NewFinder returns a Finder with the given options. licenses may be nil,
// in which case non-free detection falls back to the literal proprietary
// marker.
func NewFinder(opts Options, licenses catalog.Registry) *Finder {
	return &Finder{opts: opts, licenses: licenses}
}

// ClearCache drops the memoized phrase sets. The next FindRelated call
// rebuilds them for whatever corpus it receives.
func (f *Finder) ClearCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cachedPhrases = nil
	f.cachedCorpusID = 0
}

// FindRelated scores every corpus entry against the target, drops entries
// below the minimum score and the target itself, and returns the ranked
// list truncated to the configured maximum; a maximum of zero yields no
// results. The sort is stable: entries tying on score and every configured
// tiebreaker keep their input order.
func (f *Finder) FindRelated(target *catalog.Application, corpus *Corpus) []*catalog.Application {
	if target == nil || corpus == nil || len(corpus.apps) == 0 {
		return nil
	}

	if f.opts.Debug {
		log.Debugf("finding related apps for %s", target.Name)
	}

	var phrases map[string]map[string]bool
	if f.opts.Scoring.SemanticSimilarity.Enabled {
		phrases = f.phrasesFor(corpus)
	}

	type scoredApp struct {
		app       *catalog.Application
		score     int
		breakdown Breakdown
	}
	var related []scoredApp

	for _, app := range corpus.apps {
		if app.ID == target.ID {
			continue
		}
		score, breakdown := f.scorePair(target, app, phrases)
		if score < f.opts.MinScore {
			continue
		}
		related = append(related, scoredApp{app: app, score: score, breakdown: breakdown})
		if f.opts.Debug {
			log.Debugf("  %s: %d points %v", app.Name, score, breakdown)
		}
	}

	sort.SliceStable(related, func(i, j int) bool {
		a, b := related[i], related[j]
		if a.score != b.score {
			return a.score > b.score
		}
		for _, tiebreaker := range f.opts.Tiebreakers {
			switch tiebreaker {
			case "stars":
				as, bs := a.app.StarCount(), b.app.StarCount()
				if as != bs {
					return as > bs
				}
			case "name":
				an, bn := strings.ToLower(a.app.Name), strings.ToLower(b.app.Name)
				if an != bn {
					return an < bn
				}
			}
		}
		return false
	})

	// MaxResults is a hard cap, not a toggle: zero means no results
	if f.opts.MaxResults >= 0 && len(related) > f.opts.MaxResults {
		related = related[:f.opts.MaxResults]
	}

	result := make([]*catalog.Application, len(related))
	for i, r := range related {
		result[i] = r.app
	}

	if f.opts.Debug {
		log.Debugf("  -> returning %d related apps", len(result))
	}
	return result
}

// phrasesFor returns the per-application phrase sets for the corpus,
// computing and memoizing them on first use. A corpus with a different
// identity than the cached one fully invalidates the cache.
func (f *Finder) phrasesFor(corpus *Corpus) map[string]map[string]bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cachedPhrases != nil && f.cachedCorpusID == corpus.id {
		return f.cachedPhrases
	}

	phrases := make(map[string]map[string]bool, len(corpus.apps))
	for _, app := range corpus.apps {
		phrases[app.ID] = ExtractPhrases(app.Description)
	}
	f.cachedPhrases = phrases
	f.cachedCorpusID = corpus.id
	return phrases
}
