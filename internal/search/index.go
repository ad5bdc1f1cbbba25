// Package search provides the in-memory full-text index over journal
// entries. The index is a disposable projection of title, content, and tags
// keyed by entry id: it is rebuilt in full after every mutation batch and can
// always be discarded and reconstructed from the store. At the expected scale
// (hundreds to low thousands of entries) the full rebuild stays cheap;
// incremental indexing would only matter past roughly ten thousand entries.
package search

import (
	"math"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Field weights. Title matches rank above content and tag matches.
const (
	weightTitle   = 2.0
	weightContent = 1.0
	weightTag     = 1.0
)

// Match-kind multipliers. An exact token match outranks a prefix match,
// which outranks a fuzzy one.
const (
	scoreExact  = 1.0
	scorePrefix = 0.7
	scoreFuzzy  = 0.45
)

// fuzzyFraction bounds the tolerated edit distance to a fraction of the
// query token length, so short tokens get no fuzz and longer ones tolerate
// a typo or two.
const fuzzyFraction = 0.2

// posting records the per-field weight of a token inside one entry.
type posting struct {
	entryID string
	weight  float64
}

// Index is an inverted token index over entry title, content, and tags.
type Index struct {
	mu       sync.RWMutex
	postings map[string][]posting // token -> entries containing it
	order    map[string]int       // entry id -> insertion rank, for stable ties
}

// New returns an empty index.
func New() *Index {
	return &Index{
		postings: make(map[string][]posting),
		order:    make(map[string]int),
	}
}

// Document is the indexable projection of an entry.
type Document struct {
	ID      string
	Title   string
	Content string
	Tags    []string
}

// Rebuild reconstructs the index from scratch. The new posting set is built
// off to the side and swapped in under the write lock, so readers never see
// a partially built index.
func (ix *Index) Rebuild(docs []Document) {
	postings := make(map[string][]posting, len(docs)*8)
	order := make(map[string]int, len(docs))

	for rank, d := range docs {
		order[d.ID] = rank
		weights := make(map[string]float64)
		for _, tok := range Tokenize(d.Title) {
			if weightTitle > weights[tok] {
				weights[tok] = weightTitle
			}
		}
		for _, tok := range Tokenize(d.Content) {
			if weightContent > weights[tok] {
				weights[tok] = weightContent
			}
		}
		for _, tag := range d.Tags {
			for _, tok := range Tokenize(tag) {
				if weightTag > weights[tok] {
					weights[tok] = weightTag
				}
			}
		}
		for tok, w := range weights {
			postings[tok] = append(postings[tok], posting{entryID: d.ID, weight: w})
		}
	}

	ix.mu.Lock()
	ix.postings = postings
	ix.order = order
	ix.mu.Unlock()
}

// Search returns entry ids ranked by relevance. Matching is
// case-insensitive; each query token matches index tokens exactly, by
// prefix, or within a bounded edit distance. A blank query returns nil:
// no constraint, the caller falls back to the unfiltered list.
func (ix *Index) Search(query string) []string {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return nil
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	scores := make(map[string]float64)
	for _, term := range terms {
		maxDist := FuzzyDistance(term)
		for tok, posts := range ix.postings {
			mult := matchMultiplier(term, tok, maxDist)
			if mult == 0 {
				continue
			}
			for _, p := range posts {
				scores[p.entryID] += p.weight * mult
			}
		}
	}
	if len(scores) == 0 {
		return []string{}
	}

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ix.order[ids[i]] < ix.order[ids[j]]
	})
	return ids
}

// matchMultiplier scores how token tok matches the query term: exact,
// prefix, fuzzy within maxDist edits, or not at all (0).
func matchMultiplier(term, tok string, maxDist int) float64 {
	if tok == term {
		return scoreExact
	}
	if strings.HasPrefix(tok, term) {
		return scorePrefix
	}
	if maxDist > 0 && levenshtein.ComputeDistance(term, tok) <= maxDist {
		return scoreFuzzy
	}
	return 0
}

// FuzzyDistance returns the maximum edit distance tolerated for a query
// term. Zero means fuzzy matching is disabled for that term.
func FuzzyDistance(term string) int {
	return int(math.Round(fuzzyFraction * float64(len(term))))
}

// Tokenize lowercases s and splits it into letter/digit runs.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
