package logic

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"mlguide/internal/domain"
)

// defaultCacheSize bounds the number of distinct queries remembered
const defaultCacheSize = 256

// Haystack returns the lower-cased text a query is matched against:
// name, best-for, every dataset, then every use case, joined by single spaces.
func Haystack(m domain.ModelRecord) string {
	parts := make([]string, 0, 2+len(m.Datasets)+len(m.UseCases))
	parts = append(parts, m.Name, m.BestFor)
	parts = append(parts, m.Datasets...)
	parts = append(parts, m.UseCases...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Matches reports whether a record matches the query.
// The query is lower-cased but otherwise used as typed: no trimming, so a
// whitespace-only query is matched literally.
func Matches(m domain.ModelRecord, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(Haystack(m), strings.ToLower(query))
}

// Filter returns the records matching query, in their original order.
// An empty query returns every record.
func Filter(models []domain.ModelRecord, query string) []domain.ModelRecord {
	if query == "" {
		out := make([]domain.ModelRecord, len(models))
		copy(out, models)
		return out
	}

	q := strings.ToLower(query)
	out := make([]domain.ModelRecord, 0, len(models))
	for _, m := range models {
		if strings.Contains(Haystack(m), q) {
			out = append(out, m)
		}
	}
	return out
}

// SearchFilter filters a fixed model list and remembers results per exact query
type SearchFilter struct {
	models []domain.ModelRecord
	cache  *lru.Cache[string, []int]
}

// NewSearchFilter creates a search filter over models
func NewSearchFilter(models []domain.ModelRecord) *SearchFilter {
	cache, err := lru.New[string, []int](defaultCacheSize)
	if err != nil {
		// only fails for a non-positive size
		panic(err)
	}
	return &SearchFilter{
		models: models,
		cache:  cache,
	}
}

// Apply returns the visible subset for query. Results are fresh copies.
func (sf *SearchFilter) Apply(query string) []domain.ModelRecord {
	idx, ok := sf.cache.Get(query)
	if !ok {
		idx = sf.indices(query)
		sf.cache.Add(query, idx)
	}

	out := make([]domain.ModelRecord, len(idx))
	for i, j := range idx {
		out[i] = sf.models[j].Clone()
	}
	return out
}

// Count returns how many records match query
func (sf *SearchFilter) Count(query string) int {
	if idx, ok := sf.cache.Get(query); ok {
		return len(idx)
	}
	return len(sf.Apply(query))
}

// Total returns the size of the unfiltered list
func (sf *SearchFilter) Total() int {
	return len(sf.models)
}

func (sf *SearchFilter) indices(query string) []int {
	idx := make([]int, 0, len(sf.models))
	for i, m := range sf.models {
		if Matches(m, query) {
			idx = append(idx, i)
		}
	}
	return idx
}
