package paginate

import "maps"

// CacheEntry holds the pages accumulated for one input value.
// Entries are values: every transition stores a new entry instead of
// mutating the previous one.
type CacheEntry[O, A any] struct {
	Options     []O  `json:"options"`
	HasMore     bool `json:"hasMore"`
	IsLoading   bool `json:"isLoading"`
	IsFirstLoad bool `json:"isFirstLoad"`
	// Additional is the caller's cursor for the next page. It is passed
	// back to LoadOptions untouched.
	Additional A `json:"additional"`
}

// Cache maps input values to their entries. The empty string is the key of
// the default search.
//
// A Cache published in a State is never modified; use the returned copies of
// with and without.
type Cache[O, A any] map[string]CacheEntry[O, A]

// Get returns the entry for inputValue and whether one exists.
func (c Cache[O, A]) Get(inputValue string) (CacheEntry[O, A], bool) {
	entry, ok := c[inputValue]
	return entry, ok
}

func (c Cache[O, A]) with(inputValue string, entry CacheEntry[O, A]) Cache[O, A] {
	next := make(Cache[O, A], len(c)+1)
	maps.Copy(next, c)
	next[inputValue] = entry
	return next
}

func (c Cache[O, A]) without(inputValue string) Cache[O, A] {
	next := maps.Clone(c)
	delete(next, inputValue)
	return next
}

// Response is one page returned by LoadOptions.
//
// HasMore must be set for paging to continue; the zero value ends
// pagination for the key.
type Response[O, A any] struct {
	Options    []O  `json:"options"`
	HasMore    bool `json:"hasMore,omitempty"`
	Additional A    `json:"additional,omitempty"`
}
