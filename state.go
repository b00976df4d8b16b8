package paginate

// ReduceFunc merges a freshly loaded page into the options already cached for
// a key. additional is the cursor returned with the page.
type ReduceFunc[O, A any] func(prev, loaded []O, additional A) []O

// Params are the construction parameters of a Paginator. Reset rebuilds the
// state from the same Params.
type Params[O, A any] struct {
	// InitialOptions seeds the entry of the empty search. A nil slice leaves
	// the cache empty, a non-nil empty slice seeds an entry with no options.
	InitialOptions []O

	// InitialAdditional is the cursor of the seeded entry. When nil the
	// seeded entry uses DefaultAdditional.
	InitialAdditional *A

	// DefaultAdditional is the cursor of every entry created by SetLoading.
	DefaultAdditional A

	// ReduceOptions replaces the default concatenation of pages.
	ReduceOptions ReduceFunc[O, A]
}

// State is the whole dropdown state.
type State[O, A any] struct {
	InputValue string      `json:"inputValue"`
	MenuIsOpen bool        `json:"menuIsOpen"`
	Cache      Cache[O, A] `json:"cache"`
}

// Projection is the view of the cache for the current input value.
type Projection[O any] struct {
	Options     []O  `json:"options"`
	IsLoading   bool `json:"isLoading"`
	IsFirstLoad bool `json:"isFirstLoad"`
	HasMore     bool `json:"hasMore"`
}

// Current projects the entry for s.InputValue. Without an entry it reports
// no options and HasMore, since nothing has been asked yet.
func (s State[O, A]) Current() Projection[O] {
	entry, ok := s.Cache[s.InputValue]
	if !ok {
		return Projection[O]{HasMore: true}
	}
	return Projection[O]{
		Options:     entry.Options,
		IsLoading:   entry.IsLoading,
		IsFirstLoad: entry.IsFirstLoad,
		HasMore:     entry.HasMore,
	}
}

// InitialState builds the state a Paginator starts from.
func InitialState[O, A any](params Params[O, A]) State[O, A] {
	return State[O, A]{
		InputValue: "",
		MenuIsOpen: false,
		Cache:      InitialCache(params),
	}
}

// InitialCache builds the starting cache: a single entry for the empty search
// when params.InitialOptions is set, an empty cache otherwise.
func InitialCache[O, A any](params Params[O, A]) Cache[O, A] {
	if params.InitialOptions == nil {
		return Cache[O, A]{}
	}
	additional := params.DefaultAdditional
	if params.InitialAdditional != nil {
		additional = *params.InitialAdditional
	}
	return Cache[O, A]{
		"": {
			Options:     params.InitialOptions,
			HasMore:     true,
			IsLoading:   false,
			IsFirstLoad: false,
			Additional:  additional,
		},
	}
}
