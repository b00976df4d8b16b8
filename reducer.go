package paginate

import "slices"

// Reduce folds action into state and returns the next state. It never
// modifies state; unknown actions return it unchanged.
//
// Guarding against a second SetLoading for a key that is already loading is
// left to the caller: Reduce applies it and recomputes IsFirstLoad from the
// existing entry.
func (p Params[O, A]) Reduce(state State[O, A], action Action) State[O, A] {
	switch a := action.(type) {
	case SetLoading:
		prev, ok := state.Cache[a.InputValue]
		entry := CacheEntry[O, A]{
			IsLoading:   true,
			IsFirstLoad: !ok,
			HasMore:     true,
			Options:     []O{},
			Additional:  p.DefaultAdditional,
		}
		if ok {
			entry.HasMore = prev.HasMore
			entry.Options = prev.Options
			entry.Additional = prev.Additional
		}
		state.Cache = state.Cache.with(a.InputValue, entry)
		return state

	case UnsetLoading:
		prev, ok := state.Cache[a.InputValue]
		if !ok {
			return state
		}
		if a.IsClean {
			state.Cache = state.Cache.without(a.InputValue)
			return state
		}
		prev.IsLoading = false
		state.Cache = state.Cache.with(a.InputValue, prev)
		return state

	case LoadSuccess[O, A]:
		var prevOptions []O
		if prev, ok := state.Cache[a.InputValue]; ok {
			prevOptions = prev.Options
		}
		state.Cache = state.Cache.with(a.InputValue, CacheEntry[O, A]{
			Options:     p.reduceOptions(prevOptions, a.Response.Options, a.Response.Additional),
			HasMore:     a.Response.HasMore,
			IsLoading:   false,
			IsFirstLoad: false,
			Additional:  a.Response.Additional,
		})
		return state

	case SetInputValue:
		state.InputValue = a.InputValue
		return state

	case SetMenuIsOpen:
		state.MenuIsOpen = a.MenuIsOpen
		return state

	case Reset:
		return InitialState(p)

	default:
		return state
	}
}

func (p Params[O, A]) reduceOptions(prev, loaded []O, additional A) []O {
	if p.ReduceOptions != nil {
		return p.ReduceOptions(prev, loaded, additional)
	}
	// Concat allocates, so the previous entry keeps its own backing array.
	merged := slices.Concat(prev, loaded)
	if merged == nil {
		return []O{}
	}
	return merged
}
