package paginate

import (
	"context"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// LoadOptions loads the page following loadedOptions for inputValue.
// additional is the cursor stored with the key: DefaultAdditional for a new
// key, the Additional of the previous Response afterwards.
//
// loadedOptions must not be modified.
type LoadOptions[O, A any] func(ctx context.Context, inputValue string, loadedOptions []O, additional A) (Response[O, A], error)

// Reason describes what triggered a request.
type Reason int

const (
	ReasonInitial Reason = iota
	ReasonInputChange
	ReasonMenuOpen
	ReasonScroll
	ReasonPrefetch
)

func (r Reason) String() string {
	switch r {
	case ReasonInitial:
		return "initial"
	case ReasonInputChange:
		return "input-change"
	case ReasonMenuOpen:
		return "menu-open"
	case ReasonScroll:
		return "scroll"
	case ReasonPrefetch:
		return "prefetch"
	default:
		return "unknown"
	}
}

// Paginator drives a Store: it decides when a page must be loaded, calls
// LoadOptions and dispatches the outcome.
//
// All methods are safe for concurrent use. At most one load per input value
// is in flight; loads for different input values run independently.
type Paginator[O, A any] struct {
	store *Store[O, A]
	load  LoadOptions[O, A]
	cfg   config
}

// New returns a Paginator starting from InitialState(params). It panics if
// load is nil.
func New[O, A any](load LoadOptions[O, A], params Params[O, A], opts ...Option) *Paginator[O, A] {
	if load == nil {
		panic("paginate: nil LoadOptions")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Paginator[O, A]{
		store: NewStore(params),
		load:  load,
		cfg:   cfg,
	}
}

// State returns the current state.
func (p *Paginator[O, A]) State() State[O, A] {
	return p.store.State()
}

// Current returns the projection for the current input value.
func (p *Paginator[O, A]) Current() Projection[O] {
	return p.store.State().Current()
}

// Subscribe registers fn for every state transition. See Store.Subscribe.
func (p *Paginator[O, A]) Subscribe(fn Listener[O, A]) (unsubscribe func()) {
	return p.store.Subscribe(fn)
}

// Dispatch applies action directly, bypassing the request logic.
func (p *Paginator[O, A]) Dispatch(action Action) State[O, A] {
	return p.store.Dispatch(action)
}

// RequestOptions loads the next page for the current input value and blocks
// until it is merged. It returns nil without loading when that key is
// already loading or has reached its last page.
//
// A failed load removes the key from the cache and returns a *LoadError
// wrapping the loader's error.
func (p *Paginator[O, A]) RequestOptions(ctx context.Context, reason Reason) error {
	return p.request(ctx, reason, func(s State[O, A]) string {
		return s.InputValue
	})
}

// SetInputValue records the search text. With the menu open, a value that
// has no cache entry yet triggers a load.
func (p *Paginator[O, A]) SetInputValue(ctx context.Context, inputValue string) error {
	state := p.store.Dispatch(SetInputValue{InputValue: inputValue})
	if _, ok := state.Cache[inputValue]; state.MenuIsOpen && !ok {
		return p.RequestOptions(ctx, ReasonInputChange)
	}
	return nil
}

// SetMenuIsOpen records whether the menu is open. Opening it without a cache
// entry for the current input value triggers a load.
func (p *Paginator[O, A]) SetMenuIsOpen(ctx context.Context, menuIsOpen bool) error {
	state := p.store.Dispatch(SetMenuIsOpen{MenuIsOpen: menuIsOpen})
	if _, ok := state.Cache[state.InputValue]; menuIsOpen && !ok {
		return p.RequestOptions(ctx, ReasonMenuOpen)
	}
	return nil
}

// Reset returns to the state built at construction. Loads still in flight
// merge their page into the reset cache when they complete.
func (p *Paginator[O, A]) Reset() {
	p.store.Dispatch(Reset{})
}

// Prefetch loads the next page of each input value concurrently without
// changing the current input value. It returns the first error; the other
// loads are cancelled through ctx.
func (p *Paginator[O, A]) Prefetch(ctx context.Context, inputValues ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.prefetchLimit)
	for _, inputValue := range inputValues {
		g.Go(func() error {
			return p.request(ctx, ReasonPrefetch, func(State[O, A]) string {
				return inputValue
			})
		})
	}
	return g.Wait()
}

func (p *Paginator[O, A]) request(ctx context.Context, reason Reason, keyOf func(State[O, A]) string) error {
	var key string
	state, started := p.store.dispatchIf(func(s State[O, A]) (Action, bool) {
		key = keyOf(s)
		if entry, ok := s.Cache[key]; ok && !canLoad(entry) {
			return nil, false
		}
		return SetLoading{InputValue: key}, true
	})
	if !started {
		p.emit(EventSkip, key, reason, state, nil)
		return nil
	}
	p.emit(EventRequest, key, reason, state, nil)

	if p.cfg.debounce > 0 && reason == ReasonInputChange {
		current, err := p.settle(ctx, key)
		if err != nil {
			return p.fail(key, reason, err)
		}
		if !current {
			state = p.store.Dispatch(UnsetLoading{InputValue: key, IsClean: true})
			p.emit(EventDiscard, key, reason, state, nil)
			return nil
		}
	}

	resp, err := p.call(ctx, key, state.Cache[key])
	if err != nil {
		return p.fail(key, reason, err)
	}
	state = p.store.Dispatch(LoadSuccess[O, A]{InputValue: key, Response: resp})
	p.emit(EventSuccess, key, reason, state, nil)
	return nil
}

// canLoad reports whether an existing entry may request another page.
func canLoad[O, A any](entry CacheEntry[O, A]) bool {
	if entry.IsLoading {
		return false
	}
	return entry.HasMore || len(entry.Options) == 0
}

// settle waits out the debounce interval and reports whether key is still
// the current input value.
func (p *Paginator[O, A]) settle(ctx context.Context, key string) (bool, error) {
	timer := time.NewTimer(p.cfg.debounce)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-timer.C:
	}
	return p.store.State().InputValue == key, nil
}

func (p *Paginator[O, A]) call(ctx context.Context, key string, entry CacheEntry[O, A]) (Response[O, A], error) {
	defer func() {
		if r := recover(); r != nil {
			p.store.Dispatch(UnsetLoading{InputValue: key, IsClean: true})
			panic(r)
		}
	}()
	// Clip so an append by the loader cannot write into the cached array.
	return p.load(ctx, key, slices.Clip(entry.Options), entry.Additional)
}

func (p *Paginator[O, A]) fail(key string, reason Reason, err error) error {
	state := p.store.Dispatch(UnsetLoading{InputValue: key, IsClean: true})
	p.emit(EventFailure, key, reason, state, err)
	return &LoadError{InputValue: key, Reason: reason, Err: err}
}

func (p *Paginator[O, A]) emit(event Event, key string, reason Reason, state State[O, A], err error) {
	options := len(state.Cache[key].Options)
	if logger := p.cfg.logger; logger != nil {
		if event == EventFailure {
			logger.Warn("load options failed", "input", key, "reason", reason, "err", err)
		} else {
			logger.Debug("load options "+event.String(), "input", key, "reason", reason, "options", options)
		}
	}
	if p.cfg.observer == nil {
		return
	}
	p.cfg.observer.On(EventData{
		Event:      event,
		InputValue: key,
		Reason:     reason,
		Options:    options,
		Err:        err,
	})
}
