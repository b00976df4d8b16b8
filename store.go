package paginate

import "sync"

// Listener is notified with the state produced by each dispatched action.
type Listener[O, A any] func(State[O, A])

// Store owns a State and is its only writer. Every change goes through
// Dispatch, which applies Params.Reduce under a lock.
type Store[O, A any] struct {
	params Params[O, A]

	mu        sync.RWMutex
	state     State[O, A]
	listeners map[uint64]Listener[O, A]
	nextID    uint64
}

// NewStore returns a Store holding InitialState(params).
func NewStore[O, A any](params Params[O, A]) *Store[O, A] {
	return &Store[O, A]{
		params:    params,
		state:     InitialState(params),
		listeners: make(map[uint64]Listener[O, A]),
	}
}

// State returns the current state. The returned value must be treated as
// read-only.
func (s *Store[O, A]) State() State[O, A] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and returns the resulting state.
func (s *Store[O, A]) Dispatch(action Action) State[O, A] {
	next, _ := s.dispatchIf(func(State[O, A]) (Action, bool) {
		return action, true
	})
	return next
}

// Subscribe registers fn for every future transition. Listeners run on the
// dispatching goroutine after the lock is released. The returned func
// removes the listener.
func (s *Store[O, A]) Subscribe(fn Listener[O, A]) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// dispatchIf lets decide inspect the current state and pick an action while
// holding the lock, so check-then-dispatch is atomic. It reports whether an
// action was applied.
func (s *Store[O, A]) dispatchIf(decide func(State[O, A]) (Action, bool)) (State[O, A], bool) {
	s.mu.Lock()
	action, ok := decide(s.state)
	if !ok {
		state := s.state
		s.mu.Unlock()
		return state, false
	}
	s.state = s.params.Reduce(s.state, action)
	state := s.state
	listeners := make([]Listener[O, A], 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(state)
	}
	return state, true
}
