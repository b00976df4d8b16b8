package paginate

// Kind tags an Action. Values are stable strings so actions can be logged
// or serialised.
type Kind string

const (
	KindSetLoading    Kind = "SET_LOADING"
	KindUnsetLoading  Kind = "UNSET_LOADING"
	KindLoadSuccess   Kind = "ON_LOAD_SUCCESS"
	KindSetInputValue Kind = "SET_INPUT_VALUE"
	KindSetMenuIsOpen Kind = "SET_MENU_IS_OPEN"
	KindReset         Kind = "RESET"
)

// Action describes one state transition. Reduce ignores actions it does not
// recognise.
type Action interface {
	Kind() Kind
}

// SetLoading marks the entry for InputValue as loading, creating it when
// absent.
type SetLoading struct {
	InputValue string `json:"inputValue"`
}

// UnsetLoading clears the loading flag after a failed or abandoned load.
type UnsetLoading struct {
	InputValue string `json:"inputValue"`
	// IsClean removes the entry so the next attempt starts over.
	IsClean bool `json:"isClean"`
}

// LoadSuccess merges a page into the entry for InputValue.
type LoadSuccess[O, A any] struct {
	InputValue string         `json:"inputValue"`
	Response   Response[O, A] `json:"response"`
}

// SetInputValue replaces the current search text.
type SetInputValue struct {
	InputValue string `json:"inputValue"`
}

// SetMenuIsOpen records whether the dropdown is open.
type SetMenuIsOpen struct {
	MenuIsOpen bool `json:"menuIsOpen"`
}

// Reset returns the state to the one built at construction.
type Reset struct{}

func (SetLoading) Kind() Kind        { return KindSetLoading }
func (UnsetLoading) Kind() Kind      { return KindUnsetLoading }
func (LoadSuccess[O, A]) Kind() Kind { return KindLoadSuccess }
func (SetInputValue) Kind() Kind     { return KindSetInputValue }
func (SetMenuIsOpen) Kind() Kind     { return KindSetMenuIsOpen }
func (Reset) Kind() Kind             { return KindReset }
