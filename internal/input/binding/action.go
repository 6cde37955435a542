package binding

// Action identifies what a chord triggers. The name is the unique external
// identifier; the description is documentation for configuration tools.
type Action struct {
	// Name is the action identifier (e.g., "interact", "editor.save").
	Name string

	// Description provides documentation for the action.
	Description string
}

// NewAction creates an action with the given name and description.
func NewAction(name, description string) Action {
	return Action{
		Name:        name,
		Description: description,
	}
}

// String returns the action name.
func (a Action) String() string {
	return a.Name
}
