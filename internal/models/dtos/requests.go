package dtos

// ToggleActiveRequest is the payload of the toggle-active action. Active is a
// pointer so a missing field can be told apart from false.
type ToggleActiveRequest struct {
	Active *bool `json:"active"`
}
