package entity

// RouteDecision is the outcome of resolving a path for a role.
type RouteDecision struct {
	Path       string `json:"path"`
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirect_to,omitempty"`
	View       string `json:"view,omitempty"` // name of the view rendered at Path
}
