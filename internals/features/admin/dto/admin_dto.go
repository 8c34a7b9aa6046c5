package dto

// AdminRequest is the dashboard's single POST surface: the shared
// password plus an action discriminator and an optional event filter.
type AdminRequest struct {
	Password string `json:"password"`
	Action   string `json:"action"`
	EventID  string `json:"eventId"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}
