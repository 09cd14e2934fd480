package model

// Identity is the connected account as reported by the auth service.
// The handle is the human-facing name messages are attributed to.
type Identity struct {
	ID     string `json:"id"`
	Handle string `json:"email"`
}
