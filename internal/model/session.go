package model

// SessionUser is the slice of the account kept next to the token; it never
// carries the password hash.
type SessionUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the persisted "who is logged in" record. The token is opaque to
// the client: a JWT in remote mode, a random string in local mode.
type Session struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
