package requests

type LoginUser struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

// SessionData is what the auth middleware stores in redis and hands to
// controllers through the request context.
type SessionData struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	RoleName  string `json:"role_name"`
}
