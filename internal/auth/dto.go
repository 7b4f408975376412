package auth

// LoginRequest captures the admin credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`

	// ClientIP is populated by the controller, never by the request body.
	ClientIP string `json:"-"`
}

// LoginResponse contains the token pair produced by a successful login.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Email        string `json:"email"`
}

// RefreshRequest carries the expired access token together with its refresh token.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest identifies the session to revoke.
type LogoutRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}
