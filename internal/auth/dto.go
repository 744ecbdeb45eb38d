package auth

// LoginDTO is the transport shape accepted by the login endpoint.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterDTO is the transport shape accepted by the registration endpoint.
type RegisterDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the established session and the access token the
// REST consumer presents on subsequent requests.
type LoginResponse struct {
	Session     *Session `json:"session"`
	AccessToken string   `json:"access_token"`
}
