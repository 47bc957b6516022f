package identity

// TokenRequest carries client credentials.
type TokenRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}
