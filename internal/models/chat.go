package models

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Question  string `json:"question"`
	MaxTokens int    `json:"max_tokens"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
