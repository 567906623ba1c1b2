package models

// RegisterRequest is the body of a registration call.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of a login call.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GenerateRequest is the body of a generation call. MaxTokens is a hint and
// defaults to 1000 when omitted.
type GenerateRequest struct {
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

// GeneratedTextResponse is the projection of a stored prompt/response pair
// returned by the responses listing.
type GeneratedTextResponse struct {
	ID       uint   `json:"id"`
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
}
