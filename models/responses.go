package models

// MessageResponse is the bare `{"msg": ...}` envelope used by most endpoints,
// including the many failure branches that still answer 200 with a
// descriptive message.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the `{"error": ...}` envelope used by the two 400
// already-exists branches (POST /user and POST /signup).
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResultsResponse is the `{"msg": "ok", "results": ...}` envelope of all
// successful reads. ID is populated only by the get-one-character endpoint,
// which historically duplicated the record id at the top level.
type ResultsResponse struct {
	Msg     string `json:"msg"`
	ID      *int64 `json:"id,omitempty"`
	Results any    `json:"results"`
}

// TokenResponse carries the bearer token issued by /login and /signup.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ValidTokenResponse is the payload of GET /valid-token.
type ValidTokenResponse struct {
	Msg      string `json:"msg,omitempty"`
	IsLogged bool   `json:"is_logged"`
}
