// Package backend provides the FitLink backend API client
package backend

// RegisterRequest is the JSON body for POST /auth/register. Field names
// must match the backend schema exactly.
type RegisterRequest struct {
	Carnet          string `json:"carnet"`
	Nombre          string `json:"nombre"`
	Biografia       string `json:"biografia"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Ciudad          string `json:"ciudad"`
	Foto            string `json:"foto"`
	Email           string `json:"email"`
	Password        string `json:"password"`
}

// LoginRequest is the JSON body for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session carries the bearer credential issued on login
type Session struct {
	AccessToken string `json:"access_token"`
}

// LoginResponse is the decoded body of a login response. Session is a
// pointer so that a missing session distinguishes itself from an empty one.
type LoginResponse struct {
	Message string   `json:"message"`
	Session *Session `json:"session"`
	Detail  string   `json:"detail"`
}

// Token returns the bearer token, or "" when the response carried none
func (r *LoginResponse) Token() string {
	if r == nil || r.Session == nil {
		return ""
	}
	return r.Session.AccessToken
}

// LoginResult pairs the decoded login response with the raw body for display
type LoginResult struct {
	StatusCode int
	Body       []byte
	Response   LoginResponse
}

// Token returns the bearer token extracted from the login response
func (r *LoginResult) Token() string {
	return r.Response.Token()
}

// RawResult is a service-defined response surfaced verbatim to the operator.
// The flow never interprets it beyond logging.
type RawResult struct {
	StatusCode int
	Body       []byte
}

// HealthResponse is the decoded body of GET /health
type HealthResponse struct {
	OK bool `json:"ok"`
}
