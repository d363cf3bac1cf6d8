package http

import (
	"encoding/json"
	"net/http"

	"mrs-backend/internal/security"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	if req.Username != s.auth.ClerkUser {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: security.ErrInvalidCredentials.Error()})
		return
	}
	if err := security.VerifyPassword(s.auth.ClerkPasswordHash, req.Password); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
		return
	}

	token, err := s.tokens.GenerateAccessToken(req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, ExpiresIn: s.expiry})
}
