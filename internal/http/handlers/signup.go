package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
)

type signupLinkRequest struct {
	Email      string `json:"email"`
	RedirectTo string `json:"redirect_to"`
}

// SignupLink asks the backend to email a signup link. The redirect target
// defaults from configuration so the web client does not have to know its
// own deploy URL.
func (a *App) SignupLink(w http.ResponseWriter, r *http.Request) {
	var req signupLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email is required")
		return
	}
	redirect := req.RedirectTo
	if redirect == "" {
		redirect = a.Cfg.SignupRedirectURL
	}
	res := a.Backend.SendSignupEmail(r.Context(), req.Email, redirect, "")
	a.json(w, http.StatusOK, res)
}
