package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"server/internal/domain"
)

func (a *App) VolunteersCreate(w http.ResponseWriter, r *http.Request) {
	var msg domain.VolunteerMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := msg.Validate(); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	res := a.Backend.SubmitVolunteerApplication(r.Context(), msg, bearerToken(r))
	a.json(w, http.StatusOK, res)
}

type interestsUpdateRequest struct {
	Email       string  `json:"email"`
	InterestIDs []int64 `json:"interest_ids"`
}

func (a *App) InterestsUpdate(w http.ResponseWriter, r *http.Request) {
	var req interestsUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email is required")
		return
	}
	res := a.Backend.UpdateVolunteerInterests(r.Context(), req.Email, req.InterestIDs, bearerToken(r))
	a.json(w, http.StatusOK, res)
}

type profileUpdateRequest struct {
	Email            string `json:"email"`
	AboutMyself      string `json:"about_myself"`
	EmergencyContact string `json:"emergency_contact"`
}

func (a *App) ProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "email is required")
		return
	}
	res := a.Backend.UpdateVolunteerProfile(r.Context(), req.Email, req.AboutMyself, req.EmergencyContact, bearerToken(r))
	a.json(w, http.StatusOK, res)
}
