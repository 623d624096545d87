package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"server/internal/backend"
	"server/internal/domain"
	"server/internal/infra"
)

// Backend is the slice of the backend client the handlers consume. Tests
// substitute a fake.
type Backend interface {
	SubmitVolunteerApplication(ctx context.Context, msg domain.VolunteerMessage, token string) backend.Result
	SendSignupEmail(ctx context.Context, to, redirectTo, body string) backend.Result
	UpdateVolunteerInterests(ctx context.Context, email string, interestIDs []int64, token string) backend.Result
	UpdateVolunteerProfile(ctx context.Context, email, aboutMyself, emergencyContact string, token string) backend.Result
	FetchInterests(ctx context.Context, categoryID int, token string) []domain.Interest
}

type App struct {
	Backend Backend
	Cfg     *infra.Config
	Log     infra.Logger
}

func NewApp(b Backend, cfg *infra.Config, log infra.Logger) *App {
	return &App{Backend: b, Cfg: cfg, Log: log}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, msg string) {
	a.Log.Debug().Int("status", code).Str("error", errCode).Msg(msg)
	a.json(w, code, map[string]string{"error": errCode, "message": msg})
}

// bearerToken extracts the caller's token from the Authorization header.
// The token is opaque here; the remote backend owns validation.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
