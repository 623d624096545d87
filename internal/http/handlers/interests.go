package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/domain"
)

// InterestsList serves one interest category by its URL group slug. A
// backend failure surfaces as an empty items array, matching the silent
// degraded mode of the fetch operation.
func (a *App) InterestsList(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	categoryID, ok := domain.InterestCategory(group)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "unknown interest group")
		return
	}
	items := a.Backend.FetchInterests(r.Context(), categoryID, bearerToken(r))
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
