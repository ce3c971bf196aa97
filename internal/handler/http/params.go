package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Emerydith/LuciaPach-StarWars-API/internal/logger"
	"github.com/Emerydith/LuciaPach-StarWars-API/internal/utils"
)

// idParam parses a numeric URL parameter. A non-numeric value answers 404,
// matching a router that only matched integer path segments, and the second
// return value reports whether the handler should continue.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// identityEmail retrieves the authenticated identity placed in the request
// context by the auth middleware. A missing identity means the middleware
// did not run; the request is rejected as unauthorized.
func identityEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no identity in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}
	return email, true
}
