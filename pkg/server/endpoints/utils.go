package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"loanledger/pkg/amortization"
	"loanledger/pkg/identity"
	"loanledger/pkg/model"
	"loanledger/pkg/server/service"
)

// callerID returns the resolved caller identity, or writes a 401 and
// returns false when the request carries none.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := identity.Get(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "identity required")
		return 0, false
	}
	return id.UserID, true
}

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithServiceError maps the service error taxonomy onto HTTP status
// codes: validation and range errors are the caller's fault (400), missing
// records are 404, ownership and grant failures are 403, anything else is a
// server fault (500).
func respondWithServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr *model.ValidationError
		rangeErr      *amortization.OutOfRangeError
		notFoundErr   *service.NotFoundError
		permissionErr *service.PermissionError
	)

	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, http.StatusBadRequest, validationErr.Error())
	case errors.As(err, &rangeErr):
		respondWithError(w, http.StatusBadRequest, rangeErr.Error())
	case errors.As(err, &notFoundErr):
		respondWithError(w, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &permissionErr):
		respondWithError(w, http.StatusForbidden, permissionErr.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
