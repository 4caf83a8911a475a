package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"

	"github.com/gorilla/mux"
)

// errorWriter maps usecase errors that every handler shares
type errorWriter struct {
	debug bool
}

func (e errorWriter) write(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidData):
		response.ValidationError(w, map[string]string{"data": err.Error()})
	default:
		var details interface{}
		if e.debug {
			details = err.Error()
		}
		response.InternalServerError(w, "Failed to "+action, details)
	}
}

// decodeBody reports a 422 when the body is not valid JSON
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.ValidationError(w, map[string]string{"body": "Invalid request body"})
		return false
	}
	return true
}

// pathID reads the {id} route variable as a positive integer
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil || id == 0 {
		response.ValidationError(w, map[string]string{"id": "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}

// queryInt returns fallback when the parameter is absent
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
