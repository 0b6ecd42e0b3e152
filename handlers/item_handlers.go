package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"todolist/internal/generated/openapi"
	"todolist/internal/log"
	"todolist/models"
)

func toAPIItem(item models.Item) openapi.Item {
	return openapi.Item{UUID: item.UUID, Name: item.Name, Done: item.Done}
}

// toAPIItems never returns nil so an empty collection encodes as [].
func toAPIItems(items []models.Item) []openapi.Item {
	out := make([]openapi.Item, len(items))
	for i, item := range items {
		out[i] = toAPIItem(item)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out.
		log.Warn().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, openapi.Error{Error: msg})
}

// paramErrorHandler answers path parameter binding failures from the generated wrapper.
func paramErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	var e *openapi.InvalidParamFormatError
	if errors.As(err, &e) {
		writeError(w, http.StatusBadRequest, e.Error())
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
