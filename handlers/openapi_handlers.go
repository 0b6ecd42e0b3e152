package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"todolist/database"
	"todolist/internal/generated/openapi"
	"todolist/internal/log"
)

// ItemAPIServer implements the openapi.ServerInterface
type ItemAPIServer struct {
	DB *sql.DB
}

var _ openapi.ServerInterface = (*ItemAPIServer)(nil)

// NewItemAPIServer creates a new ItemAPIServer.
func NewItemAPIServer(db *sql.DB) *ItemAPIServer {
	return &ItemAPIServer{DB: db}
}

// Alive answers the liveness probe.
func (s *ItemAPIServer) Alive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, openapi.Alive{Alive: true})
}

// ListItems returns every item in server order.
func (s *ItemAPIServer) ListItems(w http.ResponseWriter, r *http.Request) {
	dbItems, err := database.GetItems(s.DB)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve items: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toAPIItems(dbItems))
}

// CreateItem stores a new item under a server-assigned UUID.
func (s *ItemAPIServer) CreateItem(w http.ResponseWriter, r *http.Request) {
	var requestBody openapi.CreateItemJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	item, err := database.CreateItem(s.DB, requestBody.Name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create item: "+err.Error())
		return
	}

	log.Debug().Str("uuid", item.UUID).Msg("item created")
	writeJSON(w, http.StatusCreated, toAPIItem(item))
}

// CreateItemLegacy serves the pre-/items create path.
func (s *ItemAPIServer) CreateItemLegacy(w http.ResponseWriter, r *http.Request) {
	s.CreateItem(w, r)
}

// UpdateItem sets the done flag and answers with the whole collection.
func (s *ItemAPIServer) UpdateItem(w http.ResponseWriter, r *http.Request, uuid openapi.ItemUUID) {
	var requestBody openapi.UpdateItemJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	if _, err := database.UpdateItemDone(s.DB, uuid.String(), requestBody.Done); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Item not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to update item: "+err.Error())
		}
		return
	}

	dbItems, err := database.GetItems(s.DB)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Item updated, but failed to retrieve items: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toAPIItems(dbItems))
}

// UpdateItemLegacy serves the pre-/items update path.
func (s *ItemAPIServer) UpdateItemLegacy(w http.ResponseWriter, r *http.Request, uuid openapi.ItemUUID) {
	s.UpdateItem(w, r, uuid)
}

// DeleteItem removes an item.
func (s *ItemAPIServer) DeleteItem(w http.ResponseWriter, r *http.Request, uuid openapi.ItemUUID) {
	if _, err := database.DeleteItem(s.DB, uuid.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Item not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to delete item: "+err.Error())
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
