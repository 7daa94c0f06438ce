package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-app-scaffold/internal/service"
	"github.com/MKhiriev/go-app-scaffold/internal/utils"
	"github.com/MKhiriev/go-app-scaffold/models"
)

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.ItemService.GetItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, service.ErrItemNotFound)
		return
	}

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/items/%d", item.ID))
	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, service.ErrItemNotFound)
		return
	}

	var req models.UpdateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, r, service.ErrItemNotFound)
		return
	}

	if err := h.services.ItemService.DeleteItem(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
