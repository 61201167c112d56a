package http

import (
	"net/http"

	domitem "example.com/order-management/internal/domain/item"
	"example.com/order-management/internal/domain/validation"
)

func (a *API) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := a.itemSvc.All(r.Context())
	if err != nil {
		a.handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(items))
	for _, it := range items {
		resp = append(resp, it.Serialize())
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := a.parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	it, err := a.itemSvc.Get(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}
	if it == nil {
		respondError(w, http.StatusNotFound, domitem.ErrItemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, it.Serialize())
}

// handleCreateItem adds an item to the order named in the path.
func (a *API) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	orderID, err := a.parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	data, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, validation.MalformedBody("item", ""))
		return
	}
	it, err := a.itemSvc.Create(r.Context(), orderID, data)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}
	a.logger.WithField("subject", subjectFromContext(r.Context())).WithField("id", it.ID).Info("item created")
	writeJSON(w, http.StatusCreated, it.Serialize())
}

func (a *API) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := a.parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	data, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, validation.MalformedBody("item", ""))
		return
	}
	it, err := a.itemSvc.Update(r.Context(), id, data)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it.Serialize())
}

func (a *API) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := a.parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	it, err := a.itemSvc.Get(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}
	if it == nil {
		respondError(w, http.StatusNotFound, domitem.ErrItemNotFound)
		return
	}
	if err := a.itemSvc.Delete(r.Context(), it); err != nil {
		a.handleDomainError(w, err)
		return
	}
	a.logger.WithField("subject", subjectFromContext(r.Context())).WithField("id", id).Info("item deleted")
	w.WriteHeader(http.StatusNoContent)
}
