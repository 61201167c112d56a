package http

import (
	"net/http"
	"strconv"

	domorder "example.com/order-management/internal/domain/order"
	"example.com/order-management/internal/domain/validation"
)

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	var (
		orders []*domorder.Order
		err    error
	)
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		customerID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			respondError(w, http.StatusBadRequest, validation.MalformedBody("order", "customer_id"))
			return
		}
		orders, err = a.orderSvc.FindByCustomerID(r.Context(), customerID)
	} else {
		orders, err = a.orderSvc.All(r.Context())
	}
	if err != nil {
		a.handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, o.Serialize())
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := a.parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	o, err := a.orderSvc.Get(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}
	if o == nil {
		respondError(w, http.StatusNotFound, domorder.ErrOrderNotFound)
		return
	}
	writeJSON(w, http.StatusOK, o.Serialize())
}

func (a *API) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, validation.MalformedBody("order", ""))
		return
	}
	o, err := a.orderSvc.Create(r.Context(), data)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}
	a.logger.WithField("subject", subjectFromContext(r.Context())).WithField("id", o.ID).Info("order created")
	writeJSON(w, http.StatusCreated, o.Serialize())
}

func (a *API) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := a.parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	data, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, validation.MalformedBody("order", ""))
		return
	}
	o, err := a.orderSvc.Update(r.Context(), id, data)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o.Serialize())
}

func (a *API) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := a.parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	o, err := a.orderSvc.Get(r.Context(), id)
	if err != nil {
		a.handleDomainError(w, err)
		return
	}
	if o == nil {
		respondError(w, http.StatusNotFound, domorder.ErrOrderNotFound)
		return
	}
	if err := a.orderSvc.Delete(r.Context(), o); err != nil {
		a.handleDomainError(w, err)
		return
	}
	a.logger.WithField("subject", subjectFromContext(r.Context())).WithField("id", id).Info("order deleted")
	w.WriteHeader(http.StatusNoContent)
}
