package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	domitem "example.com/order-management/internal/domain/item"
	domorder "example.com/order-management/internal/domain/order"
	"example.com/order-management/internal/domain/validation"
	"example.com/order-management/internal/infra/security"
	itemuc "example.com/order-management/internal/usecase/item"
	orderuc "example.com/order-management/internal/usecase/order"
)

type TokenParser interface {
	ParseToken(token string) (*security.Claims, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	orderSvc       *orderuc.Service
	itemSvc        *itemuc.Service
	tokenSvc       TokenParser
	store          Pinger
	metricsHandler http.Handler
	logger         logrus.FieldLogger
	validator      *validator.Validate
}

// Dependencies wires the API. A nil TokenService leaves mutating routes open;
// a nil MetricsHandler leaves /metrics unmounted.
type Dependencies struct {
	OrderService   *orderuc.Service
	ItemService    *itemuc.Service
	TokenService   TokenParser
	Store          Pinger
	MetricsHandler http.Handler
	Logger         logrus.FieldLogger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &API{
		orderSvc:       deps.OrderService,
		itemSvc:        deps.ItemService,
		tokenSvc:       deps.TokenService,
		store:          deps.Store,
		metricsHandler: deps.MetricsHandler,
		logger:         logger.WithField("component", "http"),
		validator:      validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestLogger(&chimw.DefaultLogFormatter{Logger: a.logger, NoColor: true}))
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/db", a.handleStoreHealth)
	if a.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", a.metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items", a.handleListItems)
		r.Get("/items/{id}", a.handleGetItem)
		r.Get("/orders", a.handleListOrders)
		r.Get("/orders/{id}", a.handleGetOrder)

		r.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Post("/orders", a.handleCreateOrder)
			pr.Put("/orders/{id}", a.handleUpdateOrder)
			pr.Delete("/orders/{id}", a.handleDeleteOrder)
			pr.Post("/orders/{id}/items", a.handleCreateItem)
			pr.Put("/items/{id}", a.handleUpdateItem)
			pr.Delete("/items/{id}", a.handleDeleteItem)
		})
	})

	return r
}

func (a *API) handleStoreHealth(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	if err := a.store.Ping(r.Context()); err != nil {
		a.logger.WithError(err).Warn("store ping failed")
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

var errTrailingData = errors.New("unexpected data after JSON value")

// decodeBody reads a single JSON value into untyped values, keeping numbers as json.Number.
// An empty body decodes to nil.
func decodeBody(r *http.Request) (any, error) {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var data any
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	return data, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (a *API) parseIDParam(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil {
		return 0, err
	}
	if err := a.validator.Var(id, "gt=0"); err != nil {
		return 0, err
	}
	return id, nil
}

func (a *API) handleDomainError(w http.ResponseWriter, err error) {
	if verr, ok := validation.AsError(err); ok {
		respondError(w, http.StatusBadRequest, verr)
		return
	}
	switch {
	case errors.Is(err, domorder.ErrOrderNotFound),
		errors.Is(err, domitem.ErrItemNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domitem.ErrUnknownOrder):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domorder.ErrOrderHasItems):
		respondError(w, http.StatusConflict, err)
	default:
		a.logger.WithError(err).Error("request failed")
		respondError(w, http.StatusInternalServerError, err)
	}
}
