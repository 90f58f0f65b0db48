package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/address"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/indexer"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/service"
)

// Handler serves the explorer API.
type Handler struct {
	transactions TransactionFetcher
	indexer      IndexerAPI
	analytics    Analytics
	codec        *address.Codec
	metrics      Metrics
	logger       *zap.Logger
}

// NewHandler returns a Handler. A nil codec uses address.Default().
func NewHandler(
	transactions TransactionFetcher,
	indexerAPI IndexerAPI,
	analyticsService Analytics,
	codec *address.Codec,
	metrics Metrics,
	logger *zap.Logger,
) *Handler {
	if codec == nil {
		codec = address.Default()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		transactions: transactions,
		indexer:      indexerAPI,
		analytics:    analyticsService,
		codec:        codec,
		metrics:      metrics,
		logger:       logger.Named("http"),
	}
}

// NewRouter returns a router with every API route.
func (h *Handler) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.observe)

	r.HandleFunc("/health", h.HandleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/transactions", h.HandleTransactions).Methods(http.MethodGet)
	api.HandleFunc("/transactions/stats", h.HandleTransactionStats).Methods(http.MethodGet)

	api.HandleFunc("/analytics/network-averages", h.HandleNetworkAverages).Methods(http.MethodGet)
	api.HandleFunc("/analytics/top-performers", h.HandleTopPerformers).Methods(http.MethodGet)
	api.HandleFunc("/analytics/suppliers/{address}", h.HandleSupplierDashboard).Methods(http.MethodGet)
	api.HandleFunc("/analytics/suppliers/{address}/trend.png", h.HandleSupplierTrendChart).Methods(http.MethodGet)

	api.HandleFunc("/validators/performance", h.HandleValidatorPerformance).Methods(http.MethodGet)
	api.HandleFunc("/validators/domains", h.HandleDomains).Methods(http.MethodGet)
	api.HandleFunc("/suppliers/search", h.HandleSupplierSearch).Methods(http.MethodGet)

	api.HandleFunc("/addresses/{address}", h.HandleAddress).Methods(http.MethodGet)
	api.HandleFunc("/operators/{address}/account", h.HandleOperatorAccount).Methods(http.MethodGet)
	api.HandleFunc("/pubkeys/address", h.HandlePubKeyAddresses).Methods(http.MethodPost)

	return r
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// observe records the status and duration of every request by route
// template.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		var route string
		if current := mux.CurrentRoute(r); current != nil {
			route, _ = current.GetPathTemplate()
		}
		h.metrics.Observe(route, rec.status, started)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code and writes {"error": msg}.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusOf(err error) int {
	var (
		unavailable *service.UnavailableError
		upstream    *indexer.HTTPError
		decode      *address.DecodeError
	)
	switch {
	case errors.Is(err, model.ErrInvalidFilter), errors.As(err, &decode):
		return http.StatusBadRequest
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &upstream):
		if upstream.Status >= http.StatusInternalServerError {
			return http.StatusBadGateway
		}
		return upstream.Status
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
