package transport

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
	"github.com/goodnatureofminers/pokt-explorer-backend/internal/service"
)

// HandleNetworkAverages serves network-wide baselines for a chain and window.
func (h *Handler) HandleNetworkAverages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.analytics.NetworkAverages(r.Context(), q.Get("chain"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleTopPerformers serves the top decile of suppliers.
func (h *Handler) HandleTopPerformers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resp, err := h.analytics.TopPerformers(r.Context(), q.Get("chain"), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSupplierDashboard serves trends, forecasts, anomalies and growth of
// one supplier.
func (h *Handler) HandleSupplierDashboard(w http.ResponseWriter, r *http.Request) {
	query, err := dashboardQuery(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp, err := h.analytics.SupplierDashboard(r.Context(), query)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSupplierTrendChart renders the supplier trend as a PNG.
func (h *Handler) HandleSupplierTrendChart(w http.ResponseWriter, r *http.Request) {
	query, err := dashboardQuery(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	query.Baselines = false
	dashboard, err := h.analytics.SupplierDashboard(r.Context(), query)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if dashboard.Trend.Len() < 2 {
		h.writeError(w, fmt.Errorf("trend of %s: %w", query.SupplierAddress, errNotFound))
		return
	}

	var buf bytes.Buffer
	if err := renderTrend(&buf, dashboard.Trend); err != nil {
		h.writeError(w, fmt.Errorf("render trend: %w", err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func dashboardQuery(r *http.Request) (service.DashboardQuery, error) {
	q := r.URL.Query()
	horizon, err := intParam(q, "horizon")
	if err != nil {
		return service.DashboardQuery{}, err
	}
	threshold, err := floatParam(q, "threshold")
	if err != nil {
		return service.DashboardQuery{}, err
	}
	baselines := true
	if raw := strings.TrimSpace(q.Get("baselines")); raw != "" {
		if baselines, err = strconv.ParseBool(raw); err != nil {
			return service.DashboardQuery{}, invalid("baselines must be a boolean")
		}
	}
	return service.DashboardQuery{
		SupplierAddress: mux.Vars(r)["address"],
		Chain:           q.Get("chain"),
		StartDate:       q.Get("start_date"),
		EndDate:         q.Get("end_date"),
		GroupBy:         model.GroupBy(q.Get("group_by")),
		Horizon:         horizon,
		Threshold:       threshold,
		Baselines:       baselines,
	}, nil
}
