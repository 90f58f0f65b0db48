package transport

import (
	"net/http"
	"strings"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

// HandleTransactions serves a page of transactions, rebuilt from the node
// when the indexer is down.
func (h *Handler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	f, err := transactionFilters(r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp, err := h.transactions.Fetch(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleTransactionStats passes the indexer statistics through.
func (h *Handler) HandleTransactionStats(w http.ResponseWriter, r *http.Request) {
	f, err := transactionFilters(r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return
	}
	stats, err := h.indexer.FetchTransactionStats(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleValidatorPerformance passes performance samples through.
func (h *Handler) HandleValidatorPerformance(w http.ResponseWriter, r *http.Request) {
	f, err := performanceFilters(r.URL.Query())
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp, err := h.indexer.ValidatorPerformance(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleDomains passes the domain leaderboard through.
func (h *Handler) HandleDomains(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q, "limit")
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp, err := h.indexer.Domains(r.Context(), limit, q.Get("chain"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleSupplierSearch looks up owners and operators. A blank query answers
// with empty lists.
func (h *Handler) HandleSupplierSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := intParam(q, "limit")
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp, err := h.indexer.SearchSuppliers(r.Context(), model.SupplierSearchFilters{
		Query:  strings.TrimSpace(q.Get("q")),
		Chain:  q.Get("chain"),
		Status: q.Get("status"),
		Limit:  limit,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	if resp == nil {
		resp = &model.SupplierSearchResponse{OwnerAddresses: []string{}, SupplierOperatorAddresses: []string{}}
	}
	writeJSON(w, http.StatusOK, resp)
}
