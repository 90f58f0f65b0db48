package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

const (
	rewardsPath     = "/api/v1/proof-submissions/rewards"
	performancePath = "/api/v1/validators/performance"
	domainsPath     = "/api/v1/validators/domains"
	searchPath      = "/api/v1/suppliers/search"
)

// Defaults of the lookup endpoints.
const (
	DefaultDomainsLimit   = 100
	DefaultSearchLimit    = 20
	maxSearchLimit        = 100
	DefaultSupplierStatus = "staked"
)

// Rewards returns hourly reward samples. Requests naming a supplier always go
// out as POST; a comma separated supplier list is sent as the
// supplier_addresses array.
func (c *Client) Rewards(ctx context.Context, f model.RewardFilters) (model.RewardAnalyticsResponse, error) {
	q := url.Values{}
	setQuery(q, "chain", f.Chain)
	setQuery(q, "start_date", f.StartDate)
	setQuery(q, "end_date", f.EndDate)
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	req := request{operation: "rewards", path: rewardsPath}
	supplier := strings.TrimSpace(f.SupplierAddress)
	if supplier != "" || tooLong(rewardsPath, q) {
		body := map[string]any{}
		for k := range q {
			body[k] = q.Get(k)
		}
		setSuppliers(body, supplier)
		req.method, req.body = http.MethodPost, body
	} else {
		req.method, req.query = http.MethodGet, q
	}

	raw, err := c.send(ctx, req)
	if err != nil {
		return model.RewardAnalyticsResponse{}, err
	}
	resp, err := decode[model.RewardAnalyticsResponse](req.operation, raw)
	if err != nil {
		return model.RewardAnalyticsResponse{}, err
	}
	if resp.Data == nil {
		resp.Data = []model.RewardAnalytics{}
	}
	return resp, nil
}

// ValidatorPerformance returns bucketed performance samples. Several
// suppliers or an over-long query switch the request to POST. Concurrent
// identical calls share one request.
func (c *Client) ValidatorPerformance(ctx context.Context, f model.PerformanceFilters) (model.ValidatorPerformanceResponse, error) {
	if f.GroupBy != "" && !f.GroupBy.Valid() {
		return model.ValidatorPerformanceResponse{}, fmt.Errorf("%w: group_by %q", model.ErrInvalidFilter, f.GroupBy)
	}

	q := url.Values{}
	setQuery(q, "domain", f.Domain)
	setQuery(q, "owner_address", f.OwnerAddress)
	setQuery(q, "supplier_address", strings.TrimSpace(f.SupplierAddress))
	setQuery(q, "chain", f.Chain)
	setQuery(q, "service_id", f.ServiceID)
	setQuery(q, "start_date", f.StartDate)
	setQuery(q, "end_date", f.EndDate)
	setQuery(q, "group_by", string(f.GroupBy))
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}

	req := request{operation: "validator_performance", path: performancePath, shared: true}
	supplier := q.Get("supplier_address")
	if strings.Contains(supplier, ",") || tooLong(performancePath, q) {
		body := map[string]any{}
		for k := range q {
			body[k] = q.Get(k)
		}
		if f.Page > 0 {
			body["page"] = f.Page
		}
		if f.Limit > 0 {
			body["limit"] = f.Limit
		}
		setSuppliers(body, supplier)
		req.method, req.body = http.MethodPost, body
	} else {
		req.method, req.query = http.MethodGet, q
	}

	raw, err := c.send(ctx, req)
	if err != nil {
		return model.ValidatorPerformanceResponse{}, err
	}
	resp, err := decode[model.ValidatorPerformanceResponse](req.operation, raw)
	if err != nil {
		return model.ValidatorPerformanceResponse{}, err
	}
	if resp.Data == nil {
		resp.Data = []model.PerformanceDataPoint{}
	}
	return resp, nil
}

// Domains returns the domain leaderboard as sent by the indexer.
func (c *Client) Domains(ctx context.Context, limit int, chain string) (model.DomainLeaderboardResponse, error) {
	if limit <= 0 {
		limit = DefaultDomainsLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	setQuery(q, "chain", chain)

	raw, err := c.send(ctx, request{
		operation: "domains",
		method:    http.MethodGet,
		path:      domainsPath,
		query:     q,
		shared:    true,
	})
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("decode domains response: invalid json")
	}
	return model.DomainLeaderboardResponse(raw), nil
}

// SearchSuppliers looks up owners and operators matching a query. A blank
// query returns nil without a request. The limit is clamped to 1..100 and the
// status defaults to staked.
func (c *Client) SearchSuppliers(ctx context.Context, f model.SupplierSearchFilters) (*model.SupplierSearchResponse, error) {
	query := strings.TrimSpace(f.Query)
	if query == "" {
		return nil, nil
	}
	limit := f.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	limit = min(max(limit, 1), maxSearchLimit)
	status := f.Status
	if status == "" {
		status = DefaultSupplierStatus
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	setQuery(q, "chain", f.Chain)
	q.Set("status", status)

	raw, err := c.send(ctx, request{
		operation: "search_suppliers",
		method:    http.MethodGet,
		path:      searchPath,
		query:     q,
		shared:    true,
	})
	if err != nil {
		return nil, err
	}
	resp, err := decode[model.SupplierSearchResponse]("search_suppliers", raw)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// setSuppliers writes supplier into a POST body: a list becomes
// supplier_addresses, a single address stays supplier_address.
func setSuppliers(body map[string]any, supplier string) {
	delete(body, "supplier_address")
	addresses := splitList(supplier)
	switch len(addresses) {
	case 0:
	case 1:
		body["supplier_address"] = addresses[0]
	default:
		body["supplier_addresses"] = addresses
	}
}
