package indexer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
	"github.com/goodnatureofminers/pokt-explorer-backend/pkg/workerpool"
)

const (
	transactionsPath      = "/api/v1/transactions"
	transactionsStatsPath = "/api/v1/transactions/stats"
)

// FetchTransactions returns one page of transactions. Several Types are
// fetched concurrently, one request per type, and merged: totals are summed,
// the union is re-sorted by timestamp or block height (other sort keys keep
// merge order) and truncated to the limit.
func (c *Client) FetchTransactions(ctx context.Context, filters model.TransactionFilters) (model.TransactionsResponse, error) {
	f, err := filters.Normalize()
	if err != nil {
		return model.TransactionsResponse{}, err
	}
	if len(f.Types) == 1 {
		f.Type, f.Types = f.Types[0], nil
	}
	if len(f.Types) > 1 {
		return c.fetchMerged(ctx, f)
	}
	return c.fetchPage(ctx, f)
}

// FetchTransactionStats returns the indexer statistics payload for filters.
// Pagination and sorting are ignored.
func (c *Client) FetchTransactionStats(ctx context.Context, filters model.TransactionFilters) (json.RawMessage, error) {
	method, query, body := transactionParams(transactionsStatsPath, filters, false)
	raw, err := c.send(ctx, request{
		operation: "transaction_stats",
		method:    method,
		path:      transactionsStatsPath,
		query:     query,
		body:      body,
	})
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("decode transaction_stats response: invalid json")
	}
	return json.RawMessage(raw), nil
}

func (c *Client) fetchPage(ctx context.Context, f model.TransactionFilters) (model.TransactionsResponse, error) {
	method, query, body := transactionParams(transactionsPath, f, true)
	raw, err := c.send(ctx, request{
		operation: "transactions",
		method:    method,
		path:      transactionsPath,
		query:     query,
		body:      body,
	})
	if err != nil {
		return model.TransactionsResponse{}, err
	}
	resp, err := decode[model.TransactionsResponse]("transactions", raw)
	if err != nil {
		return model.TransactionsResponse{}, err
	}
	if resp.Data == nil {
		resp.Data = []model.Transaction{}
	}
	return resp, nil
}

func (c *Client) fetchMerged(ctx context.Context, f model.TransactionFilters) (model.TransactionsResponse, error) {
	pages, err := workerpool.Map(ctx, len(f.Types), f.Types, func(ctx context.Context, txType string) (model.TransactionsResponse, error) {
		single := f
		single.Type, single.Types = txType, nil
		return c.fetchPage(ctx, single)
	})
	if err != nil {
		return model.TransactionsResponse{}, err
	}

	var (
		total  int64
		failed int64
		data   []model.Transaction
	)
	for _, p := range pages {
		total += p.Meta.Total
		if p.Meta.FailedLast24h != nil {
			failed += *p.Meta.FailedLast24h
		}
		data = append(data, p.Data...)
	}
	sortTransactions(data, f.SortBy, f.SortOrder)
	if len(data) > f.Limit {
		data = data[:f.Limit]
	}
	if data == nil {
		data = []model.Transaction{}
	}

	limit := int64(f.Limit)
	return model.TransactionsResponse{
		Data: data,
		Meta: model.TransactionsMeta{
			Total:         total,
			Page:          f.Page,
			Limit:         f.Limit,
			TotalPages:    (total + limit - 1) / limit,
			FailedLast24h: &failed,
		},
	}, nil
}

func sortTransactions(txs []model.Transaction, by model.SortBy, order model.SortOrder) {
	var less func(a, b model.Transaction) bool
	switch by {
	case model.SortByTimestamp:
		less = func(a, b model.Transaction) bool { return a.Timestamp.Before(b.Timestamp) }
	case model.SortByBlockHeight:
		less = func(a, b model.Transaction) bool { return a.BlockHeight < b.BlockHeight }
	default:
		return
	}
	sort.SliceStable(txs, func(i, j int) bool {
		if order == model.SortOrderAsc {
			return less(txs[i], txs[j])
		}
		return less(txs[j], txs[i])
	})
}

// transactionParams encodes filters either as a query string (GET) or as a
// JSON body (POST). POST is used when no address is given, when the list is
// longer than maxGetAddresses or when the URL would exceed maxQueryLength.
func transactionParams(path string, f model.TransactionFilters, paginate bool) (string, url.Values, map[string]any) {
	addresses := f.AddressList()

	if len(addresses) > 0 && len(addresses) <= maxGetAddresses {
		if q := transactionQuery(f, addresses, paginate); !tooLong(path, q) {
			return http.MethodGet, q, nil
		}
	}

	body := map[string]any{}
	if paginate {
		body["page"] = f.Page
		body["limit"] = f.Limit
		body["sort_by"] = f.SortBy
		body["sort_order"] = f.SortOrder
	}
	if len(addresses) > 0 {
		body["addresses"] = addresses
	}
	setIf(body, "type", f.Type)
	setIf(body, "status", f.Status)
	setIf(body, "chain", f.Chain)
	setIf(body, "start_date", f.StartDate)
	setIf(body, "end_date", f.EndDate)
	if f.MinAmount != nil {
		body["min_amount"] = json.Number(f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		body["max_amount"] = json.Number(f.MaxAmount.String())
	}
	return http.MethodPost, nil, body
}

func transactionQuery(f model.TransactionFilters, addresses []string, paginate bool) url.Values {
	q := url.Values{}
	if len(addresses) == 1 {
		q.Set("address", addresses[0])
	} else {
		q.Set("addresses", strings.Join(addresses, ","))
	}
	setQuery(q, "type", f.Type)
	setQuery(q, "status", f.Status)
	setQuery(q, "chain", f.Chain)
	setQuery(q, "start_date", f.StartDate)
	setQuery(q, "end_date", f.EndDate)
	if f.MinAmount != nil {
		q.Set("min_amount", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		q.Set("max_amount", f.MaxAmount.String())
	}
	if paginate {
		q.Set("page", strconv.Itoa(f.Page))
		q.Set("limit", strconv.Itoa(f.Limit))
		q.Set("sort_by", string(f.SortBy))
		q.Set("sort_order", string(f.SortOrder))
	}
	return q
}

func setIf(body map[string]any, key, value string) {
	if value != "" {
		body[key] = value
	}
}

func setQuery(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
