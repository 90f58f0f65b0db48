package transport

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/pokt-explorer-backend/internal/model"
)

var errNotFound = errors.New("not found")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrInvalidFilter, fmt.Sprintf(format, args...))
}

func intParam(q url.Values, key string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, invalid("%s must be a non-negative integer", key)
	}
	return v, nil
}

func floatParam(q url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalid("%s must be a number", key)
	}
	return v, nil
}

func decimalParam(q url.Values, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, invalid("%s must be a decimal", key)
	}
	return &v, nil
}

func listParam(q url.Values, key string) []string {
	var out []string
	for _, value := range q[key] {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func transactionFilters(q url.Values) (model.TransactionFilters, error) {
	f := model.TransactionFilters{
		Address:   strings.TrimSpace(q.Get("address")),
		Addresses: listParam(q, "addresses"),
		Type:      q.Get("type"),
		Types:     listParam(q, "types"),
		Status:    q.Get("status"),
		Chain:     q.Get("chain"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		SortBy:    model.SortBy(q.Get("sort_by")),
		SortOrder: model.SortOrder(q.Get("sort_order")),
	}

	var err error
	if f.MinAmount, err = decimalParam(q, "min_amount"); err != nil {
		return f, err
	}
	if f.MaxAmount, err = decimalParam(q, "max_amount"); err != nil {
		return f, err
	}
	if f.Page, err = intParam(q, "page"); err != nil {
		return f, err
	}
	if f.Limit, err = intParam(q, "limit"); err != nil {
		return f, err
	}
	return f, nil
}

func performanceFilters(q url.Values) (model.PerformanceFilters, error) {
	f := model.PerformanceFilters{
		Domain:          q.Get("domain"),
		OwnerAddress:    q.Get("owner_address"),
		SupplierAddress: strings.Join(listParam(q, "supplier_address"), ","),
		Chain:           q.Get("chain"),
		ServiceID:       q.Get("service_id"),
		StartDate:       q.Get("start_date"),
		EndDate:         q.Get("end_date"),
		GroupBy:         model.GroupBy(q.Get("group_by")),
	}

	var err error
	if f.Page, err = intParam(q, "page"); err != nil {
		return f, err
	}
	if f.Limit, err = intParam(q, "limit"); err != nil {
		return f, err
	}
	return f, nil
}
