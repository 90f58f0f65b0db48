package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SortBy is a transaction sort key accepted by the indexer.
type SortBy string

// Sort keys accepted by the transactions endpoint.
const (
	SortByTimestamp   SortBy = "timestamp"
	SortByAmount      SortBy = "amount"
	SortByFee         SortBy = "fee"
	SortByBlockHeight SortBy = "block_height"
	SortByType        SortBy = "type"
	SortByStatus      SortBy = "status"
)

// Valid reports whether s is one of the known sort keys.
func (s SortBy) Valid() bool {
	switch s {
	case SortByTimestamp, SortByAmount, SortByFee, SortByBlockHeight, SortByType, SortByStatus:
		return true
	}
	return false
}

// SortOrder is the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// Valid reports whether o is asc or desc.
func (o SortOrder) Valid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// Default pagination of the transactions endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// TransactionFilters selects a page of transactions. Zero values mean "not
// set"; Normalize fills in the defaults.
type TransactionFilters struct {
	Address   string
	Addresses []string
	Type      string
	// Types are fetched concurrently, one request per type, and merged.
	Types     []string
	Status    string
	Chain     string
	StartDate string
	EndDate   string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
	Page      int
	Limit     int
	SortBy    SortBy
	SortOrder SortOrder
}

// Normalize applies defaults and validates enum fields.
func (f TransactionFilters) Normalize() (TransactionFilters, error) {
	if f.Page <= 0 {
		f.Page = DefaultPage
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.SortBy == "" {
		f.SortBy = SortByTimestamp
	}
	if f.SortOrder == "" {
		f.SortOrder = SortOrderDesc
	}
	if !f.SortBy.Valid() {
		return f, fmt.Errorf("%w: sort_by %q", ErrInvalidFilter, f.SortBy)
	}
	if !f.SortOrder.Valid() {
		return f, fmt.Errorf("%w: sort_order %q", ErrInvalidFilter, f.SortOrder)
	}
	return f, nil
}

// AddressList returns Addresses when set, otherwise Address as a single
// element list, otherwise nil.
func (f TransactionFilters) AddressList() []string {
	if len(f.Addresses) > 0 {
		return f.Addresses
	}
	if f.Address != "" {
		return []string{f.Address}
	}
	return nil
}

// GroupBy is the bucket granularity of validator performance queries.
type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByHour  GroupBy = "hour"
	GroupByTotal GroupBy = "total"
)

// Valid reports whether g is a known granularity.
func (g GroupBy) Valid() bool {
	return g == GroupByDay || g == GroupByHour || g == GroupByTotal
}

// PerformanceFilters selects validator performance samples.
type PerformanceFilters struct {
	Domain       string
	OwnerAddress string
	// SupplierAddress may hold a comma separated list of operator addresses.
	SupplierAddress string
	Chain           string
	ServiceID       string
	StartDate       string
	EndDate         string
	GroupBy         GroupBy
	Page            int
	Limit           int
}

// RewardFilters selects hourly reward samples.
type RewardFilters struct {
	Chain string
	// SupplierAddress may hold a comma separated list of operator addresses.
	SupplierAddress string
	StartDate       string
	EndDate         string
	Limit           int
}

// SupplierSearchFilters selects owners and operators by a free text query.
type SupplierSearchFilters struct {
	Query  string
	Chain  string
	Status string
	Limit  int
}
