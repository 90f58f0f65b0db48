package model

import "encoding/json"

// ValidatorPerformanceResponse is a page of performance samples.
type ValidatorPerformanceResponse struct {
	Data []PerformanceDataPoint `json:"data"`
	Meta json.RawMessage        `json:"meta,omitempty"`
}

// RewardAnalyticsResponse is a page of hourly reward samples.
type RewardAnalyticsResponse struct {
	Data []RewardAnalytics `json:"data"`
	Meta json.RawMessage   `json:"meta,omitempty"`
}

// DomainLeaderboardResponse is passed through from the indexer as is.
type DomainLeaderboardResponse = json.RawMessage

// SupplierSearchResponse lists owners and operators matching a search query.
type SupplierSearchResponse struct {
	OwnerAddresses            []string `json:"owner_addresses"`
	SupplierOperatorAddresses []string `json:"supplier_operator_addresses"`
}
