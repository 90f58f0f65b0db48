// Package model defines the value types exchanged with the indexer API and
// produced by the analytics layer.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TxStatus is the transaction status as reported by the indexer. The indexer
// sends either a string ("success") or a numeric result code.
type TxStatus string

// TxStatusSuccess marks a transaction reconstructed from a committed block.
const TxStatusSuccess TxStatus = "success"

// UnmarshalJSON accepts both string and numeric statuses.
func (s *TxStatus) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = TxStatus(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = TxStatus(n.String())
	return nil
}

// Transaction is a single indexed transaction. Records are immutable once
// fetched.
type Transaction struct {
	ID          string          `json:"id"`
	Hash        string          `json:"hash"`
	BlockID     string          `json:"block_id"`
	BlockHeight uint64          `json:"block_height"`
	Sender      string          `json:"sender"`
	Recipient   string          `json:"recipient"`
	Amount      decimal.Decimal `json:"amount"`
	Fee         decimal.Decimal `json:"fee"`
	Memo        string          `json:"memo"`
	Type        string          `json:"type"`
	Status      TxStatus        `json:"status"`
	Chain       string          `json:"chain"`
	Timestamp   time.Time       `json:"timestamp"`
	TxData      json.RawMessage `json:"tx_data,omitempty"`
}

// UnmarshalJSON decodes an indexer row leniently: empty or null amounts and
// fees become zero and the timestamp accepts the bucket layouts, so one
// sloppy row does not fail the page.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	aux := struct {
		*plain
		Amount    json.RawMessage `json:"amount"`
		Fee       json.RawMessage `json:"fee"`
		Timestamp json.RawMessage `json:"timestamp"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if t.Amount, err = lenientDecimal(aux.Amount); err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	if t.Fee, err = lenientDecimal(aux.Fee); err != nil {
		return fmt.Errorf("fee: %w", err)
	}
	if t.Timestamp, err = lenientTime(aux.Timestamp); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	return nil
}

// unquote returns the string or number literal in data, "" for null.
func unquote(data json.RawMessage) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if data[0] != '"' {
		return string(data), nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return "", err
	}
	return v, nil
}

func lenientDecimal(data json.RawMessage) (decimal.Decimal, error) {
	raw, err := unquote(data)
	if err != nil || raw == "" {
		return decimal.Zero, err
	}
	return decimal.NewFromString(raw)
}

func lenientTime(data json.RawMessage) (time.Time, error) {
	raw, err := unquote(data)
	if err != nil || raw == "" {
		return time.Time{}, err
	}
	b, err := ParseBucket(raw)
	if err != nil {
		return time.Time{}, err
	}
	return b.Time, nil
}

// TransactionsMeta carries pagination details of a transactions page.
type TransactionsMeta struct {
	Total         int64  `json:"total"`
	Page          int    `json:"page"`
	Limit         int    `json:"limit"`
	TotalPages    int64  `json:"totalPages"`
	FailedLast24h *int64 `json:"failedLast24h,omitempty"`
	// IsEstimate is set when Total was extrapolated from a block sample
	// rather than counted by the indexer.
	IsEstimate bool `json:"isEstimate,omitempty"`
}

// TransactionsResponse is a page of transactions.
type TransactionsResponse struct {
	Data []Transaction    `json:"data"`
	Meta TransactionsMeta `json:"meta"`
}
