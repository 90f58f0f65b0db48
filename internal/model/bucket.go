package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

var bucketLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Bucket is a time bucket key. The indexer formats hour buckets as RFC3339
// timestamps and day buckets as plain dates; both decode into UTC time.
type Bucket struct {
	time.Time
}

// NewBucket wraps t as a bucket key.
func NewBucket(t time.Time) Bucket {
	return Bucket{Time: t.UTC()}
}

// ParseBucket parses a bucket key in any of the accepted layouts.
func ParseBucket(value string) (Bucket, error) {
	for _, layout := range bucketLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return NewBucket(t), nil
		}
	}
	return Bucket{}, fmt.Errorf("unsupported bucket format %q", value)
}

// UnmarshalJSON decodes a bucket from a JSON string.
func (b *Bucket) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*b = Bucket{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*b = Bucket{}
		return nil
	}
	parsed, err := ParseBucket(raw)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalJSON encodes the bucket as RFC3339.
func (b Bucket) MarshalJSON() ([]byte, error) {
	if b.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(b.Time.Format(time.RFC3339))
}
