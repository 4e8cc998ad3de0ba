package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// JSONB is a map stored in a PostgreSQL jsonb column.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONB: %T", value)
	}

	return json.Unmarshal(data, j)
}

// SyncErrorEntry is one per-payment failure recorded on a sync log.
type SyncErrorEntry struct {
	PaymentID int64  `json:"payment_id"`
	Error     string `json:"error"`
}

// SyncErrorDetail is the list of per-payment failures, stored as jsonb.
type SyncErrorDetail []SyncErrorEntry

func (d SyncErrorDetail) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return json.Marshal(d)
}

func (d *SyncErrorDetail) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}

	data, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("unsupported type for SyncErrorDetail")
		}
		data = []byte(s)
	}

	return json.Unmarshal(data, d)
}
