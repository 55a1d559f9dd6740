package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// TimestampLayout is the canonical persisted form: fixed-width UTC, so text order equals time order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp is a time.Time stored as ISO-8601 text. JSON encoding is inherited from time.Time (RFC 3339).
type Timestamp struct {
	time.Time
}

func Now() Timestamp {
	return NewTimestamp(time.Now())
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Microsecond)}
}

// Value implements driver.Valuer
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC().Format(TimestampLayout), nil
}

// Scan implements sql.Scanner. Stored values are always ISO-8601 text.
func (t *Timestamp) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("timestamp: unsupported stored type %T", src)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	t.Time = parsed.UTC()
	return nil
}

func (Timestamp) GormDataType() string {
	return "text"
}
