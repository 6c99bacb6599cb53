package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date rendered as YYYY-MM-DD.
type Date struct {
	time.Time
}

// ParseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp, keeping only
// the date part.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NullableID is an optional integer id that tolerates the loose shapes web
// forms send: a number, a numeric string, or null. Falsy values (null, 0,
// "", false) leave it unset.
type NullableID struct {
	ID    int64
	Valid bool
}

func (n *NullableID) UnmarshalJSON(b []byte) error {
	*n = NullableID{}
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("false")):
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		return n.set(s)
	default:
		return n.set(string(b))
	}
}

func (n *NullableID) set(s string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	if id != 0 {
		n.ID, n.Valid = id, true
	}
	return nil
}

// Ptr returns the id or nil when unset.
func (n NullableID) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	id := n.ID
	return &id
}
