package dtos

import (
	"encoding/json"
	"time"
)

const dateLayout = "2006-01-02"

// Date serializes a calendar date as YYYY-MM-DD. The zero value encodes as null.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	t := time.Time(d)
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}
