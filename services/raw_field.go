package services

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// RawField is one undecoded member of a JSON object body. Order updates
// decode the body field by field because which keys were sent matters.
type RawField json.RawMessage

func (r *RawField) UnmarshalJSON(b []byte) error {
	*r = append((*r)[:0], b...)
	return nil
}

func (r RawField) Decode(v any) error {
	return json.Unmarshal(r, v)
}

func (r RawField) IsNull() bool {
	return bytes.Equal(bytes.TrimSpace(r), []byte("null"))
}

// OptionalUint decodes null as nil and a positive integer as its value.
func (r RawField) OptionalUint() (*uint, error) {
	if r.IsNull() {
		return nil, nil
	}
	var n uint
	if err := r.Decode(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errors.New("user id must be positive")
	}
	return &n, nil
}

func (r RawField) Date() (time.Time, error) {
	var s string
	if err := r.Decode(&s); err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.DateOnly, s)
}
