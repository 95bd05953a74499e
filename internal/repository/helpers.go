package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/parisxmas/foreverfamily/internal/db"
)

// ErrNotFound is returned when no record carries the requested id.
var ErrNotFound = errors.New("record not found")

// toRecord converts a typed model into the schemaless form the store keeps.
func toRecord(v any) (db.Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var rec db.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("unmarshal record: %w", err)
	}
	return rec, nil
}

// idString renders a stored id the way it is compared against a URL
// parameter: numbers by their literal text, strings as-is.
func idString(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func appendRecord(store *db.Store, collection string, v any) error {
	rec, err := toRecord(v)
	if err != nil {
		return err
	}
	return store.Update(collection, func(records []db.Record) ([]db.Record, error) {
		return append(records, rec), nil
	})
}
