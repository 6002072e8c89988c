package repositories

import (
	"encoding/json"
	"fmt"
)

// encodeColumn serializes list/map fields into the text columns used by the models.
func encodeColumn(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode column: %w", err)
	}
	return string(b), nil
}

// decodeColumn fills out from a text column; an empty column leaves out untouched
func decodeColumn(raw string, out interface{}) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode column: %w", err)
	}
	return nil
}

func decodeStrings(raw string) ([]string, error) {
	out := []string{}
	if err := decodeColumn(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// appendToColumn appends entry to a JSON list column. A corrupt column is
// reported rather than overwritten.
func appendToColumn(raw, entry string) (string, error) {
	items, err := decodeStrings(raw)
	if err != nil {
		return "", err
	}
	items = append(items, entry)
	return encodeColumn(items)
}
