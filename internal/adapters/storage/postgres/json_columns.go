package postgres

import (
	"encoding/json"
	"fmt"
)

// Las listas de strings se guardan como JSONB ('[]' por default).

func encodeList(in []string) (string, error) {
	if in == nil {
		in = []string{}
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("postgres: encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("postgres: decode list: %w", err)
	}
	return out, nil
}
