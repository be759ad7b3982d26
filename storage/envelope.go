package storage

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Envelope wraps a persisted collection with its schema version so hydration
// can run forward migrations before records reach the journal.
type Envelope struct {
	Version int             `json:"version"`
	Records json.RawMessage `json:"records"`
}

// DecodeEnvelope parses a stored value. Data written before envelopes existed
// is a bare JSON array; it decodes as version 0 with the array as payload.
func DecodeEnvelope(value string) (Envelope, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Envelope{Records: json.RawMessage("[]")}, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var records json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
			return Envelope{}, fmt.Errorf("decode legacy collection: %w", err)
		}
		return Envelope{Version: 0, Records: records}, nil
	}

	var env Envelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Records == nil {
		env.Records = json.RawMessage("[]")
	}
	return env, nil
}

// EncodeEnvelope serializes records under the given schema version.
func EncodeEnvelope(version int, records any) (string, error) {
	raw, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal records: %w", err)
	}

	data, err := json.Marshal(Envelope{Version: version, Records: raw})
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(data), nil
}
