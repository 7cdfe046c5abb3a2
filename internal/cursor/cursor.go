// Package cursor encodes and decodes opaque pagination cursors. A cursor is
// a base64-encoded JSON payload wrapping an entity type name and identifier.
// The representation is internal; callers must treat cursors as opaque
// tokens and only the encode/decode round trip is contractual.
package cursor

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

type payload struct {
	Version  int    `json:"v"`
	TypeName string `json:"t"`
	ID       string `json:"id"`
}

const version = 1

// Encode builds an opaque cursor for an entity identifier. The id is
// string-coerced for JSON safety.
func Encode(typeName string, id int64) string {
	data, err := json.Marshal(payload{
		Version:  version,
		TypeName: typeName,
		ID:       strconv.FormatInt(id, 10),
	})
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// Decode parses a cursor back into the entity identifier it wraps. The
// cursor must have been produced by Encode for the same type name; any
// malformed or mismatched cursor is an error, never a silent fallback.
func Decode(typeName, raw string) (int64, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor: %w", err)
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return 0, fmt.Errorf("invalid cursor format")
	}
	if p.Version != version {
		return 0, fmt.Errorf("invalid cursor: unsupported version %d", p.Version)
	}
	if p.TypeName != typeName {
		return 0, fmt.Errorf("cursor type mismatch: expected %s, got %s", typeName, p.TypeName)
	}
	id, err := strconv.ParseInt(p.ID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor id: %w", err)
	}
	return id, nil
}
