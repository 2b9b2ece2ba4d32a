package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Hex represents a hexadecimal-encoded quantity as a string (e.g., "0x1a"),
// as used by Ethereum JSON-RPC responses and some webhook payloads.
// Values are arbitrary precision: token amounts routinely exceed 64 bits.
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if _, err := parseHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// IsHex reports whether s is a 0x-prefixed hexadecimal quantity.
func IsHex(s string) bool {
	_, err := parseHex(s)
	return err == nil
}

// parseHex decodes a 0x-prefixed hexadecimal quantity. "0x" alone is zero.
func parseHex(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("hex string must start with 0x")
	}

	digits := s[2:]
	if digits == "" {
		return new(big.Int), nil
	}

	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hexadecimal value %q", s)
	}

	return v, nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
// JSON null leaves the value empty.
func (h *Hex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if _, err := parseHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Big returns the decoded value. It returns nil if the value is empty or invalid.
func (h Hex) Big() *big.Int {
	v, err := parseHex(string(h))
	if err != nil {
		return nil
	}
	return v
}

// Int returns the decoded value as int64.
// If parsing fails or the value does not fit, it returns zero.
func (h Hex) Int() int64 {
	v := h.Big()
	if v == nil || !v.IsInt64() {
		return 0
	}
	return v.Int64()
}
