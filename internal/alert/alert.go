// Package alert renders significant transfers into notification payloads.
package alert

import (
	"time"
)

// Title is the fixed heading of every alert.
const Title = "Whale Alert"

// Direction labels a transfer relative to the watched addresses.
type Direction string

const (
	// DirectionNone is used when neither side is watched.
	DirectionNone Direction = ""

	// DirectionIn means a watched address received the funds.
	DirectionIn Direction = "IN"

	// DirectionOut means a watched address sent the funds.
	DirectionOut Direction = "OUT"
)

// Field is one labelled line of an alert, in display order.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Alert is a rendered notification. Addresses are kept in full; the
// display form lives in Fields.
type Alert struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	URL           string    `json:"url,omitempty"`
	Chain         string    `json:"chain"`
	Kind          string    `json:"kind"`
	TxHash        string    `json:"tx_hash,omitempty"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	TokenAddress  string    `json:"token_address,omitempty"`
	Amount        string    `json:"amount"`
	Symbol        string    `json:"symbol,omitempty"`
	USD           string    `json:"usd,omitempty"`
	Direction     Direction `json:"direction,omitempty"`
	Timestamp     time.Time `json:"timestamp,omitzero"`
	LowConfidence bool      `json:"low_confidence,omitempty"`
	Fields        []Field   `json:"fields"`
}

// Text renders the alert as plain text, one field per line.
func (a Alert) Text() string {
	out := a.Title
	if a.URL != "" {
		out += "\n" + a.URL
	}
	for _, f := range a.Fields {
		out += "\n" + f.Name + ": " + f.Value
	}
	return out
}
