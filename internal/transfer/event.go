// Package transfer defines the canonical value movement every provider
// payload is normalized into, together with the amount arithmetic shared by
// the rest of the pipeline.
package transfer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

const (
	// UnknownAddress replaces a sender or receiver the source did not provide.
	UnknownAddress = "unknown"

	// DefaultDecimals is used until an authoritative value is known.
	DefaultDecimals = 18

	// MaxDecimals bounds accepted decimals: 10^77 is the largest power of
	// ten that fits a uint256.
	MaxDecimals = 77
)

// ValidDecimals reports whether d is within [0, MaxDecimals].
func ValidDecimals(d int) bool {
	return d >= 0 && d <= MaxDecimals
}

// TransferSignature is the topic hash of the ERC20 Transfer(address,address,uint256) event.
var TransferSignature = common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef")

// Kind classifies a transfer.
type Kind int

const (
	// KindNative is a movement of the chain's base currency.
	KindNative Kind = iota

	// KindTokenTransfer is an ERC20 Transfer log.
	KindTokenTransfer
)

// String returns the lower-case label used in logs and messages.
func (k Kind) String() string {
	switch k {
	case KindTokenTransfer:
		return "token_transfer"
	default:
		return "native"
	}
}

// Event is the canonical transfer produced from one raw candidate.
// It only lives for the duration of a single inbound delivery.
type Event struct {
	TxHash       string // may be empty, which disables de-duplication
	From         string // UnknownAddress when absent, never empty
	To           string // UnknownAddress when absent, never empty
	TokenAddress string // empty for native transfers
	RawAmount    *big.Int
	Decimals     int
	Kind         Kind
	BlockNumber  string
	Timestamp    time.Time
	USDValue     *decimal.Decimal
	Symbol       string
	TokenName    string

	// DecimalsInline is set when the payload itself declared the decimals,
	// in which case enrichment must not override them.
	DecimalsInline bool

	// AmountScaled is set when RawAmount was derived from an already scaled
	// value using Decimals, so a later decimals correction must keep the
	// display amount rather than the raw one.
	AmountScaled bool

	// LowConfidence marks events whose amount could not be parsed and was zeroed.
	LowConfidence bool

	// Involved holds addresses the provider declared as relevant to the delivery.
	Involved []string
}

// Amount returns RawAmount, treating nil as zero.
func (e Event) Amount() *big.Int {
	if e.RawAmount == nil {
		return new(big.Int)
	}
	return e.RawAmount
}

// DisplayAmount returns RawAmount scaled down by Decimals. The result is exact.
func (e Event) DisplayAmount() decimal.Decimal {
	return decimal.NewFromBigInt(e.Amount(), -int32(e.Decimals))
}

// SetDecimals applies an authoritative decimals value. Inline decimals always
// win and out of range values are ignored. When the raw amount was computed from a scaled value it is rescaled so
// DisplayAmount stays the same.
func (e *Event) SetDecimals(decimals int) {
	if e.DecimalsInline || decimals == e.Decimals || !ValidDecimals(decimals) {
		return
	}

	if e.AmountScaled {
		e.RawAmount = e.DisplayAmount().Shift(int32(decimals)).Truncate(0).BigInt()
	}
	e.Decimals = decimals
}

// ID returns a deterministic identifier for the event on the given chain, or
// an empty string when the event has no transaction hash.
//
// The ID is a SHA-256 hash of "<chain>:<txHash>:<token>:<from>:<to>:<rawAmount>"
// with every address lower-cased, so the same transfer seen twice (one payload
// shape or another) maps to the same value.
func (e Event) ID(chain string) string {
	if e.TxHash == "" {
		return ""
	}

	key := fmt.Sprintf("%s:%s:%s:%s:%s:%s",
		chain,
		strings.ToLower(e.TxHash),
		strings.ToLower(e.TokenAddress),
		strings.ToLower(e.From),
		strings.ToLower(e.To),
		e.Amount().String(),
	)

	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// NormalizeAddress returns the comparison form of an address.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
