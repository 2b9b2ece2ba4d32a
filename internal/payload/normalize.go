package payload

import (
	"errors"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/whalewatch/internal/transfer"
)

// topicPattern matches a 0x-prefixed topic of at most 32 bytes.
var topicPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]{1,64}$`)

// isTransferTopics reports whether topics belong to an ERC20 Transfer log.
// ERC721 shares the signature but indexes the token id as a fourth topic.
func isTransferTopics(topics []string) bool {
	return len(topics) == 3 && strings.EqualFold(topics[0], transfer.TransferSignature.Hex())
}

// topicAddress returns the low 20 bytes of an indexed address topic as
// lower-case hex, or transfer.UnknownAddress when the topic is not hex.
func topicAddress(topic string) string {
	if !topicPattern.MatchString(topic) {
		return transfer.UnknownAddress
	}

	h := common.HexToHash(topic)
	return strings.ToLower(common.BytesToAddress(h[12:]).Hex())
}

// Normalize converts a candidate into a canonical transfer event. It never
// fails: an amount that cannot be parsed becomes zero and the event is marked
// as low confidence.
func Normalize(c Candidate) transfer.Event {
	e := transfer.Event{
		TxHash:      c.TxHash,
		Decimals:    transfer.DefaultDecimals,
		BlockNumber: c.BlockNumber,
		Timestamp:   parseTimestamp(c.Timestamp),
		Involved:    c.Involved,
	}

	if c.Decimals != nil {
		e.Decimals = *c.Decimals
		e.DecimalsInline = true
	}

	var err error
	switch {
	case isTransferTopics(c.Topics):
		e.Kind = transfer.KindTokenTransfer
		e.From = topicAddress(c.Topics[1])
		e.To = topicAddress(c.Topics[2])
		e.TokenAddress = firstNonEmpty(c.LogAddress, c.TokenAddress, transfer.UnknownAddress)
		e.RawAmount, err = transfer.ParseAmount(c.Data)
	case c.TokenAddress != "":
		e.Kind = transfer.KindTokenTransfer
		e.From = firstNonEmpty(c.From, transfer.UnknownAddress)
		e.To = firstNonEmpty(c.To, transfer.UnknownAddress)
		e.TokenAddress = c.TokenAddress
		e.RawAmount, err = amount(c, e.Decimals)
		e.AmountScaled = c.Value == "" && c.DisplayValue != ""
	default:
		e.Kind = transfer.KindNative
		e.From = firstNonEmpty(c.From, transfer.UnknownAddress)
		e.To = firstNonEmpty(c.To, transfer.UnknownAddress)
		e.RawAmount, err = amount(c, e.Decimals)
		e.AmountScaled = c.Value == "" && c.DisplayValue != ""
	}

	if errors.Is(err, transfer.ErrMalformedAmount) {
		e.LowConfidence = true
	}

	if c.USDValue != "" {
		if usd, err := decimal.NewFromString(c.USDValue); err == nil && !usd.IsNegative() {
			e.USDValue = &usd
		}
	}

	if c.Asset != "" && !strings.HasPrefix(c.Asset, "0x") {
		e.Symbol = c.Asset
	}

	return e
}

// amount prefers the raw base-unit value and falls back to the scaled one.
func amount(c Candidate, decimals int) (*big.Int, error) {
	if c.Value != "" || c.DisplayValue == "" {
		return transfer.ParseAmount(c.Value)
	}
	return transfer.ToBaseUnits(c.DisplayValue, decimals)
}

// parseTimestamp accepts unix seconds or milliseconds (decimal or hex) and
// RFC 3339. Anything else is treated as absent.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC()
	}

	var (
		n   int64
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err = strconv.ParseInt(s[2:], 16, 64)
	} else {
		n, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil || n <= 0 {
		return time.Time{}
	}

	if n > 1e12 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
