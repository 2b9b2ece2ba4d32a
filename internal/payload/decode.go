package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"math/big"
	"strings"

	"github.com/gabapcia/whalewatch/internal/transfer"
)

var (
	// ErrDecode is the parent of every decoding failure.
	ErrDecode = errors.New("decode error")

	// ErrMalformedDocument is returned when the body is not a single JSON document.
	ErrMalformedDocument = fmt.Errorf("%w: malformed document", ErrDecode)

	// ErrUnrecognizedShape is returned when no matcher recognizes the document.
	ErrUnrecognizedShape = fmt.Errorf("%w: unrecognized shape", ErrDecode)
)

// nativeCategories are activity categories that move the chain's base currency.
var nativeCategories = map[string]bool{
	"external": true,
	"internal": true,
}

// matcher is one recognized provider shape.
type matcher struct {
	name    string
	match   func(doc any) bool
	extract func(doc any, yield func(Candidate) bool) bool
}

// matchers are tried in order; the first match wins.
var matchers = []matcher{
	{name: "block.logs", match: matchBlockLogs, extract: extractBlockLogs},
	{name: "block.transactions", match: matchBlockTransactions, extract: extractBlockTransactions},
	{name: "event.rawLogs", match: matchRawLogs, extract: extractRawLogs},
	{name: "event.activity", match: matchActivity, extract: extractActivity},
	{name: "event.transaction", match: matchEventTransaction, extract: extractEventTransaction},
}

// Decode parses doc and returns its candidates as a lazy, single pass
// sequence in document order. It never panics. On failure the returned
// sequence is empty (never nil) and the error wraps ErrMalformedDocument or
// ErrUnrecognizedShape.
func Decode(doc []byte) (iter.Seq[Candidate], error) {
	root, err := parse(doc)
	if err != nil {
		return empty, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	if m, ok := matchRoot(root); ok {
		return func(yield func(Candidate) bool) {
			m.extract(root, yield)
		}, nil
	}

	switch {
	case isRecordList(root):
		items, _ := asList(root)
		return func(yield func(Candidate) bool) {
			for _, item := range items {
				if !extractItem(item, yield) {
					return
				}
			}
		}, nil
	case looksLikeRecord(root):
		return func(yield func(Candidate) bool) {
			extractRecord(root, yield)
		}, nil
	default:
		return empty, ErrUnrecognizedShape
	}
}

func empty(func(Candidate) bool) {}

// parse decodes exactly one JSON value, keeping numbers as json.Number so
// large integers survive untouched.
func parse(doc []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after document")
	}

	return root, nil
}

func matchRoot(doc any) (matcher, bool) {
	if _, ok := asMap(doc); !ok {
		return matcher{}, false
	}

	for _, m := range matchers {
		if m.match(doc) {
			return m, true
		}
	}
	return matcher{}, false
}

// extractItem handles one element of a bare list: wrapped shapes first, then
// the element itself as a record.
func extractItem(item any, yield func(Candidate) bool) bool {
	if m, ok := matchRoot(item); ok {
		return m.extract(item, yield)
	}

	if looksLikeRecord(item) {
		return extractRecord(item, yield)
	}

	return true
}

func isRecordList(doc any) bool {
	items, ok := asList(doc)
	if !ok {
		return false
	}

	if len(items) == 0 {
		return true
	}

	for _, item := range items {
		if _, ok := matchRoot(item); ok || looksLikeRecord(item) {
			return true
		}
	}
	return false
}

func looksLikeRecord(v any) bool {
	return hasAny(v, "hash", "txHash", "transactionHash", "fromAddress", "toAddress", "from", "to", "value", "topics")
}

// isActivityItem tells activity items (scaled value) from transaction records (raw value).
func isActivityItem(v any) bool {
	return hasAny(v, "fromAddress", "toAddress", "category", "asset", "rawContract")
}

// extractRecord treats a bare object as a log, an activity item, or a transaction.
func extractRecord(item any, yield func(Candidate) bool) bool {
	switch {
	case hasAny(item, "topics"):
		return extractLogs([]any{item}, nil, Candidate{Source: "item.log"}, yield)
	case isActivityItem(item):
		return yield(activityCandidate(item, Candidate{Source: "item.activity"}))
	default:
		return yield(transactionCandidate(item, Candidate{Source: "item.transaction"}))
	}
}

// block returns the block object, wherever the provider nested it.
func block(doc any) any {
	for _, p := range [][]string{{"block"}, {"event", "data", "block"}, {"data", "block"}} {
		if b, ok := asMap(path(doc, p...)); ok {
			return b
		}
	}
	return nil
}

func blockBase(b any, source string) Candidate {
	return Candidate{
		Source:      source,
		BlockNumber: text(first(b, "number", "blockNumber")),
		Timestamp:   text(first(b, "timestamp")),
	}
}

// matchBlockLogs accepts any logs list. An empty one defers to the block's
// transactions when the block carries them.
func matchBlockLogs(doc any) bool {
	logs, ok := asList(path(block(doc), "logs"))
	if !ok {
		return false
	}
	if len(logs) > 0 {
		return true
	}
	_, hasTxs := asList(path(block(doc), "transactions"))
	return !hasTxs
}

func extractBlockLogs(doc any, yield func(Candidate) bool) bool {
	b := block(doc)
	logs, _ := asList(path(b, "logs"))

	txOf := func(log any) any { return path(log, "transaction") }
	return extractLogs(logs, txOf, blockBase(b, "block.logs"), yield)
}

func matchBlockTransactions(doc any) bool {
	_, ok := asList(path(block(doc), "transactions"))
	return ok
}

func extractBlockTransactions(doc any, yield func(Candidate) bool) bool {
	b := block(doc)
	txs, _ := asList(path(b, "transactions"))

	for _, tx := range txs {
		if !yield(transactionCandidate(tx, blockBase(b, "block.transactions"))) {
			return false
		}
	}
	return true
}

func matchRawLogs(doc any) bool {
	_, ok := asList(path(doc, "event", "rawLogs"))
	return ok
}

func extractRawLogs(doc any, yield func(Candidate) bool) bool {
	event := path(doc, "event")
	logs, _ := asList(path(event, "rawLogs"))

	base := Candidate{
		Source:      "event.rawLogs",
		TxHash:      text(first(event, "transactionHash", "hash")),
		BlockNumber: text(first(event, "blockNumber", "blockNum")),
		Timestamp:   text(first(event, "timestamp")),
		Involved:    texts(path(event, "involvedAddresses")),
	}

	return extractLogs(logs, nil, base, yield)
}

func matchActivity(doc any) bool {
	_, ok := asList(path(doc, "event", "activity"))
	return ok
}

func extractActivity(doc any, yield func(Candidate) bool) bool {
	event := path(doc, "event")
	items, _ := asList(path(event, "activity"))

	base := Candidate{
		Source:   "event.activity",
		Involved: texts(path(event, "involvedAddresses")),
	}

	for _, item := range items {
		if !yield(activityCandidate(item, base)) {
			return false
		}
	}
	return true
}

func matchEventTransaction(doc any) bool {
	_, ok := asMap(path(doc, "event", "transaction"))
	return ok
}

func extractEventTransaction(doc any, yield func(Candidate) bool) bool {
	event := path(doc, "event")

	base := Candidate{
		Source:   "event.transaction",
		Involved: texts(path(event, "involvedAddresses")),
	}

	return yield(transactionCandidate(path(event, "transaction"), base))
}

// extractLogs emits one candidate per ERC20 Transfer log. A transaction with
// no Transfer log at all yields a single native candidate built from its
// first log, so unrelated logs (approvals, swaps) never multiply alerts.
func extractLogs(logs []any, txOf func(log any) any, base Candidate, yield func(Candidate) bool) bool {
	if txOf == nil {
		txOf = func(any) any { return nil }
	}

	withTransfer := make(map[string]bool)
	for _, log := range logs {
		if isTransferTopics(texts(path(log, "topics"))) {
			withTransfer[logTxHash(log, txOf(log), base)] = true
		}
	}

	seenNative := make(map[string]bool)
	for _, log := range logs {
		c := logCandidate(log, txOf(log), base)

		if !isTransferTopics(c.Topics) {
			if withTransfer[c.TxHash] || seenNative[c.TxHash] {
				continue
			}
			seenNative[c.TxHash] = true

			c.Topics, c.Data, c.LogAddress = nil, "", ""
			c.NeedsDetail = c.TxHash != "" && c.missingDetail()
		}

		if !yield(c) {
			return false
		}
	}
	return true
}

func logTxHash(log, tx any, base Candidate) string {
	if h := text(first(tx, "hash")); h != "" {
		return h
	}
	if h := text(first(log, "transactionHash")); h != "" {
		return h
	}
	return base.TxHash
}

func logCandidate(log, tx any, base Candidate) Candidate {
	c := base
	c.Involved = append([]string(nil), base.Involved...)
	c.TxHash = logTxHash(log, tx, base)
	c.Topics = texts(path(log, "topics"))
	c.Data = text(path(log, "data"))
	c.LogAddress = address(first(log, "address", "account"))

	if tx != nil {
		c.From = address(path(tx, "from"))
		c.To = address(path(tx, "to"))
		c.Value = text(path(tx, "value"))
	}

	if n := text(first(log, "blockNumber")); n != "" && c.BlockNumber == "" {
		c.BlockNumber = n
	}

	return c
}

// transactionCandidate reads a transaction record whose value is in base units.
// A bare string is taken as the transaction hash.
func transactionCandidate(tx any, base Candidate) Candidate {
	c := base
	c.Involved = append([]string(nil), base.Involved...)

	if hash := text(tx); hash != "" {
		c.TxHash = hash
		c.NeedsDetail = true
		return c
	}

	c.TxHash = text(first(tx, "hash", "txHash", "transactionHash"))
	c.From = address(path(tx, "from"))
	c.To = address(path(tx, "to"))
	c.Value = text(path(tx, "value"))
	c.USDValue = text(first(tx, "usdValue", "valueUsd", "valueUSD"))

	if n := text(first(tx, "blockNumber", "blockNum")); n != "" {
		c.BlockNumber = n
	}
	if ts := text(first(tx, "timestamp")); ts != "" {
		c.Timestamp = ts
	}

	c.NeedsDetail = c.TxHash != "" && c.missingDetail()
	return c
}

// activityCandidate reads an activity item, whose top-level value is already
// scaled by the token decimals.
func activityCandidate(item any, base Candidate) Candidate {
	c := base
	c.Involved = append([]string(nil), base.Involved...)
	c.TxHash = text(first(item, "hash", "txHash", "transactionHash"))
	c.From = address(first(item, "fromAddress", "from"))
	c.To = address(first(item, "toAddress", "to"))
	c.Category = strings.ToLower(text(path(item, "category")))
	c.BlockNumber = text(first(item, "blockNum", "blockNumber"))
	c.USDValue = text(first(item, "usdValue", "valueUsd", "valueUSD"))

	c.Timestamp = text(first(item, "timestamp"))
	if c.Timestamp == "" {
		c.Timestamp = text(path(item, "metadata", "blockTimestamp"))
	}

	switch v := path(item, "value").(type) {
	case map[string]any:
		c.DisplayValue = text(first(v, "value", "amount"))
	default:
		c.DisplayValue = text(v)
	}

	switch a := path(item, "asset").(type) {
	case map[string]any:
		c.TokenAddress = text(first(a, "contractAddress", "address"))
		c.Asset = text(first(a, "symbol"))
	default:
		c.Asset = text(a)
	}

	if raw, ok := asMap(path(item, "rawContract")); ok {
		c.Value = text(first(raw, "rawValue", "value"))
		if addr := text(path(raw, "address")); addr != "" {
			c.TokenAddress = addr
		}
		c.Decimals = parseDecimals(path(raw, "decimals"))
	}
	if c.Decimals == nil {
		c.Decimals = parseDecimals(path(item, "decimals"))
	}

	if log, ok := asMap(path(item, "log")); ok {
		c.Topics = texts(path(log, "topics"))
		c.Data = text(path(log, "data"))
		c.LogAddress = address(path(log, "address"))
	}

	if nativeCategories[c.Category] {
		c.TokenAddress = ""
	}

	return c
}

// parseDecimals accepts a JSON number, a decimal string, or a hex string.
func parseDecimals(v any) *int {
	s := text(v)
	if s == "" {
		return nil
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}

	n, ok := new(big.Int).SetString(s, base)
	if !ok || n.Sign() < 0 || n.Cmp(big.NewInt(transfer.MaxDecimals)) > 0 {
		return nil
	}

	d := int(n.Int64())
	return &d
}
