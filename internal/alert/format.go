package alert

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/whalewatch/internal/pkg/types"
	"github.com/gabapcia/whalewatch/internal/transfer"
)

const (
	tokenPlaces  = 4
	nativePlaces = 6
	usdPlaces    = 2

	lowConfidenceNote = "amount could not be parsed from the payload; shown as zero"
)

type config struct {
	explorerBaseURL string
	chain           string
	nativeSymbol    string
	truncate        bool
	watched         types.Set[string]
}

// Option configures a Formatter.
type Option func(*config)

// WithExplorerBaseURL sets the explorer root used for transaction links.
// Default: https://etherscan.io.
func WithExplorerBaseURL(u string) Option {
	return func(c *config) {
		c.explorerBaseURL = strings.TrimRight(u, "/")
	}
}

// WithChain sets the chain name and native symbol shown on alerts.
// Default: ethereum, ETH.
func WithChain(name, nativeSymbol string) Option {
	return func(c *config) {
		c.chain = name
		c.nativeSymbol = nativeSymbol
	}
}

// WithTruncatedAddresses toggles first6...last4 address display. Default: true.
func WithTruncatedAddresses(enabled bool) Option {
	return func(c *config) {
		c.truncate = enabled
	}
}

// WithWatchedAddresses sets the statically configured watched addresses.
func WithWatchedAddresses(addresses ...string) Option {
	return func(c *config) {
		for _, a := range addresses {
			c.watched.Add(transfer.NormalizeAddress(a))
		}
	}
}

// Formatter renders transfer events.
type Formatter struct {
	cfg config
}

// NewFormatter creates a Formatter.
func NewFormatter(opts ...Option) *Formatter {
	cfg := config{
		explorerBaseURL: "https://etherscan.io",
		chain:           "ethereum",
		nativeSymbol:    "ETH",
		truncate:        true,
		watched:         types.NewSet[string](),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Formatter{cfg: cfg}
}

// Format renders e. runtimeWatched is merged with the configured watched
// addresses and the addresses the provider declared on the event; all
// entries must already be in NormalizeAddress form.
func (f *Formatter) Format(e transfer.Event, runtimeWatched types.Set[string]) Alert {
	a := Alert{
		ID:            e.ID(f.cfg.chain),
		Title:         Title,
		Chain:         f.cfg.chain,
		Kind:          e.Kind.String(),
		TxHash:        e.TxHash,
		From:          e.From,
		To:            e.To,
		TokenAddress:  e.TokenAddress,
		Symbol:        f.symbol(e),
		Direction:     f.direction(e, runtimeWatched),
		Timestamp:     e.Timestamp.UTC(),
		LowConfidence: e.LowConfidence,
	}

	if e.TxHash != "" {
		a.URL = f.cfg.explorerBaseURL + "/tx/" + e.TxHash
	}

	places := int32(nativePlaces)
	if e.Kind == transfer.KindTokenTransfer {
		places = tokenPlaces
	}
	a.Amount = f.formatDecimal(e.DisplayAmount(), places)

	if e.USDValue != nil {
		a.USD = "$" + f.formatDecimal(*e.USDValue, usdPlaces)
	}

	a.Fields = f.fields(e, a)
	return a
}

func (f *Formatter) fields(e transfer.Event, a Alert) []Field {
	amount := a.Amount
	if a.Symbol != "" {
		amount += " " + a.Symbol
	}

	fields := []Field{{Name: "Amount", Value: amount, Inline: true}}

	if a.USD != "" {
		fields = append(fields, Field{Name: "USD Value", Value: a.USD, Inline: true})
	}

	if a.Direction != DirectionNone {
		fields = append(fields, Field{Name: "Direction", Value: string(a.Direction), Inline: true})
	}

	fields = append(fields,
		Field{Name: "From", Value: f.displayAddress(e.From)},
		Field{Name: "To", Value: f.displayAddress(e.To)},
	)

	if e.Kind == transfer.KindTokenTransfer {
		token := f.displayAddress(e.TokenAddress)
		if e.TokenName != "" {
			token = e.TokenName + " (" + token + ")"
		}
		fields = append(fields, Field{Name: "Token", Value: token})
	}

	if e.TxHash != "" {
		fields = append(fields, Field{Name: "Transaction", Value: f.displayAddress(e.TxHash)})
	}

	if e.BlockNumber != "" {
		fields = append(fields, Field{Name: "Block", Value: e.BlockNumber, Inline: true})
	}

	if !a.Timestamp.IsZero() {
		fields = append(fields, Field{Name: "Time", Value: a.Timestamp.Format(time.RFC3339), Inline: true})
	}

	if e.LowConfidence {
		fields = append(fields, Field{Name: "Note", Value: lowConfidenceNote})
	}

	return fields
}

func (f *Formatter) symbol(e transfer.Event) string {
	if e.Symbol != "" {
		return e.Symbol
	}
	if e.Kind == transfer.KindNative {
		return f.cfg.nativeSymbol
	}
	return ""
}

// direction resolves IN before OUT: a transfer between two watched
// addresses is reported as IN.
func (f *Formatter) direction(e transfer.Event, runtimeWatched types.Set[string]) Direction {
	involved := types.NewSet[string]()
	for _, a := range e.Involved {
		involved.Add(transfer.NormalizeAddress(a))
	}

	watched := f.cfg.watched.Union(runtimeWatched, involved)
	watched.Delete(transfer.NormalizeAddress(transfer.UnknownAddress), "")

	switch {
	case watched.Has(transfer.NormalizeAddress(e.To)):
		return DirectionIn
	case watched.Has(transfer.NormalizeAddress(e.From)):
		return DirectionOut
	default:
		return DirectionNone
	}
}

func (f *Formatter) displayAddress(address string) string {
	if !f.cfg.truncate {
		return address
	}
	return Truncate(address)
}

// Truncate shortens a hex string to first6...last4. Short values and
// the unknown placeholder are returned unchanged.
func Truncate(s string) string {
	if len(s) <= 13 || !strings.HasPrefix(strings.ToLower(s), "0x") {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}

// formatDecimal renders d with a fixed number of places and grouped
// thousands, e.g. 1234.5 with 2 places becomes "1,234.50". The value is
// never routed through float64.
func (f *Formatter) formatDecimal(d decimal.Decimal, places int32) string {
	fixed := d.StringFixed(places)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	grouped := groupDigits(intPart)

	if fracPart == "" {
		return sign + grouped
	}
	return sign + grouped + "." + fracPart
}

// groupDigits inserts a comma every three digits from the right. It works on
// the digit string so amounts of any size group the same way.
func groupDigits(digits string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
