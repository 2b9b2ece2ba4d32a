// Package payload turns provider webhook documents of unknown shape into raw
// transfer candidates, and candidates into canonical transfer events.
//
// Decoding is a fixed, ordered list of shape matchers. Each matcher is a pure
// predicate plus extractor; the first one that recognizes the document wins.
package payload

// Candidate is a provider-shaped fragment (a log entry, an activity item, or a
// transaction record). Any field may be empty.
type Candidate struct {
	Source string // name of the matcher that produced the candidate

	TxHash string
	From   string
	To     string
	Value  string // raw integer amount, hex or base 10

	Topics     []string
	Data       string
	LogAddress string

	TokenAddress string
	Decimals     *int
	DisplayValue string // amount already scaled by decimals
	USDValue     string
	Category     string
	Asset        string

	BlockNumber string
	Timestamp   string
	Involved    []string

	// NeedsDetail is set when the payload carried a transaction reference
	// without sender, receiver or value; those have to be fetched from the chain.
	NeedsDetail bool
}

// missingDetail reports whether any transaction field is still absent.
func (c Candidate) missingDetail() bool {
	return c.From == "" || c.To == "" || (c.Value == "" && c.DisplayValue == "")
}
