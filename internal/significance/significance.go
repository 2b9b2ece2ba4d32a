// Package significance decides whether a transfer is worth an alert.
// Every function here is pure: the same event and config always produce the
// same decision.
package significance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/whalewatch/internal/transfer"
)

// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
var ErrUnknownPolicy = errors.New("unknown unpriced policy")

// Policy controls what happens to events without a USD value.
type Policy int

const (
	// PolicyDropUnpriced never alerts without a USD value.
	PolicyDropUnpriced Policy = iota

	// PolicyPassUnpriced alerts without a dollar figure.
	PolicyPassUnpriced
)

func (p Policy) String() string {
	if p == PolicyPassUnpriced {
		return "pass"
	}
	return "drop"
}

// ParsePolicy maps "drop" and "pass" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return PolicyDropUnpriced, nil
	case "pass":
		return PolicyPassUnpriced, nil
	default:
		return PolicyDropUnpriced, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Config holds the thresholds applied to every event.
type Config struct {
	MinUSDThreshold decimal.Decimal
	Unpriced        Policy
}

// Reason explains a decision. It is used as a metric label.
type Reason string

const (
	ReasonZeroNative      Reason = "zero_native"
	ReasonAboveThreshold  Reason = "above_threshold"
	ReasonBelowThreshold  Reason = "below_threshold"
	ReasonUnpricedDropped Reason = "unpriced_dropped"
	ReasonUnpricedPassed  Reason = "unpriced_passed"
)

// Decision is the outcome of Decide.
type Decision struct {
	Significant bool
	Reason      Reason
}

// Decide classifies e against cfg.
//
// Zero-value native transfers carry no economic content and are always
// dropped. Priced events are compared against MinUSDThreshold. Unpriced
// events follow the configured policy; raw token units are never compared
// against a dollar threshold.
func Decide(e transfer.Event, cfg Config) Decision {
	if e.Kind == transfer.KindNative && e.Amount().Sign() == 0 {
		return Decision{Reason: ReasonZeroNative}
	}

	if e.USDValue != nil {
		if e.USDValue.GreaterThanOrEqual(cfg.MinUSDThreshold) {
			return Decision{Significant: true, Reason: ReasonAboveThreshold}
		}
		return Decision{Reason: ReasonBelowThreshold}
	}

	if cfg.Unpriced == PolicyPassUnpriced {
		return Decision{Significant: true, Reason: ReasonUnpricedPassed}
	}

	return Decision{Reason: ReasonUnpricedDropped}
}

// IsSignificant reports whether e is alert-worthy under cfg.
func IsSignificant(e transfer.Event, cfg Config) bool {
	return Decide(e, cfg).Significant
}
