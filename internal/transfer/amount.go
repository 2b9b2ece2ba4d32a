package transfer

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedAmount is returned when an amount is neither a hex nor a base-10 integer.
var ErrMalformedAmount = errors.New("malformed amount")

// ParseAmount parses an integer amount in base units. Strings starting with
// "0x" or "0X" are hexadecimal ("0x" alone is zero); anything else is read as
// base 10. Negative, fractional, or otherwise unparsable input returns zero
// together with ErrMalformedAmount, so callers always get a usable value.
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return new(big.Int), fmt.Errorf("%w: empty value", ErrMalformedAmount)
	}

	var (
		v  *big.Int
		ok bool
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := s[2:]
		if digits == "" {
			return new(big.Int), nil
		}
		v, ok = new(big.Int).SetString(digits, 16)
	} else {
		v, ok = new(big.Int).SetString(s, 10)
	}

	if !ok {
		return new(big.Int), fmt.Errorf("%w: %q", ErrMalformedAmount, s)
	}

	if v.Sign() < 0 {
		return new(big.Int), fmt.Errorf("%w: negative value %q", ErrMalformedAmount, s)
	}

	return v, nil
}

// ToBaseUnits converts an already scaled amount (e.g. "1250.5" tokens) into
// base units for the given decimals. Digits beyond the token precision are
// truncated.
func ToBaseUnits(display string, decimals int) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(display))
	if err != nil {
		return new(big.Int), fmt.Errorf("%w: %q", ErrMalformedAmount, display)
	}

	if d.IsNegative() {
		return new(big.Int), fmt.Errorf("%w: negative value %q", ErrMalformedAmount, display)
	}

	return d.Shift(int32(decimals)).Truncate(0).BigInt(), nil
}
