package data

import (
	"fmt"
	"math/big"
	"strings"
)

// AssetValueType declares what kind of value an asset definition carries.
type AssetValueType string

const (
	ValueTypeQuantity    AssetValueType = "Quantity"
	ValueTypeBigQuantity AssetValueType = "BigQuantity"
	ValueTypeFixed       AssetValueType = "Fixed"
	ValueTypeStore       AssetValueType = "Store"
)

// ValidValueType reports whether the value type is one the ledger accepts.
func ValidValueType(valueType AssetValueType) bool {
	switch valueType {
	case ValueTypeQuantity, ValueTypeBigQuantity, ValueTypeFixed, ValueTypeStore:
		return true
	default:
		return false
	}
}

// Numeric reports whether assets of this type can be minted, burned, or
// transferred by amount.
func (t AssetValueType) Numeric() bool {
	return t == ValueTypeQuantity || t == ValueTypeBigQuantity || t == ValueTypeFixed
}

// Mintable declares whether and how often an asset definition may be minted.
type Mintable string

const (
	MintableInfinitely Mintable = "Infinitely"
	MintableOnce       Mintable = "Once"
	MintableNot        Mintable = "Not"
)

// ValidMintable reports whether the mintability is one the ledger accepts.
func ValidMintable(mintable Mintable) bool {
	switch mintable {
	case MintableInfinitely, MintableOnce, MintableNot:
		return true
	default:
		return false
	}
}

// FixedFractionalDigits is the decimal precision of Fixed asset values.
const FixedFractionalDigits = 9

var fixedScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(FixedFractionalDigits), nil)

// Fixed is a non-negative fixed-point decimal with nine fractional digits,
// stored as the scaled integer representation the ledger uses.
type Fixed struct {
	scaled *big.Int
}

// ParseFixed parses a decimal string such as "123.456" into a Fixed value.
func ParseFixed(value string) (Fixed, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Fixed{}, fmt.Errorf("fixed value cannot be empty")
	}
	if strings.HasPrefix(trimmed, "-") {
		return Fixed{}, fmt.Errorf("fixed value cannot be negative")
	}

	whole, fraction, _ := strings.Cut(trimmed, ".")
	if whole == "" {
		whole = "0"
	}
	if len(fraction) > FixedFractionalDigits {
		return Fixed{}, fmt.Errorf(
			"fixed value %q exceeds %d fractional digits", value, FixedFractionalDigits,
		)
	}
	fraction += strings.Repeat("0", FixedFractionalDigits-len(fraction))

	scaled, ok := new(big.Int).SetString(whole+fraction, 10)
	if !ok {
		return Fixed{}, fmt.Errorf("fixed value %q is not a decimal number", value)
	}
	return Fixed{scaled: scaled}, nil
}

// FixedFromUint creates a Fixed from a whole number of units.
func FixedFromUint(units uint64) Fixed {
	scaled := new(big.Int).SetUint64(units)
	return Fixed{scaled: scaled.Mul(scaled, fixedScale)}
}

// Scaled returns the underlying scaled integer (value * 10^9).
func (f Fixed) Scaled() *big.Int {
	if f.scaled == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(f.scaled)
}

// IsZero reports whether the value is zero.
func (f Fixed) IsZero() bool {
	return f.scaled == nil || f.scaled.Sign() == 0
}

// String renders the decimal form, trimming trailing fractional zeros.
func (f Fixed) String() string {
	scaled := f.Scaled()
	whole, remainder := new(big.Int).QuoRem(scaled, fixedScale, new(big.Int))

	if remainder.Sign() == 0 {
		return whole.String()
	}

	fraction := fmt.Sprintf("%0*s", FixedFractionalDigits, remainder.String())
	fraction = strings.TrimRight(fraction, "0")
	return whole.String() + "." + fraction
}

// MarshalText implements encoding.TextMarshaler.
func (f Fixed) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fixed) UnmarshalText(text []byte) error {
	parsed, err := ParseFixed(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
