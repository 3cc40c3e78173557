package isi

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/QuentinI/iroha-go-sdk/pkg/data"
)

// Value is the amount operand of mint, burn, and transfer instructions. It
// carries exactly one of the ledger's numeric asset value kinds.
type Value struct {
	quantity    *uint32
	bigQuantity *big.Int
	fixed       *data.Fixed
}

// Quantity creates a 32-bit quantity value.
func Quantity(amount uint32) Value {
	return Value{quantity: &amount}
}

// BigQuantity creates an arbitrary-precision quantity value.
func BigQuantity(amount *big.Int) Value {
	if amount == nil {
		return Value{}
	}
	copied := new(big.Int).Set(amount)
	return Value{bigQuantity: copied}
}

// FixedValue creates a fixed-point decimal value.
func FixedValue(amount data.Fixed) Value {
	return Value{fixed: &amount}
}

// Type returns the asset value type the amount corresponds to.
func (v Value) Type() data.AssetValueType {
	switch {
	case v.quantity != nil:
		return data.ValueTypeQuantity
	case v.bigQuantity != nil:
		return data.ValueTypeBigQuantity
	case v.fixed != nil:
		return data.ValueTypeFixed
	default:
		return ""
	}
}

// Validate checks that the value is set and non-negative.
func (v Value) Validate() error {
	switch {
	case v.quantity != nil:
		return nil
	case v.bigQuantity != nil:
		if v.bigQuantity.Sign() < 0 {
			return fmt.Errorf("big quantity cannot be negative")
		}
		return nil
	case v.fixed != nil:
		return nil
	default:
		return fmt.Errorf("value is empty")
	}
}

// String renders the amount for logging.
func (v Value) String() string {
	switch {
	case v.quantity != nil:
		return fmt.Sprintf("%d", *v.quantity)
	case v.bigQuantity != nil:
		return v.bigQuantity.String()
	case v.fixed != nil:
		return v.fixed.String()
	default:
		return "<empty>"
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.quantity != nil:
		return json.Marshal(map[string]uint32{string(data.ValueTypeQuantity): *v.quantity})
	case v.bigQuantity != nil:
		return json.Marshal(map[string]string{
			string(data.ValueTypeBigQuantity): v.bigQuantity.String(),
		})
	case v.fixed != nil:
		return json.Marshal(map[string]string{string(data.ValueTypeFixed): v.fixed.String()})
	default:
		return nil, fmt.Errorf("cannot marshal empty value")
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(payload []byte) error {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(payload, &wire); err != nil {
		return err
	}
	if len(wire) != 1 {
		return fmt.Errorf("value must carry exactly one kind, got %d", len(wire))
	}

	for kind, raw := range wire {
		switch data.AssetValueType(kind) {
		case data.ValueTypeQuantity:
			var amount uint32
			if err := json.Unmarshal(raw, &amount); err != nil {
				return fmt.Errorf("invalid quantity: %w", err)
			}
			*v = Quantity(amount)
		case data.ValueTypeBigQuantity:
			var rendered string
			if err := json.Unmarshal(raw, &rendered); err != nil {
				return fmt.Errorf("invalid big quantity: %w", err)
			}
			amount, ok := new(big.Int).SetString(rendered, 10)
			if !ok {
				return fmt.Errorf("invalid big quantity %q", rendered)
			}
			*v = BigQuantity(amount)
		case data.ValueTypeFixed:
			var rendered string
			if err := json.Unmarshal(raw, &rendered); err != nil {
				return fmt.Errorf("invalid fixed value: %w", err)
			}
			fixed, err := data.ParseFixed(rendered)
			if err != nil {
				return err
			}
			*v = FixedValue(fixed)
		default:
			return fmt.Errorf("unsupported value kind %q", kind)
		}
	}
	return nil
}
