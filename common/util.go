package common

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/shopspring/decimal"
)

func Bech32FromBytes(prefix string, addressBytes []byte) (string, error) {
	return bech32.ConvertAndEncode(prefix, addressBytes)
}

func AddressBytesFromBech32(prefix string, address string) ([]byte, error) {
	hrp, addressBytes, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return nil, err
	}
	if hrp != prefix {
		return nil, fmt.Errorf("invalid bech32 prefix: expected %s, got %s", prefix, hrp)
	}
	return addressBytes, nil
}

// ParseDecimalUnits converts a positive decimal amount into base units,
// e.g. "1.5" with 9 decimals becomes 1500000000. Amounts finer than one base
// unit are rejected.
func ParseDecimalUnits(amount string, decimals int32) (*big.Int, error) {
	if strings.TrimSpace(amount) == "" {
		return nil, fmt.Errorf("%w: amount is empty", ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, amount, err)
	}
	if !value.IsPositive() {
		return nil, fmt.Errorf("%w: %q must be positive", ErrInvalidAmount, amount)
	}

	units := value.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return nil, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidAmount, amount, decimals)
	}

	return units.BigInt(), nil
}
