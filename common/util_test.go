package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimalUnits(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		decimals int32
		expected *big.Int
		err      bool
	}{
		{"Whole SOL", "2", SolDecimals, big.NewInt(2000000000), false},
		{"Fractional SOL", "0.5", SolDecimals, big.NewInt(500000000), false},
		{"One Lamport", "0.000000001", SolDecimals, big.NewInt(1), false},
		{"Below One Lamport", "0.0000000001", SolDecimals, nil, true},
		{"One Ether", "1", EtherDecimals, new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), false},
		{"Padded", " 1.25 ", 2, big.NewInt(125), false},
		{"Zero", "0", SolDecimals, nil, true},
		{"Negative", "-1", SolDecimals, nil, true},
		{"Empty", "", SolDecimals, nil, true},
		{"Garbage", "abc", SolDecimals, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := ParseDecimalUnits(tc.amount, tc.decimals)
			if tc.err {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				assert.Nil(t, value)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 0, tc.expected.Cmp(value))
		})
	}
}

func TestAddressBytesFromBech32(t *testing.T) {
	address, err := Bech32FromBytes("akash", make([]byte, 20))
	assert.NoError(t, err)

	bytes, err := AddressBytesFromBech32("akash", address)
	assert.NoError(t, err)
	assert.Equal(t, make([]byte, 20), bytes)

	_, err = AddressBytesFromBech32("cosmos", address)
	assert.Error(t, err)

	_, err = AddressBytesFromBech32("cosmos", "invalid")
	assert.Error(t, err)
}
