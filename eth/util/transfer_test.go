package util

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"

	multicommon "github.com/dan13ram/multichain-tx/common"
)

func TestParseRecipient(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		address, err := ParseRecipient(" 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 ")
		assert.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), address)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseRecipient("")
		assert.ErrorIs(t, err, multicommon.ErrMissingParam)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseRecipient("0x1234")
		assert.Error(t, err)
	})
}

func TestParseChainID(t *testing.T) {
	chainID, err := ParseChainID("")
	assert.NoError(t, err)
	assert.Nil(t, chainID)

	chainID, err = ParseChainID("11155111")
	assert.NoError(t, err)
	assert.Equal(t, int64(11155111), chainID.Int64())

	_, err = ParseChainID("sepolia")
	assert.Error(t, err)

	_, err = ParseChainID("0")
	assert.Error(t, err)
}

func TestNewTransferTx(t *testing.T) {
	to := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	tx := NewTransferTx(7, to, big.NewInt(1000), 0, big.NewInt(20))

	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, &to, tx.To())
	assert.Equal(t, big.NewInt(1000), tx.Value())
	assert.Equal(t, TransferGasLimit, tx.Gas())
	assert.Equal(t, big.NewInt(20), tx.GasPrice())
	assert.Empty(t, tx.Data())

	tx = NewTransferTx(7, to, big.NewInt(1000), 50000, big.NewInt(20))
	assert.Equal(t, uint64(50000), tx.Gas())
}
