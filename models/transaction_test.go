package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/multichain-tx/common"
)

func TestNewTransactionRecord(t *testing.T) {
	req := TransactionRequest{
		Chain:    "cosmoshub",
		Type:     TransactionTypeSend,
		Mnemonic: "secret words",
		Params:   TransactionParams{Recipient: "cosmos1abc", Amount: "10"},
	}

	t.Run("Confirmed", func(t *testing.T) {
		record := NewTransactionRecord(req, "cosmos1sender", &TransactionResult{
			TransactionHash: "HASH",
			Height:          10,
			Success:         true,
		}, nil)

		assert.Equal(t, "cosmoshub", record.Chain)
		assert.Equal(t, "send", record.Type)
		assert.Equal(t, "cosmos1sender", record.Sender)
		assert.Equal(t, "HASH", record.TransactionHash)
		assert.Equal(t, TransactionStatusConfirmed, record.Status)
		assert.True(t, record.Success)
		assert.Equal(t, req.Params, record.Params)
		assert.False(t, record.CreatedAt.IsZero())
		assert.Equal(t, record.CreatedAt, record.UpdatedAt)
	})

	t.Run("Pending", func(t *testing.T) {
		record := NewTransactionRecord(req, "cosmos1sender", &TransactionResult{TransactionHash: "HASH", Success: true}, nil)

		assert.Equal(t, TransactionStatusPending, record.Status)
	})

	t.Run("Confirmation Timeout", func(t *testing.T) {
		err := fmt.Errorf("%w: HASH: tx not found", common.ErrConfirmationTimeout)
		record := NewTransactionRecord(req, "cosmos1sender", &TransactionResult{TransactionHash: "HASH"}, err)

		assert.Equal(t, TransactionStatusPending, record.Status)
		assert.Equal(t, "HASH", record.TransactionHash)
		assert.False(t, record.Success)
		assert.Equal(t, err.Error(), record.Error)
	})

	t.Run("Confirmation Timeout Without Hash", func(t *testing.T) {
		record := NewTransactionRecord(req, "cosmos1sender", nil, common.ErrConfirmationTimeout)

		assert.Equal(t, TransactionStatusFailed, record.Status)
	})

	t.Run("Failed", func(t *testing.T) {
		record := NewTransactionRecord(req, "cosmos1sender", nil, errors.New("broadcast failed"))

		assert.Equal(t, TransactionStatusFailed, record.Status)
		assert.False(t, record.Success)
		assert.Empty(t, record.TransactionHash)
		assert.Equal(t, "broadcast failed", record.Error)
	})
}

func TestChainFamilyIsValid(t *testing.T) {
	assert.True(t, ChainFamilyCosmos.IsValid())
	assert.True(t, ChainFamilySolana.IsValid())
	assert.True(t, ChainFamilyEthereum.IsValid())
	assert.False(t, ChainFamily("utxo").IsValid())
	assert.False(t, ChainFamily("").IsValid())
}
