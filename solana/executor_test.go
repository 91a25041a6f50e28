package solana

import (
	"errors"
	"io"
	"testing"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dan13ram/multichain-tx/common"
	"github.com/dan13ram/multichain-tx/models"
	solana "github.com/dan13ram/multichain-tx/solana/client"
	clientMocks "github.com/dan13ram/multichain-tx/solana/client/mocks"
)

func init() {
	log.SetOutput(io.Discard)
}

const testMnemonic = "test test test test test test test test test test test junk"

var testRecipient = sol.NewWallet().PublicKey()

func newTestChainConfig() models.ChainConfig {
	return models.ChainConfig{
		Name:                 "solana",
		Family:               models.ChainFamilySolana,
		RPCURL:               "http://localhost:8899",
		Denom:                "sol",
		RPCTimeoutMillis:     1000,
		ConfirmTimeoutMillis: 20,
		PollIntervalMillis:   1,
	}
}

func withMockClient(t *testing.T, mockClient solana.SolanaClient) {
	t.Helper()
	original := solanaNewClient
	solanaNewClient = func(models.ChainConfig) (solana.SolanaClient, error) {
		return mockClient, nil
	}
	t.Cleanup(func() { solanaNewClient = original })
}

func withNoClient(t *testing.T) {
	t.Helper()
	original := solanaNewClient
	solanaNewClient = func(models.ChainConfig) (solana.SolanaClient, error) {
		t.Fatal("client should not be created")
		return nil, nil
	}
	t.Cleanup(func() { solanaNewClient = original })
}

func sendRequest() models.TransactionRequest {
	return models.TransactionRequest{
		Chain:    "solana",
		Type:     models.TransactionTypeSend,
		Mnemonic: testMnemonic,
		Params: models.TransactionParams{
			Recipient: testRecipient.String(),
			Amount:    "1.5",
		},
	}
}

func expectSend(t *testing.T, mockClient *clientMocks.MockSolanaClient, sender string) *sol.Signature {
	blockhash := sol.Hash{9, 9, 9}
	var signature sol.Signature

	mockClient.EXPECT().GetLatestBlockhash().Return(blockhash, nil)
	mockClient.EXPECT().SendTransaction(mock.Anything).RunAndReturn(func(tx *sol.Transaction) (sol.Signature, error) {
		assert.NoError(t, tx.VerifySignatures())
		assert.Equal(t, blockhash, tx.Message.RecentBlockhash)
		assert.Equal(t, sender, tx.Message.AccountKeys[0].String())
		assert.Contains(t, tx.Message.AccountKeys, testRecipient)
		signature = tx.Signatures[0]
		return signature, nil
	})

	return &signature
}

func TestExecutorAddress(t *testing.T) {
	x := NewExecutor(newTestChainConfig())

	address, err := x.Address(testMnemonic)
	assert.NoError(t, err)
	_, err = sol.PublicKeyFromBase58(address)
	assert.NoError(t, err)

	again, _ := x.Address(testMnemonic)
	assert.Equal(t, address, again)

	_, err = x.Address("bad words")
	assert.ErrorIs(t, err, common.ErrInvalidMnemonic)
}

func TestExecutorExecute(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)
		mockClient := clientMocks.NewMockSolanaClient(t)
		withMockClient(t, mockClient)

		signature := expectSend(t, mockClient, sender)
		mockClient.EXPECT().GetSignatureStatus(mock.Anything).Return(&rpc.SignatureStatusesResult{
			Slot:               321,
			ConfirmationStatus: rpc.ConfirmationStatusConfirmed,
		}, nil)

		result, err := x.Execute(sendRequest())

		assert.NoError(t, err)
		assert.Equal(t, signature.String(), result.TransactionHash)
		assert.Equal(t, sender, result.Sender)
		assert.Equal(t, int64(321), result.Height)
		assert.True(t, result.Success)
	})

	t.Run("No Confirmation Wait", func(t *testing.T) {
		config := newTestChainConfig()
		config.ConfirmTimeoutMillis = 0
		x := NewExecutor(config)
		sender, _ := x.Address(testMnemonic)
		mockClient := clientMocks.NewMockSolanaClient(t)
		withMockClient(t, mockClient)

		signature := expectSend(t, mockClient, sender)

		result, err := x.Execute(sendRequest())

		assert.NoError(t, err)
		assert.Equal(t, signature.String(), result.TransactionHash)
	})

	t.Run("Unsupported Transaction Type", func(t *testing.T) {
		withNoClient(t)
		req := sendRequest()
		req.Type = models.TransactionTypeDelegate

		result, err := NewExecutor(newTestChainConfig()).Execute(req)

		assert.ErrorIs(t, err, common.ErrUnsupportedTransactionType)
		assert.Nil(t, result)
	})

	t.Run("Invalid Mnemonic", func(t *testing.T) {
		withNoClient(t)
		req := sendRequest()
		req.Mnemonic = ""

		result, err := NewExecutor(newTestChainConfig()).Execute(req)

		assert.ErrorIs(t, err, common.ErrInvalidMnemonic)
		assert.Nil(t, result)
	})

	t.Run("Invalid Amount", func(t *testing.T) {
		withNoClient(t)
		req := sendRequest()
		req.Params.Amount = "ten"

		result, err := NewExecutor(newTestChainConfig()).Execute(req)

		assert.ErrorIs(t, err, common.ErrInvalidAmount)
		assert.Nil(t, result)
	})

	t.Run("Blockhash Error", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		mockClient := clientMocks.NewMockSolanaClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetLatestBlockhash().Return(sol.Hash{}, errors.New("rpc error"))

		result, err := x.Execute(sendRequest())

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Send Error", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		mockClient := clientMocks.NewMockSolanaClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetLatestBlockhash().Return(sol.Hash{1}, nil)
		mockClient.EXPECT().SendTransaction(mock.Anything).Return(sol.Signature{}, errors.New("insufficient lamports"))

		result, err := x.Execute(sendRequest())

		assert.ErrorIs(t, err, common.ErrBroadcastFailed)
		assert.Nil(t, result)
	})

	t.Run("Transaction Failed", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)
		mockClient := clientMocks.NewMockSolanaClient(t)
		withMockClient(t, mockClient)

		expectSend(t, mockClient, sender)
		mockClient.EXPECT().GetSignatureStatus(mock.Anything).Return(&rpc.SignatureStatusesResult{
			Slot:               321,
			Err:                map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}},
			ConfirmationStatus: rpc.ConfirmationStatusProcessed,
		}, nil)

		result, err := x.Execute(sendRequest())

		assert.ErrorIs(t, err, common.ErrTransactionFailed)
		assert.Nil(t, result)
	})

	t.Run("Confirmation Timeout", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)
		mockClient := clientMocks.NewMockSolanaClient(t)
		withMockClient(t, mockClient)

		expectSend(t, mockClient, sender)
		mockClient.EXPECT().GetSignatureStatus(mock.Anything).Return(nil, nil)

		result, err := x.Execute(sendRequest())

		assert.ErrorIs(t, err, common.ErrConfirmationTimeout)
		assert.NotNil(t, result)
		assert.NotEmpty(t, result.TransactionHash)
		assert.False(t, result.Success)
		assert.Zero(t, result.Height)
	})
}
