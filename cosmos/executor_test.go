package cosmos

import (
	"context"
	"errors"
	"io"
	"testing"

	abci "github.com/cometbft/cometbft/abci/types"
	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
	authsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dan13ram/multichain-tx/common"
	cosmos "github.com/dan13ram/multichain-tx/cosmos/client"
	clientMocks "github.com/dan13ram/multichain-tx/cosmos/client/mocks"
	"github.com/dan13ram/multichain-tx/cosmos/util"
	"github.com/dan13ram/multichain-tx/models"
)

func init() {
	log.SetOutput(io.Discard)
}

const testMnemonic = "test test test test test test test test test test test junk"

var testRecipient, _ = common.Bech32FromBytes("cosmos", make([]byte, 20))

func newTestChainConfig() models.ChainConfig {
	return models.ChainConfig{
		Name:                 "cosmoshub",
		Family:               models.ChainFamilyCosmos,
		RPCURL:               "http://localhost:26657",
		Denom:                "uatom",
		Bech32Prefix:         "cosmos",
		FeeAmount:            5000,
		GasLimit:             200000,
		RPCTimeoutMillis:     1000,
		ConfirmTimeoutMillis: 20,
		PollIntervalMillis:   1,
	}
}

func withMockClient(t *testing.T, mockClient cosmos.CosmosClient) {
	t.Helper()
	original := cosmosNewClient
	cosmosNewClient = func(models.ChainConfig) (cosmos.CosmosClient, error) {
		return mockClient, nil
	}
	t.Cleanup(func() { cosmosNewClient = original })
}

func withNoClient(t *testing.T) {
	t.Helper()
	original := cosmosNewClient
	cosmosNewClient = func(models.ChainConfig) (cosmos.CosmosClient, error) {
		t.Fatal("client should not be created")
		return nil, nil
	}
	t.Cleanup(func() { cosmosNewClient = original })
}

func sendRequest() models.TransactionRequest {
	return models.TransactionRequest{
		Chain:    "cosmoshub",
		Type:     models.TransactionTypeSend,
		Mnemonic: testMnemonic,
		Params: models.TransactionParams{
			Recipient: testRecipient,
			Amount:    "1000000",
		},
	}
}

func TestExecutorAddress(t *testing.T) {
	x := NewExecutor(newTestChainConfig())

	first, err := x.Address(testMnemonic)
	assert.NoError(t, err)
	second, err := x.Address(testMnemonic)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "cosmos1")

	_, err = x.Address("invalid mnemonic")
	assert.ErrorIs(t, err, common.ErrInvalidMnemonic)
}

func TestExecutorExecute(t *testing.T) {

	t.Run("Success", func(t *testing.T) {
		config := newTestChainConfig()
		x := NewExecutor(config)
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetChainID().Return("cosmoshub-4", nil)
		mockClient.EXPECT().GetAccount(sender).Return(&authtypes.BaseAccount{AccountNumber: 12, Sequence: 4}, nil)
		mockClient.EXPECT().BroadcastTx(mock.Anything).Run(func(txBytes []byte) {
			decoded, err := util.NewTxConfig("cosmos").TxDecoder()(txBytes)
			assert.NoError(t, err)

			msgs := decoded.GetMsgs()
			assert.Equal(t, 1, len(msgs))
			send, ok := msgs[0].(*banktypes.MsgSend)
			assert.True(t, ok)
			assert.Equal(t, sender, send.FromAddress)
			assert.Equal(t, testRecipient, send.ToAddress)

			feeTx, ok := decoded.(sdk.FeeTx)
			assert.True(t, ok)
			assert.Equal(t, uint64(200000), feeTx.GetGas())
			assert.Equal(t, "5000uatom", feeTx.GetFee().String())

			wrapped, ok := decoded.(interface{ GetProtoTx() *tx.Tx })
			if ok {
				assert.Equal(t, "Sending tokens", wrapped.GetProtoTx().Body.Memo)
			}
		}).Return(&sdk.TxResponse{TxHash: "ABCDEF", Code: 0}, nil)
		mockClient.EXPECT().GetTx("ABCDEF").Return(&sdk.TxResponse{TxHash: "ABCDEF", Height: 99, Code: 0}, nil)

		result, err := x.Execute(sendRequest())

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "ABCDEF", result.TransactionHash)
		assert.Equal(t, int64(99), result.Height)
		assert.Equal(t, sender, result.Sender)
		assert.True(t, result.Success)
	})

	t.Run("Submit Proposal", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetChainID().Return("cosmoshub-4", nil)
		mockClient.EXPECT().GetAccount(sender).Return(&authtypes.BaseAccount{AccountNumber: 12, Sequence: 4}, nil)
		mockClient.EXPECT().BroadcastTx(mock.Anything).Return(&sdk.TxResponse{TxHash: "ABCDEF"}, nil)
		mockClient.EXPECT().GetTx("ABCDEF").Return(&sdk.TxResponse{
			TxHash: "ABCDEF",
			Height: 100,
			Events: []abci.Event{
				{Type: "submit_proposal", Attributes: []abci.EventAttribute{
					{Key: "proposal_id", Value: "77"},
				}},
			},
		}, nil)

		result, err := x.Execute(models.TransactionRequest{
			Chain:    "cosmoshub",
			Type:     models.TransactionTypeSubmitProposal,
			Mnemonic: testMnemonic,
			Params: models.TransactionParams{
				Title:       "Title",
				Description: "Description",
				Deposit:     "1000",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "77", result.ProposalID)
		assert.Equal(t, int64(100), result.Height)
	})

	t.Run("Chain ID Override", func(t *testing.T) {
		config := newTestChainConfig()
		config.ChainID = "cosmoshub-4"
		config.ConfirmTimeoutMillis = 0
		x := NewExecutor(config)
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetAccount(sender).Return(&authtypes.BaseAccount{AccountNumber: 12, Sequence: 4}, nil)
		mockClient.EXPECT().BroadcastTx(mock.Anything).Return(&sdk.TxResponse{TxHash: "ABCDEF"}, nil)

		result, err := x.Execute(sendRequest())

		assert.NoError(t, err)
		assert.Equal(t, "ABCDEF", result.TransactionHash)
		assert.Equal(t, int64(0), result.Height)
	})

	t.Run("Unsupported Transaction Type", func(t *testing.T) {
		withNoClient(t)
		x := NewExecutor(newTestChainConfig())

		req := sendRequest()
		req.Type = "swap"
		result, err := x.Execute(req)

		assert.ErrorIs(t, err, common.ErrUnsupportedTransactionType)
		assert.Nil(t, result)
	})

	t.Run("Invalid Mnemonic", func(t *testing.T) {
		withNoClient(t)
		x := NewExecutor(newTestChainConfig())

		req := sendRequest()
		req.Mnemonic = "your mnemonic here"
		result, err := x.Execute(req)

		assert.ErrorIs(t, err, common.ErrInvalidMnemonic)
		assert.Nil(t, result)
	})

	t.Run("Invalid Params", func(t *testing.T) {
		withNoClient(t)
		x := NewExecutor(newTestChainConfig())

		req := sendRequest()
		req.Params.Amount = "lots"
		result, err := x.Execute(req)

		assert.ErrorIs(t, err, common.ErrInvalidAmount)
		assert.Nil(t, result)
	})

	t.Run("Client Error", func(t *testing.T) {
		original := cosmosNewClient
		cosmosNewClient = func(models.ChainConfig) (cosmos.CosmosClient, error) {
			return nil, errors.New("dial error")
		}
		defer func() { cosmosNewClient = original }()

		result, err := NewExecutor(newTestChainConfig()).Execute(sendRequest())

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Account Error", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetChainID().Return("cosmoshub-4", nil)
		mockClient.EXPECT().GetAccount(sender).Return(nil, errors.New("account not found"))

		result, err := x.Execute(sendRequest())

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Broadcast Error", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetChainID().Return("cosmoshub-4", nil)
		mockClient.EXPECT().GetAccount(sender).Return(&authtypes.BaseAccount{AccountNumber: 12, Sequence: 4}, nil)
		mockClient.EXPECT().BroadcastTx(mock.Anything).Return(nil, errors.New("connection refused"))

		result, err := x.Execute(sendRequest())

		assert.ErrorIs(t, err, common.ErrBroadcastFailed)
		assert.Nil(t, result)
	})

	t.Run("Broadcast Rejected", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetChainID().Return("cosmoshub-4", nil)
		mockClient.EXPECT().GetAccount(sender).Return(&authtypes.BaseAccount{AccountNumber: 12, Sequence: 4}, nil)
		mockClient.EXPECT().BroadcastTx(mock.Anything).Return(&sdk.TxResponse{TxHash: "ABCDEF", Code: 32, Codespace: "sdk", RawLog: "account sequence mismatch"}, nil)

		result, err := x.Execute(sendRequest())

		assert.ErrorIs(t, err, common.ErrBroadcastFailed)
		assert.Contains(t, err.Error(), "account sequence mismatch")
		assert.Nil(t, result)
	})

	t.Run("Transaction Failed", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetChainID().Return("cosmoshub-4", nil)
		mockClient.EXPECT().GetAccount(sender).Return(&authtypes.BaseAccount{AccountNumber: 12, Sequence: 4}, nil)
		mockClient.EXPECT().BroadcastTx(mock.Anything).Return(&sdk.TxResponse{TxHash: "ABCDEF"}, nil)
		mockClient.EXPECT().GetTx("ABCDEF").Return(&sdk.TxResponse{TxHash: "ABCDEF", Height: 99, Code: 5, RawLog: "insufficient funds"}, nil)

		result, err := x.Execute(sendRequest())

		assert.ErrorIs(t, err, common.ErrTransactionFailed)
		assert.Nil(t, result)
	})

	t.Run("Confirmation Timeout", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		mockClient.EXPECT().GetChainID().Return("cosmoshub-4", nil)
		mockClient.EXPECT().GetAccount(sender).Return(&authtypes.BaseAccount{AccountNumber: 12, Sequence: 4}, nil)
		mockClient.EXPECT().BroadcastTx(mock.Anything).Return(&sdk.TxResponse{TxHash: "ABCDEF"}, nil)
		mockClient.EXPECT().GetTx("ABCDEF").Return(nil, errors.New("tx not found"))

		result, err := x.Execute(sendRequest())

		assert.ErrorIs(t, err, common.ErrConfirmationTimeout)
		assert.NotNil(t, result)
		assert.Equal(t, "ABCDEF", result.TransactionHash)
		assert.Equal(t, sender, result.Sender)
		assert.False(t, result.Success)
		assert.Zero(t, result.Height)
	})

	t.Run("Sign Error", func(t *testing.T) {
		x := NewExecutor(newTestChainConfig())
		sender, _ := x.Address(testMnemonic)

		mockClient := clientMocks.NewMockCosmosClient(t)
		withMockClient(t, mockClient)

		original := utilSignWithPrivKey
		defer func() { utilSignWithPrivKey = original }()
		utilSignWithPrivKey = func(_ context.Context, _ authsigning.SignerData, _ client.TxBuilder, _ common.CosmosSigner, _ client.TxConfig, _ uint64) (signingtypes.SignatureV2, []byte, error) {
			return signingtypes.SignatureV2{}, nil, errors.New("sign error")
		}

		mockClient.EXPECT().GetChainID().Return("cosmoshub-4", nil)
		mockClient.EXPECT().GetAccount(sender).Return(&authtypes.BaseAccount{AccountNumber: 12, Sequence: 4}, nil)

		result, err := x.Execute(sendRequest())

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
