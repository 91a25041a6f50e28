package cosmos

import (
	"context"
	"fmt"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/multichain-tx/common"
	cosmos "github.com/dan13ram/multichain-tx/cosmos/client"
	"github.com/dan13ram/multichain-tx/cosmos/util"
	"github.com/dan13ram/multichain-tx/models"
)

const (
	CosmosExecutorName = "COSMOS EXECUTOR"
)

var cosmosNewClient = cosmos.NewClient
var utilSignWithPrivKey = util.SignWithPrivKey

type Executor struct {
	config         models.ChainConfig
	confirmTimeout time.Duration
	pollInterval   time.Duration
	logger         *log.Entry
}

func (x *Executor) Supports(txType models.TransactionType) bool {
	return util.SupportsTransactionType(txType)
}

func (x *Executor) Address(mnemonic string) (string, error) {
	signer, err := common.NewCosmosMnemonicSigner(mnemonic, x.config.HDPath)
	if err != nil {
		return "", err
	}
	return signer.CosmosAddress(x.config.Bech32Prefix)
}

func (x *Executor) fee() sdk.Coins {
	return sdk.NewCoins(sdk.NewCoin(x.config.Denom, math.NewInt(x.config.FeeAmount)))
}

func (x *Executor) waitForTx(client cosmos.CosmosClient, txHash string) (*sdk.TxResponse, error) {
	deadline := time.Now().Add(x.confirmTimeout)
	for {
		txResponse, err := client.GetTx(txHash)
		if err == nil && txResponse != nil {
			return txResponse, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrConfirmationTimeout, txHash, err)
		}
		x.logger.WithField("tx_hash", txHash).Debug("Waiting for transaction to be included")
		time.Sleep(x.pollInterval)
	}
}

func (x *Executor) inspectEvents(logger *log.Entry, req models.TransactionRequest, txResponse *sdk.TxResponse, result *models.TransactionResult) {
	switch req.Type {
	case models.TransactionTypeSubmitProposal:
		if proposalID, ok := util.FindEventAttribute(txResponse.Events, util.EventTypeSubmitProposal, util.AttributeKeyProposalID); ok {
			result.ProposalID = proposalID
		}
	case models.TransactionTypeSend:
		transfers, err := util.ParseTransferEvents(txResponse.Events, req.Params.Recipient, x.config.Denom)
		if err != nil || len(transfers) == 0 {
			logger.WithError(err).Warn("Transfer event not found in included transaction")
		}
	case models.TransactionTypeIBCTransfer:
		if sequence, ok := util.FindEventAttribute(txResponse.Events, util.EventTypeSendPacket, util.AttributeKeyPacketSequence); ok {
			logger.WithField("packet_sequence", sequence).Debug("IBC packet sent")
		}
	}
}

func (x *Executor) Execute(req models.TransactionRequest) (*models.TransactionResult, error) {
	if !x.Supports(req.Type) {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedTransactionType, req.Type)
	}

	logger := x.logger.WithField("type", req.Type)

	signer, err := common.NewCosmosMnemonicSigner(req.Mnemonic, x.config.HDPath)
	if err != nil {
		return nil, err
	}

	sender, err := signer.CosmosAddress(x.config.Bech32Prefix)
	if err != nil {
		return nil, fmt.Errorf("error getting sender address: %w", err)
	}
	logger = logger.WithField("sender", sender)

	msg, err := util.NewMsg(req.Type, sender, x.config, req.Params)
	if err != nil {
		return nil, err
	}

	client, err := cosmosNewClient(x.config)
	if err != nil {
		return nil, err
	}

	chainID := x.config.ChainID
	if chainID == "" {
		chainID, err = client.GetChainID()
		if err != nil {
			return nil, fmt.Errorf("error fetching chain id: %w", err)
		}
	}

	account, err := client.GetAccount(sender)
	if err != nil {
		return nil, fmt.Errorf("error getting account: %w", err)
	}

	txConfig := util.NewTxConfig(x.config.Bech32Prefix)
	txBuilder, err := util.NewTxBuilder(
		txConfig,
		msg,
		x.fee(),
		x.config.GasLimit,
		util.Memo(req.Type, req.Params),
	)
	if err != nil {
		return nil, err
	}

	signerData := authsigning.SignerData{
		ChainID:       chainID,
		AccountNumber: account.AccountNumber,
		Sequence:      account.Sequence,
		PubKey:        signer.CosmosPublicKey(),
		Address:       sender,
	}

	_, _, err = utilSignWithPrivKey(
		context.Background(),
		signerData,
		txBuilder,
		signer,
		txConfig,
		account.Sequence,
	)
	if err != nil {
		return nil, fmt.Errorf("error signing tx: %w", err)
	}

	txBytes, err := txConfig.TxEncoder()(txBuilder.GetTx())
	if err != nil {
		return nil, fmt.Errorf("error encoding tx: %w", err)
	}

	logger.WithField("chain_id", chainID).WithField("sequence", account.Sequence).Debug("Broadcasting transaction")

	res, err := client.BroadcastTx(txBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrBroadcastFailed, err)
	}
	if err := util.ValidateTxResponse(common.ErrBroadcastFailed, res); err != nil {
		return nil, err
	}

	result := &models.TransactionResult{
		Chain:           x.config.Name,
		Type:            req.Type,
		Sender:          sender,
		TransactionHash: res.TxHash,
		Success:         true,
	}

	if x.confirmTimeout <= 0 {
		logger.WithField("tx_hash", res.TxHash).Info("Transaction accepted")
		return result, nil
	}

	txResponse, err := x.waitForTx(client, res.TxHash)
	if err != nil {
		result.Success = false
		return result, err
	}
	if err := util.ValidateTxResponse(common.ErrTransactionFailed, txResponse); err != nil {
		return nil, err
	}

	result.Height = txResponse.Height
	x.inspectEvents(logger, req, txResponse, result)

	logger.WithField("tx_hash", res.TxHash).WithField("height", txResponse.Height).Info("Transaction included")
	return result, nil
}

func NewExecutor(config models.ChainConfig) *Executor {
	return &Executor{
		config:         config,
		confirmTimeout: time.Duration(config.ConfirmTimeoutMillis) * time.Millisecond,
		pollInterval:   time.Duration(config.PollIntervalMillis) * time.Millisecond,
		logger: log.
			WithField("chain", config.Name).
			WithField("executor", CosmosExecutorName),
	}
}
