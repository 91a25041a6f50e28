package eth

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/multichain-tx/common"
	eth "github.com/dan13ram/multichain-tx/eth/client"
	"github.com/dan13ram/multichain-tx/eth/util"
	"github.com/dan13ram/multichain-tx/models"
)

const (
	EthExecutorName = "ETH EXECUTOR"
)

var ethNewClient = eth.NewClient

type Executor struct {
	config         models.ChainConfig
	confirmTimeout time.Duration
	pollInterval   time.Duration
	logger         *log.Entry
}

func (x *Executor) Supports(txType models.TransactionType) bool {
	return txType == models.TransactionTypeSend
}

func (x *Executor) hdPath() string {
	if x.config.HDPath != "" {
		return x.config.HDPath
	}
	return common.DefaultETHHDPath
}

func (x *Executor) Address(mnemonic string) (string, error) {
	signer, err := common.NewEthereumMnemonicSigner(mnemonic, x.hdPath())
	if err != nil {
		return "", err
	}
	return signer.EthAddress().Hex(), nil
}

func (x *Executor) chainID(client eth.EthereumClient) (*big.Int, error) {
	chainID, err := util.ParseChainID(x.config.ChainID)
	if err != nil {
		return nil, err
	}
	if chainID != nil {
		return chainID, nil
	}
	chainID, err = client.GetChainID()
	if err != nil {
		return nil, fmt.Errorf("error fetching chain id: %w", err)
	}
	return chainID, nil
}

func (x *Executor) waitMined(client eth.EthereumClient, txHash string) (*types.Receipt, error) {
	deadline := time.Now().Add(x.confirmTimeout)
	for {
		receipt, err := client.GetTransactionReceipt(txHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrConfirmationTimeout, txHash, err)
		}
		x.logger.WithField("tx_hash", txHash).Debug("Waiting for transaction to be mined")
		time.Sleep(x.pollInterval)
	}
}

func (x *Executor) Execute(req models.TransactionRequest) (*models.TransactionResult, error) {
	if !x.Supports(req.Type) {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedTransactionType, req.Type)
	}

	signer, err := common.NewEthereumMnemonicSigner(req.Mnemonic, x.hdPath())
	if err != nil {
		return nil, err
	}
	sender := signer.EthAddress()
	logger := x.logger.WithField("type", req.Type).WithField("sender", sender.Hex())

	to, err := util.ParseRecipient(req.Params.Recipient)
	if err != nil {
		return nil, err
	}

	value, err := common.ParseDecimalUnits(req.Params.Amount, common.EtherDecimals)
	if err != nil {
		return nil, err
	}

	client, err := ethNewClient(x.config)
	if err != nil {
		return nil, err
	}

	chainID, err := x.chainID(client)
	if err != nil {
		return nil, err
	}

	nonce, err := client.GetPendingNonce(sender)
	if err != nil {
		return nil, fmt.Errorf("error fetching nonce: %w", err)
	}

	gasPrice, err := client.GetGasPrice()
	if err != nil {
		return nil, fmt.Errorf("error fetching gas price: %w", err)
	}

	tx := util.NewTransferTx(nonce, to, value, x.config.GasLimit, gasPrice)

	signedTx, err := signer.EthSignTx(tx, chainID)
	if err != nil {
		return nil, fmt.Errorf("error signing tx: %w", err)
	}

	logger.
		WithField("chain_id", chainID.String()).
		WithField("nonce", nonce).
		WithField("gas_price", gasPrice.String()).
		Debug("Sending transaction")

	if err := client.SendTransaction(signedTx); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrBroadcastFailed, err)
	}

	txHash := signedTx.Hash().Hex()
	result := &models.TransactionResult{
		Chain:           x.config.Name,
		Type:            req.Type,
		Sender:          sender.Hex(),
		TransactionHash: txHash,
		Success:         true,
	}

	if !x.config.WaitMined || x.confirmTimeout <= 0 {
		logger.WithField("tx_hash", txHash).Info("Transaction sent")
		return result, nil
	}

	receipt, err := x.waitMined(client, txHash)
	if err != nil {
		result.Success = false
		return result, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s: reverted in block %s", common.ErrTransactionFailed, txHash, receipt.BlockNumber)
	}

	if receipt.BlockNumber != nil {
		result.Height = receipt.BlockNumber.Int64()
	}

	logger.WithField("tx_hash", txHash).WithField("height", result.Height).Info("Transaction mined")
	return result, nil
}

func NewExecutor(config models.ChainConfig) *Executor {
	return &Executor{
		config:         config,
		confirmTimeout: time.Duration(config.ConfirmTimeoutMillis) * time.Millisecond,
		pollInterval:   time.Duration(config.PollIntervalMillis) * time.Millisecond,
		logger: log.
			WithField("chain", config.Name).
			WithField("executor", EthExecutorName),
	}
}
