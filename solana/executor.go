package solana

import (
	"fmt"
	"time"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/multichain-tx/common"
	"github.com/dan13ram/multichain-tx/models"
	solana "github.com/dan13ram/multichain-tx/solana/client"
	"github.com/dan13ram/multichain-tx/solana/util"
)

const (
	SolanaExecutorName = "SOLANA EXECUTOR"
)

var solanaNewClient = solana.NewClient

type Executor struct {
	config         models.ChainConfig
	confirmTimeout time.Duration
	pollInterval   time.Duration
	logger         *log.Entry
}

func (x *Executor) Supports(txType models.TransactionType) bool {
	return txType == models.TransactionTypeSend
}

func (x *Executor) Address(mnemonic string) (string, error) {
	signer, err := common.NewSolanaMnemonicSigner(mnemonic)
	if err != nil {
		return "", err
	}
	return signer.SolanaPublicKey().String(), nil
}

// waitForSignature returns on confirmation or on an on-chain error.
func (x *Executor) waitForSignature(client solana.SolanaClient, signature sol.Signature) (*rpc.SignatureStatusesResult, error) {
	deadline := time.Now().Add(x.confirmTimeout)
	for {
		res, err := client.GetSignatureStatus(signature)
		if err == nil && res != nil && res.Err != nil {
			return res, nil
		}
		if err == nil && util.IsConfirmed(res) {
			return res, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s: %v", common.ErrConfirmationTimeout, signature.String(), err)
		}
		x.logger.WithField("signature", signature.String()).Debug("Waiting for transaction to be confirmed")
		time.Sleep(x.pollInterval)
	}
}

func (x *Executor) Execute(req models.TransactionRequest) (*models.TransactionResult, error) {
	if !x.Supports(req.Type) {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedTransactionType, req.Type)
	}

	signer, err := common.NewSolanaMnemonicSigner(req.Mnemonic)
	if err != nil {
		return nil, err
	}
	sender := signer.SolanaPublicKey()
	logger := x.logger.WithField("type", req.Type).WithField("sender", sender.String())

	recipient, err := util.ParseRecipient(req.Params.Recipient)
	if err != nil {
		return nil, err
	}

	lamports, err := util.ParseLamports(req.Params.Amount)
	if err != nil {
		return nil, err
	}

	client, err := solanaNewClient(x.config)
	if err != nil {
		return nil, err
	}

	blockhash, err := client.GetLatestBlockhash()
	if err != nil {
		return nil, fmt.Errorf("error fetching latest blockhash: %w", err)
	}

	tx, err := util.NewTransferTx(sender, recipient, lamports, blockhash)
	if err != nil {
		return nil, fmt.Errorf("error building tx: %w", err)
	}

	if err := signer.SolanaSignTx(tx); err != nil {
		return nil, fmt.Errorf("error signing tx: %w", err)
	}

	logger.WithField("lamports", lamports).WithField("blockhash", blockhash.String()).Debug("Sending transaction")

	signature, err := client.SendTransaction(tx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrBroadcastFailed, err)
	}

	result := &models.TransactionResult{
		Chain:           x.config.Name,
		Type:            req.Type,
		Sender:          sender.String(),
		TransactionHash: signature.String(),
		Success:         true,
	}

	if x.confirmTimeout <= 0 {
		logger.WithField("signature", result.TransactionHash).Info("Transaction sent")
		return result, nil
	}

	status, err := x.waitForSignature(client, signature)
	if err != nil {
		result.Success = false
		return result, err
	}
	if status.Err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrTransactionFailed, result.TransactionHash, status.Err)
	}

	result.Height = int64(status.Slot)

	logger.WithField("signature", result.TransactionHash).WithField("slot", status.Slot).Info("Transaction confirmed")
	return result, nil
}

func NewExecutor(config models.ChainConfig) *Executor {
	return &Executor{
		config:         config,
		confirmTimeout: time.Duration(config.ConfirmTimeoutMillis) * time.Millisecond,
		pollInterval:   time.Duration(config.PollIntervalMillis) * time.Millisecond,
		logger: log.
			WithField("chain", config.Name).
			WithField("executor", SolanaExecutorName),
	}
}
