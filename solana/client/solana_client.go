package client

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/multichain-tx/models"
)

type SolanaClient interface {
	GetLatestBlockhash() (solana.Hash, error)
	SendTransaction(tx *solana.Transaction) (solana.Signature, error)
	GetSignatureStatus(signature solana.Signature) (*rpc.SignatureStatusesResult, error)
}

type solanaClient struct {
	rpc     *rpc.Client
	timeout time.Duration
	logger  *log.Entry
}

var _ SolanaClient = &solanaClient{}

func (c *solanaClient) GetLatestBlockhash() (solana.Hash, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	res, err := c.rpc.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Hash{}, err
	}

	return res.Value.Blockhash, nil
}

func (c *solanaClient) SendTransaction(tx *solana.Transaction) (solana.Signature, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	return c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: rpc.CommitmentFinalized,
	})
}

// GetSignatureStatus returns nil when the node does not know the signature yet.
func (c *solanaClient) GetSignatureStatus(signature solana.Signature) (*rpc.SignatureStatusesResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	res, err := c.rpc.GetSignatureStatuses(ctx, true, signature)
	if err != nil {
		return nil, err
	}
	if len(res.Value) == 0 {
		return nil, nil
	}

	c.logger.WithField("signature", signature.String()).Debug("Fetched signature status")
	return res.Value[0], nil
}

func NewClient(config models.ChainConfig) (SolanaClient, error) {
	return &solanaClient{
		rpc:     rpc.New(config.RPCURL),
		timeout: time.Duration(config.RPCTimeoutMillis) * time.Millisecond,
		logger:  log.WithField("chain", config.Name),
	}, nil
}
