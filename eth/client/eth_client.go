package client

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/multichain-tx/models"
)

type EthereumClient interface {
	GetChainID() (*big.Int, error)
	GetGasPrice() (*big.Int, error)
	GetPendingNonce(address common.Address) (uint64, error)
	SendTransaction(tx *types.Transaction) error
	GetTransactionReceipt(txHash string) (*types.Receipt, error)
}

type ethereumClient struct {
	client  *ethclient.Client
	timeout time.Duration
	logger  *log.Entry
}

var _ EthereumClient = &ethereumClient{}

func (c *ethereumClient) GetChainID() (*big.Int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	chainID, err := c.client.ChainID(ctx)
	if err != nil {
		return nil, err
	}

	return chainID, nil
}

func (c *ethereumClient) GetGasPrice() (*big.Int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	return c.client.SuggestGasPrice(ctx)
}

func (c *ethereumClient) GetPendingNonce(address common.Address) (uint64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	return c.client.PendingNonceAt(ctx, address)
}

func (c *ethereumClient) SendTransaction(tx *types.Transaction) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	c.logger.WithField("tx_hash", tx.Hash().Hex()).Debug("Sending transaction")
	return c.client.SendTransaction(ctx, tx)
}

func (c *ethereumClient) GetTransactionReceipt(txHash string) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	receipt, err := c.client.TransactionReceipt(ctx, common.HexToHash(txHash))
	return receipt, err
}

func NewClient(config models.ChainConfig) (EthereumClient, error) {
	client, err := ethclient.Dial(config.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", config.RPCURL, err)
	}
	return &ethereumClient{
		client:  client,
		timeout: time.Duration(config.RPCTimeoutMillis) * time.Millisecond,
		logger:  log.WithField("chain", config.Name),
	}, nil
}
