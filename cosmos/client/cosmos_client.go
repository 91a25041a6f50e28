package client

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/multichain-tx/cosmos/util"
	"github.com/dan13ram/multichain-tx/models"
)

const (
	accountQueryPath = "/cosmos.auth.v1beta1.Query/Account"
)

type CosmosClient interface {
	GetChainID() (string, error)
	GetAccount(address string) (*authtypes.BaseAccount, error)
	BroadcastTx(txBytes []byte) (*sdk.TxResponse, error)
	GetTx(hash string) (*sdk.TxResponse, error)
}

type cosmosClient struct {
	rpc     *rpchttp.HTTP
	cdc     *codec.ProtoCodec
	timeout time.Duration
	logger  *log.Entry
}

var _ CosmosClient = &cosmosClient{}

func (c *cosmosClient) GetChainID() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	status, err := c.rpc.Status(ctx)
	if err != nil {
		return "", err
	}

	return status.NodeInfo.Network, nil
}

func (c *cosmosClient) GetAccount(address string) (*authtypes.BaseAccount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	reqBz, err := c.cdc.Marshal(&authtypes.QueryAccountRequest{Address: address})
	if err != nil {
		return nil, err
	}

	res, err := c.rpc.ABCIQuery(ctx, accountQueryPath, reqBz)
	if err != nil {
		return nil, err
	}
	if res.Response.Code != 0 {
		return nil, fmt.Errorf("account query failed with code %d: %s", res.Response.Code, res.Response.Log)
	}

	var accountRes authtypes.QueryAccountResponse
	if err := c.cdc.Unmarshal(res.Response.Value, &accountRes); err != nil {
		return nil, fmt.Errorf("error decoding account response: %w", err)
	}

	var account sdk.AccountI
	if err := c.cdc.UnpackAny(accountRes.Account, &account); err != nil {
		return nil, fmt.Errorf("error unpacking account: %w", err)
	}

	c.logger.
		WithField("address", address).
		WithField("account_number", account.GetAccountNumber()).
		WithField("sequence", account.GetSequence()).
		Debug("Fetched account")

	return &authtypes.BaseAccount{
		Address:       address,
		AccountNumber: account.GetAccountNumber(),
		Sequence:      account.GetSequence(),
	}, nil
}

// BroadcastTx blocks until the check-tx ABCI step completes.
func (c *cosmosClient) BroadcastTx(txBytes []byte) (*sdk.TxResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	res, err := c.rpc.BroadcastTxSync(ctx, txBytes)
	if err != nil {
		return nil, err
	}

	return sdk.NewResponseFormatBroadcastTx(res), nil
}

func (c *cosmosClient) GetTx(hash string) (*sdk.TxResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	hashBytes, err := hex.DecodeString(strings.TrimPrefix(hash, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid tx hash %q: %w", hash, err)
	}

	res, err := c.rpc.Tx(ctx, hashBytes, false)
	if err != nil {
		return nil, err
	}

	return sdk.NewResponseResultTx(res, nil, ""), nil
}

func NewClient(config models.ChainConfig) (CosmosClient, error) {
	rpc, err := rpchttp.New(config.RPCURL, "/websocket")
	if err != nil {
		return nil, fmt.Errorf("error creating rpc client for %s: %w", config.RPCURL, err)
	}

	return &cosmosClient{
		rpc:     rpc,
		cdc:     util.NewCodec(config.Bech32Prefix),
		timeout: time.Duration(config.RPCTimeoutMillis) * time.Millisecond,
		logger:  log.WithField("chain", config.Name),
	}, nil
}
