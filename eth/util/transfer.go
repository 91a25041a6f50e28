package util

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	multicommon "github.com/dan13ram/multichain-tx/common"
	"github.com/dan13ram/multichain-tx/models"
)

const TransferGasLimit uint64 = 21000

func ParseRecipient(recipient string) (common.Address, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return common.Address{}, fmt.Errorf("%w: recipient is required for %s", multicommon.ErrMissingParam, models.TransactionTypeSend)
	}
	if !common.IsHexAddress(recipient) {
		return common.Address{}, fmt.Errorf("invalid recipient address: %q", recipient)
	}
	return common.HexToAddress(recipient), nil
}

// ParseChainID returns nil for an empty override.
func ParseChainID(chainID string) (*big.Int, error) {
	if chainID == "" {
		return nil, nil
	}
	value, ok := new(big.Int).SetString(chainID, 10)
	if !ok || value.Sign() <= 0 {
		return nil, fmt.Errorf("invalid chain id: %q", chainID)
	}
	return value, nil
}

func NewTransferTx(nonce uint64, to common.Address, value *big.Int, gasLimit uint64, gasPrice *big.Int) *types.Transaction {
	if gasLimit == 0 {
		gasLimit = TransferGasLimit
	}
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
	})
}
