package util

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/dan13ram/multichain-tx/common"
	"github.com/dan13ram/multichain-tx/models"
)

func ParseRecipient(recipient string) (solana.PublicKey, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return solana.PublicKey{}, fmt.Errorf("%w: recipient is required for %s", common.ErrMissingParam, models.TransactionTypeSend)
	}
	key, err := solana.PublicKeyFromBase58(recipient)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid recipient address %q: %w", recipient, err)
	}
	return key, nil
}

// ParseLamports converts an amount in SOL to lamports.
func ParseLamports(amount string) (uint64, error) {
	value, err := common.ParseDecimalUnits(amount, common.SolDecimals)
	if err != nil {
		return 0, err
	}
	if !value.IsUint64() {
		return 0, fmt.Errorf("%w: %s SOL overflows lamports", common.ErrInvalidAmount, amount)
	}
	return value.Uint64(), nil
}

func NewTransferTx(from solana.PublicKey, to solana.PublicKey, lamports uint64, recentBlockhash solana.Hash) (*solana.Transaction, error) {
	return solana.NewTransaction(
		[]solana.Instruction{
			system.NewTransferInstruction(lamports, from, to).Build(),
		},
		recentBlockhash,
		solana.TransactionPayer(from),
	)
}

func IsConfirmed(status *rpc.SignatureStatusesResult) bool {
	if status == nil {
		return false
	}
	return status.ConfirmationStatus == rpc.ConfirmationStatusConfirmed ||
		status.ConfirmationStatus == rpc.ConfirmationStatusFinalized
}
