package util

import (
	"github.com/dan13ram/multichain-tx/models"
)

var defaultMemos = map[models.TransactionType]string{
	models.TransactionTypeSend:           "Sending tokens",
	models.TransactionTypeIBCTransfer:    "IBC transfer",
	models.TransactionTypeDelegate:       "Delegating tokens",
	models.TransactionTypeUndelegate:     "Undelegating tokens",
	models.TransactionTypeRedelegate:     "Redelegating tokens",
	models.TransactionTypeSubmitProposal: "Submitting proposal",
	models.TransactionTypeVote:           "Voting on proposal",
}

func SupportsTransactionType(txType models.TransactionType) bool {
	_, ok := defaultMemos[txType]
	return ok
}

// Memo returns the caller supplied memo, or the default memo for the type.
func Memo(txType models.TransactionType, params models.TransactionParams) string {
	if params.Memo != "" {
		return params.Memo
	}
	return defaultMemos[txType]
}
