package common

import "errors"

var (
	ErrUnsupportedChain           = errors.New("unsupported chain")
	ErrUnsupportedChainFamily     = errors.New("unsupported chain family")
	ErrUnsupportedTransactionType = errors.New("unsupported transaction type")
	ErrInvalidMnemonic            = errors.New("invalid mnemonic")
	ErrInvalidAmount              = errors.New("invalid amount")
	ErrMissingParam               = errors.New("missing parameter")
	ErrBroadcastFailed            = errors.New("broadcast failed")
	ErrTransactionFailed          = errors.New("transaction failed")
	ErrConfirmationTimeout        = errors.New("timed out waiting for confirmation")
	ErrJournalDisabled            = errors.New("transaction journal is not configured")
)
