package util

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ValidateTxResponse wraps kind with the code, codespace and log of a
// non-zero result code.
func ValidateTxResponse(kind error, txResponse *sdk.TxResponse) error {
	if txResponse == nil {
		return fmt.Errorf("%w: empty response", kind)
	}
	if txResponse.Code == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: code %d (%s): %s", kind, txResponse.TxHash, txResponse.Code, txResponse.Codespace, txResponse.RawLog)
}
