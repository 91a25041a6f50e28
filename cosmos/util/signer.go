package util

import (
	"context"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
	authsigning "github.com/cosmos/cosmos-sdk/x/auth/signing"

	"github.com/dan13ram/multichain-tx/common"
)

func NewTxBuilder(
	txConfig client.TxConfig,
	msg sdk.Msg,
	fee sdk.Coins,
	gasLimit uint64,
	memo string,
) (client.TxBuilder, error) {
	txBuilder := txConfig.NewTxBuilder()

	if err := txBuilder.SetMsgs(msg); err != nil {
		return nil, fmt.Errorf("error setting msgs: %w", err)
	}

	txBuilder.SetFeeAmount(fee)
	txBuilder.SetGasLimit(gasLimit)
	txBuilder.SetMemo(memo)

	return txBuilder, nil
}

// SignWithPrivKey signs the tx in SIGN_MODE_DIRECT. An empty signature is set
// first so the signer info is part of the auth info bytes being signed.
func SignWithPrivKey(
	ctx context.Context,
	signerData authsigning.SignerData,
	txBuilder client.TxBuilder,
	signer common.CosmosSigner,
	txConfig client.TxConfig,
	accSeq uint64,
) (signingtypes.SignatureV2, []byte, error) {
	var sigV2 signingtypes.SignatureV2
	signMode := signingtypes.SignMode_SIGN_MODE_DIRECT

	emptySig := signingtypes.SignatureV2{
		PubKey: signer.CosmosPublicKey(),
		Data: &signingtypes.SingleSignatureData{
			SignMode:  signMode,
			Signature: nil,
		},
		Sequence: accSeq,
	}
	if err := txBuilder.SetSignatures(emptySig); err != nil {
		return sigV2, nil, fmt.Errorf("error setting empty signature: %w", err)
	}

	signBytes, err := authsigning.GetSignBytesAdapter(
		ctx,
		txConfig.SignModeHandler(),
		signMode,
		signerData,
		txBuilder.GetTx(),
	)
	if err != nil {
		return sigV2, nil, fmt.Errorf("error getting sign bytes: %w", err)
	}

	signature, err := signer.CosmosSign(signBytes)
	if err != nil {
		return sigV2, nil, fmt.Errorf("error signing: %w", err)
	}

	sigV2 = signingtypes.SignatureV2{
		PubKey: signer.CosmosPublicKey(),
		Data: &signingtypes.SingleSignatureData{
			SignMode:  signMode,
			Signature: signature,
		},
		Sequence: accSeq,
	}

	if err := txBuilder.SetSignatures(sigV2); err != nil {
		return signingtypes.SignatureV2{}, nil, fmt.Errorf("error setting signature: %w", err)
	}

	return sigV2, signBytes, nil
}
