package util

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govv1beta1 "github.com/cosmos/cosmos-sdk/x/gov/types/v1beta1"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
	ibctransfertypes "github.com/cosmos/ibc-go/v10/modules/apps/transfer/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"

	"github.com/dan13ram/multichain-tx/common"
	"github.com/dan13ram/multichain-tx/models"
)

func NewCoin(denom string, amount string) (sdk.Coin, error) {
	value, ok := math.NewIntFromString(strings.TrimSpace(amount))
	if !ok {
		return sdk.Coin{}, fmt.Errorf("%w: %q", common.ErrInvalidAmount, amount)
	}
	coin := sdk.Coin{Denom: denom, Amount: value}
	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, fmt.Errorf("%w: %w", common.ErrInvalidAmount, err)
	}
	if !coin.IsPositive() {
		return sdk.Coin{}, fmt.Errorf("%w: %q must be positive", common.ErrInvalidAmount, amount)
	}
	return coin, nil
}

func ParseVoteOption(option string) (govv1beta1.VoteOption, error) {
	switch strings.ToLower(strings.TrimSpace(option)) {
	case "1", "yes":
		return govv1beta1.OptionYes, nil
	case "2", "abstain":
		return govv1beta1.OptionAbstain, nil
	case "3", "no":
		return govv1beta1.OptionNo, nil
	case "4", "no_with_veto", "nowithveto", "veto":
		return govv1beta1.OptionNoWithVeto, nil
	}
	return govv1beta1.OptionEmpty, fmt.Errorf("invalid vote option: %q", option)
}

func requireParams(txType models.TransactionType, values map[string]string) error {
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required for %s", common.ErrMissingParam, name, txType)
		}
	}
	return nil
}

// NewMsg builds the single message for the given transaction type.
func NewMsg(
	txType models.TransactionType,
	sender string,
	config models.ChainConfig,
	params models.TransactionParams,
) (sdk.Msg, error) {
	switch txType {
	case models.TransactionTypeSend:
		if err := requireParams(txType, map[string]string{"recipient": params.Recipient}); err != nil {
			return nil, err
		}
		if _, err := common.AddressBytesFromBech32(config.Bech32Prefix, params.Recipient); err != nil {
			return nil, fmt.Errorf("invalid recipient address %q: %w", params.Recipient, err)
		}
		coin, err := NewCoin(config.Denom, params.Amount)
		if err != nil {
			return nil, err
		}
		return &banktypes.MsgSend{
			FromAddress: sender,
			ToAddress:   params.Recipient,
			Amount:      sdk.NewCoins(coin),
		}, nil

	case models.TransactionTypeIBCTransfer:
		if err := requireParams(txType, map[string]string{"recipient": params.Recipient}); err != nil {
			return nil, err
		}
		coin, err := NewCoin(config.Denom, params.Amount)
		if err != nil {
			return nil, err
		}
		sourceChannel := config.IBC.SourceChannel
		if params.SourceChannel != "" {
			sourceChannel = params.SourceChannel
		}
		return &ibctransfertypes.MsgTransfer{
			SourcePort:    config.IBC.SourcePort,
			SourceChannel: sourceChannel,
			Token:         coin,
			Sender:        sender,
			Receiver:      params.Recipient,
			TimeoutHeight: clienttypes.Height{
				RevisionNumber: config.IBC.TimeoutRevisionNumber,
				RevisionHeight: config.IBC.TimeoutRevisionHeight,
			},
		}, nil

	case models.TransactionTypeDelegate, models.TransactionTypeUndelegate:
		if err := requireParams(txType, map[string]string{"validator address": params.ValidatorAddress}); err != nil {
			return nil, err
		}
		coin, err := NewCoin(config.Denom, params.Amount)
		if err != nil {
			return nil, err
		}
		if txType == models.TransactionTypeDelegate {
			return &stakingtypes.MsgDelegate{
				DelegatorAddress: sender,
				ValidatorAddress: params.ValidatorAddress,
				Amount:           coin,
			}, nil
		}
		return &stakingtypes.MsgUndelegate{
			DelegatorAddress: sender,
			ValidatorAddress: params.ValidatorAddress,
			Amount:           coin,
		}, nil

	case models.TransactionTypeRedelegate:
		if err := requireParams(txType, map[string]string{
			"source validator address":      params.SrcValidatorAddress,
			"destination validator address": params.DstValidatorAddress,
		}); err != nil {
			return nil, err
		}
		coin, err := NewCoin(config.Denom, params.Amount)
		if err != nil {
			return nil, err
		}
		return &stakingtypes.MsgBeginRedelegate{
			DelegatorAddress:    sender,
			ValidatorSrcAddress: params.SrcValidatorAddress,
			ValidatorDstAddress: params.DstValidatorAddress,
			Amount:              coin,
		}, nil

	case models.TransactionTypeSubmitProposal:
		if err := requireParams(txType, map[string]string{"title": params.Title, "description": params.Description}); err != nil {
			return nil, err
		}
		deposit, err := NewCoin(config.Denom, params.Deposit)
		if err != nil {
			return nil, err
		}
		content, err := codectypes.NewAnyWithValue(&govv1beta1.TextProposal{
			Title:       params.Title,
			Description: params.Description,
		})
		if err != nil {
			return nil, fmt.Errorf("error packing proposal content: %w", err)
		}
		return &govv1beta1.MsgSubmitProposal{
			Content:        content,
			InitialDeposit: sdk.NewCoins(deposit),
			Proposer:       sender,
		}, nil

	case models.TransactionTypeVote:
		if err := requireParams(txType, map[string]string{"proposal id": params.ProposalID, "option": params.Option}); err != nil {
			return nil, err
		}
		proposalID, err := strconv.ParseUint(strings.TrimSpace(params.ProposalID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid proposal id %q: %w", params.ProposalID, err)
		}
		option, err := ParseVoteOption(params.Option)
		if err != nil {
			return nil, err
		}
		return &govv1beta1.MsgVote{
			ProposalId: proposalID,
			Voter:      sender,
			Option:     option,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedTransactionType, txType)
}
