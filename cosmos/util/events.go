package util

import (
	"fmt"
	"strings"

	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeTransfer       = "transfer"
	EventTypeSubmitProposal = "submit_proposal"
	EventTypeSendPacket     = "send_packet"

	AttributeKeyProposalID     = "proposal_id"
	AttributeKeyPacketSequence = "packet_sequence"
)

type TransferEvent struct {
	Sender   string
	Receiver string
	Amount   sdk.Coin
}

func FindAttributeValue(
	attributes []abci.EventAttribute,
	key string,
) (string, error) {
	for _, attribute := range attributes {
		if strings.EqualFold(attribute.Key, key) {
			return attribute.Value, nil
		}
	}
	return "", fmt.Errorf("no attribute found with key: %s", key)
}

// FindEventAttribute returns the attribute of the first event of the given type
// that carries it.
func FindEventAttribute(
	events []abci.Event,
	eventType string,
	key string,
) (string, bool) {
	for _, event := range events {
		if !strings.EqualFold(event.Type, eventType) {
			continue
		}
		if value, err := FindAttributeValue(event.Attributes, key); err == nil {
			return value, true
		}
	}
	return "", false
}

func ParseTransferEvents(
	events []abci.Event,
	recipient string,
	denom string,
) ([]TransferEvent, error) {
	transfers := []TransferEvent{}
	for _, event := range events {
		if !strings.EqualFold(event.Type, EventTypeTransfer) {
			continue
		}
		sender, err := FindAttributeValue(event.Attributes, "sender")
		if err != nil {
			return transfers, err
		}
		receiver, err := FindAttributeValue(event.Attributes, "recipient")
		if err != nil {
			return transfers, err
		}
		if !strings.EqualFold(receiver, recipient) {
			continue
		}
		amountStr, err := FindAttributeValue(event.Attributes, "amount")
		if err != nil {
			return transfers, err
		}
		amount, err := sdk.ParseCoinNormalized(amountStr)
		if err != nil {
			return transfers, err
		}
		if amount.Denom != denom {
			continue
		}
		transfers = append(transfers, TransferEvent{
			Sender:   sender,
			Receiver: receiver,
			Amount:   amount,
		})
	}
	return transfers, nil
}
