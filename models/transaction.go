package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dan13ram/multichain-tx/common"
)

const (
	CollectionTransactions = "transactions"
)

type TransactionType string

const (
	TransactionTypeSend           TransactionType = "send"
	TransactionTypeIBCTransfer    TransactionType = "ibcTransfer"
	TransactionTypeDelegate       TransactionType = "delegate"
	TransactionTypeUndelegate     TransactionType = "undelegate"
	TransactionTypeRedelegate     TransactionType = "redelegate"
	TransactionTypeSubmitProposal TransactionType = "submitProposal"
	TransactionTypeVote           TransactionType = "vote"
)

// TransactionParams carries the operation specific inputs. Only the fields
// relevant to the requested transaction type are read.
type TransactionParams struct {
	Recipient           string `bson:"recipient,omitempty" json:"recipient,omitempty"`
	Amount              string `bson:"amount,omitempty" json:"amount,omitempty"`
	ValidatorAddress    string `bson:"validator_address,omitempty" json:"validator_address,omitempty"`
	SrcValidatorAddress string `bson:"src_validator_address,omitempty" json:"src_validator_address,omitempty"`
	DstValidatorAddress string `bson:"dst_validator_address,omitempty" json:"dst_validator_address,omitempty"`
	Title               string `bson:"title,omitempty" json:"title,omitempty"`
	Description         string `bson:"description,omitempty" json:"description,omitempty"`
	Deposit             string `bson:"deposit,omitempty" json:"deposit,omitempty"`
	ProposalID          string `bson:"proposal_id,omitempty" json:"proposal_id,omitempty"`
	Option              string `bson:"option,omitempty" json:"option,omitempty"`
	SourceChannel       string `bson:"source_channel,omitempty" json:"source_channel,omitempty"`
	Memo                string `bson:"memo,omitempty" json:"memo,omitempty"`
}

type TransactionRequest struct {
	Chain    string
	Type     TransactionType
	Mnemonic string
	Params   TransactionParams
}

type TransactionResult struct {
	Chain           string          `json:"chain"`
	Type            TransactionType `json:"type"`
	Sender          string          `json:"sender"`
	TransactionHash string          `json:"transaction_hash"`
	Height          int64           `json:"height"`
	Success         bool            `json:"success"`
	ProposalID      string          `json:"proposal_id,omitempty"`
}

type TransactionRecord struct {
	Id              *primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Chain           string              `bson:"chain" json:"chain"`
	Type            string              `bson:"type" json:"type"`
	Sender          string              `bson:"sender" json:"sender"`
	TransactionHash string              `bson:"transaction_hash" json:"transaction_hash"`
	Height          int64               `bson:"height" json:"height"`
	ProposalID      string              `bson:"proposal_id,omitempty" json:"proposal_id,omitempty"`
	Success         bool                `bson:"success" json:"success"`
	Status          TransactionStatus   `bson:"status" json:"status"`
	Error           string              `bson:"error" json:"error"`
	Params          TransactionParams   `bson:"params" json:"params"`
	CreatedAt       time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `bson:"updated_at" json:"updated_at"`
}

// NewTransactionRecord stays pending when the confirmation wait timed out
// after the transaction was accepted, since it may still be included.
func NewTransactionRecord(req TransactionRequest, sender string, result *TransactionResult, err error) TransactionRecord {
	now := time.Now()
	record := TransactionRecord{
		Chain:     req.Chain,
		Type:      string(req.Type),
		Sender:    sender,
		Params:    req.Params,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if result != nil {
		record.TransactionHash = result.TransactionHash
		record.Height = result.Height
		record.ProposalID = result.ProposalID
		record.Success = result.Success
	}
	switch {
	case errors.Is(err, common.ErrConfirmationTimeout) && record.TransactionHash != "":
		record.Success = false
		record.Status = TransactionStatusPending
		record.Error = err.Error()
	case err != nil:
		record.Success = false
		record.Status = TransactionStatusFailed
		record.Error = err.Error()
	case record.Height > 0:
		record.Status = TransactionStatusConfirmed
	default:
		record.Status = TransactionStatusPending
	}
	return record
}
