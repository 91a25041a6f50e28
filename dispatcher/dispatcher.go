package dispatcher

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/multichain-tx/app"
	"github.com/dan13ram/multichain-tx/common"
	"github.com/dan13ram/multichain-tx/cosmos"
	"github.com/dan13ram/multichain-tx/eth"
	"github.com/dan13ram/multichain-tx/models"
	"github.com/dan13ram/multichain-tx/solana"
)

type ChainExecutor interface {
	Supports(txType models.TransactionType) bool
	Address(mnemonic string) (string, error)
	Execute(req models.TransactionRequest) (*models.TransactionResult, error)
}

type ChainLookup interface {
	Lookup(name string) (models.ChainConfig, error)
}

var (
	_ ChainExecutor = &cosmos.Executor{}
	_ ChainExecutor = &solana.Executor{}
	_ ChainExecutor = &eth.Executor{}
	_ ChainLookup   = app.ChainTable{}
)

func newChainExecutor(config models.ChainConfig) (ChainExecutor, error) {
	switch config.Family {
	case models.ChainFamilyCosmos:
		return cosmos.NewExecutor(config), nil
	case models.ChainFamilySolana:
		return solana.NewExecutor(config), nil
	case models.ChainFamilyEthereum:
		return eth.NewExecutor(config), nil
	}
	return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedChainFamily, config.Family)
}

var newExecutor = newChainExecutor

type Dispatcher struct {
	chains ChainLookup
	db     app.Database
}

func LockResource(chain string, sender string) string {
	return chain + "/" + sender
}

func (d *Dispatcher) executor(chain string) (ChainExecutor, error) {
	config, err := d.chains.Lookup(chain)
	if err != nil {
		return nil, err
	}
	return newExecutor(config)
}

func (d *Dispatcher) Address(chain string, mnemonic string) (string, error) {
	executor, err := d.executor(chain)
	if err != nil {
		return "", err
	}
	return executor.Address(mnemonic)
}

func (d *Dispatcher) validate(req models.TransactionRequest) (ChainExecutor, error) {
	executor, err := d.executor(req.Chain)
	if err != nil {
		return nil, err
	}

	if !executor.Supports(req.Type) {
		return nil, fmt.Errorf("%w: %s on %s", common.ErrUnsupportedTransactionType, req.Type, req.Chain)
	}
	return executor, nil
}

// Validate checks the chain and transaction type without touching the network.
func (d *Dispatcher) Validate(req models.TransactionRequest) error {
	_, err := d.validate(req)
	return err
}

// Execute runs a single transaction request. Unknown chains and unsupported
// transaction types are rejected before any key derivation or network call.
func (d *Dispatcher) Execute(req models.TransactionRequest) (*models.TransactionResult, error) {
	logger := log.WithField("chain", req.Chain).WithField("type", req.Type)

	executor, err := d.validate(req)
	if err != nil {
		return nil, err
	}

	if d.db == nil {
		return executor.Execute(req)
	}

	sender, err := executor.Address(req.Mnemonic)
	if err != nil {
		return nil, err
	}
	logger = logger.WithField("sender", sender)

	resource := LockResource(req.Chain, sender)
	lockId, err := d.db.XLock(resource)
	if err != nil {
		return nil, fmt.Errorf("error locking %s: %w", resource, err)
	}
	logger.Debug("[DISPATCHER] Locked sender account")

	defer func() {
		if err := d.db.Unlock(lockId); err != nil {
			logger.WithError(err).Error("[DISPATCHER] Error unlocking sender account")
		}
	}()

	result, execErr := executor.Execute(req)

	record := models.NewTransactionRecord(req, sender, result, execErr)
	if err := d.db.InsertOne(models.CollectionTransactions, record); err != nil {
		logger.WithError(err).Warn("[DISPATCHER] Error recording transaction")
	} else {
		logger.Debug("[DISPATCHER] Recorded transaction")
	}

	return result, execErr
}

// History returns the most recent journaled transactions for the sender.
func (d *Dispatcher) History(chain string, mnemonic string, limit int64) ([]models.TransactionRecord, error) {
	if d.db == nil {
		return nil, common.ErrJournalDisabled
	}

	sender, err := d.Address(chain, mnemonic)
	if err != nil {
		return nil, err
	}

	records := []models.TransactionRecord{}
	filter := bson.M{"chain": chain, "sender": sender}
	if err := d.db.FindMany(models.CollectionTransactions, filter, &records, limit); err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}
	return records, nil
}

// NewDispatcher creates a dispatcher. A nil db disables locking and the journal.
func NewDispatcher(chains ChainLookup, db app.Database) *Dispatcher {
	return &Dispatcher{
		chains: chains,
		db:     db,
	}
}
