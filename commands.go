package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dan13ram/multichain-tx/app"
	"github.com/dan13ram/multichain-tx/dispatcher"
	"github.com/dan13ram/multichain-tx/models"
)

const (
	FlagConfig        = "config"
	FlagEnv           = "env"
	FlagMnemonic      = "mnemonic"
	FlagRecipient     = "recipient"
	FlagAmount        = "amount"
	FlagValidator     = "validator"
	FlagSrcValidator  = "src-validator"
	FlagDstValidator  = "dst-validator"
	FlagTitle         = "title"
	FlagDescription   = "description"
	FlagDeposit       = "deposit"
	FlagProposalID    = "proposal-id"
	FlagOption        = "option"
	FlagSourceChannel = "source-channel"
	FlagMemo          = "memo"
	FlagLimit         = "limit"
)

type transactionDispatcher interface {
	Validate(req models.TransactionRequest) error
	Execute(req models.TransactionRequest) (*models.TransactionResult, error)
	Address(chain string, mnemonic string) (string, error)
	History(chain string, mnemonic string, limit int64) ([]models.TransactionRecord, error)
}

var initApp = func(configFile string, envFile string) {
	if configFile != "" {
		configFile, _ = filepath.Abs(configFile)
	}
	app.InitConfig(configFile, envFile)
	app.InitLogger()
}

var initDB = app.InitDB
var closeDB = app.CloseDB

var newDispatcher = func() transactionDispatcher {
	return dispatcher.NewDispatcher(app.Chains, app.DB)
}

var chainTable = func() app.ChainTable {
	return app.Chains
}

func NewRootCmd() *cobra.Command {
	var configFile string
	var envFile string

	rootCmd := &cobra.Command{
		Use:          "multichain-tx",
		Short:        "Build, sign and submit transactions on Cosmos, Solana and Ethereum chains.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initApp(configFile, envFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, FlagConfig, "", "path to the yaml config file")
	rootCmd.PersistentFlags().StringVar(&envFile, FlagEnv, "", "path to a .env file")

	rootCmd.AddCommand(
		newTxCmd(),
		newAddressCmd(),
		newChainsCmd(),
		newHistoryCmd(),
	)

	return rootCmd
}

func newTxCmd() *cobra.Command {
	var mnemonic string
	var params models.TransactionParams

	txCmd := &cobra.Command{
		Use:   "tx [chain] [type]",
		Args:  cobra.ExactArgs(2),
		Short: "Execute a transaction of the given type on the given chain.",
		Long: `Execute a transaction of the given type on the given chain.

Cosmos chains support send, ibcTransfer, delegate, undelegate, redelegate,
submitProposal and vote. Solana and Ethereum chains support send.`,
		Example: `multichain-tx tx cosmoshub send --recipient cosmos1... --amount 1000000
multichain-tx tx osmosis ibcTransfer --recipient cosmos1... --amount 1000 --source-channel channel-0
multichain-tx tx cosmoshub vote --proposal-id 42 --option yes
multichain-tx tx solana send --recipient 9xQe... --amount 0.5
multichain-tx tx ethereum send --recipient 0x... --amount 0.01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := app.ResolveMnemonic(mnemonic)
			if err != nil {
				return err
			}

			req := models.TransactionRequest{
				Chain:    args[0],
				Type:     models.TransactionType(args[1]),
				Mnemonic: resolved,
				Params:   params,
			}

			if err := newDispatcher().Validate(req); err != nil {
				return err
			}

			initDB()
			defer closeDB()

			result, err := newDispatcher().Execute(req)
			if err != nil {
				if result != nil && result.TransactionHash != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "Transaction submitted with hash: %s\n", result.TransactionHash)
				}
				return fmt.Errorf("error executing %s on %s: %w", req.Type, req.Chain, err)
			}

			log.WithField("chain", result.Chain).
				WithField("sender", result.Sender).
				WithField("height", result.Height).
				Debug("[MAIN] Transaction executed")

			fmt.Fprintf(cmd.OutOrStdout(), "Transaction successful with hash: %s\n", result.TransactionHash)
			if result.ProposalID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Proposal ID: %s\n", result.ProposalID)
			}
			return nil
		},
	}

	flags := txCmd.Flags()
	flags.StringVar(&mnemonic, FlagMnemonic, "", "seed phrase of the sender, defaults to MNEMONIC or google secret manager")
	flags.StringVar(&params.Recipient, FlagRecipient, "", "recipient address")
	flags.StringVar(&params.Amount, FlagAmount, "", "amount, in base denom for cosmos chains and in SOL/ETH otherwise")
	flags.StringVar(&params.ValidatorAddress, FlagValidator, "", "validator address for delegate and undelegate")
	flags.StringVar(&params.SrcValidatorAddress, FlagSrcValidator, "", "source validator address for redelegate")
	flags.StringVar(&params.DstValidatorAddress, FlagDstValidator, "", "destination validator address for redelegate")
	flags.StringVar(&params.Title, FlagTitle, "", "proposal title")
	flags.StringVar(&params.Description, FlagDescription, "", "proposal description")
	flags.StringVar(&params.Deposit, FlagDeposit, "", "initial proposal deposit in base denom")
	flags.StringVar(&params.ProposalID, FlagProposalID, "", "proposal id to vote on")
	flags.StringVar(&params.Option, FlagOption, "", "vote option: yes, abstain, no, no_with_veto or 1-4")
	flags.StringVar(&params.SourceChannel, FlagSourceChannel, "", "ibc source channel, overrides the chain default")
	flags.StringVar(&params.Memo, FlagMemo, "", "transaction memo, overrides the default memo")

	return txCmd
}

func newAddressCmd() *cobra.Command {
	var mnemonic string

	addressCmd := &cobra.Command{
		Use:   "address [chain]",
		Args:  cobra.ExactArgs(1),
		Short: "Print the sender address derived from the mnemonic for the given chain.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := app.ResolveMnemonic(mnemonic)
			if err != nil {
				return err
			}

			address, err := newDispatcher().Address(args[0], resolved)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		},
	}

	addressCmd.Flags().StringVar(&mnemonic, FlagMnemonic, "", "seed phrase, defaults to MNEMONIC or google secret manager")

	return addressCmd
}

func newChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Args:  cobra.NoArgs,
		Short: "List the configured chains.",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := chainTable()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFAMILY\tDENOM\tRPC URL")
			for _, name := range table.Names() {
				chain := table[name]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, chain.Family, chain.Denom, chain.RPCURL)
			}
			return w.Flush()
		},
	}
}

func newHistoryCmd() *cobra.Command {
	var mnemonic string
	var limit int64

	historyCmd := &cobra.Command{
		Use:   "history [chain]",
		Args:  cobra.ExactArgs(1),
		Short: "List the journaled transactions of the sender on the given chain.",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := app.ResolveMnemonic(mnemonic)
			if err != nil {
				return err
			}

			if _, err := chainTable().Lookup(args[0]); err != nil {
				return err
			}

			initDB()
			defer closeDB()

			records, err := newDispatcher().History(args[0], resolved, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CREATED AT\tTYPE\tSTATUS\tHASH\tERROR")
			for _, record := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					record.CreatedAt.Format("2006-01-02 15:04:05"),
					record.Type,
					record.Status,
					record.TransactionHash,
					record.Error,
				)
			}
			return w.Flush()
		},
	}

	historyCmd.Flags().StringVar(&mnemonic, FlagMnemonic, "", "seed phrase, defaults to MNEMONIC or google secret manager")
	historyCmd.Flags().Int64Var(&limit, FlagLimit, 20, "maximum number of transactions to list")

	return historyCmd
}
