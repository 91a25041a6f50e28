package app

import (
	"fmt"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/dan13ram/multichain-tx/common"
	"github.com/dan13ram/multichain-tx/models"
)

const (
	DefaultCosmosFeeAmount      int64  = 5000
	DefaultCosmosGasLimit       uint64 = 200000
	DefaultIBCSourcePort               = "transfer"
	DefaultIBCSourceChannel            = "channel-0"
	DefaultIBCTimeoutRevision   uint64 = 1
	DefaultIBCTimeoutHeight     uint64 = 12345678
	DefaultRPCTimeoutMillis     int64  = 10000
	DefaultConfirmTimeoutMillis int64  = 60000
	DefaultPollIntervalMillis   int64  = 3000
)

type ChainTable map[string]models.ChainConfig

var (
	Chains ChainTable
)

func (t ChainTable) Lookup(name string) (models.ChainConfig, error) {
	config, ok := t[name]
	if !ok {
		return models.ChainConfig{}, fmt.Errorf("%w: %s", common.ErrUnsupportedChain, name)
	}
	return config, nil
}

func (t ChainTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultIBCConfig() models.IBCConfig {
	return models.IBCConfig{
		SourcePort:            DefaultIBCSourcePort,
		SourceChannel:         DefaultIBCSourceChannel,
		TimeoutRevisionNumber: DefaultIBCTimeoutRevision,
		TimeoutRevisionHeight: DefaultIBCTimeoutHeight,
	}
}

func defaultCosmosChain(name string, rpcURL string, denom string, prefix string) models.ChainConfig {
	return models.ChainConfig{
		Name:         name,
		Family:       models.ChainFamilyCosmos,
		RPCURL:       rpcURL,
		Denom:        denom,
		Bech32Prefix: prefix,
		HDPath:       common.DefaultCosmosHDPath,
		FeeAmount:    DefaultCosmosFeeAmount,
		GasLimit:     DefaultCosmosGasLimit,
		IBC:          defaultIBCConfig(),
	}
}

func DefaultChains() ChainTable {
	return ChainTable{
		"cosmoshub": defaultCosmosChain("cosmoshub", "https://rpc.cosmos.network", "uatom", "cosmos"),
		"osmosis":   defaultCosmosChain("osmosis", "https://rpc-osmosis.blockapsis.com", "uosmo", "osmo"),
		"akash":     defaultCosmosChain("akash", "https://rpc.akash.forbole.com", "uakt", "akash"),
		"solana": {
			Name:   "solana",
			Family: models.ChainFamilySolana,
			RPCURL: "https://api.mainnet-beta.solana.com",
			Denom:  "sol",
		},
		"ethereum": {
			Name:     "ethereum",
			Family:   models.ChainFamilyEthereum,
			RPCURL:   "https://mainnet.infura.io/v3/YOUR_INFURA_PROJECT_ID",
			Denom:    "eth",
			HDPath:   common.DefaultETHHDPath,
			GasLimit: 21000,
		},
	}
}

// mergeChainConfig overlays the non-zero fields of override on base.
func mergeChainConfig(base models.ChainConfig, override models.ChainConfig) models.ChainConfig {
	if override.Family != "" {
		base.Family = override.Family
	}
	if override.RPCURL != "" {
		base.RPCURL = override.RPCURL
	}
	if override.Denom != "" {
		base.Denom = override.Denom
	}
	if override.Bech32Prefix != "" {
		base.Bech32Prefix = override.Bech32Prefix
	}
	if override.ChainID != "" {
		base.ChainID = override.ChainID
	}
	if override.HDPath != "" {
		base.HDPath = override.HDPath
	}
	if override.FeeAmount != 0 {
		base.FeeAmount = override.FeeAmount
	}
	if override.GasLimit != 0 {
		base.GasLimit = override.GasLimit
	}
	if override.IBC.SourcePort != "" {
		base.IBC.SourcePort = override.IBC.SourcePort
	}
	if override.IBC.SourceChannel != "" {
		base.IBC.SourceChannel = override.IBC.SourceChannel
	}
	if override.IBC.TimeoutRevisionNumber != 0 {
		base.IBC.TimeoutRevisionNumber = override.IBC.TimeoutRevisionNumber
	}
	if override.IBC.TimeoutRevisionHeight != 0 {
		base.IBC.TimeoutRevisionHeight = override.IBC.TimeoutRevisionHeight
	}
	if override.WaitMined {
		base.WaitMined = true
	}
	if override.RPCTimeoutMillis != 0 {
		base.RPCTimeoutMillis = override.RPCTimeoutMillis
	}
	if override.ConfirmTimeoutMillis != 0 {
		base.ConfirmTimeoutMillis = override.ConfirmTimeoutMillis
	}
	if override.PollIntervalMillis != 0 {
		base.PollIntervalMillis = override.PollIntervalMillis
	}
	return base
}

func applyChainDefaults(config models.ChainConfig) models.ChainConfig {
	if config.RPCTimeoutMillis == 0 {
		config.RPCTimeoutMillis = DefaultRPCTimeoutMillis
	}
	// a negative confirm timeout disables waiting
	if config.ConfirmTimeoutMillis == 0 {
		config.ConfirmTimeoutMillis = DefaultConfirmTimeoutMillis
	}
	if config.ConfirmTimeoutMillis < 0 {
		config.ConfirmTimeoutMillis = 0
	}
	if config.PollIntervalMillis == 0 {
		config.PollIntervalMillis = DefaultPollIntervalMillis
	}
	if config.Family == models.ChainFamilyCosmos {
		if config.HDPath == "" {
			config.HDPath = common.DefaultCosmosHDPath
		}
		if config.FeeAmount == 0 {
			config.FeeAmount = DefaultCosmosFeeAmount
		}
		if config.GasLimit == 0 {
			config.GasLimit = DefaultCosmosGasLimit
		}
		if config.IBC.SourcePort == "" {
			config.IBC.SourcePort = DefaultIBCSourcePort
		}
		if config.IBC.SourceChannel == "" {
			config.IBC.SourceChannel = DefaultIBCSourceChannel
		}
		if config.IBC.TimeoutRevisionHeight == 0 {
			config.IBC.TimeoutRevisionNumber = DefaultIBCTimeoutRevision
			config.IBC.TimeoutRevisionHeight = DefaultIBCTimeoutHeight
		}
	}
	return config
}

// RPCURLEnvKey returns the environment variable overriding a chain's rpc url,
// e.g. COSMOSHUB_RPC_URL.
func RPCURLEnvKey(name string) string {
	key := strings.ToUpper(name)
	key = strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(key)
	return key + "_RPC_URL"
}

func BuildChainTable(configured map[string]models.ChainConfig) ChainTable {
	table := DefaultChains()

	for name, config := range configured {
		if base, ok := table[name]; ok {
			table[name] = mergeChainConfig(base, config)
		} else {
			config.Name = name
			table[name] = config
		}
	}

	for name, config := range table {
		config.Name = name
		if rpcURL := os.Getenv(RPCURLEnvKey(name)); rpcURL != "" {
			config.RPCURL = rpcURL
		}
		table[name] = applyChainDefaults(config)
	}

	return table
}

func InitChains() {
	log.Debug("[CHAINS] Initializing chain table")
	Chains = BuildChainTable(Config.Chains)
	log.Info("[CHAINS] Chain table initialized with chains: ", strings.Join(Chains.Names(), ", "))
}
