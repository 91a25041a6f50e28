package models

type Config struct {
	Logger              LoggerConfig              `yaml:"logger" json:"logger"`
	MongoDB             MongoConfig               `yaml:"mongodb" json:"mongo_db"`
	GoogleSecretManager GoogleSecretManagerConfig `yaml:"google_secret_manager" json:"google_secret_manager"`
	Mnemonic            string                    `yaml:"mnemonic" json:"-"`
	Chains              map[string]ChainConfig    `yaml:"chains" json:"chains"`
}

type GoogleSecretManagerConfig struct {
	Enabled            bool   `yaml:"enabled" json:"enabled"`
	ProjectID          string `yaml:"project_id" json:"project_id"`
	MnemonicSecretName string `yaml:"mnemonic_secret_name" json:"mnemonic_secret_name"`
}

type LoggerConfig struct {
	Level string `yaml:"level" json:"level"`
}

type MongoConfig struct {
	URI           string `yaml:"uri" json:"uri"`
	Database      string `yaml:"database" json:"database"`
	TimeoutMillis int64  `yaml:"timeout_ms" json:"timeout_ms"`
}

type ChainConfig struct {
	Name         string      `yaml:"name" json:"name"`
	Family       ChainFamily `yaml:"family" json:"family"`
	RPCURL       string      `yaml:"rpc_url" json:"rpc_url"`
	Denom        string      `yaml:"denom" json:"denom"`
	Bech32Prefix string      `yaml:"bech32_prefix" json:"bech32_prefix"`
	ChainID      string      `yaml:"chain_id" json:"chain_id"`
	HDPath       string      `yaml:"hd_path" json:"hd_path"`

	// cosmos fee, paid in Denom
	FeeAmount int64  `yaml:"fee_amount" json:"fee_amount"`
	GasLimit  uint64 `yaml:"gas_limit" json:"gas_limit"`

	IBC IBCConfig `yaml:"ibc" json:"ibc"`

	WaitMined bool `yaml:"wait_mined" json:"wait_mined"`

	RPCTimeoutMillis     int64 `yaml:"rpc_timeout_ms" json:"rpc_timeout_ms"`
	ConfirmTimeoutMillis int64 `yaml:"confirm_timeout_ms" json:"confirm_timeout_ms"`
	PollIntervalMillis   int64 `yaml:"poll_interval_ms" json:"poll_interval_ms"`
}

type IBCConfig struct {
	SourcePort            string `yaml:"source_port" json:"source_port"`
	SourceChannel         string `yaml:"source_channel" json:"source_channel"`
	TimeoutRevisionNumber uint64 `yaml:"timeout_revision_number" json:"timeout_revision_number"`
	TimeoutRevisionHeight uint64 `yaml:"timeout_revision_height" json:"timeout_revision_height"`
}
