package common

const (
	DefaultBIP39Passphrase = ""
	DefaultCosmosHDPath    = "m/44'/118'/0'/0/0"
	DefaultETHHDPath       = "m/44'/60'/0'/0/0"
	SolanaSeedLength       = 32
	EtherDecimals          = 18
	SolDecimals            = 9
)
