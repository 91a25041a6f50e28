package app

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/dan13ram/multichain-tx/models"
)

var (
	Config models.Config
)

func InitConfig(configFile string, envFile string) {
	log.Debug("[CONFIG] Initializing config")
	readConfigFromConfigFile(configFile)
	readConfigFromENV(envFile)
	readMnemonicFromGSM()
	InitChains()
	validateConfig()
	log.Info("[CONFIG] Config initialized")
}

func readConfigFromConfigFile(configFile string) bool {
	if configFile == "" {
		log.Debug("[CONFIG] No config file provided")
		return false
	}

	log.Debug("[CONFIG] Reading config file")
	var yamlFile, err = os.ReadFile(configFile)
	if err != nil {
		log.Fatalf("[CONFIG] Error reading config file %q: %s\n", configFile, err.Error())
	}

	log.Debug("[CONFIG] Unmarshalling config file")
	err = yaml.Unmarshal(yamlFile, &Config)
	if err != nil {
		log.Fatalf("[CONFIG] Error unmarshalling config file %q: %s\n", configFile, err.Error())
	}

	log.Debug("[CONFIG] Config file read")
	return true
}

func validateConfig() {
	log.Debug("[CONFIG] Validating config")

	if Config.MongoDB.URI != "" {
		if Config.MongoDB.Database == "" {
			log.Fatal("[CONFIG] MongoDB.Database is required when MongoDB.URI is set")
		}
		if Config.MongoDB.TimeoutMillis == 0 {
			log.Fatal("[CONFIG] MongoDB.TimeoutMillis is required when MongoDB.URI is set")
		}
	}

	if Config.GoogleSecretManager.Enabled {
		if Config.GoogleSecretManager.ProjectID == "" {
			log.Fatal("[CONFIG] GoogleSecretManager.ProjectID is required")
		}
		if Config.GoogleSecretManager.MnemonicSecretName == "" {
			log.Fatal("[CONFIG] GoogleSecretManager.MnemonicSecretName is required")
		}
	}

	if len(Chains) == 0 {
		log.Fatal("[CONFIG] At least one chain is required")
	}

	for _, name := range Chains.Names() {
		chain := Chains[name]
		if !chain.Family.IsValid() {
			log.Fatalf("[CONFIG] Chains.%s.Family %q is invalid", name, chain.Family)
		}
		if chain.RPCURL == "" {
			log.Fatalf("[CONFIG] Chains.%s.RPCURL is required", name)
		}
		if chain.RPCTimeoutMillis <= 0 {
			log.Fatalf("[CONFIG] Chains.%s.RPCTimeoutMillis must be positive", name)
		}
		if chain.PollIntervalMillis <= 0 {
			log.Fatalf("[CONFIG] Chains.%s.PollIntervalMillis must be positive", name)
		}
		if chain.Family == models.ChainFamilyCosmos {
			if chain.Denom == "" {
				log.Fatalf("[CONFIG] Chains.%s.Denom is required", name)
			}
			if chain.Bech32Prefix == "" {
				log.Fatalf("[CONFIG] Chains.%s.Bech32Prefix is required", name)
			}
			if chain.FeeAmount < 0 {
				log.Fatalf("[CONFIG] Chains.%s.FeeAmount cannot be negative", name)
			}
		}
	}

	log.Debug("[CONFIG] Config validated")
}
