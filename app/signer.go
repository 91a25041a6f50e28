package app

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ResolveMnemonic prefers an explicit mnemonic over the configured one, which
// may have come from the config file, MNEMONIC or Google Secret Manager.
func ResolveMnemonic(mnemonic string) (string, error) {
	if strings.TrimSpace(mnemonic) != "" {
		log.Debug("[SIGNER] Using mnemonic from arguments")
		return mnemonic, nil
	}
	if strings.TrimSpace(Config.Mnemonic) != "" {
		log.Debug("[SIGNER] Using configured mnemonic")
		return Config.Mnemonic, nil
	}
	return "", fmt.Errorf("mnemonic is required: use --mnemonic, MNEMONIC or google secret manager")
}
