package common

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"fmt"
	"math/big"
	"strings"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gagliardetto/solana-go"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
)

type CosmosSigner interface {
	CosmosSign(data []byte) ([]byte, error)
	CosmosPublicKey() types.PubKey
}

type EthereumSigner interface {
	EthAddress() common.Address
	EthSignTx(tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error)
}

type SolanaSigner interface {
	SolanaPublicKey() solana.PublicKey
	SolanaSignTx(tx *solana.Transaction) error
}

func normalizeMnemonic(mnemonic string) (string, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", ErrInvalidMnemonic
	}
	return mnemonic, nil
}

func CosmosPrivateKeyFromMnemonic(mnemonic string, hdPath string) (types.PrivKey, error) {
	mnemonic, err := normalizeMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	if hdPath == "" {
		hdPath = DefaultCosmosHDPath
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, DefaultBIP39Passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}

	master, ch := hd.ComputeMastersFromSeed(seed)
	derived, err := hd.DerivePrivateKeyForPath(master, ch, hdPath)
	if err != nil {
		return nil, fmt.Errorf("failed to derive cosmos key for path %s: %w", hdPath, err)
	}

	return &secp256k1.PrivKey{Key: derived}, nil
}

func EthereumPrivateKeyFromMnemonic(mnemonic string, hdPath string) (*ecdsa.PrivateKey, error) {
	mnemonic, err := normalizeMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	if hdPath == "" {
		hdPath = DefaultETHHDPath
	}

	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}

	path, err := hdwallet.ParseDerivationPath(hdPath)
	if err != nil {
		return nil, fmt.Errorf("invalid derivation path %s: %w", hdPath, err)
	}

	account, err := wallet.Derive(path, false)
	if err != nil {
		return nil, fmt.Errorf("failed to derive ethereum account: %w", err)
	}

	return wallet.PrivateKey(account)
}

// SolanaPrivateKeyFromMnemonic uses the first 32 bytes of the BIP-39 seed as
// the ed25519 seed, without any hierarchical derivation.
func SolanaPrivateKeyFromMnemonic(mnemonic string) (solana.PrivateKey, error) {
	mnemonic, err := normalizeMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, DefaultBIP39Passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}

	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed[:SolanaSeedLength])), nil
}

type CosmosMnemonicSigner struct {
	privKey types.PrivKey
	pubKey  types.PubKey
}

var _ CosmosSigner = &CosmosMnemonicSigner{}

func NewCosmosMnemonicSigner(mnemonic string, hdPath string) (*CosmosMnemonicSigner, error) {
	privKey, err := CosmosPrivateKeyFromMnemonic(mnemonic, hdPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create cosmos private key: %w", err)
	}

	return &CosmosMnemonicSigner{
		privKey: privKey,
		pubKey:  privKey.PubKey(),
	}, nil
}

func (s *CosmosMnemonicSigner) CosmosSign(data []byte) ([]byte, error) {
	return s.privKey.Sign(data)
}

func (s *CosmosMnemonicSigner) CosmosPublicKey() types.PubKey {
	return s.pubKey
}

func (s *CosmosMnemonicSigner) CosmosAddress(bech32Prefix string) (string, error) {
	return Bech32FromBytes(bech32Prefix, s.pubKey.Address().Bytes())
}

type EthereumMnemonicSigner struct {
	privKey *ecdsa.PrivateKey
	address common.Address
}

var _ EthereumSigner = &EthereumMnemonicSigner{}

func NewEthereumMnemonicSigner(mnemonic string, hdPath string) (*EthereumMnemonicSigner, error) {
	privKey, err := EthereumPrivateKeyFromMnemonic(mnemonic, hdPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create ethereum private key: %w", err)
	}

	publicKeyECDSA, _ := privKey.Public().(*ecdsa.PublicKey) // impossible to get an error since the private key is not nil

	return &EthereumMnemonicSigner{
		privKey: privKey,
		address: crypto.PubkeyToAddress(*publicKeyECDSA),
	}, nil
}

func (s *EthereumMnemonicSigner) EthAddress() common.Address {
	return s.address
}

func (s *EthereumMnemonicSigner) EthSignTx(tx *ethtypes.Transaction, chainID *big.Int) (*ethtypes.Transaction, error) {
	return ethtypes.SignTx(tx, ethtypes.LatestSignerForChainID(chainID), s.privKey)
}

type SolanaMnemonicSigner struct {
	privKey solana.PrivateKey
	pubKey  solana.PublicKey
}

var _ SolanaSigner = &SolanaMnemonicSigner{}

func NewSolanaMnemonicSigner(mnemonic string) (*SolanaMnemonicSigner, error) {
	privKey, err := SolanaPrivateKeyFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to create solana private key: %w", err)
	}

	return &SolanaMnemonicSigner{
		privKey: privKey,
		pubKey:  privKey.PublicKey(),
	}, nil
}

func (s *SolanaMnemonicSigner) SolanaPublicKey() solana.PublicKey {
	return s.pubKey
}

func (s *SolanaMnemonicSigner) SolanaSignTx(tx *solana.Transaction) error {
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(s.pubKey) {
			return &s.privKey
		}
		return nil
	})
	return err
}
