package models

type ChainFamily string

const (
	ChainFamilyCosmos   ChainFamily = "cosmos"
	ChainFamilySolana   ChainFamily = "solana"
	ChainFamilyEthereum ChainFamily = "ethereum"
)

func (f ChainFamily) IsValid() bool {
	switch f {
	case ChainFamilyCosmos, ChainFamilySolana, ChainFamilyEthereum:
		return true
	}
	return false
}
