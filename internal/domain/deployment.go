package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Marketplace contract names and collection parameters.
const (
	MarketPlaceContract   = "MarketPlace"
	ERC721RoyaltyContract = "ERC721Royalty"

	MarketCollectionName   = "MarketCollection"
	MarketCollectionSymbol = "MKC"
)

// DeploymentTarget names a contract to deploy together with its ordered
// constructor arguments. Label is what gets printed next to the address.
type DeploymentTarget struct {
	Label        string
	ContractName string
	Args         []any
}

// MarketplaceTargets returns the fixed deployment sequence. Order matters:
// the marketplace is always deployed and confirmed before the collection.
func MarketplaceTargets() []DeploymentTarget {
	return []DeploymentTarget{
		{
			Label:        "Market",
			ContractName: MarketPlaceContract,
		},
		{
			Label:        "ERC721",
			ContractName: ERC721RoyaltyContract,
			Args:         []any{MarketCollectionName, MarketCollectionSymbol},
		},
	}
}

// PendingDeployment is a submitted creation transaction that has not been
// observed on-chain yet.
type PendingDeployment struct {
	ContractName string
	Address      common.Address
	Tx           *types.Transaction
}

// DeployedContract is the handle returned once a deployment is mined.
type DeployedContract struct {
	ContractName string
	Address      common.Address
	TxHash       common.Hash
	BlockNumber  uint64
	GasUsed      uint64
}
