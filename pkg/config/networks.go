package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"
)

// Supported chain IDs.
const (
	MainnetChainID uint64 = 1
	HoleskyChainID uint64 = 17000
	SepoliaChainID uint64 = 11155111
)

// ErrUnsupportedChain is returned when no contract addresses are known for a
// chain ID and the configuration does not provide them either.
var ErrUnsupportedChain = errors.New("unsupported chain id")

// ContractAddresses holds the deployed registry contracts for one chain.
// A chain is either fully configured or unsupported; there is no partial
// entry in the built-in tables.
type ContractAddresses struct {
	// NativeRegistry is the Byzantine native restaking registry.
	NativeRegistry common.Address

	// Symbiotic core contracts. NetworkOptInService and VaultOptInService
	// are two deployments of the same OptInService contract.
	SymbioticOperatorRegistry    common.Address
	SymbioticNetworkOptInService common.Address
	SymbioticVaultOptInService   common.Address
}

var networks = map[uint64]ContractAddresses{
	MainnetChainID: {
		NativeRegistry:               common.HexToAddress("0x5bF31Bd86C1C6f54b2D0d4Ccd07D7a2C54A07ab9"),
		SymbioticOperatorRegistry:    common.HexToAddress("0xAd817a6Bc954F678451A71363f04150FDD81Af9F"),
		SymbioticNetworkOptInService: common.HexToAddress("0x7133415b33B438843D581013f98A08704316633c"),
		SymbioticVaultOptInService:   common.HexToAddress("0xb361894bC06cbBA7Ea8098BF0e32EB1906A5F891"),
	},
	HoleskyChainID: {
		NativeRegistry:               common.HexToAddress("0x3F1e77fF1F1d3a1F82b352Df3a1B1eE86CBd9A5e"),
		SymbioticOperatorRegistry:    common.HexToAddress("0x6F75a4ffF97326A00e52662d82EA4FdE86a2F417"),
		SymbioticNetworkOptInService: common.HexToAddress("0x58973d16FFA900D11fC22e5e2B6840d9f7e13401"),
		SymbioticVaultOptInService:   common.HexToAddress("0x95CC0a052ae33941877c9619835A233D21D57351"),
	},
	SepoliaChainID: {
		NativeRegistry:               common.HexToAddress("0x9E5c7a1bD8e1c9A670A3f5b6a9E3d2C1f07B4C58"),
		SymbioticOperatorRegistry:    common.HexToAddress("0x6F75a4ffF97326A00e52662d82EA4FdE86a2F417"),
		SymbioticNetworkOptInService: common.HexToAddress("0x58973d16FFA900D11fC22e5e2B6840d9f7e13401"),
		SymbioticVaultOptInService:   common.HexToAddress("0x95CC0a052ae33941877c9619835A233D21D57351"),
	},
}

// ContractsForChain returns the built-in contract addresses for a chain.
func ContractsForChain(chainID uint64) (ContractAddresses, error) {
	addrs, ok := networks[chainID]
	if !ok {
		return ContractAddresses{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	return addrs, nil
}

// SupportedChains returns the chain IDs with built-in address tables, sorted.
func SupportedChains() []uint64 {
	ids := make([]uint64, 0, len(networks))
	for id := range networks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
