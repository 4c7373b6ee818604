package ethereum

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts/bindings"
	"github.com/Byzantine-Finance/operator-sdk/pkg/common/crypto/signer"
)

// Config contains everything needed to build a chain client
type Config struct {
	// ChainID of the target chain
	ChainID uint64

	// RPCEndpoint for the chain
	RPCEndpoint string

	// Contract addresses
	NativeRegistryAddress   common.Address
	OperatorRegistryAddress common.Address
	NetworkOptInAddress     common.Address
	VaultOptInAddress       common.Address
}

// ChainClient implements contracts.Client for a single chain
type ChainClient struct {
	client  *ethclient.Client
	chainID uint64
	signer  signer.Signer // nil for read-only clients

	nativeRegistry   *bindings.NativeRegistry
	operatorRegistry *bindings.OperatorRegistry
	networkOptIn     *bindings.OptInService
	vaultOptIn       *bindings.OptInService
}
