package ethereum

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts"
	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts/bindings"
	"github.com/Byzantine-Finance/operator-sdk/pkg/common/crypto/signer"
)

// NewChainClient creates a client for a specific chain. A nil signer yields
// a read-only client; write methods will fail with contracts.ErrNoSigner.
func NewChainClient(cfg *Config, sg signer.Signer) (*ChainClient, error) {
	ethClient, err := ethclient.Dial(cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to connect to Ethereum node: %w", err)
	}

	nativeRegistry, err := bindings.NewNativeRegistry(cfg.NativeRegistryAddress, ethClient)
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("[ChainClient] failed to create native registry binding: %w", err)
	}

	operatorRegistry, err := bindings.NewOperatorRegistry(cfg.OperatorRegistryAddress, ethClient)
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("[ChainClient] failed to create operator registry binding: %w", err)
	}

	networkOptIn, err := bindings.NewOptInService(cfg.NetworkOptInAddress, ethClient)
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("[ChainClient] failed to create network opt-in binding: %w", err)
	}

	vaultOptIn, err := bindings.NewOptInService(cfg.VaultOptInAddress, ethClient)
	if err != nil {
		ethClient.Close()
		return nil, fmt.Errorf("[ChainClient] failed to create vault opt-in binding: %w", err)
	}

	return &ChainClient{
		client:           ethClient,
		chainID:          cfg.ChainID,
		signer:           sg,
		nativeRegistry:   nativeRegistry,
		operatorRegistry: operatorRegistry,
		networkOptIn:     networkOptIn,
		vaultOptIn:       vaultOptIn,
	}, nil
}

// ChainID implements contracts.Client
func (c *ChainClient) ChainID() uint64 {
	return c.chainID
}

// Close implements contracts.Client
func (c *ChainClient) Close() error {
	c.client.Close()
	return nil
}

// BlockNumber returns the latest block number
func (c *ChainClient) BlockNumber(ctx context.Context) (uint64, error) {
	return c.client.BlockNumber(ctx)
}

// txOpts builds transact options from the configured signer. Every write
// method goes through here so the missing-signer case fails before any
// network traffic.
func (c *ChainClient) txOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.signer == nil {
		return nil, contracts.ErrNoSigner
	}
	chainID := new(big.Int).SetUint64(c.chainID)
	opts, err := signer.TransactOpts(ctx, c.signer, chainID)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to build transact opts: %w", err)
	}
	return opts, nil
}
