package ethereum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Byzantine-Finance/operator-sdk/pkg/config"
)

func TestResolveConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	chainCfg, err := ResolveConfig(cfg, config.HoleskyChainID)
	require.NoError(t, err)

	builtin, err := config.ContractsForChain(config.HoleskyChainID)
	require.NoError(t, err)

	assert.Equal(t, config.HoleskyChainID, chainCfg.ChainID)
	assert.Equal(t, "http://localhost:8545", chainCfg.RPCEndpoint)
	assert.Equal(t, builtin.NativeRegistry, chainCfg.NativeRegistryAddress)
	assert.Equal(t, builtin.SymbioticOperatorRegistry, chainCfg.OperatorRegistryAddress)
	assert.Equal(t, builtin.SymbioticNetworkOptInService, chainCfg.NetworkOptInAddress)
	assert.Equal(t, builtin.SymbioticVaultOptInService, chainCfg.VaultOptInAddress)
}

func TestResolveConfigNoRPC(t *testing.T) {
	cfg := config.DefaultConfig()

	// Mainnet has a built-in address table but no configured endpoint
	_, err := ResolveConfig(cfg, config.MainnetChainID)
	require.Error(t, err)
}

func TestResolveConfigUnsupportedChain(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Chains[31337] = &config.ChainConfig{RPC: "http://localhost:8545"}

	_, err := ResolveConfig(cfg, 31337)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnsupportedChain))
}

func TestManagerUnknownChain(t *testing.T) {
	m := &Manager{chains: map[uint64]*ChainClient{}}

	_, err := m.GetClientByChainID(config.HoleskyChainID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrUnsupportedChain))
	assert.Empty(t, m.ListChains())
}
