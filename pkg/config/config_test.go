package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractsForChain(t *testing.T) {
	tests := []struct {
		name    string
		chainID uint64
		wantErr bool
	}{
		{name: "mainnet", chainID: MainnetChainID},
		{name: "holesky", chainID: HoleskyChainID},
		{name: "sepolia", chainID: SepoliaChainID},
		{name: "unknown_chain", chainID: 31337, wantErr: true},
		{name: "zero_chain", chainID: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addrs, err := ContractsForChain(tt.chainID)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedChain))
				return
			}
			require.NoError(t, err)

			// Built-in tables are all or nothing
			var zero common.Address
			assert.NotEqual(t, zero, addrs.NativeRegistry)
			assert.NotEqual(t, zero, addrs.SymbioticOperatorRegistry)
			assert.NotEqual(t, zero, addrs.SymbioticNetworkOptInService)
			assert.NotEqual(t, zero, addrs.SymbioticVaultOptInService)
		})
	}
}

func TestSupportedChains(t *testing.T) {
	chains := SupportedChains()
	require.Len(t, chains, 3)
	assert.Equal(t, []uint64{MainnetChainID, HoleskyChainID, SepoliaChainID}, chains)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_RPC_URL", "https://holesky.example.org")
	t.Setenv("OPERATOR_KEYSTORE_PASSWORD", "secret-from-env")

	content := `
chains:
  17000:
    rpc: ${TEST_RPC_URL}
signer:
  keystore_path: /tmp/operator.key.json
  password: from-file
logging:
  level: debug
metrics:
  enabled: true
  port: 9100
`
	path := filepath.Join(t.TempDir(), "operator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	rpc, err := cfg.RPCForChain(HoleskyChainID)
	require.NoError(t, err)
	assert.Equal(t, "https://holesky.example.org", rpc)

	// Environment password wins over the file
	assert.Equal(t, "secret-from-env", cfg.Signer.Password)
	assert.Equal(t, "/tmp/operator.key.json", cfg.Signer.KeystorePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9100, cfg.Metrics.Port)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/operator.yaml")
	require.Error(t, err)
}

func TestConfigContractOverrides(t *testing.T) {
	customRegistry := "0x1111111111111111111111111111111111111111"

	tests := []struct {
		name      string
		chainID   uint64
		contracts *ContractConfig
		check     func(t *testing.T, addrs ContractAddresses, err error)
	}{
		{
			name:    "no_overrides_uses_builtin",
			chainID: HoleskyChainID,
			check: func(t *testing.T, addrs ContractAddresses, err error) {
				require.NoError(t, err)
				builtin, _ := ContractsForChain(HoleskyChainID)
				assert.Equal(t, builtin, addrs)
			},
		},
		{
			name:    "partial_override_on_known_chain",
			chainID: HoleskyChainID,
			contracts: &ContractConfig{
				NativeRegistry: customRegistry,
			},
			check: func(t *testing.T, addrs ContractAddresses, err error) {
				require.NoError(t, err)
				builtin, _ := ContractsForChain(HoleskyChainID)
				assert.Equal(t, common.HexToAddress(customRegistry), addrs.NativeRegistry)
				assert.Equal(t, builtin.SymbioticOperatorRegistry, addrs.SymbioticOperatorRegistry)
			},
		},
		{
			name:    "complete_overrides_on_unknown_chain",
			chainID: 31337,
			contracts: &ContractConfig{
				NativeRegistry:               "0x1111111111111111111111111111111111111111",
				SymbioticOperatorRegistry:    "0x2222222222222222222222222222222222222222",
				SymbioticNetworkOptInService: "0x3333333333333333333333333333333333333333",
				SymbioticVaultOptInService:   "0x4444444444444444444444444444444444444444",
			},
			check: func(t *testing.T, addrs ContractAddresses, err error) {
				require.NoError(t, err)
				assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), addrs.SymbioticOperatorRegistry)
			},
		},
		{
			name:    "incomplete_overrides_on_unknown_chain",
			chainID: 31337,
			contracts: &ContractConfig{
				NativeRegistry: customRegistry,
			},
			check: func(t *testing.T, addrs ContractAddresses, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedChain))
			},
		},
		{
			name:    "malformed_override_address",
			chainID: HoleskyChainID,
			contracts: &ContractConfig{
				NativeRegistry: "not-an-address",
			},
			check: func(t *testing.T, addrs ContractAddresses, err error) {
				require.Error(t, err)
			},
		},
		{
			name:    "unknown_chain_without_overrides",
			chainID: 31337,
			check: func(t *testing.T, addrs ContractAddresses, err error) {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedChain))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Chains[tt.chainID] = &ChainConfig{
				RPC:       "http://localhost:8545",
				Contracts: tt.contracts,
			}
			addrs, err := cfg.ContractsForChain(tt.chainID)
			tt.check(t, addrs, err)
		})
	}
}

func TestLogConfigMethods(t *testing.T) {
	assert.False(t, LogConfig{Level: "info", Format: "json"}.IsDebug())
	assert.True(t, LogConfig{Level: "debug"}.IsDebug())
	assert.True(t, LogConfig{Level: "DEBUG"}.IsDebug())

	assert.False(t, LogConfig{Format: "json"}.IsConsole())
	assert.True(t, LogConfig{Format: "console"}.IsConsole())
	assert.True(t, LogConfig{Format: "Console"}.IsConsole())
}

func TestRPCForChain(t *testing.T) {
	cfg := DefaultConfig()

	rpc, err := cfg.RPCForChain(HoleskyChainID)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", rpc)

	_, err = cfg.RPCForChain(MainnetChainID)
	require.Error(t, err)
}
