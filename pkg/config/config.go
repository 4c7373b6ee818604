package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// ChainConfig describes how to reach one chain.
type ChainConfig struct {
	// RPC endpoint for the chain
	RPC string `yaml:"rpc"`

	// Contract address overrides. Only needed for chains without a
	// built-in table, or to point at a custom deployment.
	Contracts *ContractConfig `yaml:"contracts,omitempty"`
}

// ContractConfig carries contract addresses as hex strings in the config
// file. Empty fields fall back to the built-in table for the chain.
type ContractConfig struct {
	NativeRegistry               string `yaml:"native_registry"`
	SymbioticOperatorRegistry    string `yaml:"symbiotic_operator_registry"`
	SymbioticNetworkOptInService string `yaml:"symbiotic_network_opt_in"`
	SymbioticVaultOptInService   string `yaml:"symbiotic_vault_opt_in"`
}

// SignerConfig configures the transaction signer. Either a keystore file or
// a raw private key; read methods work with neither.
type SignerConfig struct {
	KeystorePath string `yaml:"keystore_path"`
	Password     string `yaml:"password"`
	PrivateKey   string `yaml:"private_key"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// IsDebug reports whether the configured level enables debug logging.
func (l LogConfig) IsDebug() bool {
	return strings.EqualFold(l.Level, "debug")
}

// IsConsole reports whether human readable console output is configured
// instead of the JSON pipeline.
func (l LogConfig) IsConsole() bool {
	return strings.EqualFold(l.Format, "console")
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

type Config struct {
	// Chains configuration, keyed by chain ID
	Chains map[uint64]*ChainConfig `yaml:"chains"`

	// Signer configuration
	Signer SignerConfig `yaml:"signer"`

	// Logging configuration
	Logging LogConfig `yaml:"logging"`

	// Metrics configuration
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoadConfig loads the configuration from the given file path. Environment
// variable references in the file (${VAR}) are expanded before parsing.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	content := os.ExpandEnv(string(data))

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if password := os.Getenv("OPERATOR_KEYSTORE_PASSWORD"); password != "" {
		cfg.Signer.Password = password
	}

	return cfg, nil
}

func DefaultConfig() *Config {
	return &Config{
		Chains: map[uint64]*ChainConfig{
			HoleskyChainID: {
				RPC: "http://localhost:8545",
			},
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    4014,
		},
	}
}

// ContractsForChain resolves the contract addresses for a chain, merging any
// config file overrides over the built-in table. A chain with neither a
// built-in table nor a complete override set is unsupported.
func (c *Config) ContractsForChain(chainID uint64) (ContractAddresses, error) {
	addrs, err := ContractsForChain(chainID)

	var overrides *ContractConfig
	if chainCfg, ok := c.Chains[chainID]; ok {
		overrides = chainCfg.Contracts
	}
	if overrides == nil {
		return addrs, err
	}

	if err := applyOverride(&addrs.NativeRegistry, overrides.NativeRegistry); err != nil {
		return ContractAddresses{}, fmt.Errorf("native_registry: %w", err)
	}
	if err := applyOverride(&addrs.SymbioticOperatorRegistry, overrides.SymbioticOperatorRegistry); err != nil {
		return ContractAddresses{}, fmt.Errorf("symbiotic_operator_registry: %w", err)
	}
	if err := applyOverride(&addrs.SymbioticNetworkOptInService, overrides.SymbioticNetworkOptInService); err != nil {
		return ContractAddresses{}, fmt.Errorf("symbiotic_network_opt_in: %w", err)
	}
	if err := applyOverride(&addrs.SymbioticVaultOptInService, overrides.SymbioticVaultOptInService); err != nil {
		return ContractAddresses{}, fmt.Errorf("symbiotic_vault_opt_in: %w", err)
	}

	// Overrides for an unknown chain must cover every contract.
	var zero common.Address
	if addrs.NativeRegistry == zero || addrs.SymbioticOperatorRegistry == zero ||
		addrs.SymbioticNetworkOptInService == zero || addrs.SymbioticVaultOptInService == zero {
		return ContractAddresses{}, fmt.Errorf("%w: %d (incomplete contract overrides)", ErrUnsupportedChain, chainID)
	}

	return addrs, nil
}

// RPCForChain returns the configured RPC endpoint for a chain.
func (c *Config) RPCForChain(chainID uint64) (string, error) {
	chainCfg, ok := c.Chains[chainID]
	if !ok || chainCfg.RPC == "" {
		return "", fmt.Errorf("no rpc endpoint configured for chain %d", chainID)
	}
	return chainCfg.RPC, nil
}

func applyOverride(dst *common.Address, hex string) error {
	if hex == "" {
		return nil
	}
	if !common.IsHexAddress(hex) {
		return fmt.Errorf("malformed address %q", hex)
	}
	*dst = common.HexToAddress(hex)
	return nil
}
