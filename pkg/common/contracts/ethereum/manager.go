package ethereum

import (
	"fmt"
	"sync"

	"github.com/Byzantine-Finance/operator-sdk/pkg/common/crypto/signer"
	"github.com/Byzantine-Finance/operator-sdk/pkg/config"
)

// Manager holds one chain client per configured chain
type Manager struct {
	chains map[uint64]*ChainClient
	mu     sync.RWMutex
}

// NewManager creates a chain manager from application config. The signer may
// be nil for read-only use.
func NewManager(cfg *config.Config, sg signer.Signer) (*Manager, error) {
	chainConfigs := make(map[uint64]*Config)
	for chainID := range cfg.Chains {
		chainCfg, err := ResolveConfig(cfg, chainID)
		if err != nil {
			return nil, err
		}
		chainConfigs[chainID] = chainCfg
	}

	return NewChainManager(chainConfigs, sg)
}

// ResolveConfig builds a chain client config from the application config,
// resolving contract addresses against the built-in tables.
func ResolveConfig(cfg *config.Config, chainID uint64) (*Config, error) {
	rpc, err := cfg.RPCForChain(chainID)
	if err != nil {
		return nil, err
	}
	addrs, err := cfg.ContractsForChain(chainID)
	if err != nil {
		return nil, err
	}
	return &Config{
		ChainID:                 chainID,
		RPCEndpoint:             rpc,
		NativeRegistryAddress:   addrs.NativeRegistry,
		OperatorRegistryAddress: addrs.SymbioticOperatorRegistry,
		NetworkOptInAddress:     addrs.SymbioticNetworkOptInService,
		VaultOptInAddress:       addrs.SymbioticVaultOptInService,
	}, nil
}

// NewChainManager creates a new chain client manager
func NewChainManager(configs map[uint64]*Config, sg signer.Signer) (*Manager, error) {
	m := &Manager{
		chains: make(map[uint64]*ChainClient),
	}

	for chainID, chainCfg := range configs {
		chain, err := NewChainClient(chainCfg, sg)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("failed to initialize chain %d: %w", chainID, err)
		}
		m.chains[chainID] = chain
	}

	return m, nil
}

// GetClientByChainID returns the client for a given chain ID
func (m *Manager) GetClientByChainID(chainID uint64) (*ChainClient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chain, exists := m.chains[chainID]
	if !exists {
		return nil, fmt.Errorf("%w: %d", config.ErrUnsupportedChain, chainID)
	}
	return chain, nil
}

// AddChain adds a new chain
func (m *Manager) AddChain(chainCfg *Config, sg signer.Signer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.chains[chainCfg.ChainID]; exists {
		return fmt.Errorf("chain already exists: %d", chainCfg.ChainID)
	}

	chain, err := NewChainClient(chainCfg, sg)
	if err != nil {
		return fmt.Errorf("failed to create chain: %w", err)
	}

	m.chains[chainCfg.ChainID] = chain
	return nil
}

// RemoveChain removes a chain
func (m *Manager) RemoveChain(chainID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	chain, exists := m.chains[chainID]
	if !exists {
		return fmt.Errorf("chain not found: %d", chainID)
	}

	if err := chain.Close(); err != nil {
		return fmt.Errorf("failed to close chain: %w", err)
	}

	delete(m.chains, chainID)
	return nil
}

// Close closes all chains
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for chainID, chain := range m.chains {
		if err := chain.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close chain %d: %w", chainID, err))
		}
	}
	m.chains = make(map[uint64]*ChainClient)

	if len(errs) > 0 {
		return fmt.Errorf("errors closing chains: %v", errs)
	}
	return nil
}

// ListChains returns all available chain IDs
func (m *Manager) ListChains() []uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chainIDs := make([]uint64, 0, len(m.chains))
	for chainID := range m.chains {
		chainIDs = append(chainIDs, chainID)
	}
	return chainIDs
}
