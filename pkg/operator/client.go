package operator

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/Byzantine-Finance/operator-sdk/internal/zerolog/log"
	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts"
	"github.com/Byzantine-Finance/operator-sdk/pkg/common/contracts/ethereum"
	"github.com/Byzantine-Finance/operator-sdk/pkg/common/crypto/signer"
	"github.com/Byzantine-Finance/operator-sdk/pkg/config"
)

// Client is the operator-facing SDK entry point for one chain. Every public
// method wraps exactly one contract call: reads decode a view return, writes
// submit a transaction and return its handle. Underlying chain errors are
// propagated unchanged.
type Client struct {
	chainID uint64
	chain   contracts.Client
	signer  signer.Signer
	logger  zerolog.Logger
}

// Option configures a Client
type Option func(*options)

type options struct {
	signer signer.Signer
}

// WithSigner overrides the signer built from the config file
func WithSigner(s signer.Signer) Option {
	return func(o *options) {
		o.signer = s
	}
}

// NewClient creates an SDK client bound to one chain. Without a signer in
// either the config or the options, the client is read-only.
func NewClient(cfg *config.Config, chainID uint64, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// A bare password (e.g. from OPERATOR_KEYSTORE_PASSWORD) is not a
	// signer; only a key source makes the client writable.
	sg := o.signer
	if sg == nil && (cfg.Signer.KeystorePath != "" || cfg.Signer.PrivateKey != "") {
		var err error
		sg, err = signer.NewFromConfig(&signer.Config{
			KeystorePath: cfg.Signer.KeystorePath,
			Password:     cfg.Signer.Password,
			PrivateKey:   cfg.Signer.PrivateKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create signer: %w", err)
		}
	}

	chainCfg, err := ethereum.ResolveConfig(cfg, chainID)
	if err != nil {
		return nil, err
	}

	chain, err := ethereum.NewChainClient(chainCfg, sg)
	if err != nil {
		return nil, err
	}

	return newClient(chainID, chain, sg), nil
}

// newClient wires a facade around an existing chain client. Used directly by
// tests and by callers that manage chain clients themselves.
func newClient(chainID uint64, chain contracts.Client, sg signer.Signer) *Client {
	return &Client{
		chainID: chainID,
		chain:   chain,
		signer:  sg,
		logger:  log.With().Str("component", "operator-client").Uint64("chain_id", chainID).Logger(),
	}
}

// ChainID returns the chain this client is bound to
func (c *Client) ChainID() uint64 {
	return c.chainID
}

// Address returns the signer address, or the zero address for read-only clients
func (c *Client) Address() common.Address {
	if c.signer == nil {
		return common.Address{}
	}
	return c.signer.Address()
}

// Close closes the underlying chain client
func (c *Client) Close() error {
	return c.chain.Close()
}
