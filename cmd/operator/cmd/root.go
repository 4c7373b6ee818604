package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Byzantine-Finance/operator-sdk/internal/metric"
	"github.com/Byzantine-Finance/operator-sdk/internal/zerolog"
	"github.com/Byzantine-Finance/operator-sdk/pkg/config"
	"github.com/Byzantine-Finance/operator-sdk/pkg/operator"
)

const defaultConfigPath = "./config/operator.yaml"

var (
	// Global flags
	cfgFile      string
	chainID      uint64
	keystorePath string
	password     string
	privateKey   string
	debugMode    bool
	metricsPort  int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "operator",
	Short: "Byzantine operator CLI",
	Long: `Byzantine operator CLI manages an operator's on-chain registrations
across the supported restaking protocols.

This tool can:
- Register, update and deregister a native operator
- Register a Symbiotic operator
- Opt in and out of Symbiotic networks and vaults
- Inspect an operator's registration status

Signing Key Options:
1. Use keystore file:
   --keystore /path/to/keystore.json --password yourpassword

2. Use private key directly:
   --private-key 0x123...abc`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./config/operator.yaml)")
	rootCmd.PersistentFlags().Uint64Var(&chainID, "chain", config.HoleskyChainID,
		"chain id to operate on")
	rootCmd.PersistentFlags().StringVar(&keystorePath, "keystore", "",
		"path to signing keystore file (required if --private-key is not set)")
	rootCmd.PersistentFlags().StringVar(&password, "password", "",
		"password for keystore (required only when using --keystore)")
	rootCmd.PersistentFlags().StringVar(&privateKey, "private-key", "",
		"ECDSA private key in hex format (required if --keystore is not set)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"enable debug logging (overrides the config file)")
	rootCmd.PersistentFlags().IntVar(&metricsPort, "metrics-port", 0,
		"serve prometheus metrics on this port (overrides the config file)")
}

// loadCLIConfig loads the config file and layers the flags on top. An empty
// --config falls back to ./config/operator.yaml when that file exists.
func loadCLIConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	cfg := config.DefaultConfig()
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		var err error
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if keystorePath != "" {
		cfg.Signer.KeystorePath = keystorePath
		cfg.Signer.Password = password
	}
	if privateKey != "" {
		cfg.Signer.PrivateKey = privateKey
	}
	if debugMode {
		cfg.Logging.Level = "debug"
	}
	if metricsPort > 0 {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Port = metricsPort
	}
	return cfg, nil
}

// initObservability wires logging and the metrics server from the resolved
// config before any chain client is built.
func initObservability(cfg *config.Config) {
	if cfg.Logging.IsConsole() {
		zerolog.InitConsoleLogger(cfg.Logging.IsDebug())
	} else {
		zerolog.InitLogger(cfg.Logging.IsDebug())
	}
	if cfg.Metrics.Enabled {
		go func() {
			_ = metric.New(&metric.Config{Port: cfg.Metrics.Port}).Start()
		}()
	}
}

// newClient builds an SDK client for the selected chain. Write commands need
// a signer; read commands work without one.
func newClient(requireSigner bool) (*operator.Client, error) {
	cfg, err := loadCLIConfig()
	if err != nil {
		return nil, err
	}
	initObservability(cfg)

	if requireSigner {
		if cfg.Signer.KeystorePath == "" && cfg.Signer.PrivateKey == "" {
			return nil, fmt.Errorf("either --keystore or --private-key must be provided")
		}
		if keystorePath != "" && privateKey != "" {
			return nil, fmt.Errorf("cannot use both --keystore and --private-key at the same time")
		}
		if cfg.Signer.KeystorePath != "" && cfg.Signer.Password == "" {
			return nil, fmt.Errorf("--password is required when using --keystore")
		}
	}

	return operator.NewClient(cfg, chainID)
}
