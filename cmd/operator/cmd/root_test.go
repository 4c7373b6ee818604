package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Byzantine-Finance/operator-sdk/pkg/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func resetFlags(t *testing.T) {
	t.Helper()
	oldCfg, oldKs, oldPw, oldPk := cfgFile, keystorePath, password, privateKey
	oldChain, oldDebug, oldPort := chainID, debugMode, metricsPort
	t.Cleanup(func() {
		cfgFile, keystorePath, password, privateKey = oldCfg, oldKs, oldPw, oldPk
		chainID, debugMode, metricsPort = oldChain, oldDebug, oldPort
	})
}

func TestLoadCLIConfigWithoutFile(t *testing.T) {
	resetFlags(t)
	chdir(t, t.TempDir())
	cfgFile = ""
	privateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

	cfg, err := loadCLIConfig()
	require.NoError(t, err)

	assert.Equal(t, privateKey, cfg.Signer.PrivateKey)
	rpc, err := cfg.RPCForChain(config.HoleskyChainID)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", rpc)
}

func TestLoadCLIConfigDefaultPath(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	chdir(t, dir)
	cfgFile = ""

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	content := `
chains:
  1:
    rpc: https://mainnet.example.org
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "operator.yaml"), []byte(content), 0o600))

	cfg, err := loadCLIConfig()
	require.NoError(t, err)

	rpc, err := cfg.RPCForChain(config.MainnetChainID)
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.example.org", rpc)
}

func TestLoadCLIConfigMissingExplicitFile(t *testing.T) {
	resetFlags(t)
	chdir(t, t.TempDir())
	cfgFile = "./nonexistent.yaml"

	_, err := loadCLIConfig()
	require.Error(t, err)
}

func TestLoadCLIConfigFlagOverrides(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	chdir(t, dir)

	content := `
chains:
  17000:
    rpc: http://localhost:8545
logging:
  level: info
  format: json
metrics:
  enabled: false
  port: 4014
`
	path := filepath.Join(dir, "operator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	cfgFile = path
	debugMode = true
	metricsPort = 9200

	cfg, err := loadCLIConfig()
	require.NoError(t, err)

	// Flags win over the file
	assert.True(t, cfg.Logging.IsDebug())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9200, cfg.Metrics.Port)
}

func TestLoadCLIConfigFileSettingsKept(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	chdir(t, dir)

	content := `
chains:
  17000:
    rpc: http://localhost:8545
logging:
  level: debug
  format: console
metrics:
  enabled: true
  port: 9100
`
	path := filepath.Join(dir, "operator.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	cfgFile = path

	cfg, err := loadCLIConfig()
	require.NoError(t, err)

	// No flags set; the file's sections drive the wiring
	assert.True(t, cfg.Logging.IsDebug())
	assert.True(t, cfg.Logging.IsConsole())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9100, cfg.Metrics.Port)
}
