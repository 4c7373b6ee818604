package signer

// Config represents signer configuration
type Config struct {
	// KeystorePath is the path to the encrypted keystore file
	KeystorePath string
	// Password is the password to decrypt the keystore
	Password string
	// PrivateKey is a raw hex private key, used instead of a keystore
	PrivateKey string
}

// IsValid checks if the config describes a usable signer
func (c *Config) IsValid() bool {
	if c.PrivateKey != "" {
		return true
	}
	return c.KeystorePath != "" && c.Password != ""
}
