package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultChain = "base"

	configFile  = "config.json"
	recordsFile = "mints.json"

	// Default collection. Overridable via config set, kept as static
	// configuration the same way the host platform would supply it.
	defaultCollectionName     = "Mintpad Genesis"
	defaultCollectionDesc     = "Fixed-price genesis collection, payable in USDC."
	defaultCollectionContract = "0x7bF34Db30E8723C4Aee67B3c8f84A4Db1A30e6C8"
	defaultPriceUnits         = 10_000_000 // 10 USDC
	defaultTokenDecimals      = 6
	defaultTokenSymbol        = "USDC"
)

// Load reads config from dir (or creates defaults). dir defaults to ~/.mintpad.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".mintpad")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.configDir = dir
	if cfg.SelectedChain == "" {
		cfg.SelectedChain = defaultChain
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// RecordsPath returns the path of the persisted mint-record file.
func (c *Config) RecordsPath() string {
	return filepath.Join(c.configDir, recordsFile)
}

// --- helpers ---

func defaults(dir string) *Config {
	return &Config{
		SelectedChain: defaultChain,
		Collection: Collection{
			Name:            defaultCollectionName,
			Description:     defaultCollectionDesc,
			ContractAddress: defaultCollectionContract,
			PriceUnits:      defaultPriceUnits,
			TokenDecimals:   defaultTokenDecimals,
			TokenSymbol:     defaultTokenSymbol,
		},
		configDir: dir,
	}
}
