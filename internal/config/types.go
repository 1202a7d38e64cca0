package config

// Config is the persisted mintpad configuration.
type Config struct {
	// SelectedChain is the slug of the chain the user targets ("base" or
	// "arbitrum"). The active wallet chain may differ; the eligibility
	// controller surfaces that as a required network switch.
	SelectedChain string `json:"selected_chain"`

	Collection Collection `json:"collection"`

	configDir string
}

// Collection describes the mint collection this app fronts.
type Collection struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	// ContractAddress is the mint contract the record store is keyed by.
	ContractAddress string `json:"contract_address"`
	// PriceUnits is the fixed mint price in the payment token's smallest
	// unit (10 USDC with 6 decimals = 10_000_000).
	PriceUnits    uint64 `json:"price_units"`
	TokenDecimals int    `json:"token_decimals"`
	TokenSymbol   string `json:"token_symbol"`
}
