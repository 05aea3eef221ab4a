package config

// Validation tags described here: https://pkg.go.dev/github.com/go-playground/validator/v10
type Config struct {
	Blockchain struct {
		EthNodeAddress string `env:"ETH_NODE_ADDRESS"   flag:"eth-node-address"   validate:"required,url"`
		EthLegacyTx    bool   `env:"ETH_NODE_LEGACY_TX" flag:"eth-node-legacy-tx" desc:"use it to disable EIP-1559 transactions"`
	}
	Contracts struct {
		TokenAddress  string `env:"TOKEN_ADDRESS"  flag:"token-address"  validate:"required,eth_addr" desc:"source asset (ERC20) contract"`
		MinterAddress string `env:"MINTER_ADDRESS" flag:"minter-address" validate:"required,eth_addr" desc:"destination asset minter contract"`
	}
	Environment string `env:"ENVIRONMENT" flag:"environment"`
	Journal     struct {
		DBPath         string `env:"JOURNAL_DB_PATH"          flag:"journal-db-path"          validate:"required" desc:"sqlite file for the event journal"`
		RecentCapacity int    `env:"JOURNAL_RECENT_CAPACITY"  flag:"journal-recent-capacity"  validate:"omitempty,number" desc:"number of events kept in memory for /events"`
	}
	Log struct {
		Color    bool   `env:"LOG_COLOR"     flag:"log-color"`
		FilePath string `env:"LOG_FILE_PATH" flag:"log-file-path" validate:"omitempty,filepath" desc:"enables file logging"`
		IsProd   bool   `env:"LOG_IS_PROD"   flag:"log-is-prod"   desc:"affects the format of the log output"`
		JSON     bool   `env:"LOG_JSON"      flag:"log-json"`
		Level    string `env:"LOG_LEVEL"     flag:"log-level"     validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	}
	Roles struct {
		AdminAddress  string `env:"ADMIN_ADDRESS"  flag:"admin-address"  validate:"required,eth_addr"`
		PauserAddress string `env:"PAUSER_ADDRESS" flag:"pauser-address" validate:"required,eth_addr"`
		MinerAddress  string `env:"MINER_ADDRESS"  flag:"miner-address"  validate:"omitempty,eth_addr" desc:"optional, deployments without legacy balances omit it"`
	}
	Wallet struct {
		Mnemonic     string `env:"WALLET_MNEMONIC"      flag:"wallet-mnemonic"      validate:"required_without=PrivateKey"`
		AccountIndex int    `env:"WALLET_ACCOUNT_INDEX" flag:"wallet-account-index" validate:"omitempty,number"`
		PrivateKey   string `env:"WALLET_PRIVATE_KEY"   flag:"wallet-private-key"   validate:"required_without=Mnemonic"`
	}
	Window struct {
		Start string `env:"WINDOW_START" flag:"window-start" validate:"required,datetime=2006-01-02T15:04:05Z07:00" desc:"conversion window start, RFC3339"`
		End   string `env:"WINDOW_END"   flag:"window-end"   validate:"required,datetime=2006-01-02T15:04:05Z07:00" desc:"conversion window end, RFC3339"`
	}
	Web struct {
		Address   string `env:"WEB_ADDRESS"    flag:"web-address"    validate:"required,hostname_port" desc:"http server address host:port"`
		PublicUrl string `env:"WEB_PUBLIC_URL" flag:"web-public-url" validate:"omitempty,url" desc:"public url of the gateway, falls back to web-address if empty"`
	}
}

var BuildVersion = "development"
