package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/0xNexuz/Tempocash/pkg/token"
)

// Simulation store backends
const (
	SimStoreMemory   = "memory"
	SimStorePostgres = "postgres"
	SimStoreRedis    = "redis"
)

// Wallet provider kinds
const (
	WalletKeyed = "keyed"
	WalletRPC   = "rpc"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Ethereum   EthereumConfig   `mapstructure:"ethereum"`
	Wallet     WalletConfig     `mapstructure:"wallet"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Sessions   SessionsConfig   `mapstructure:"sessions"`
	Tokens     TokensConfig     `mapstructure:"tokens"`
	Links      LinksConfig      `mapstructure:"links"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	// TransitionTimeout bounds approve and settle, which wait for receipts
	TransitionTimeout time.Duration `mapstructure:"transition_timeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	Address      string        `mapstructure:"address"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// EthereumConfig contains the ledger gateway settings. An empty RPCURL
// disables live mode.
type EthereumConfig struct {
	RPCURL              string         `mapstructure:"rpc_url"`
	ChainID             int64          `mapstructure:"chain_id"`
	ChainName           string         `mapstructure:"chain_name"`
	ExplorerURL         string         `mapstructure:"explorer_url"`
	NativeCurrency      NativeCurrency `mapstructure:"native_currency"`
	PaymentContract     string         `mapstructure:"payment_contract"`
	GasLimit            uint64         `mapstructure:"gas_limit"`
	MaxGasPrice         string         `mapstructure:"max_gas_price"`
	ReceiptPollInterval time.Duration  `mapstructure:"receipt_poll_interval"`
}

// NativeCurrency describes the fee-native asset of the chain
type NativeCurrency struct {
	Name     string `mapstructure:"name"`
	Symbol   string `mapstructure:"symbol"`
	Decimals int    `mapstructure:"decimals"`
}

// LiveEnabled reports whether a ledger endpoint is configured.
func (c *EthereumConfig) LiveEnabled() bool {
	return c.RPCURL != ""
}

// WalletConfig selects and configures the wallet provider
type WalletConfig struct {
	Provider      string        `mapstructure:"provider"`
	PrivateKey    string        `mapstructure:"private_key"`
	RPCURL        string        `mapstructure:"rpc_url"`
	WatchInterval time.Duration `mapstructure:"watch_interval"`
}

// SimulationConfig contains simulation mode settings
type SimulationConfig struct {
	Store       string        `mapstructure:"store"`
	Delay       time.Duration `mapstructure:"delay"`
	DemoAccount string        `mapstructure:"demo_account"`
	KeyPrefix   string        `mapstructure:"key_prefix"`
}

// SessionsConfig bounds how long unread payment sessions are held
type SessionsConfig struct {
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`
	FinishedTTL   time.Duration `mapstructure:"finished_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// TokensConfig points at an optional YAML token list or lists tokens inline.
// File wins over List; with neither the built-in registry is used.
type TokensConfig struct {
	File string       `mapstructure:"file"`
	List []token.Info `mapstructure:"list"`
}

// LinksConfig contains share link settings
type LinksConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// AuthConfig contains merchant authentication settings
type AuthConfig struct {
	JWKSURL string `mapstructure:"jwks_url"`
	Issuer  string `mapstructure:"issuer"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.transition_timeout", "5m")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.database", "tempocash")

	// Redis defaults
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.dial_timeout", "5s")
	v.SetDefault("redis.read_timeout", "3s")
	v.SetDefault("redis.write_timeout", "3s")

	// Ethereum defaults (Tempo testnet)
	v.SetDefault("ethereum.chain_id", 123)
	v.SetDefault("ethereum.chain_name", "Tempo Testnet")
	v.SetDefault("ethereum.explorer_url", "https://explorer.tempo.testnet")
	v.SetDefault("ethereum.native_currency.name", "pathUSD")
	v.SetDefault("ethereum.native_currency.symbol", "pathUSD")
	v.SetDefault("ethereum.native_currency.decimals", 18)
	v.SetDefault("ethereum.payment_contract", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	v.SetDefault("ethereum.gas_limit", 300000)
	v.SetDefault("ethereum.receipt_poll_interval", "2s")

	// Wallet defaults
	v.SetDefault("wallet.provider", WalletKeyed)
	v.SetDefault("wallet.watch_interval", "5s")

	// Simulation defaults
	v.SetDefault("simulation.store", SimStoreMemory)
	v.SetDefault("simulation.delay", "1500ms")
	v.SetDefault("simulation.demo_account", "0xTempoDemoAccount723940182347")
	v.SetDefault("simulation.key_prefix", "tempocash:sim")

	// Sessions defaults
	v.SetDefault("sessions.idle_ttl", "30m")
	v.SetDefault("sessions.finished_ttl", "5m")
	v.SetDefault("sessions.sweep_interval", "1m")

	// Links defaults
	v.SetDefault("links.base_url", "http://localhost:8080")

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	switch config.Simulation.Store {
	case SimStoreMemory:
	case SimStorePostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database.host is required for the postgres simulation store")
		}
	case SimStoreRedis:
		if config.Redis.URL == "" && config.Redis.Address == "" {
			return fmt.Errorf("redis.url or redis.address is required for the redis simulation store")
		}
	default:
		return fmt.Errorf("unknown simulation.store %q", config.Simulation.Store)
	}
	if config.Simulation.Delay < 0 {
		return fmt.Errorf("simulation.delay cannot be negative")
	}

	if !config.Ethereum.LiveEnabled() {
		return nil
	}
	if config.Ethereum.ChainID <= 0 {
		return fmt.Errorf("ethereum.chain_id must be positive")
	}
	if !common.IsHexAddress(config.Ethereum.PaymentContract) {
		return fmt.Errorf("ethereum.payment_contract is not a valid address")
	}
	switch config.Wallet.Provider {
	case WalletKeyed:
		if config.Wallet.PrivateKey == "" {
			return fmt.Errorf("wallet.private_key is required for the keyed wallet provider")
		}
	case WalletRPC:
		if config.Wallet.RPCURL == "" {
			return fmt.Errorf("wallet.rpc_url is required for the rpc wallet provider")
		}
	default:
		return fmt.Errorf("unknown wallet.provider %q", config.Wallet.Provider)
	}
	return nil
}
