package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the example binaries
type Config struct {
	QuoteAPIURL      string        `mapstructure:"quote_api_url"`
	PriceAPIURL      string        `mapstructure:"price_api_url"`
	SolanaRpcURL     string        `mapstructure:"solana_rpc_url"`
	WalletPrivateKey string        `mapstructure:"wallet_private_key"`
	SlippageBps      int           `mapstructure:"slippage_bps"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	Debug            bool          `mapstructure:"debug"`
}

// NewConfig creates a new configuration from environment variables, layered
// on top of an optional yaml file pointed at by JUP_CONFIG_PATH.
func NewConfig() *Config {
	config := &Config{
		QuoteAPIURL:  "https://quote-api.jup.ag/v6",
		PriceAPIURL:  "https://price.jup.ag/v4",
		SolanaRpcURL: "https://api.mainnet-beta.solana.com",
		SlippageBps:  50,
		HTTPTimeout:  15 * time.Second,
	}

	if path := os.Getenv("JUP_CONFIG_PATH"); path != "" {
		viper.SetConfigFile(path)
		viper.SetConfigType("yml")
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("Failed to read config file %s: %v", path, err)
		}
		if err := viper.Unmarshal(config); err != nil {
			log.Fatalf("Failed to parse config file %s: %v", path, err)
		}
	}

	// Environment variables win over the file.
	config.QuoteAPIURL = getEnv("JUP_QUOTE_API_URL", config.QuoteAPIURL)
	config.PriceAPIURL = getEnv("JUP_PRICE_API_URL", config.PriceAPIURL)
	config.SolanaRpcURL = getEnv("SOLANA_RPC_URL", config.SolanaRpcURL)
	config.WalletPrivateKey = getEnv("WALLET_PRIVATE_KEY", config.WalletPrivateKey)
	config.SlippageBps = getEnvInt("JUP_SLIPPAGE_BPS", config.SlippageBps)
	config.HTTPTimeout = parseEnvDuration("JUP_HTTP_TIMEOUT", config.HTTPTimeout)
	config.Debug = getEnvBool("DEBUG", config.Debug)

	return config
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
		log.Printf("Warning: invalid boolean value for %s: %s, using default", key, value)
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.Atoi(value)
		if err == nil {
			return intValue
		}
		log.Printf("Warning: invalid integer value for %s: %s, using default", key, value)
	}
	return defaultValue
}

// parseEnvDuration retrieves a duration environment variable or returns a default value
func parseEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		duration, err := time.ParseDuration(value)
		if err == nil {
			return duration
		}
		log.Printf("Warning: invalid duration value for %s: %s, using default", key, value)
	}
	return defaultValue
}
