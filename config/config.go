package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Stock    StockConfig    `mapstructure:"stock"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DBConfig struct {
	// DSN wins when set; otherwise the discrete fields are assembled.
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	// Optional bootstrap admin provisioned by the seed command.
	SeedAdminEmail string `mapstructure:"seed_admin_email"`
	SeedAdminPIN   string `mapstructure:"seed_admin_pin"`
}

type CheckoutConfig struct {
	// DeliveryFee is a flat fee added to every order subtotal.
	DeliveryFee float64 `mapstructure:"delivery_fee"`
	// Mobile money payee shown to the shopper for manual payment.
	PayeeName   string `mapstructure:"payee_name"`
	PayeeNumber string `mapstructure:"payee_number"`
	PayeeID     string `mapstructure:"payee_id"`
}

type StockConfig struct {
	// LowThreshold is the stock level at or below which a product is flagged
	// on the admin stock report.
	LowThreshold int `mapstructure:"low_threshold"`
}

// Load reads config.yaml (optional) and FROZENHAVEN_* environment overrides.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./")
	v.AddConfigPath("/etc/frozenhaven/")

	v.SetEnvPrefix("FROZENHAVEN")
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("checkout.delivery_fee", 20)
	v.SetDefault("checkout.payee_name", "Frozen Haven")
	v.SetDefault("stock.low_threshold", 20)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// DSN returns the Postgres connection string.
func (c DBConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Name, c.Port,
	)
}
