package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/doramashorts/backend/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Subscription sharedConfig.SubscriptionConfig `mapstructure:"subscription"`
	Payment      sharedConfig.PaymentConfig      `mapstructure:"payment"`
	RateLimit    sharedConfig.RateLimitConfig    `mapstructure:"ratelimit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml and DORAMA_* environment overrides. A .env
// file in the working directory is loaded into the environment first without
// replacing variables that are already set. A missing file is tolerated so
// containers can run on env alone.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("DORAMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Subscription.PeriodDays <= 0 || c.Subscription.ApprovalDays <= 0 {
		return fmt.Errorf("subscription period must be positive")
	}
	if c.Payment.CheckoutOrigin == "" {
		return fmt.Errorf("payment.checkout_origin is required")
	}
	if c.Payment.SuccessSentinel == "" {
		return fmt.Errorf("payment.success_sentinel is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.timezone", "America/Sao_Paulo")

	// Database
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "doramashorts")
	v.SetDefault("database.path", "doramashorts.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	// Auth
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", "change-me-in-production")
	v.SetDefault("auth.jwt.access_exp_minutes", 60*24)
	v.SetDefault("auth.policy_path", "configs/casbin_policy.yaml")

	// Email
	v.SetDefault("email.smtp_host", "localhost")
	v.SetDefault("email.smtp_port", 1025)
	v.SetDefault("email.from_address", "noreply@doramashorts.local")
	v.SetDefault("email.from_name", "Dorama Shorts")
	v.SetDefault("email.admin_address", "")

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Subscription
	v.SetDefault("subscription.period_days", 30)
	v.SetDefault("subscription.approval_days", 30)
	v.SetDefault("subscription.sweep_interval", "1h")
	v.SetDefault("subscription.sweep_enabled", true)
	v.SetDefault("subscription.initiate_lock_ttl", "10s")

	// Payment
	v.SetDefault("payment.checkout_origin", "https://checkout.doramashorts.com")
	v.SetDefault("payment.success_sentinel", "payment_success")
	v.SetDefault("payment.resync_delay_ms", 1500)
	v.SetDefault("payment.pix_key", "")
	v.SetDefault("payment.whatsapp_contact", "(11) 93758-7626")
	v.SetDefault("payment.whatsapp_number", "5511937587626")
	v.SetDefault("payment.monthly_price_cents", 2000)
	v.SetDefault("payment.currency", "BRL")

	// Rate limiting
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.limit", 60)
	v.SetDefault("ratelimit.window", "1m")
}
