package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the SQL backend. Driver is "mysql" for deployments
// and "sqlite" for local runs, where Path names the database file.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=true&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	BcryptCost int       `mapstructure:"bcrypt_cost"`
	JWT        JWTConfig `mapstructure:"jwt"`
	// PolicyPath points to the casbin seed policy file.
	PolicyPath string `mapstructure:"policy_path"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
	// AdminAddress receives new pending-request notifications. Empty disables them.
	AdminAddress string `mapstructure:"admin_address"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SubscriptionConfig holds lifecycle durations.
type SubscriptionConfig struct {
	// PeriodDays is the length granted by an automated checkout success.
	PeriodDays int `mapstructure:"period_days"`
	// ApprovalDays is the length granted by a manual admin approval.
	ApprovalDays  int           `mapstructure:"approval_days"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	// SweepEnabled runs the expiry sweep inside the API server. Disable it
	// when the standalone worker owns the sweep.
	SweepEnabled bool `mapstructure:"sweep_enabled"`
	// InitiateLockTTL bounds how long one initiate request blocks a retry.
	InitiateLockTTL time.Duration `mapstructure:"initiate_lock_ttl"`
}

// PaymentConfig describes the embedded checkout and manual PIX instructions.
type PaymentConfig struct {
	CheckoutOrigin    string `mapstructure:"checkout_origin"`
	SuccessSentinel   string `mapstructure:"success_sentinel"`
	ResyncDelayMS     int    `mapstructure:"resync_delay_ms"`
	PixKey            string `mapstructure:"pix_key"`
	WhatsAppContact   string `mapstructure:"whatsapp_contact"`
	WhatsAppNumber    string `mapstructure:"whatsapp_number"`
	MonthlyPriceCents int64  `mapstructure:"monthly_price_cents"`
	Currency          string `mapstructure:"currency"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int           `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}
