package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"net/netip"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	BaseURL         string
	AllowedOrigins  []string
	ShutdownTimeout int
	// TrustedProxies are the only peers whose forwarding headers are believed.
	TrustedProxies []netip.Prefix
}

// DatabaseConfig describes the Postgres connection. URL, when set, is used
// as-is and the individual fields are ignored.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// AuthConfig holds the sign-in flow pages and the per-client sign-in
// throttle. A SignInPerMinute of zero disables the throttle.
type AuthConfig struct {
	SignInPage      string
	DefaultRedirect string
	SignInPerMinute int
	SignInBurst     int
}

type EmailConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	From           string
	TLSPolicy      string
	TimeoutSeconds int
}

// LoadConfig reads envFile (if present) and the process environment.
// Environment variables win over values from the file.
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "request-portal")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("APP_BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("AUTH_SIGNIN_PAGE", "/auth/signin")
	v.SetDefault("AUTH_DEFAULT_REDIRECT", "/")
	v.SetDefault("AUTH_SIGNIN_PER_MINUTE", 10)
	v.SetDefault("AUTH_SIGNIN_BURST", 5)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_TLS_POLICY", "mandatory")
	v.SetDefault("SMTP_TIMEOUT_SECONDS", 15)

	if envFile != "" {
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", envFile, err)
		}
	}

	v.AutomaticEnv()

	trustedProxies, err := ParseTrustedProxies(splitList(v.GetString("TRUSTED_PROXIES")))
	if err != nil {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			BaseURL:         v.GetString("APP_BASE_URL"),
			AllowedOrigins:  splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
			ShutdownTimeout: v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
			TrustedProxies:  trustedProxies,
		},
		Database: DatabaseConfig{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
			MinConns: v.GetInt32("DB_MIN_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
		},
		Auth: AuthConfig{
			SignInPage:      v.GetString("AUTH_SIGNIN_PAGE"),
			DefaultRedirect: v.GetString("AUTH_DEFAULT_REDIRECT"),
			SignInPerMinute: v.GetInt("AUTH_SIGNIN_PER_MINUTE"),
			SignInBurst:     v.GetInt("AUTH_SIGNIN_BURST"),
		},
		Email: EmailConfig{
			Host:           v.GetString("SMTP_HOST"),
			Port:           v.GetInt("SMTP_PORT"),
			User:           v.GetString("SMTP_USER"),
			Password:       v.GetString("SMTP_PASS"),
			From:           v.GetString("EMAIL_FROM"),
			TLSPolicy:      v.GetString("SMTP_TLS_POLICY"),
			TimeoutSeconds: v.GetInt("SMTP_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if len(c.JWT.Secret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters")
	}
	if c.JWT.ExpiryHours <= 0 {
		return errors.New("JWT_EXPIRY_HOURS must be positive")
	}
	return c.Database.Validate()
}

// Validate checks the settings a database connection needs.
func (c DatabaseConfig) Validate() error {
	if c.URL == "" && c.Name == "" {
		return errors.New("DB_NAME or DATABASE_URL is required")
	}
	return nil
}

// ParseTrustedProxies accepts CIDR ranges and bare addresses; a bare address
// trusts that single host.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: invalid entry %q", entry)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
