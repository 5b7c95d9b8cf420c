package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yaml"

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type ServerConfig struct {
	Port        int      `yaml:"port" env:"SERVER_PORT"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:","`
}

type DatabaseConfig struct {
	DSN             string        `yaml:"url" env:"DATABASE_URL"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"`
}

type SessionConfig struct {
	Secret     string        `yaml:"secret" env:"SESSION_SECRET"`
	TTL        time.Duration `yaml:"ttl" env:"SESSION_TTL"`
	CookieName string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
	Secure     bool          `yaml:"secure" env:"SESSION_SECURE"`
}

type LogConfig struct {
	Env   string `yaml:"env" env:"ENV"`
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT"`
	SMTPUser     string `yaml:"smtp_user" env:"SMTP_USER"`
	SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
	FromEmail    string `yaml:"from_email" env:"SMTP_FROM"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
}

type PDFConfig struct {
	// FontPath points to a UTF-8 TTF; core Helvetica is used when empty.
	FontPath string `yaml:"font_path" env:"PDF_FONT_PATH"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Session  SessionConfig  `yaml:"session"`
	Log      LogConfig      `yaml:"log"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// Load reads the YAML file at path (a missing file is allowed), applies
// environment overrides and fills defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// only env
	default:
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5001
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 30 * time.Minute
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = 8 * time.Hour
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "etats.sid"
	}
	if c.Log.Env == "" {
		c.Log.Env = EnvLocal
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
}

func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return errors.New("database.url is required")
	}
	if c.Session.Secret == "" {
		return errors.New("session.secret is required")
	}
	switch c.Log.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown log env: %s", c.Log.Env)
	}
	return nil
}
