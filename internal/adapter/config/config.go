package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	App      *App
	HTTP     *HTTP
	Database *Database
	Paypack  *Paypack
	Catalog  *Catalog
	SMTP     *SMTP
	Business *Business
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type Paypack struct {
	BaseURL        string `env:"PAYPACK_BASE_URL" envDefault:"https://payments.paypack.rw/api"`
	ClientID       string `env:"PAYPACK_CLIENT_ID"`
	ClientSecret   string `env:"PAYPACK_CLIENT_SECRET"`
	Mode           string `env:"PAYPACK_MODE" envDefault:"production"`
	TimeoutSeconds int    `env:"PAYPACK_TIMEOUT_SECONDS" envDefault:"5"`
}

func (p *Paypack) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

type Catalog struct {
	HostString string `env:"CATALOG_SERVICE_ADDRESS"`
}

type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
	// NotifyTo receives the operational copies until per-user emails are
	// sourced from the identity service.
	NotifyTo string `env:"SMTP_NOTIFY_TO"`
}

// Business holds the tunable business constants. The original system
// hard-coded these and they drifted across revisions, so they are explicit
// configuration here.
type Business struct {
	Currency                   string `env:"CURRENCY" envDefault:"RWF"`
	ReturnWindowDays           int    `env:"RETURN_WINDOW_DAYS" envDefault:"30"`
	MomoExpiryMinutes          int    `env:"MOMO_PAYMENT_EXPIRY_MINUTES" envDefault:"10"`
	CardExpiryMinutes          int    `env:"CARD_PAYMENT_EXPIRY_MINUTES" envDefault:"15"`
	DuplicateInitWindowMinutes int    `env:"DUPLICATE_PAYMENT_WINDOW_MINUTES" envDefault:"10"`
	CardSettlementDelaySeconds int    `env:"CARD_SETTLEMENT_DELAY_SECONDS" envDefault:"5"`
}

func (b *Business) ReturnWindow() time.Duration {
	return time.Duration(b.ReturnWindowDays) * 24 * time.Hour
}

func (b *Business) MomoExpiry() time.Duration {
	return time.Duration(b.MomoExpiryMinutes) * time.Minute
}

func (b *Business) CardExpiry() time.Duration {
	return time.Duration(b.CardExpiryMinutes) * time.Minute
}

func (b *Business) DuplicateInitWindow() time.Duration {
	return time.Duration(b.DuplicateInitWindowMinutes) * time.Minute
}

func (b *Business) CardSettlementDelay() time.Duration {
	return time.Duration(b.CardSettlementDelaySeconds) * time.Second
}

func NewConfig() (*Config, error) {
	// Optional .env for local runs; env vars win.
	_ = godotenv.Load()

	var app App
	var http HTTP
	var db Database
	var paypack Paypack
	var catalog Catalog
	var smtp SMTP
	var business Business

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&catalog.HostString, "c", "", "Catalog service address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing database config: %w", err)
	}
	err = env.Parse(&paypack)
	if err != nil {
		return nil, fmt.Errorf("error parsing paypack config: %w", err)
	}
	err = env.Parse(&catalog)
	if err != nil {
		return nil, fmt.Errorf("error parsing catalog config: %w", err)
	}
	err = env.Parse(&smtp)
	if err != nil {
		return nil, fmt.Errorf("error parsing smtp config: %w", err)
	}
	err = env.Parse(&business)
	if err != nil {
		return nil, fmt.Errorf("error parsing business config: %w", err)
	}

	config := Config{
		App:      &app,
		HTTP:     &http,
		Database: &db,
		Paypack:  &paypack,
		Catalog:  &catalog,
		SMTP:     &smtp,
		Business: &business,
	}

	return &config, nil
}
