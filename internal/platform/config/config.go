package config

import "strings"

type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"
	StoragePostgres StorageDriver = "postgres"
	StorageBadger   StorageDriver = "badger"
)

// Config del proceso. Todo opcional salvo lo que exige el driver elegido.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"kitty-registry"`

	Storage    StorageDriver `env:"STORAGE_DRIVER" envDefault:"memory"`
	DBDSN      string        `env:"DB_DSN"`
	BadgerPath string        `env:"BADGER_PATH"`

	LedgerURL    string `env:"LEDGER_URL"`
	LedgerAPIKey string `env:"LEDGER_API_KEY"`
	// Saldo inicial de cada cuenta cuando no hay LEDGER_URL (ledger en memoria).
	LedgerOpeningBalance uint64 `env:"LEDGER_OPENING_BALANCE" envDefault:"0"`

	IdentityURL    string `env:"IDENTITY_URL"`
	IdentityAPIKey string `env:"IDENTITY_API_KEY"`

	CreatePrice        uint64 `env:"KITTY_CREATE_PRICE" envDefault:"1000"`
	MaxOwned           int    `env:"KITTY_MAX_OWNED" envDefault:"8"`
	MaxKittyID         uint32 `env:"KITTY_MAX_ID" envDefault:"4294967295"`
	RequireOppositeSex bool   `env:"KITTY_REQUIRE_OPPOSITE_SEX" envDefault:"false"`

	// Semilla fija para entropía determinística (solo dev). Vacío = crypto/rand.
	EntropySeed string `env:"ENTROPY_SEED"`
}

// Load lee Config desde env.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Storage = StorageDriver(strings.ToLower(strings.TrimSpace(string(cfg.Storage))))
	return cfg, nil
}
