package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Storage StorageConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Seed    SeedConfig
	Rules   RulesConfig
}

type StorageConfig struct {
	// Backend selects the persistence layer: "file" (flat JSON tables)
	// or "mongo".
	Backend string `env:"STORAGE_BACKEND, default=file"`
	DataDir string `env:"DATA_DIR,        default=./data"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=ticket_board"`
}

type RedisConfig struct {
	// Addr left empty disables the CSV upload dedup.
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// SeedConfig is the bootstrap state written on first run of the file
// backend.
type SeedConfig struct {
	AdminUsername string `env:"ADMIN_USERNAME,  default=123"`
	AdminPassword string `env:"ADMIN_PASSWORD,  default=Admin$2024!Secure"`
	Supervisor    string `env:"SEED_SUPERVISOR, default=qwe123"`
}

type RulesConfig struct {
	ReportTZ string `env:"REPORT_TZ, default=Europe/Moscow"`
	// StrictSteamIDs rejects legacy-prefixed ids with a malformed X:Y
	// suffix instead of accepting them verbatim.
	StrictSteamIDs bool `env:"STRICT_STEAM_IDS, default=false"`
	// AllowUnknownSupervisor restores the legacy behaviour of accepting
	// players whose supervisor is not registered.
	AllowUnknownSupervisor bool `env:"ALLOW_UNKNOWN_SUPERVISOR, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
