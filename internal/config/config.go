package config

import "time"

// Config is the root extraction pipeline configuration.
type Config struct {
	Extract  ExtractConfig  `yaml:"extract"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ExtractConfig selects which field groups the extractor captures,
// which languages it keeps and how many pages run in parallel.
type ExtractConfig struct {
	Pronunciation bool   `yaml:"pronunciation" env:"EXTRACT_PRONUNCIATION" env-default:"true"`
	Translations  bool   `yaml:"translations"  env:"EXTRACT_TRANSLATIONS"  env-default:"true"`
	Linkage       bool   `yaml:"linkage"       env:"EXTRACT_LINKAGE"       env-default:"true"`
	Compounds     bool   `yaml:"compounds"     env:"EXTRACT_COMPOUNDS"     env-default:"true"`
	LanguagesRaw  string `yaml:"languages"     env:"EXTRACT_LANGUAGES"` // comma-separated, empty keeps all
	Workers       int    `yaml:"workers"       env:"EXTRACT_WORKERS"       env-default:"4"`

	// Languages is parsed from LanguagesRaw during validation.
	Languages []string `yaml:"-" env:"-"`
}

// DatabaseConfig holds PostgreSQL connection settings for the record
// sink. DSN may stay empty when records are written to a file instead.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
