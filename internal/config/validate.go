package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Extract.validate(); err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	if c.Database.DSN != "" {
		if c.Database.MaxConns < 1 {
			return fmt.Errorf("database: max_conns must be >= 1 (got %d)", c.Database.MaxConns)
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database: min_conns %d exceeds max_conns %d", c.Database.MinConns, c.Database.MaxConns)
		}
	}
	return nil
}

func (e *ExtractConfig) validate() error {
	if e.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", e.Workers)
	}
	e.Languages = ParseLanguages(e.LanguagesRaw)
	return nil
}

// ParseLanguages parses a comma-separated language list (e.g.
// "English, Finnish") into a slice. An empty string returns a nil
// slice, which keeps all languages.
func ParseLanguages(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
