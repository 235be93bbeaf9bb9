package openapi

import (
	"os"
	"strings"
)

// Config is the [api.openapi] section. Title heads both /openapi.json and
// the /docs reference page.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// ConfigEnv names the variables overriding Config; the service reads
// API_OPENAPI_TITLE and API_OPENAPI_DESCRIPTION.
type ConfigEnv struct {
	Title       string
	Description string
}

// Finalize fills in the PDF Tools title and description and applies
// env overrides. Blank values count as unset.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)

	if env != nil {
		c.loadEnv(env)
	}
	c.loadDefaults()
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "PDF Tools API"
	}
	if c.Description == "" {
		c.Description = "Merge, split, encrypt, and extract text from PDF documents."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if v := lookup(env.Title); v != "" {
		c.Title = v
	}
	if v := lookup(env.Description); v != "" {
		c.Description = v
	}
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(os.Getenv(name))
}
