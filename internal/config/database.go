// internal/config/database.go
package config

import (
	"net/url"
	"strings"
)

// DSN returns DATABASE_URL when set, otherwise a libpq key/value string built from the parts.
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return d.keyValues(d.Password)
}

// Redacted is DSN with the password masked, for logs.
func (d *DatabaseConfig) Redacted() string {
	if d.URL != "" {
		u, err := url.Parse(d.URL)
		if err != nil {
			return "invalid DATABASE_URL"
		}
		return u.Redacted()
	}
	return d.keyValues("xxxxx")
}

func (d *DatabaseConfig) keyValues(password string) string {
	pairs := []struct{ key, value string }{
		{"host", d.Host},
		{"port", d.Port},
		{"user", d.User},
		{"password", password},
		{"dbname", d.Database},
		{"sslmode", d.SSLMode},
		{"TimeZone", "UTC"},
		{"application_name", "hireswipe"},
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.key+"="+quoteValue(p.value))
	}
	return strings.Join(parts, " ")
}

// quoteValue applies libpq quoting to values with spaces, quotes or backslashes.
func quoteValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
