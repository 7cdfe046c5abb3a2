package config

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// DSN returns a go-sql-driver/mysql data source name. If ConnectionString
// is set it is used directly, normalized to always parse time columns;
// otherwise the DSN is built from the discrete fields.
func (d *DatabaseConfig) DSN() (string, error) {
	if d.ConnectionString != "" {
		parsed, err := mysql.ParseDSN(d.ConnectionString)
		if err != nil {
			return "", fmt.Errorf("database.dsn is invalid: %w", err)
		}
		parsed.ParseTime = true
		return parsed.FormatDSN(), nil
	}

	cfg := mysql.NewConfig()
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	cfg.DBName = d.Database
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// EffectiveDatabaseName returns the database the service will query,
// whether it came from the DSN or the discrete field.
func (d *DatabaseConfig) EffectiveDatabaseName() (string, error) {
	if d.ConnectionString != "" {
		parsed, err := mysql.ParseDSN(d.ConnectionString)
		if err != nil {
			return "", fmt.Errorf("database.dsn is invalid: %w", err)
		}
		if name := strings.TrimSpace(parsed.DBName); name != "" {
			return name, nil
		}
	}
	if name := strings.TrimSpace(d.Database); name != "" {
		return name, nil
	}
	return "", fmt.Errorf("no database name configured: set database.database or include /<database> in database.dsn")
}
