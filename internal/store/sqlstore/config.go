package sqlstore

import (
	"net"
	"net/url"
	"strconv"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

type Config struct {
	// Driver is either pgx or sqlite
	Driver   string `yaml:"driver" mapstructure:"driver" default:"pgx"`
	Host     string `yaml:"host" mapstructure:"host" default:"localhost"`
	Port     int    `yaml:"port" mapstructure:"port" default:"5432"`
	Name     string `yaml:"name" mapstructure:"name" default:"postgres"`
	User     string `yaml:"user" mapstructure:"user" default:"root"`
	Password string `yaml:"password" mapstructure:"password" default:""`
	SSLMode  string `yaml:"sslmode" mapstructure:"sslmode" default:"disable"`

	// Path of the database file for the sqlite driver
	Path string `yaml:"path" mapstructure:"path" default:""`

	MaxOpenConns int `yaml:"max_open_conns" mapstructure:"max_open_conns" default:"10"`
}

// ConnectionURL is the postgres connection URL.
func (c *Config) ConnectionURL() *url.URL {
	pgURL := &url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		User:   url.UserPassword(c.User, c.Password),
		Path:   c.Name,
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q := pgURL.Query()
	q.Add("sslmode", sslMode)
	pgURL.RawQuery = q.Encode()

	return pgURL
}

// DataSourceName returns the connection string for the configured driver.
func (c *Config) DataSourceName() string {
	if c.Driver == DriverSQLite {
		if c.Path == "" {
			return ":memory:"
		}
		return c.Path
	}
	return c.ConnectionURL().String()
}
