// Package config loads the configuration of the FinTrack backend.
//
// Values are read from an optional config file and from environment
// variables prefixed with FINTRACK_, e.g. FINTRACK_AUTH_JWT_SECRET for
// auth.jwt_secret. A .env file in the working directory is loaded into the
// environment first.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

// EnvPrefix is the prefix of all environment variables read by Load.
const EnvPrefix = "FINTRACK"

// DeletionPolicy decides what happens to a user's records when the user
// deletes their account.
type DeletionPolicy string

const (
	// DeleteCascade deletes the user together with all owned records.
	DeleteCascade DeletionPolicy = "cascade"

	// DeleteOrphan deletes only the user and leaves owned records in place.
	DeleteOrphan DeletionPolicy = "orphan"

	// DeleteForbid refuses to delete users that still own records.
	DeleteForbid DeletionPolicy = "forbid"
)

var DeletionPolicies = []DeletionPolicy{DeleteCascade, DeleteOrphan, DeleteForbid}

var ErrInvalid = errors.New("invalid configuration")

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
	APIURL  string `mapstructure:"api_url"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

type AuthConfig struct {
	JWTSecret    string        `mapstructure:"jwt_secret"`
	Issuer       string        `mapstructure:"issuer"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
	CookieName   string        `mapstructure:"cookie_name"`
	CookieSecure bool          `mapstructure:"cookie_secure"`
	BcryptCost   int           `mapstructure:"bcrypt_cost"`
}

type BudgetsConfig struct {
	UniquePeriod bool `mapstructure:"unique_period"`
}

type UsersConfig struct {
	DeletionPolicy DeletionPolicy `mapstructure:"deletion_policy"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type EventsConfig struct {
	AMQPURL  string `mapstructure:"amqp_url"`
	Exchange string `mapstructure:"exchange"`
}

type DebugConfig struct {
	Pprof bool `mapstructure:"pprof"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Budgets  BudgetsConfig  `mapstructure:"budgets"`
	Users    UsersConfig    `mapstructure:"users"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Events   EventsConfig   `mapstructure:"events"`
	Debug    DebugConfig    `mapstructure:"debug"`
}

// defaults are registered with viper. Every key needs a default so that
// viper picks up the matching environment variable on Unmarshal.
var defaults = map[string]any{
	"server.address":        "",
	"server.port":           8080,
	"server.gin_mode":       "release",
	"server.api_url":        "http://localhost:8080/api",
	"log.level":             "info",
	"log.format":            "json",
	"database.driver":       "sqlite",
	"database.path":         "data/fintrack.db",
	"database.dsn":          "",
	"auth.jwt_secret":       "",
	"auth.issuer":           "fintrack",
	"auth.token_ttl":        7 * 24 * time.Hour,
	"auth.cookie_name":      "token",
	"auth.cookie_secure":    false,
	"auth.bcrypt_cost":      10,
	"budgets.unique_period": false,
	"users.deletion_policy": string(DeleteForbid),
	"cors.allow_origins":    []string{},
	"events.amqp_url":       "",
	"events.exchange":       "fintrack",
	"debug.pprof":           false,
}

// Default returns the configuration with all default values.
//
// The JWT secret is empty, so the result does not pass Validate.
func Default() Config {
	c, err := load(viper.New())
	if err != nil {
		// The defaults are static and always decode
		panic(err)
	}

	return c
}

// Load reads the configuration.
//
// path is the config file to read. If it is empty, a config.yaml in the
// working directory is used if it exists.
func Load(path string) (Config, error) {
	// A missing .env file is not an error
	_ = godotenv.Load()

	v := viper.New()
	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && (path != "" || !errors.As(err, &notFound)) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	c, err := load(v)
	if err != nil {
		return Config{}, err
	}

	return c, c.Validate()
}

func load(v *viper.Viper) (Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return c, nil
}

// Validate checks the configuration for values the backend cannot start with.
func (c Config) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d must be between 1 and 65535", c.Server.Port))
	}

	switch c.Server.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("server.gin_mode %q must be 'debug', 'release' or 'test'", c.Server.GinMode))
	}

	// A path without scheme and host takes both from each request
	if u, err := url.Parse(c.Server.APIURL); err != nil || (u.IsAbs() && u.Host == "") || (!u.IsAbs() && (u.Host != "" || !strings.HasPrefix(u.Path, "/"))) {
		problems = append(problems, fmt.Sprintf("server.api_url %q must be an absolute URL or an absolute path", c.Server.APIURL))
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			problems = append(problems, "database.path must be set for the sqlite driver")
		}
	case "postgres":
		if c.Database.DSN == "" {
			problems = append(problems, "database.dsn must be set for the postgres driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("database.driver %q must be 'sqlite' or 'postgres'", c.Database.Driver))
	}

	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret must be set")
	}

	if c.Auth.TokenTTL <= 0 {
		problems = append(problems, "auth.token_ttl must be positive")
	}

	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		problems = append(problems, fmt.Sprintf("auth.bcrypt_cost %d must be between 4 and 31", c.Auth.BcryptCost))
	}

	if !slices.Contains(DeletionPolicies, c.Users.DeletionPolicy) {
		problems = append(problems, fmt.Sprintf("users.deletion_policy %q must be one of 'cascade', 'orphan' or 'forbid'", c.Users.DeletionPolicy))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// Addr returns the address the HTTP server listens on.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
