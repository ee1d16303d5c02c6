// Package config resolves the server's settings from command-line flags,
// environment variables, an optional TOML file and built-in defaults, in
// that order of precedence.
package config

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/harshapalnati/raworc-mcpserver/internal/logging"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworc"
	"github.com/harshapalnati/raworc-mcpserver/pkg/raworcerrs"
)

// Config is the fully resolved server configuration.
type Config struct {
	APIURL       string
	AuthToken    string
	Username     string
	Password     string
	DefaultSpace string
	Timeout      time.Duration
	LogLevel     string
	LogFormat    string
}

// Values is a partial configuration. Nil fields are unset and fall through
// to the next source. It is both the TOML file schema and the shape of
// explicitly set flags.
type Values struct {
	APIURL         *string `toml:"api_url"`
	AuthToken      *string `toml:"auth_token"`
	Username       *string `toml:"username"`
	Password       *string `toml:"password"`
	DefaultSpace   *string `toml:"default_space"`
	TimeoutSeconds *int    `toml:"timeout"`
	LogLevel       *string `toml:"log_level"`
	LogFormat      *string `toml:"log_format"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		APIURL:    raworc.DefaultBaseURL,
		Timeout:   raworc.DefaultTimeout,
		LogLevel:  "info",
		LogFormat: logging.FormatJSON,
	}
}

// LoadFile reads a TOML config file. Unknown keys are rejected.
func LoadFile(path string) (Values, error) {
	var v Values
	f, err := os.Open(path)
	if err != nil {
		return v, raworcerrs.NewConfigError("config", "opening config file "+path, err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return v, raworcerrs.NewConfigError("config", "unknown keys in "+path+": "+strict.String(), err)
		}

		return v, raworcerrs.NewConfigError("config", "parsing config file "+path, err)
	}

	return v, nil
}

// Resolve layers file over the defaults and flags over file, then
// validates the result.
func Resolve(file, flags Values) (Config, error) {
	cfg := Defaults()
	apply(&cfg, file)
	apply(&cfg, flags)

	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	cfg.DefaultSpace = strings.TrimSpace(cfg.DefaultSpace)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads the file at path, if any, and resolves it against flags.
func Load(path string, flags Values) (Config, error) {
	var file Values
	if strings.TrimSpace(path) != "" {
		var err error
		if file, err = LoadFile(path); err != nil {
			return Config{}, err
		}
	}

	return Resolve(file, flags)
}

func apply(cfg *Config, v Values) {
	setString(&cfg.APIURL, v.APIURL)
	setString(&cfg.AuthToken, v.AuthToken)
	setString(&cfg.Username, v.Username)
	setString(&cfg.Password, v.Password)
	setString(&cfg.DefaultSpace, v.DefaultSpace)
	setString(&cfg.LogLevel, v.LogLevel)
	setString(&cfg.LogFormat, v.LogFormat)
	if v.TimeoutSeconds != nil {
		cfg.Timeout = time.Duration(*v.TimeoutSeconds) * time.Second
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Validate reports the first invalid setting as a configuration error.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return raworcerrs.NewConfigError("api_url", "api url must be an absolute http or https URL: "+c.APIURL, err)
	}
	if c.Timeout <= 0 {
		return raworcerrs.NewConfigError("timeout", "timeout must be a positive number of seconds", nil)
	}
	if (c.Username == "") != (c.Password == "") {
		return raworcerrs.NewConfigError("username", "username and password must be set together", nil)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return raworcerrs.NewConfigError("log_level", "unknown log level: "+c.LogLevel, nil)
	}
	if _, ok := logging.ParseFormat(c.LogFormat); !ok {
		return raworcerrs.NewConfigError("log_format", "unknown log format: "+c.LogFormat, nil)
	}

	return nil
}

// HasCredentials reports whether login credentials are configured.
func (c Config) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

// NeedsLogin reports whether the server must authenticate before serving.
func (c Config) NeedsLogin() bool {
	return c.AuthToken == "" && c.HasCredentials()
}

// Client converts the configuration to client settings.
func (c Config) Client() raworc.Config {
	return raworc.Config{
		BaseURL:      c.APIURL,
		Token:        c.AuthToken,
		Username:     c.Username,
		Password:     c.Password,
		DefaultSpace: c.DefaultSpace,
		Timeout:      c.Timeout,
	}
}
