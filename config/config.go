package config

import (
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"

	"github.com/Fatty911/nodes-subconverter/geolib"
	"github.com/Fatty911/nodes-subconverter/providers"
)

var validProviders = map[string]bool{
	providers.NameIPAPI:  true,
	providers.NameIPInfo: true,
}

const defaultListen = ":8000"

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

type BasicAuthConfig struct {
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (b BasicAuthConfig) Enabled() bool {
	return b.User != ""
}

type Config struct {
	Provider           string          `toml:"provider"`
	AuthToken          string          `toml:"auth_token"`
	RequestDelay       duration        `toml:"request_delay"`
	RateLimitPerMinute int             `toml:"rate_limit_per_minute"`
	TimeBudget         duration        `toml:"time_budget"`
	HTTPTimeout        duration        `toml:"http_timeout"`
	UserAgent          string          `toml:"user_agent"`
	Listen             string          `toml:"listen"`
	BasicAuth          BasicAuthConfig `toml:"basic_auth"`
}

func (c *Config) Rate() geolib.RateConfig {
	return geolib.RateConfig{
		RequestDelay:       c.RequestDelay.Duration,
		ReferencePerMinute: c.RateLimitPerMinute,
	}
}

func Parse(file io.Reader) (*Config, error) {
	conf := &Config{}

	buf, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	setDefaults(conf)

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func setDefaults(conf *Config) {
	if conf.Provider == "" {
		conf.Provider = providers.NameIPAPI
	}

	if conf.RequestDelay.Duration == 0 {
		conf.RequestDelay.Duration = geolib.DefaultRequestDelay
	}

	if conf.RateLimitPerMinute == 0 {
		conf.RateLimitPerMinute = geolib.DefaultReferencePerMinute
	}

	if conf.TimeBudget.Duration == 0 {
		conf.TimeBudget.Duration = geolib.DefaultTimeBudget
	}

	if conf.HTTPTimeout.Duration == 0 {
		conf.HTTPTimeout.Duration = geolib.DefaultHTTPTimeout
	}

	if conf.Listen == "" {
		conf.Listen = defaultListen
	}
}

func validate(conf *Config) error {
	if _, ok := validProviders[conf.Provider]; !ok {
		return errors.Errorf("Unknown provider %s", conf.Provider)
	}

	if conf.RequestDelay.Duration < 0 {
		return errors.Errorf("Incorrect request delay %v",
			conf.RequestDelay.Duration)
	}

	if conf.RateLimitPerMinute < 0 {
		return errors.Errorf("Incorrect rate limit %d",
			conf.RateLimitPerMinute)
	}

	if conf.TimeBudget.Duration < 0 {
		return errors.Errorf("Incorrect time budget %v",
			conf.TimeBudget.Duration)
	}

	if conf.HTTPTimeout.Duration < 0 {
		return errors.Errorf("Incorrect http timeout %v",
			conf.HTTPTimeout.Duration)
	}

	if conf.BasicAuth.User != "" && conf.BasicAuth.Password == "" {
		return errors.Errorf("Basic auth password is required for user %s",
			conf.BasicAuth.User)
	}

	return nil
}
