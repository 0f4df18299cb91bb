package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Fatty911/nodes-subconverter/geolib"
)

func TestConfigOk(t *testing.T) {
	text := `provider = "ipinfo"
		auth_token = "sekret"
		request_delay = "2s"
		rate_limit_per_minute = 30
		time_budget = "40s"
		http_timeout = "5s"
		user_agent = "custom-agent"
		listen = "127.0.0.1:9000"

		[basic_auth]
		user = "admin"
		password = "pass"`

	conf, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, "ipinfo", conf.Provider)
	assert.Equal(t, "sekret", conf.AuthToken)
	assert.Equal(t, 2*time.Second, conf.RequestDelay.Duration)
	assert.Equal(t, 30, conf.RateLimitPerMinute)
	assert.Equal(t, 40*time.Second, conf.TimeBudget.Duration)
	assert.Equal(t, 5*time.Second, conf.HTTPTimeout.Duration)
	assert.Equal(t, "custom-agent", conf.UserAgent)
	assert.Equal(t, "127.0.0.1:9000", conf.Listen)
	assert.True(t, conf.BasicAuth.Enabled())
	assert.Equal(t, "admin", conf.BasicAuth.User)
	assert.Equal(t, "pass", conf.BasicAuth.Password)
}

func TestConfigDefaults(t *testing.T) {
	conf, err := Parse(strings.NewReader(""))
	assert.Nil(t, err)
	assert.NotNil(t, conf)

	assert.Equal(t, "ip_api", conf.Provider)
	assert.Equal(t, "", conf.AuthToken)
	assert.Equal(t, geolib.DefaultRequestDelay, conf.RequestDelay.Duration)
	assert.Equal(t, geolib.DefaultReferencePerMinute, conf.RateLimitPerMinute)
	assert.Equal(t, geolib.DefaultTimeBudget, conf.TimeBudget.Duration)
	assert.Equal(t, geolib.DefaultHTTPTimeout, conf.HTTPTimeout.Duration)
	assert.Equal(t, ":8000", conf.Listen)
	assert.False(t, conf.BasicAuth.Enabled())
}

func TestConfigRate(t *testing.T) {
	text := `request_delay = "3s"
		rate_limit_per_minute = 10`

	conf, err := Parse(strings.NewReader(text))
	assert.Nil(t, err)

	rate := conf.Rate()
	assert.Equal(t, 3*time.Second, rate.RequestDelay)
	assert.Equal(t, 10, rate.ReferencePerMinute)
	assert.Equal(t, 20, rate.EffectivePerMinute())
}

func TestUnknownProvider(t *testing.T) {
	text := `provider = "qqq"`

	_, err := Parse(strings.NewReader(text))
	assert.NotNil(t, err)
}

func TestIncorrectRequestDelay(t *testing.T) {
	text := `request_delay = "-2s"`

	_, err := Parse(strings.NewReader(text))
	assert.NotNil(t, err)
}

func TestIncorrectRateLimit(t *testing.T) {
	text := `rate_limit_per_minute = -5`

	_, err := Parse(strings.NewReader(text))
	assert.NotNil(t, err)
}

func TestIncorrectDuration(t *testing.T) {
	text := `time_budget = "lalalal"`

	_, err := Parse(strings.NewReader(text))
	assert.NotNil(t, err)
}

func TestIncompleteBasicAuth(t *testing.T) {
	text := `[basic_auth]
		user = "admin"`

	_, err := Parse(strings.NewReader(text))
	assert.NotNil(t, err)
}

func TestBrokenTOML(t *testing.T) {
	_, err := Parse(strings.NewReader("provider = "))
	assert.NotNil(t, err)
}
