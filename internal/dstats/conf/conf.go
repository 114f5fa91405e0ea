// Package conf loads tool configuration from an optional config file and
// DSTATS_* environment variables. CLI flags override whatever is loaded.
package conf

import (
	"strings"

	"github.com/spf13/viper"
)

const defaultHTTPAddr = "127.0.0.1:5030"

// Config holds the runtime options of a report run.
type Config struct {
	// Output is the report path; empty means next to the archive.
	Output string `mapstructure:"output" json:"output"`
	// HTTPAddr is the listen address of serve mode.
	HTTPAddr string `mapstructure:"http_addr" json:"http_addr"`
	// Serve keeps the process running and serves the report over HTTP.
	Serve bool `mapstructure:"serve" json:"serve"`
	// Watch recomputes the report when the archive file changes. Only
	// meaningful together with Serve.
	Watch bool `mapstructure:"watch" json:"watch"`
	Debug bool `mapstructure:"debug" json:"debug"`
}

// Load reads the optional config file (explicit path, or dstats.yaml in the
// working directory) merged with environment variables.
func Load(file string) (*Config, error) {
	v := viper.New()
	v.SetDefault("http_addr", defaultHTTPAddr)
	v.SetEnvPrefix("DSTATS")
	v.AutomaticEnv()
	// AutomaticEnv only resolves keys viper already knows about, so bind
	// every config key explicitly or env-only settings never reach Unmarshal.
	for _, key := range []string{"output", "http_addr", "serve", "watch", "debug"} {
		_ = v.BindEnv(key)
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("dstats")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	c.Normalize()
	return &c, nil
}

// Normalize trims fields and applies defaults.
func (c *Config) Normalize() {
	c.Output = strings.TrimSpace(c.Output)
	c.HTTPAddr = strings.TrimSpace(c.HTTPAddr)
	if c.HTTPAddr == "" {
		c.HTTPAddr = defaultHTTPAddr
	}
}
