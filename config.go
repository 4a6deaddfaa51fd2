package milkrun

import (
	"fmt"
	"os"
	"sort"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable holding the configuration directory.
const ConfigEnv = "MILKRUN_CONFIG"

// Config is the user configuration, read from milkrun.toml (or any format viper supports):
//
//	[general]
//	default_body = "mun"
//
//	[bodies]
//	minmus = 60000
//	gael = 600000
type Config struct {
	DefaultBody string
	Bodies      map[string]float64 // radius in meters, by name
}

// LoadConfig reads the configuration in dir, or in $MILKRUN_CONFIG if dir is empty.
// Without either, the empty configuration is returned.
func LoadConfig(dir string) (Config, error) {
	if dir == "" {
		dir = os.Getenv(ConfigEnv)
	}
	if dir == "" {
		return Config{}, nil
	}
	v := viper.New()
	v.SetConfigName("milkrun")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/milkrun.toml: %w", dir, err)
	}
	conf := Config{
		DefaultBody: v.GetString("general.default_body"),
		Bodies:      make(map[string]float64),
	}
	for name := range v.GetStringMap("bodies") {
		conf.Bodies[name] = v.GetFloat64("bodies." + name)
	}
	return conf, nil
}

// Catalog returns the built-in catalog with the configured bodies and default body.
func (c Config) Catalog(logger kitlog.Logger) (*Catalog, error) {
	catalog := NewCatalog()
	names := make([]string, 0, len(c.Bodies))
	for name := range c.Bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		radius := c.Bodies[name]
		if !finite(radius) || radius <= 0 {
			return nil, fmt.Errorf("body %s: radius must be positive, got %g", name, radius)
		}
		body := Body{name, radius}
		if known, err := catalog.Lookup(name); err == nil {
			body.Name = known.Name
		}
		if catalog.Add(body) {
			logger.Log("level", "warning", "subsys", "conf", "body", body.Name, "radius(m)", radius, "message", "overrides built-in body")
		} else {
			logger.Log("level", "info", "subsys", "conf", "body", body.Name, "radius(m)", radius)
		}
	}
	if c.DefaultBody != "" {
		if err := catalog.SetDefault(c.DefaultBody); err != nil {
			return nil, fmt.Errorf("default body: %w", err)
		}
		logger.Log("level", "info", "subsys", "conf", "default", catalog.Default().Name)
	}
	return catalog, nil
}
