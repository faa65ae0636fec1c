package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/benoitkugler/svgcanvas/svgcanvas"
)

// loadConfig reads the file given by --config, if any, on top of the
// default configuration.
func (c *CLI) loadConfig() error {
	if c.configPath == "" {
		return nil
	}
	cfg, err := readConfigFile(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config", "path", c.configPath, "default", fmt.Sprintf("%dx%d", cfg.DefaultWidth, cfg.DefaultHeight),
		"min", cfg.MinContentSize, "margin", cfg.ContentMargin)
	return nil
}

func readConfigFile(path string) (svgcanvas.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return svgcanvas.Config{}, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(string(data))
}

// parseConfig decodes a TOML document over the default configuration.
// Unknown keys are rejected.
func parseConfig(data string) (svgcanvas.Config, error) {
	cfg := svgcanvas.DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return svgcanvas.Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return svgcanvas.Config{}, fmt.Errorf("parse config: unknown keys %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return svgcanvas.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
