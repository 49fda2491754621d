package config

import (
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Bump           string   `yaml:"bump"`
	Output         string   `yaml:"output"`
	Changelog      string   `yaml:"changelog"`
	Ignore         []string `yaml:"ignore"`
	Push           bool     `yaml:"-"`
	NonInteractive bool     `yaml:"-"`
	LogLevel       string   `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Bump:   "patch",
		Output: "table",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MergeFlags(cfg *Config, flags *pflag.FlagSet) *Config {
	if v, err := flags.GetString("bump"); err == nil && flags.Changed("bump") {
		cfg.Bump = v
	}
	if v, err := flags.GetString("output"); err == nil && flags.Changed("output") {
		cfg.Output = v
	}
	if v, err := flags.GetBool("push"); err == nil {
		cfg.Push = v
	}
	if v, err := flags.GetBool("non-interactive"); err == nil {
		cfg.NonInteractive = v
	}
	if v, err := flags.GetString("log-level"); err == nil {
		cfg.LogLevel = v
	}
	return cfg
}
