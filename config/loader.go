package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration, populated by Load.
var Config AppConfig

// Load reads and validates the application configuration from path. If
// path is empty, it searches config.yml then ./golang/config.yml (for
// layouts that keep the Go module nested).
func Load(path string) error {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "./golang/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Timetable); err != nil {
		return err
	}
	if err := v.Struct(cfg.Query); err != nil {
		return err
	}

	Config = cfg
	return nil
}
