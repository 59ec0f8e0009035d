package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brewkraft/brewkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".brewkraft.yaml"

// YAMLLoader implements domain.MenuLoader by reading .brewkraft.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .brewkraft.yaml from dir and overlays it on the default menu.
// Returns the default menu if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.Menu, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultMenu(), nil
		}
		return domain.Menu{}, err
	}

	var cfg domain.MenuConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Menu{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging — catches typos in the user's raw input.
	if err := cfg.Validate(); err != nil {
		return domain.Menu{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg.ApplyTo(domain.DefaultMenu()), nil
}
