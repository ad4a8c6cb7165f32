package theme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/primitives/pkg/errors"
)

// Load parses YAML theme data. Fields not present in the document keep the
// built-in defaults.
func Load(data []byte) (*ThemeData, error) {
	themeData := DefaultTheme()
	if err := yaml.Unmarshal(data, themeData); err != nil {
		return nil, errors.New("theme.Load", errors.KindConfig,
			fmt.Errorf("failed to parse theme: %w", err))
	}
	return themeData, nil
}

// LoadFile reads and parses a YAML theme file.
func LoadFile(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("theme.LoadFile", errors.KindConfig,
			fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Load(data)
}
