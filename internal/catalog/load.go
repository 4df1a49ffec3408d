package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed default_catalog.toml
var defaultCatalogTOML []byte

type catalogFile struct {
	Chapters []Chapter `toml:"chapters"`
}

// Load reads a catalog definition from a TOML file. When path is empty the
// built-in course definition is used.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from TOML bytes.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	cat, err := New(file.Chapters)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}

// Default returns the built-in course definition.
func Default() (*Catalog, error) {
	return Parse(defaultCatalogTOML)
}
