// Package catalog loads the airport registry and fleet catalog that every
// engine is constructed with. The catalogs are built once at startup and
// passed by reference; nothing mutates them afterwards.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/ijalalfrz/charter-quote-service/internal/pkg/fleet"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/geo"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Catalog struct {
	Airports *geo.Registry
	Fleet    *fleet.Catalog
}

type document struct {
	Airports []geo.Airport `yaml:"airports"`
	Fleet    []fleet.Tier  `yaml:"fleet"`
}

// Load reads the catalog from path, or the embedded default when path is empty.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	return Parse(data)
}

// Default returns the embedded catalog. It panics if the embedded file is broken.
func Default() Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(err)
	}

	return c
}

func Parse(data []byte) (Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}

	airports, err := geo.NewRegistry(doc.Airports)
	if err != nil {
		return Catalog{}, fmt.Errorf("invalid airports: %w", err)
	}

	jets, err := fleet.NewCatalog(doc.Fleet)
	if err != nil {
		return Catalog{}, fmt.Errorf("invalid fleet: %w", err)
	}

	return Catalog{
		Airports: airports,
		Fleet:    jets,
	}, nil
}
