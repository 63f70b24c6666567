package fleet

import "fmt"

// AircraftType is immutable reference data for a charter model.
type AircraftType struct {
	Category    string  `yaml:"-" json:"category"`
	Model       string  `yaml:"model" json:"model"`
	SpeedKts    float64 `yaml:"speed_kts" json:"speed_kts"`
	DOCPerHour  float64 `yaml:"doc_hr_usd" json:"doc_hr_usd"`
	MinRunwayFt int     `yaml:"min_rwy" json:"min_rwy"`
}

// Tier groups the models of one fleet category.
type Tier struct {
	Category string         `yaml:"category"`
	Models   []AircraftType `yaml:"models"`
}

// Catalog keeps the ordered fleet tiers and an index by model name.
type Catalog struct {
	tiers   []Tier
	byModel map[string]AircraftType
}

func NewCatalog(tiers []Tier) (*Catalog, error) {
	c := &Catalog{
		tiers:   make([]Tier, 0, len(tiers)),
		byModel: make(map[string]AircraftType),
	}

	for _, tier := range tiers {
		if tier.Category == "" {
			return nil, fmt.Errorf("fleet tier without category")
		}

		models := make([]AircraftType, 0, len(tier.Models))
		for _, model := range tier.Models {
			if _, ok := c.byModel[model.Model]; ok {
				return nil, fmt.Errorf("duplicate aircraft model %q", model.Model)
			}

			model.Category = tier.Category
			c.byModel[model.Model] = model
			models = append(models, model)
		}

		c.tiers = append(c.tiers, Tier{Category: tier.Category, Models: models})
	}

	return c, nil
}

// Lookup resolves a model by exact name.
func (c *Catalog) Lookup(model string) (AircraftType, bool) {
	a, ok := c.byModel[model]
	return a, ok
}

// All returns every model, tier by tier, in catalog order.
func (c *Catalog) All() []AircraftType {
	results := make([]AircraftType, 0, len(c.byModel))
	for _, tier := range c.tiers {
		results = append(results, tier.Models...)
	}

	return results
}

func (c *Catalog) Categories() []string {
	categories := make([]string, len(c.tiers))
	for i, tier := range c.tiers {
		categories[i] = tier.Category
	}

	return categories
}
