// Package catalog holds the static service catalogue. Records are build-time
// configuration embedded into the binary; nothing here mutates after init.
package catalog

import (
	"fmt"

	_ "embed"

	"gopkg.in/yaml.v3"

	"servicebuddy/models"
)

//go:embed services.yaml
var rawCatalog []byte

var byCategory map[models.Category][]models.ServiceRecord

func init() {
	if err := Load(rawCatalog); err != nil {
		panic(fmt.Sprintf("catalog: failed to parse embedded services.yaml: %v", err))
	}
}

// Load parses a YAML catalogue. Exposed so tests can load fixtures; the
// embedded catalogue is loaded automatically at init.
func Load(data []byte) error {
	parsed := make(map[models.Category][]models.ServiceRecord)
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return err
	}
	for cat, records := range parsed {
		if len(records) == 0 {
			return fmt.Errorf("catalog: category %q has no services", cat)
		}
		for _, rec := range records {
			if rec.ID == "" || rec.Title == "" {
				return fmt.Errorf("catalog: category %q has a record missing id or title", cat)
			}
		}
	}
	byCategory = parsed
	return nil
}

// Services returns the ordered records for a category. The returned slice
// must be treated as read-only.
func Services(cat models.Category) []models.ServiceRecord {
	return byCategory[cat]
}

// ServicesForAll collects records for several categories in the given
// order, used when a combined response draws from multiple categories.
func ServicesForAll(cats []models.Category) []models.ServiceRecord {
	var out []models.ServiceRecord
	for _, cat := range cats {
		out = append(out, byCategory[cat]...)
	}
	return out
}

// Categories returns every category present in the catalogue.
func Categories() []models.Category {
	cats := make([]models.Category, 0, len(byCategory))
	for cat := range byCategory {
		cats = append(cats, cat)
	}
	return cats
}
