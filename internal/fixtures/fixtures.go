// Package fixtures holds the static reference data of the storefront:
// the service catalog, the partner gym list, and the mock order history.
// The data is embedded YAML so the binary is self-contained.
package fixtures

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"renewrubber/internal/models"
)

//go:embed products.yaml gyms.yaml orders.yaml
var fixtureFS embed.FS

// Products returns the full service catalog.
func Products() ([]models.Product, error) {
	var products []models.Product
	if err := load("products.yaml", &products); err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == "" || p.Name == "" || p.Price <= 0 {
			return nil, fmt.Errorf("malformed product fixture: %+v", p)
		}
	}
	return products, nil
}

// Gyms returns the partner gym list.
func Gyms() ([]models.GymLocation, error) {
	var gyms []models.GymLocation
	if err := load("gyms.yaml", &gyms); err != nil {
		return nil, err
	}
	for _, g := range gyms {
		if g.Name == "" || g.Lat == 0 || g.Lng == 0 {
			return nil, fmt.Errorf("malformed gym fixture: %+v", g)
		}
	}
	return gyms, nil
}

// Orders returns the mock order history.
func Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := load("orders.yaml", &orders); err != nil {
		return nil, err
	}
	for _, o := range orders {
		if !o.Status.Valid() {
			return nil, fmt.Errorf("order %s has unknown status %q", o.ID, o.Status)
		}
	}
	return orders, nil
}

func load(name string, out interface{}) error {
	data, err := fixtureFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}
	return nil
}
