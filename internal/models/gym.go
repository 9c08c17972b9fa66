package models

// GymLocation is a partner gym where customers drop off and pick up shoes.
// Static reference data.
type GymLocation struct {
	ID           int     `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Address      string  `json:"address" yaml:"address"`
	City         string  `json:"city" yaml:"city"`
	Region       string  `json:"region" yaml:"region"`
	Lat          float64 `json:"lat" yaml:"lat"`
	Lng          float64 `json:"lng" yaml:"lng"`
	Phone        string  `json:"phone" yaml:"phone"`
	Website      string  `json:"website,omitempty" yaml:"website"`
	OpeningHours string  `json:"openingHours,omitempty" yaml:"openingHours"`
}
