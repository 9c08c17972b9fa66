package services

import (
	"sort"
	"strings"

	"renewrubber/internal/geo"
	"renewrubber/internal/models"
)

// GymMarker is a gym together with its projected position on the map panel.
type GymMarker struct {
	Gym      models.GymLocation `json:"gym"`
	Position geo.Position       `json:"position"`
}

// GymService serves the static partner gym list: search, region filtering,
// and the map projection.
type GymService struct {
	gyms   []models.GymLocation
	bounds geo.Bounds
}

// NewGymService creates a gym service over the given gym list.
func NewGymService(gyms []models.GymLocation) *GymService {
	return &GymService{
		gyms:   gyms,
		bounds: geo.NetherlandsBounds,
	}
}

// GetAllGyms returns every partner gym.
func (s *GymService) GetAllGyms() []models.GymLocation {
	out := make([]models.GymLocation, len(s.gyms))
	copy(out, s.gyms)
	return out
}

// Search filters gyms by a case-insensitive name/city query and an exact
// region. Either filter may be empty.
func (s *GymService) Search(query, region string) []models.GymLocation {
	q := strings.ToLower(query)
	out := make([]models.GymLocation, 0, len(s.gyms))
	for _, gym := range s.gyms {
		matchesQuery := q == "" ||
			strings.Contains(strings.ToLower(gym.Name), q) ||
			strings.Contains(strings.ToLower(gym.City), q)
		matchesRegion := region == "" || gym.Region == region
		if matchesQuery && matchesRegion {
			out = append(out, gym)
		}
	}
	return out
}

// Regions returns the sorted list of distinct regions with a partner gym.
func (s *GymService) Regions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, gym := range s.gyms {
		if !seen[gym.Region] {
			seen[gym.Region] = true
			regions = append(regions, gym.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// MapMarkers projects every gym onto the map panel.
func (s *GymService) MapMarkers() []GymMarker {
	markers := make([]GymMarker, 0, len(s.gyms))
	for _, gym := range s.gyms {
		markers = append(markers, GymMarker{
			Gym:      gym,
			Position: s.bounds.Project(gym.Lat, gym.Lng),
		})
	}
	return markers
}
