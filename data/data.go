// Package data ships the static clinic dataset. The dataset is prepared by an
// external curation step; at runtime the core only consumes the decoded table.
package data

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"swasthyaguide-backend/models"
)

//go:embed clinics.json
var clinicsJSON []byte

// LocationEntry is one dataset row: a canonical location key and its clinics
// in source order. Source order is the lookup tie-break, so the dataset is an
// array rather than a keyed object.
type LocationEntry struct {
	LocationKey string          `json:"location_key"`
	Clinics     []models.Clinic `json:"clinics"`
}

// Load decodes the embedded dataset and fills in the per-clinic fields
// derived from the location key (city, area).
func Load() ([]LocationEntry, error) {
	var entries []LocationEntry
	if err := json.Unmarshal(clinicsJSON, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode clinic dataset: %w", err)
	}

	for i := range entries {
		city, area := models.ParseLocationKey(entries[i].LocationKey)
		for j := range entries[i].Clinics {
			c := &entries[i].Clinics[j]
			c.LocationKey = entries[i].LocationKey
			c.City = city
			c.Area = area
			c.IsActive = true
		}
	}

	return entries, nil
}

// MustLoad is Load for startup paths where a broken dataset is unrecoverable.
func MustLoad() []LocationEntry {
	entries, err := Load()
	if err != nil {
		panic(err)
	}
	return entries
}
