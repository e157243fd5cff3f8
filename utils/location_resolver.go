package utils

import (
	"strings"

	"swasthyaguide-backend/models"
)

// LocationResolver classifies free-form location text into a lookup query.
// It never performs the lookup itself; that belongs to the clinic index.
type LocationResolver struct {
	symptoms    *SymptomExtractor
	emergencies *EmergencyDetector
}

func NewLocationResolver(symptoms *SymptomExtractor, emergencies *EmergencyDetector) *LocationResolver {
	return &LocationResolver{symptoms: symptoms, emergencies: emergencies}
}

// Resolve applies the classification rules in order, first match wins:
//
//  1. exactly 6 digits -> pincode query
//  2. underscore-joined structured token -> location-key query
//  3. text containing any symptom or emergency keyword -> nil; location text
//     must not be stolen by symptom phrases
//  4. anything else -> free-text area/city query
//
// A nil result means the text is not a location at all.
func (r *LocationResolver) Resolve(text string) *models.LocationQuery {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if IsPincode(trimmed) {
		return &models.LocationQuery{Kind: models.QueryPincode, Value: trimmed}
	}

	if IsLocationKeyShaped(trimmed) {
		return &models.LocationQuery{
			Kind:   models.QueryLocationKey,
			Value:  trimmed,
			Tokens: keyTokens(trimmed),
		}
	}

	if r.symptoms.Mentions(trimmed) || r.emergencies.IsEmergency(trimmed) {
		return nil
	}

	tokens := Tokenize(trimmed)
	if len(tokens) == 0 {
		return nil
	}
	return &models.LocationQuery{Kind: models.QueryArea, Value: trimmed, Tokens: tokens}
}

func keyTokens(key string) []string {
	parts := strings.Split(strings.ToLower(key), "_")
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
