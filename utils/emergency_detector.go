package utils

import (
	"strings"
)

// EmergencyDetector spots messages that describe a medical emergency in any
// supported language. Emergency detection pre-empts all other processing.
type EmergencyDetector struct {
	phrases []string
	words   []string
}

// Multi-word phrases match as substrings of normalized text; single words
// match on token boundaries.
var emergencyPhrases = []string{
	"chest pain", "pain in chest", "heart attack", "severe bleeding",
	"bleeding heavily", "difficulty breathing", "can not breathe",
	"cannot breathe", "cant breathe", "not breathing",
	"seene mein dard", "seene me dard", "chaati mein dard",
	"saans lene mein", "saans nahi", "khoon beh", "bahut khoon",
	"सीने में दर्द", "छाती में दर्द", "सांस लेने में", "सांस नहीं",
	"खून बह", "दिल का दौरा", "बेहोश",
}

var emergencyWords = []string{
	"unconscious", "behosh", "fainted", "stroke", "seizure", "daura",
	"poison", "zahar", "overdose", "suicide",
}

func NewEmergencyDetector() *EmergencyDetector {
	return &EmergencyDetector{phrases: emergencyPhrases, words: emergencyWords}
}

// IsEmergency reports whether the text matches any emergency keyword.
func (d *EmergencyDetector) IsEmergency(text string) bool {
	normalized := Normalize(text)
	if normalized == "" {
		return false
	}

	for _, phrase := range d.phrases {
		if strings.Contains(normalized, phrase) {
			return true
		}
	}

	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(normalized) {
		tokens[t] = struct{}{}
	}
	for _, w := range d.words {
		if _, ok := tokens[w]; ok {
			return true
		}
	}
	return false
}
