package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swasthyaguide-backend/models"
)

func TestSymptomExtractor_Extract(t *testing.T) {
	extractor := NewSymptomExtractor()

	tests := []struct {
		name string
		text string
		want []models.SymptomTag
	}{
		{"english fever", "I have fever", []models.SymptomTag{models.SymptomFever}},
		{"hinglish fever", "mujhe bukhar hai", []models.SymptomTag{models.SymptomFever}},
		{"devanagari fever", "मुझे बुखार है", []models.SymptomTag{models.SymptomFever}},
		{"synonyms dedupe to one tag", "fever and bukhar since yesterday", []models.SymptomTag{models.SymptomFever}},
		{"multiple symptoms in table order", "khansi aur bukhar hai",
			[]models.SymptomTag{models.SymptomFever, models.SymptomCough}},
		{"multi-word keyword", "mujhe pet dard ho raha hai", []models.SymptomTag{models.SymptomStomachPain}},
		{"sir dard via substring", "sir dard ho raha hai", []models.SymptomTag{models.SymptomHeadache}},
		{"cold needs token boundary", "I got scolded today", nil},
		{"punctuation stripped", "Fever, headache!",
			[]models.SymptomTag{models.SymptomFever, models.SymptomHeadache}},
		{"no symptoms", "where is the nearest clinic", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.Extract(tt.text))
		})
	}
}

func TestSymptomExtractor_Mentions(t *testing.T) {
	extractor := NewSymptomExtractor()

	assert.True(t, extractor.Mentions("bukhar"))
	assert.False(t, extractor.Mentions("Gomti Nagar"))
}
