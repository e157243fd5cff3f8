package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swasthyaguide-backend/models"
)

func TestLanguageDetector_Detect(t *testing.T) {
	detector := NewLanguageDetector()

	tests := []struct {
		name string
		text string
		want models.Language
	}{
		{"devanagari", "मुझे बुखार है", models.LanguageHindi},
		{"devanagari mixed with latin", "mujhe बुखार hai", models.LanguageHindi},
		{"plain english", "I have a fever and headache", models.LanguageEnglish},
		{"hinglish sentence", "mujhe bukhar hai", models.LanguageHinglish},
		{"hinglish question", "doctor kahan milega", models.LanguageHinglish},
		{"bare pincode", "226010", models.LanguageEnglish},
		{"location key", "Lucknow_Gomti_Nagar", models.LanguageEnglish},
		{"single marker token", "haan", models.LanguageHinglish},
		{"empty", "", models.LanguageEnglish},
		{"english with place name", "clinics in Hazratganj", models.LanguageEnglish},
		{"marker inside english", "please batao where is the clinic", models.LanguageHinglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.Detect(tt.text))
		})
	}
}

func TestLanguageDetector_EnglishSignal(t *testing.T) {
	detector := NewLanguageDetector()

	assert.GreaterOrEqual(t, detector.EnglishSignal("I have a fever"), 2)
	assert.Equal(t, 0, detector.EnglishSignal("226010"))
	assert.Equal(t, 0, detector.EnglishSignal("Gomti Nagar"))
}
