package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmergencyDetector_IsEmergency(t *testing.T) {
	detector := NewEmergencyDetector()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"english chest pain", "I have severe chest pain", true},
		{"hinglish chest pain", "mujhe seene mein dard ho raha hai", true},
		{"devanagari chest pain", "सीने में दर्द हो रहा है", true},
		{"breathing trouble", "saans lene mein dikkat hai", true},
		{"single word", "behosh", true},
		{"plain fever is not an emergency", "I have fever", false},
		{"headache is not an emergency", "sir dard hai", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.IsEmergency(tt.text))
		})
	}
}
