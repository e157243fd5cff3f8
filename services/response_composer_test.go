package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swasthyaguide-backend/models"
)

func TestComposer_EnglishFallback(t *testing.T) {
	composer := NewResponseComposer()

	// An unmapped language renders the English template.
	unknown := models.Language("marathi")
	assert.Equal(t, composer.Greeting(models.LanguageEnglish), composer.Greeting(unknown))
	assert.Equal(t,
		composer.SymptomGuidance(models.LanguageEnglish, []models.SymptomTag{models.SymptomFever}),
		composer.SymptomGuidance(unknown, []models.SymptomTag{models.SymptomFever}))
}

func TestComposer_EmergencyAlwaysNamesAmbulance(t *testing.T) {
	composer := NewResponseComposer()

	for _, lang := range []models.Language{
		models.LanguageEnglish, models.LanguageHindi, models.LanguageHinglish,
	} {
		assert.Contains(t, composer.Emergency(lang), "108", "language %s", lang)
	}
}

func TestComposer_SymptomGuidance(t *testing.T) {
	composer := NewResponseComposer()

	t.Run("one section per tag", func(t *testing.T) {
		text := composer.SymptomGuidance(models.LanguageEnglish,
			[]models.SymptomTag{models.SymptomFever, models.SymptomCough})
		assert.Contains(t, text, "About fever")
		assert.Contains(t, text, "About cough")
	})

	t.Run("empty tags give general tips", func(t *testing.T) {
		text := composer.SymptomGuidance(models.LanguageEnglish, nil)
		assert.Contains(t, text, "health tips")
	})

	t.Run("every tag has guidance in every language", func(t *testing.T) {
		tags := []models.SymptomTag{
			models.SymptomFever, models.SymptomHeadache, models.SymptomCold,
			models.SymptomCough, models.SymptomStomachPain, models.SymptomBodyAche,
			models.SymptomSoreThroat, models.SymptomVomiting, models.SymptomDiarrhea,
			models.SymptomWeakness, models.SymptomSkinRash,
		}
		for _, tag := range tags {
			for _, lang := range []models.Language{
				models.LanguageEnglish, models.LanguageHindi, models.LanguageHinglish,
			} {
				assert.NotEmpty(t,
					composer.SymptomGuidance(lang, []models.SymptomTag{tag}),
					"tag %s language %s", tag, lang)
			}
		}
	})
}

func TestComposer_ReconfirmRepeatsLocationPrompt(t *testing.T) {
	composer := NewResponseComposer()

	text := composer.ReconfirmSymptoms(models.LanguageHinglish,
		[]models.SymptomTag{models.SymptomFever, models.SymptomCough})

	assert.Contains(t, text, "bukhar")
	assert.Contains(t, text, "khansi")
	assert.Contains(t, text, composer.AskLocation(models.LanguageHinglish))
}

func TestComposer_ClinicResults(t *testing.T) {
	composer := NewResponseComposer()

	clinic := func(name string) models.Clinic {
		return models.Clinic{
			Name:        name,
			Address:     "Somewhere, Lucknow",
			Timing:      "Mon-Sat: 9AM-8PM",
			Phone:       "+91-522-0000000",
			Fees:        "Rs. 300",
			Specialties: []string{"General Medicine"},
		}
	}

	t.Run("renders details", func(t *testing.T) {
		text := composer.ClinicResults(models.LanguageEnglish, "Hazratganj, Lucknow",
			[]models.Clinic{clinic("Ganj Medical Centre")})
		assert.Contains(t, text, "Hazratganj, Lucknow")
		assert.Contains(t, text, "1. Ganj Medical Centre")
		assert.Contains(t, text, "Mon-Sat: 9AM-8PM")
		assert.Contains(t, text, "Rs. 300")
		assert.Contains(t, text, "General Medicine")
	})

	t.Run("caps the list at five", func(t *testing.T) {
		var clinics []models.Clinic
		for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
			clinics = append(clinics, clinic(name))
		}
		text := composer.ClinicResults(models.LanguageEnglish, "Lucknow", clinics)
		assert.Contains(t, text, "5. E")
		assert.NotContains(t, text, "6. F")
	})
}

func TestComposer_NoClinicsEchoesQuery(t *testing.T) {
	composer := NewResponseComposer()

	text := composer.NoClinics(models.LanguageEnglish, "Mumbai")
	assert.Contains(t, text, `"Mumbai"`)
}

func TestComposer_ImageAdvice(t *testing.T) {
	composer := NewResponseComposer()

	t.Run("renders condition and confidence", func(t *testing.T) {
		text := composer.ImageAdvice(models.LanguageEnglish,
			&models.ImageAnalysis{Condition: "eczema", Confidence: 0.82})
		assert.Contains(t, text, "eczema")
		assert.Contains(t, text, "82%")
	})

	t.Run("nil analysis", func(t *testing.T) {
		text := composer.ImageAdvice(models.LanguageEnglish, nil)
		assert.Contains(t, text, "couldn't analyze")
	})
}

func TestComposer_SymptomList(t *testing.T) {
	composer := NewResponseComposer()

	list := composer.SymptomList(models.LanguageHindi,
		[]models.SymptomTag{models.SymptomFever, models.SymptomDiarrhea})
	require.Equal(t, 2, len(strings.Split(list, ", ")))
	assert.Contains(t, list, "बुखार")
	assert.Contains(t, list, "दस्त")
}
