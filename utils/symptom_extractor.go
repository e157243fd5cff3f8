package utils

import (
	"strings"

	"swasthyaguide-backend/models"
)

// SymptomExtractor maps message text to canonical symptom tags using a
// multilingual synonym table. It is a pure function over the text and runs on
// every message regardless of conversation stage, so a symptom reported while
// the engine waits for a location is still recognized as a symptom.
type SymptomExtractor struct {
	table []symptomEntry
}

type symptomEntry struct {
	tag      models.SymptomTag
	keywords []string
}

// symptomTable lists each tag with its English, romanized-Hindi, and
// Devanagari surface forms. Entry order fixes the order tags are reported in
// when one message names several symptoms.
var symptomTable = []symptomEntry{
	{models.SymptomFever, []string{
		"fever", "bukhar", "jwar", "बुखार", "ज्वर",
	}},
	{models.SymptomHeadache, []string{
		"headache", "head ache", "sir dard", "sirdard", "sar dard", "sardard",
		"sir mein dard", "sir me dard", "सिरदर्द", "सिर दर्द", "सर दर्द",
	}},
	{models.SymptomCold, []string{
		"cold", "runny nose", "zukam", "jukam", "nazla", "sardi",
		"जुकाम", "सर्दी", "नजला",
	}},
	{models.SymptomCough, []string{
		"cough", "khansi", "khaansi", "खांसी", "खाँसी",
	}},
	{models.SymptomStomachPain, []string{
		"stomach pain", "stomach ache", "stomachache", "pet dard",
		"pet mein dard", "pet me dard", "पेट दर्द", "पेट में दर्द",
	}},
	{models.SymptomBodyAche, []string{
		"body ache", "body pain", "badan dard", "badan mein dard",
		"बदन दर्द", "शरीर में दर्द",
	}},
	{models.SymptomSoreThroat, []string{
		"sore throat", "throat pain", "gala kharab", "gale mein dard",
		"gale me dard", "गला खराब", "गले में दर्द",
	}},
	{models.SymptomVomiting, []string{
		"vomiting", "vomit", "ulti", "उल्टी",
	}},
	{models.SymptomDiarrhea, []string{
		"diarrhea", "diarrhoea", "loose motion", "loose motions", "dast",
		"दस्त",
	}},
	{models.SymptomWeakness, []string{
		"weakness", "kamzori", "kamjori", "कमजोरी",
	}},
	{models.SymptomSkinRash, []string{
		"skin rash", "rash", "itching", "khujli", "खुजली", "दाने",
	}},
}

func NewSymptomExtractor() *SymptomExtractor {
	return &SymptomExtractor{table: symptomTable}
}

// Extract returns the canonical tags present in the text, in table order,
// each at most once. Single-word keywords match on token boundaries so that
// "cold" does not fire inside "scolded"; multi-word and Devanagari keywords
// match as substrings of the normalized text.
func (e *SymptomExtractor) Extract(text string) []models.SymptomTag {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	tokens := make(map[string]struct{})
	for _, t := range strings.Fields(normalized) {
		tokens[t] = struct{}{}
	}

	var tags []models.SymptomTag
	for _, entry := range e.table {
		if e.matches(entry.keywords, normalized, tokens) {
			tags = append(tags, entry.tag)
		}
	}
	return tags
}

// Mentions reports whether the text contains any configured symptom keyword.
// The location resolver uses it to refuse symptom-bearing text as a location.
func (e *SymptomExtractor) Mentions(text string) bool {
	return len(e.Extract(text)) > 0
}

func (e *SymptomExtractor) matches(keywords []string, normalized string, tokens map[string]struct{}) bool {
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') || ContainsDevanagari(kw) {
			if strings.Contains(normalized, kw) {
				return true
			}
			continue
		}
		if _, ok := tokens[kw]; ok {
			return true
		}
	}
	return false
}
