package utils

import (
	"swasthyaguide-backend/models"
)

// LanguageDetector classifies a message as Hindi (Devanagari), English, or
// Hinglish (romanized code-mixed Hindi-English). Classification is a pure
// function of the input text; session stickiness is the dialogue engine's
// concern.
type LanguageDetector struct {
	hinglishMarkers  map[string]struct{}
	englishStopwords map[string]struct{}
}

// hinglishMarkerWords are common Hindi words as typed in Latin script.
// Detection is intentionally conservative: only tokens that are unambiguous
// Hindi in a Latin-script message belong here. Words that double as English
// ("sir", "to", "me") are excluded.
var hinglishMarkerWords = []string{
	"hai", "hain", "tha", "thi", "ho", "hoon", "hun", "hoga", "hogi",
	"raha", "rahi", "rahe", "gaya", "gayi",
	"mujhe", "mujhko", "mera", "meri", "mere", "hamara", "humko",
	"aap", "aapka", "aapki", "aapke", "tum", "tumhara",
	"kya", "kab", "kahan", "kaha", "kaun", "kaise", "kyun", "kyon",
	"nahi", "nahin", "haan", "zaroor", "kripya", "dhanyawad", "shukriya",
	"namaste", "namaskar",
	"aur", "lekin", "mein", "wala", "wali", "bhi", "kuch", "bahut",
	"thoda", "abhi", "yahan", "wahan", "paas",
	"chahiye", "chahie", "karo", "karna", "karein", "kijiye",
	"batao", "bataye", "bataiye", "dikhao", "milega", "milegi",
	"bukhar", "jwar", "dard", "zukam", "jukam", "khansi", "khaansi",
	"ulti", "dast", "kamzori", "kamjori", "khujli", "behosh",
	"pet", "gala", "gale", "seene", "saans", "dawai", "dawa", "ilaj",
	"aspatal", "doctor ke", "bimari", "bimar", "tabiyat", "sehat",
}

var englishStopwordList = []string{
	"the", "is", "are", "was", "were", "have", "has", "had", "a", "an",
	"i", "my", "me", "we", "you", "your", "he", "she", "it", "they",
	"what", "where", "when", "which", "who", "how", "why",
	"do", "does", "did", "can", "could", "will", "would", "should",
	"need", "want", "please", "help", "with", "for", "and", "but", "not",
	"in", "on", "at", "of", "from", "there", "this", "that",
}

func NewLanguageDetector() *LanguageDetector {
	d := &LanguageDetector{
		hinglishMarkers:  make(map[string]struct{}, len(hinglishMarkerWords)),
		englishStopwords: make(map[string]struct{}, len(englishStopwordList)),
	}
	for _, w := range hinglishMarkerWords {
		d.hinglishMarkers[w] = struct{}{}
	}
	for _, w := range englishStopwordList {
		d.englishStopwords[w] = struct{}{}
	}
	return d
}

// Detect classifies the text. Rules, in order: Devanagari wins outright;
// purely numeric or location-key shaped text is structured data (english);
// any Hinglish marker token wins over a weak English signal; the default is
// english. Empty input defaults to english.
func (d *LanguageDetector) Detect(text string) models.Language {
	if ContainsDevanagari(text) {
		return models.LanguageHindi
	}

	if IsNumeric(text) || IsLocationKeyShaped(text) {
		return models.LanguageEnglish
	}

	for _, token := range Tokenize(text) {
		if _, ok := d.hinglishMarkers[token]; ok {
			return models.LanguageHinglish
		}
	}

	return models.LanguageEnglish
}

// EnglishSignal counts English stop-word tokens in the text. The dialogue
// engine uses it to decide whether a default-english classification is strong
// enough to overwrite a sticky hindi/hinglish session language.
func (d *LanguageDetector) EnglishSignal(text string) int {
	count := 0
	for _, token := range Tokenize(text) {
		if _, ok := d.englishStopwords[token]; ok {
			count++
		}
	}
	return count
}
